package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by [DecodeJSON] for a request without a body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON serializes data and writes it with statusCode and an
// "application/json" content type. If marshaling fails it responds with
// 500 Internal Server Error and returns the wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes a single JSON value from r into v. Unknown object
// fields and trailing data are rejected.
func DecodeJSON(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON: %w", err)
	}

	if decoder.More() {
		return errors.New("error decoding JSON: unexpected data after the value")
	}
	return nil
}
