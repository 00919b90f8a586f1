package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-docs-keeper/internal/app"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/utils"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// respond writes data inside the {code, msg, data} envelope. On error the
// envelope carries the failure code, the message and the zero value of T,
// with the HTTP status taken from errorStatusMap.
func respond[T any](w http.ResponseWriter, r *http.Request, data T, err error) {
	if err != nil {
		var zero T
		status := statusFromError(err)
		logger.FromRequest(r).Err(err).Int("status", status).Str("uri", r.RequestURI).Msg("request failed")
		_, _ = utils.WriteJSON(w, models.Failure(publicError(err, status), zero), status)
		return
	}
	_, _ = utils.WriteJSON(w, models.Success(data), http.StatusOK)
}

// publicError hides the text of errors without a client-facing status.
func publicError(err error, status int) error {
	switch status {
	case http.StatusInternalServerError:
		return errors.New(app.MsgInternalServerError)
	case http.StatusServiceUnavailable:
		return errors.New(app.MsgStorageUnavailable)
	default:
		return err
	}
}

// decodeBody decodes the JSON request body strictly into v.
func decodeBody(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

func queryPath(r *http.Request) (string, error) {
	path := r.URL.Query().Get("path")
	if path == "" {
		return "", ErrMissingPath
	}
	return path, nil
}
