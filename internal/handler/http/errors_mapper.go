package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/internal/store"
	"github.com/MKhiriev/go-docs-keeper/internal/workers"
)

var errorStatusMap = map[error]int{
	ErrMissingPath: http.StatusBadRequest,
	ErrMissingName: http.StatusBadRequest,
	ErrInvalidBody: http.StatusBadRequest,

	service.ErrFileNotFound:          http.StatusNotFound,
	service.ErrOutsideWorkspace:      http.StatusForbidden,
	service.ErrInvalidPath:           http.StatusBadRequest,
	service.ErrAlreadyExists:         http.StatusConflict,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	workers.ErrNotADirectory: http.StatusBadRequest,

	store.ErrStorageClosed:      http.StatusServiceUnavailable,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
