package service

import "errors"

var (
	// ErrMalformedPersistedConfig means the stored preference blob is not a
	// JSON object or a known key has the wrong type. It is logged and the
	// defaults are used instead.
	ErrMalformedPersistedConfig = errors.New("malformed persisted config")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrFileNotFound     = errors.New("file not found")
	ErrOutsideWorkspace = errors.New("path is outside of the workspace")
	ErrInvalidPath      = errors.New("invalid path")
	ErrAlreadyExists    = errors.New("entry already exists")
)
