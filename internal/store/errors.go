package store

import "errors"

// ErrStorageClosed is returned by every [KeyValueStorage] method called
// after Close.
var ErrStorageClosed = errors.New("storage is closed")

// ErrUnknownBackend is returned by [NewStorages] for an unsupported backend
// name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite backend when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
