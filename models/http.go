// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReadFilesRequest is the body of POST /api/explorer/files.
type ReadFilesRequest struct {
	Paths []string `json:"paths"`
}

// WriteFileRequest is the body of PUT /api/explorer/file.
type WriteFileRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// CreateEntryRequest is the body of POST /api/explorer/entries. Path is the
// parent directory.
type CreateEntryRequest struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	IsDir bool   `json:"isDir"`
}

// DeleteEntryRequest is the body of DELETE /api/explorer/entries.
type DeleteEntryRequest struct {
	Path  string `json:"path"`
	IsDir bool   `json:"isDir"`
}

// RenameRequest is the body of POST /api/explorer/rename. Name is the new
// base name inside the same directory.
type RenameRequest struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// WatchRequest is the body of POST /api/explorer/watch.
type WatchRequest struct {
	Path string `json:"path"`
}
