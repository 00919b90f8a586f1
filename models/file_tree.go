// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"strings"
)

// FileType discriminates explorer entries. The numeric values are part of the
// wire format consumed by the editor.
type FileType int

const (
	// FileTypeDir is a directory.
	FileTypeDir FileType = 0
	// FileTypeMarkdown is a .md document.
	FileTypeMarkdown FileType = 1
	// FileTypeAhtml is an .ahtml document.
	FileTypeAhtml FileType = 2
	// FileTypeUnknown marks files the explorer does not show.
	FileTypeUnknown FileType = -1
)

// FileTypeOf classifies a file name by its extension.
func FileTypeOf(name string) FileType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md":
		return FileTypeMarkdown
	case ".ahtml":
		return FileTypeAhtml
	default:
		return FileTypeUnknown
	}
}

// FileTree is one node of the explorer tree.
type FileTree struct {
	Type FileType `json:"type_"`
	Name string   `json:"name"`
	Path string   `json:"path"`

	// Updated is the modification time in Unix microseconds.
	Updated int64 `json:"updated"`

	// Children is nil for documents and non-nil for directories.
	Children []FileTree `json:"children"`
}

// DocFile is a document opened in the editor.
type DocFile struct {
	Type    FileType `json:"type_"`
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Updated int64    `json:"updated"`
	Content string   `json:"content"`

	// Changed is owned by the editor: it marks unsaved edits and is always
	// false when the file comes from disk.
	Changed bool `json:"changed"`
}
