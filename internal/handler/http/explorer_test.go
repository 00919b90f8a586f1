package http

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-docs-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestOpenFolder(t *testing.T) {
	api := newTestAPI(t)
	writeTestFile(t, filepath.Join(api.root, "notes", "a.md"), "# a")
	writeTestFile(t, filepath.Join(api.root, "b.ahtml"), "<p>b</p>")
	writeTestFile(t, filepath.Join(api.root, "skip.txt"), "x")

	rr := api.do(http.MethodGet, "/api/explorer/tree?path=.", "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decodeResponse[models.Response[[]models.FileTree]](t, rr)
	assert.Equal(t, models.ResponseCodeSuccess, resp.Code)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, models.FileTypeDir, resp.Data[0].Type)
	assert.Equal(t, "notes", resp.Data[0].Name)
	require.Len(t, resp.Data[0].Children, 1)
	assert.Equal(t, models.FileTypeMarkdown, resp.Data[0].Children[0].Type)
	assert.Equal(t, models.FileTypeAhtml, resp.Data[1].Type)
}

func TestOpenFolder_Errors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "missing path", target: "/api/explorer/tree", wantStatus: http.StatusBadRequest},
		{name: "outside workspace", target: "/api/explorer/tree?path=../..", wantStatus: http.StatusForbidden},
		{name: "not found", target: "/api/explorer/tree?path=absent", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := api.do(http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeResponse[models.Response[[]models.FileTree]](t, rr)
			assert.Equal(t, models.ResponseCodeFailure, resp.Code)
			assert.NotEmpty(t, resp.Msg)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestReadAndWriteFile(t *testing.T) {
	api := newTestAPI(t)
	path := filepath.Join(api.root, "doc.md")
	writeTestFile(t, path, "old")

	rr := api.do(http.MethodPut, "/api/explorer/file", jsonBody(t, models.WriteFileRequest{Path: "doc.md", Content: "new"}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	written := decodeResponse[models.Response[models.DocFile]](t, rr)
	assert.Equal(t, "new", written.Data.Content)
	assert.False(t, written.Data.Changed)

	rr = api.do(http.MethodGet, "/api/explorer/file?path=doc.md", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	read := decodeResponse[models.Response[models.DocFile]](t, rr)
	assert.Equal(t, "new", read.Data.Content)
	assert.Equal(t, "doc.md", read.Data.Name)
	assert.Equal(t, path, read.Data.Path)
	assert.Equal(t, models.FileTypeMarkdown, read.Data.Type)
}

func TestWriteFile_MissingFile(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodPut, "/api/explorer/file", jsonBody(t, models.WriteFileRequest{Path: "nope.md", Content: "x"}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	_, err := os.Stat(filepath.Join(api.root, "nope.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadFiles_SkipsMissing(t *testing.T) {
	api := newTestAPI(t)
	writeTestFile(t, filepath.Join(api.root, "a.md"), "a")

	rr := api.do(http.MethodPost, "/api/explorer/files", `{"paths":["a.md","missing.md"]}`)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decodeResponse[models.Response[[]models.DocFile]](t, rr)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "a", resp.Data[0].Content)
}

func TestCreateRenameDeleteEntry(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodPost, "/api/explorer/entries", jsonBody(t, models.CreateEntryRequest{Path: ".", Name: "draft.md"}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	created := decodeResponse[models.Response[models.DocFile]](t, rr)
	assert.Equal(t, filepath.Join(api.root, "draft.md"), created.Data.Path)

	rr = api.do(http.MethodPost, "/api/explorer/entries", jsonBody(t, models.CreateEntryRequest{Path: ".", Name: "draft.md"}))
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = api.do(http.MethodPost, "/api/explorer/rename", jsonBody(t, models.RenameRequest{Path: "draft.md", Name: "final.md"}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	renamed := decodeResponse[models.Response[string]](t, rr)
	assert.Equal(t, filepath.Join(api.root, "final.md"), renamed.Data)

	rr = api.do(http.MethodDelete, "/api/explorer/entries", jsonBody(t, models.DeleteEntryRequest{Path: "final.md"}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	deleted := decodeResponse[models.Response[bool]](t, rr)
	assert.True(t, deleted.Data)

	_, err := os.Stat(filepath.Join(api.root, "final.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestExplorerEntries_BadRequests(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "create without name", method: http.MethodPost, target: "/api/explorer/entries", body: `{"path":"."}`},
		{name: "create without path", method: http.MethodPost, target: "/api/explorer/entries", body: `{"name":"a.md"}`},
		{name: "rename without name", method: http.MethodPost, target: "/api/explorer/rename", body: `{"path":"a.md"}`},
		{name: "delete unknown field", method: http.MethodDelete, target: "/api/explorer/entries", body: `{"path":"a.md","force":true}`},
		{name: "write invalid json", method: http.MethodPut, target: "/api/explorer/file", body: `{`},
		{name: "read many empty body", method: http.MethodPost, target: "/api/explorer/files", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := api.do(tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decodeResponse[models.Response[json.RawMessage]](t, rr)
			assert.Equal(t, models.ResponseCodeFailure, resp.Code)
		})
	}
}

func TestWatchFolder(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodPost, "/api/explorer/watch", `{"path":"notes"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	status := decodeResponse[models.Response[models.WatchStatus]](t, rr)
	assert.Equal(t, models.WatchStatus{Folder: "notes", Active: true}, status.Data)

	rr = api.do(http.MethodDelete, "/api/explorer/watch", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	status = decodeResponse[models.Response[models.WatchStatus]](t, rr)
	assert.Equal(t, models.WatchStatus{}, status.Data)
	assert.Empty(t, api.watcher.Folder())
}

func TestWatchFolder_WatcherError(t *testing.T) {
	api := newTestAPI(t)
	api.watcher.err = assert.AnError

	rr := api.do(http.MethodPost, "/api/explorer/watch", `{"path":"notes"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeResponse[models.Response[models.WatchStatus]](t, rr)
	assert.Equal(t, models.ResponseCodeFailure, resp.Code)
}
