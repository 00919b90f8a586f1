// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- check method ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/config", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Patch("/api/config", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusAccepted) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		want   int
	}{
		{method: http.MethodGet, want: http.StatusOK},
		{method: http.MethodPatch, want: http.StatusAccepted},
		{method: http.MethodPost, want: http.StatusNotFound},
		{method: http.MethodDelete, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, "/api/config", nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// ---- gzip ----

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"theme":"dark"}`)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"theme":"dark"}`, gunzip(t, rr.Body.Bytes()))
}

func TestWithGZip_PlainWithoutAcceptEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "plain")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZip_NoContentIsNotEncoded(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		_ = r.Body.Close()
	}))

	var body bytes.Buffer
	zw := gzip.NewWriter(&body)
	_, _ = zw.Write([]byte(`{"theme":"light"}`))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/config", &body)
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"theme":"light"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPatch, "/api/config", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

// ---- trace id and logging ----

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})

	var ctxLogger *logger.Logger
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rr.Header().Get(traceIDHeader)
	assert.Len(t, generated, 36)
	require.NotNil(t, ctxLogger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "abc", rr.Header().Get(traceIDHeader))
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "done")
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/explorer/entries", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{
		`"trace_id":"trace-1"`,
		`"method":"POST"`,
		`"uri":"/api/explorer/entries"`,
		`"status":201`,
		`"size":4`,
		`"duration":`,
	} {
		assert.Contains(t, line, want)
	}
}

// ---- response writer ----

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abcde", rr.Body.String())
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _, err := w.Hijack()

	assert.Error(t, err)
	assert.False(t, w.wroteHeader)
}
