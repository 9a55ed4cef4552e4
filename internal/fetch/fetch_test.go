package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/paperchunk/internal/appconfig"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://arxiv.org/abs/2301.12345", "https://arxiv.org/pdf/2301.12345.pdf"},
		{"https://arxiv.org/abs/2301.12345v2", "https://arxiv.org/pdf/2301.12345v2.pdf"},
		{"https://arxiv.org/pdf/2301.12345", "https://arxiv.org/pdf/2301.12345.pdf"},
		{"https://openreview.net/pdf?id=aBcD123", "https://openreview.net/pdf?id=aBcD123"},
		{"https://example.com/paper.pdf", "https://example.com/paper.pdf"},
		{"  https://arxiv.org/abs/2301.12345  ", "https://arxiv.org/pdf/2301.12345.pdf"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeURL(tc.in), "input %q", tc.in)
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://arxiv.org/abs/2301.12345", "arxiv_2301.12345.pdf"},
		{"https://arxiv.org/pdf/2301.12345v3", "arxiv_2301.12345v3.pdf"},
		{"https://openreview.net/pdf?id=aBcD123", "openreview_aBcD123.pdf"},
		{"https://example.com/files/paper.pdf", "paper.pdf"},
		{"https://example.com/files/report", "report.pdf"},
		{"https://example.com/download?file=x", "download.pdf"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FilenameFromURL(tc.in), "input %q", tc.in)
	}
}

func TestDownloadSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("%PDF-1.5 fake body"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	out := filepath.Join(dir, "paper.pdf")

	path, err := Download(context.Background(), srv.URL+"/paper.pdf", out, appconfig.Config{})
	require.NoError(t, err)
	assert.Equal(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.5 fake body", string(data))
}

func TestDownloadIntoDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.5"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, err := Download(context.Background(), srv.URL+"/files/study.pdf", dir, appconfig.Config{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "study.pdf"), path)
}

func TestDownloadRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("%PDF-1.5"))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "paper.pdf")
	_, err := Download(context.Background(), srv.URL+"/paper.pdf", out, appconfig.Config{FetchRetries: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDownloadNotFoundIsTerminal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "paper.pdf")
	_, err := Download(context.Background(), srv.URL+"/paper.pdf", out, appconfig.Config{FetchRetries: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "404 must not be retried")
}

func TestDownloadForbiddenIsTerminal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "paper.pdf")
	_, err := Download(context.Background(), srv.URL+"/paper.pdf", out, appconfig.Config{FetchRetries: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDownloadRejectsNonPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not a paper</html>"))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "paper.pdf")
	_, err := Download(context.Background(), srv.URL+"/paper.pdf", out, appconfig.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a PDF")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "rejected payloads must not be written")
}
