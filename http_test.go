package mdterm

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPRenderFetchesAndRenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# Remote\n\nfetched body\n"))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:     srv.URL,
		Writer:  &out,
		Width:   80,
		Theme:   DefaultTheme(),
		Options: []RenderOption{WithColor(false)},
	})
	if err != nil {
		t.Fatalf("http render: %v", err)
	}
	plain := out.String()
	if !strings.Contains(plain, "Remote") || !strings.Contains(plain, "fetched body") {
		t.Fatalf("unexpected output: %q", plain)
	}
}

func TestHTTPRenderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Writer: &out,
		Width:  80,
		Theme:  DefaultTheme(),
	})
	if err == nil {
		t.Fatalf("expected status error")
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected on failed fetch, got %q", out.String())
	}
}

func TestHTTPRenderRejectsBadRequests(t *testing.T) {
	var out bytes.Buffer
	if err := HTTPRender(context.Background(), HTTPRenderRequest{Writer: &out}); err == nil {
		t.Fatalf("expected error for missing URL")
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "http://example.com"}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    "ftp://example.com/readme.md",
		Writer: &out,
	}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}
