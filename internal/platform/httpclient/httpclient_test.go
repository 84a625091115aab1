package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_MergesHeadersAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "k" || r.Header.Get("X-Req") != "1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.Headers = map[string]string{"X-Api-Key": "k"}

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "ping", map[string]string{"X-Req": "1"}, nil, &out); err != nil {
		t.Fatalf("do json: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected decoded body")
	}
}

func TestDoJSON_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	defer srv.Close()

	err := New(time.Second).DoJSON(context.Background(), http.MethodPost, srv.URL, nil, map[string]string{"a": "b"}, nil)

	var he *HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusServiceUnavailable || !he.Temporary() || he.Body != "down" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestNewWithBaseURL_RejectsNonHTTP(t *testing.T) {
	if _, err := NewWithBaseURL("ftp://x", time.Second); err == nil {
		t.Fatalf("expected error for ftp base url")
	}
	if _, err := New(time.Second).resolveURL("/rel"); err == nil {
		t.Fatalf("expected error for relative path without base")
	}
}
