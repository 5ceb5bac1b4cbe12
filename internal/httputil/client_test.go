package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetValidatesURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"plain HTTP", "http://vidsrc.cc/v2/embed/movie/414906"},
		{"javascript scheme", "javascript:alert(1)"},
		{"no host", "https://"},
	}

	client := NewClient()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Get(client, tt.url); err == nil {
				t.Errorf("Get(%q) = nil error, want rejection before the request", tt.url)
			}
		})
	}
}

func TestGetSendsBrowserHeaders(t *testing.T) {
	var gotUA, gotAccept string
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
	}))
	defer ts.Close()

	resp, err := Get(ts.Client(), ts.URL)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	resp.Body.Close()

	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Errorf("User-Agent = %q, want a browser-like agent", gotUA)
	}
	if gotAccept == "" {
		t.Error("Accept header not set")
	}
}
