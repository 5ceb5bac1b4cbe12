package embed

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProbeServedDocument(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div id="player"></div><script>play()</script></body></html>`))
	}))
	defer ts.Close()

	if err := Probe(ts.Client(), ts.URL); err != nil {
		t.Errorf("Probe() = %v, want nil for a served player document", err)
	}
}

func TestProbeErrorStatus(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	if err := Probe(ts.Client(), ts.URL); err == nil {
		t.Error("Probe() = nil, want error for a 404 target")
	}
}

func TestProbeEmptyDocument(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>   </body></html>`))
	}))
	defer ts.Close()

	if err := Probe(ts.Client(), ts.URL); err == nil {
		t.Error("Probe() = nil, want error for an empty document")
	}
}

func TestProbeRejectsNonHTTPS(t *testing.T) {
	if err := Probe(http.DefaultClient, "http://example.com/embed"); err == nil {
		t.Error("Probe() = nil, want error for a non-HTTPS target")
	}
}
