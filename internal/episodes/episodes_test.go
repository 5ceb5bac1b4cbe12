package episodes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vodkaflix/internal/media"
)

// fakeTVMaze serves the two directory endpoints for a single show.
func fakeTVMaze(t *testing.T, showID int, episodesJSON string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/singlesearch/shows", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			http.Error(w, "missing query", http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `{"id": %d, "name": "Some Show"}`, showID)
	})
	mux.HandleFunc(fmt.Sprintf("/shows/%d/episodes", showID), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(episodesJSON))
	})
	return httptest.NewServer(mux)
}

func TestFetchEpisodesFiltersSeason(t *testing.T) {
	ts := fakeTVMaze(t, 82, `[
		{"season": 1, "number": 1, "name": "Chapter One"},
		{"season": 1, "number": 2, "name": "Chapter Two"},
		{"season": 2, "number": 1, "name": "MADMAX"},
		{"season": 2, "number": 2, "name": "Trick or Treat, Freak"},
		{"season": 3, "number": 1, "name": "Suzie, Do You Copy?"}
	]`)
	defer ts.Close()

	d := New(ts.URL)
	eps := d.FetchEpisodes("Stranger Things", 2)

	if len(eps) != 2 {
		t.Fatalf("got %d episodes, want 2", len(eps))
	}
	if eps[0].Number != 1 || eps[0].Title != "MADMAX" {
		t.Errorf("eps[0] = %+v, want E1 MADMAX", eps[0])
	}
	if eps[1].Number != 2 || eps[1].Title != "Trick or Treat, Freak" {
		t.Errorf("eps[1] = %+v, want E2 Trick or Treat, Freak", eps[1])
	}
}

func TestFetchEpisodesPreservesDirectoryNumbering(t *testing.T) {
	// Specials can leave gaps; the directory's native numbering is kept.
	ts := fakeTVMaze(t, 7, `[
		{"season": 1, "number": 2, "name": "Second"},
		{"season": 1, "number": 5, "name": "Fifth"}
	]`)
	defer ts.Close()

	eps := New(ts.URL).FetchEpisodes("Some Show", 1)
	if len(eps) != 2 || eps[0].Number != 2 || eps[1].Number != 5 {
		t.Errorf("episodes = %+v, want native numbering 2, 5", eps)
	}
}

func TestFetchEpisodesUnrepresentedSeasonFallsBack(t *testing.T) {
	ts := fakeTVMaze(t, 11, `[{"season": 1, "number": 1, "name": "Pilot"}]`)
	defer ts.Close()

	eps := New(ts.URL).FetchEpisodes("Some Show", 9)
	assertFallback(t, eps)
}

func TestFetchEpisodesLookupFailureFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	eps := New(ts.URL).FetchEpisodes("No Such Show", 1)
	assertFallback(t, eps)
}

func TestFetchEpisodesMalformedPayloadFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer ts.Close()

	eps := New(ts.URL).FetchEpisodes("Some Show", 1)
	assertFallback(t, eps)
}

func TestFetchEpisodesUnreachableDirectoryFallsBack(t *testing.T) {
	// Closed server: connection refused.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	eps := New(url).FetchEpisodes("Some Show", 1)
	assertFallback(t, eps)
}

func TestFallbackShape(t *testing.T) {
	assertFallback(t, Fallback())
}

func assertFallback(t *testing.T, eps []media.Episode) {
	t.Helper()
	if len(eps) != 24 {
		t.Fatalf("got %d episodes, want the 24-episode fallback", len(eps))
	}
	for i, ep := range eps {
		if ep.Number != i+1 {
			t.Errorf("eps[%d].Number = %d, want %d", i, ep.Number, i+1)
		}
		if want := fmt.Sprintf("Episode %d", i+1); ep.Title != want {
			t.Errorf("eps[%d].Title = %q, want %q", i, ep.Title, want)
		}
	}
}
