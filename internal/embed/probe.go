package embed

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vodkaflix/internal/httputil"
)

// Probe fetches a playback target and inspects the returned document,
// standing in for the load/error signal an embedded frame would emit. A nil
// return means the provider served a player document; an error means the
// target failed and the session should surface its failed state.
func Probe(client *http.Client, target string) error {
	resp, err := httputil.Get(client, target)
	if err != nil {
		return fmt.Errorf("fetching target: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("target returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parsing target document: %w", err)
	}

	// A serveable player document has a non-empty body: markup, scripts, or
	// at least an iframe shell. A blank page is a dead provider.
	body := doc.Find("body")
	if body.Length() == 0 {
		return fmt.Errorf("target document has no body")
	}
	if body.Children().Length() == 0 && strings.TrimSpace(body.Text()) == "" {
		return fmt.Errorf("target document is empty")
	}

	return nil
}
