package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vodkaflix/internal/catalog"
	"vodkaflix/internal/media"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by title or genre",
	Args:  cobra.MinimumNArgs(1),
	RunE:  searchRun,
}

func searchRun(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cat := catalog.New()
	results := cat.Search(query)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(searchOutput(results))
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for _, t := range results {
		fmt.Println(FormatDisplayTitle(t))
	}
	return nil
}

func searchOutput(results []media.Title) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(results))
	for _, t := range results {
		entry := map[string]interface{}{
			"id":    t.ID,
			"title": t.Name,
			"type":  t.Kind.String(),
			"year":  t.Year,
		}
		if t.Kind == media.Series {
			entry["seasons"] = t.TotalSeasons
		}
		out = append(out, entry)
	}
	return out
}

// FormatDisplayTitle creates a one-line display string for a title.
func FormatDisplayTitle(t media.Title) string {
	if t.Kind == media.Series {
		return fmt.Sprintf("%s (%d) [TV, %d seasons] id=%s", t.Name, t.Year, t.TotalSeasons, t.ID)
	}
	return fmt.Sprintf("%s (%d) [Movie] id=%s", t.Name, t.Year, t.ID)
}
