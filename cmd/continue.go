package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vodkaflix/internal/catalog"
	"vodkaflix/internal/media"
	"vodkaflix/internal/progress"
)

var flagRemove string

var continueCmd = &cobra.Command{
	Use:   "continue",
	Short: "List or edit Continue Watching",
	Args:  cobra.NoArgs,
	RunE:  continueRun,
}

func init() {
	continueCmd.Flags().StringVar(&flagRemove, "remove", "", "Remove a title ID from Continue Watching")
}

func continueRun(cmd *cobra.Command, args []string) error {
	kv := openLibrary()
	defer kv.Close()

	cat := catalog.New()
	store := progress.New(kv)

	if flagRemove != "" {
		store.Delete(flagRemove)
		fmt.Fprintf(os.Stderr, "Removed %s from Continue Watching\n", flagRemove)
		return nil
	}

	titles := store.ContinueWatching(cat)

	if flagJSON {
		out := make([]map[string]interface{}, 0, len(titles))
		for _, t := range titles {
			pos, _ := store.Get(t.ID)
			entry := map[string]interface{}{
				"id":          t.ID,
				"title":       t.Name,
				"type":        t.Kind.String(),
				"lastWatched": pos.LastWatched,
			}
			if t.Kind == media.Series {
				entry["season"] = pos.Season
				entry["episode"] = pos.Episode
			}
			out = append(out, entry)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(titles) == 0 {
		fmt.Println("Nothing in Continue Watching.")
		return nil
	}

	for _, t := range titles {
		pos, _ := store.Get(t.ID)
		when := time.UnixMilli(pos.LastWatched).Format("2006-01-02 15:04")
		if t.Kind == media.Series {
			fmt.Printf("%s S%02dE%02d (%s) id=%s\n", t.Name, pos.Season, pos.Episode, when, t.ID)
		} else {
			fmt.Printf("%s (%s) id=%s\n", t.Name, when, t.ID)
		}
	}
	return nil
}
