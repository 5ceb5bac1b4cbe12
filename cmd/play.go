package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vodkaflix/internal/catalog"
	"vodkaflix/internal/episodes"
	"vodkaflix/internal/httputil"
	"vodkaflix/internal/media"
	"vodkaflix/internal/player"
	"vodkaflix/internal/session"
)

var (
	flagSeason  int
	flagEpisode int
	flagNoOpen  bool
)

var playCmd = &cobra.Command{
	Use:   "play <title id or name>",
	Short: "Play a title directly, resuming from the saved position",
	Args:  cobra.MinimumNArgs(1),
	RunE:  playRun,
}

func init() {
	playCmd.Flags().IntVar(&flagSeason, "season", 0, "Season to play (series only)")
	playCmd.Flags().IntVar(&flagEpisode, "episode", 0, "Episode to play (series only)")
	playCmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "Resolve the target but do not launch the player")
}

// playRun opens a headless playback session: resolve the title, resume or
// apply the requested position, and hand the target to the player surface.
func playRun(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	title, err := resolveTitle(cat, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if err := httputil.ValidateID(title.ID); err != nil {
		return fmt.Errorf("invalid title ID: %w", err)
	}
	if err := validatePosition(title, flagSeason, flagEpisode); err != nil {
		return err
	}

	kv := openLibrary()
	defer kv.Close()
	store := openProgress(kv)

	sess := session.New(title, store)
	defer sess.Close()

	if title.Kind == media.Series {
		if flagSeason > 0 {
			sess.SelectSeason(flagSeason)
		}
		if flagEpisode > 0 {
			sess.SelectEpisode(flagEpisode)
		}
	}
	if cfg.Server != sess.Server() {
		sess.SelectServer(cfg.Server)
	}

	target := sess.EmbedURL()
	debugf("resolved target: %s", target)

	if flagJSON {
		out := map[string]interface{}{
			"id":     title.ID,
			"title":  title.Name,
			"type":   title.Kind.String(),
			"server": sess.Server(),
			"url":    target,
		}
		if title.Kind == media.Series {
			out["season"] = sess.Season()
			out["episode"] = sess.Episode()
			dir := episodes.New(cfg.EpisodeSource)
			eps := dir.FetchEpisodes(title.Name, sess.Season())
			sess.ApplyEpisodes(sess.Season(), eps)
			for _, ep := range eps {
				if ep.Number == sess.Episode() {
					out["episodeTitle"] = ep.Title
					break
				}
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if title.Kind == media.Series {
		fmt.Fprintf(os.Stderr, "Playing %s S%d:E%d on server %d\n", title.Name, sess.Season(), sess.Episode(), sess.Server())
	} else {
		fmt.Fprintf(os.Stderr, "Playing %s on server %d\n", title.Name, sess.Server())
	}
	fmt.Println(target)

	if flagNoOpen {
		return nil
	}

	p := player.New(cfg.Player)
	if !p.Available() {
		return fmt.Errorf("player %q not found", p.Name())
	}
	return p.Open(target)
}

// validatePosition checks the --season/--episode flags against the resolved
// title, so an impossible request errors instead of silently playing the
// resumed position. Zero means the flag was not given.
func validatePosition(t media.Title, season, episode int) error {
	if t.Kind != media.Series {
		if season != 0 || episode != 0 {
			return fmt.Errorf("%s is a movie; --season and --episode do not apply", t.Name)
		}
		return nil
	}
	if season < 0 {
		return fmt.Errorf("season must be at least 1, got %d", season)
	}
	if season > 0 && t.TotalSeasons > 0 && season > t.TotalSeasons {
		return fmt.Errorf("%s has %d seasons, got --season %d", t.Name, t.TotalSeasons, season)
	}
	if episode < 0 {
		return fmt.Errorf("episode must be at least 1, got %d", episode)
	}
	return nil
}

// resolveTitle accepts a catalog ID or a name query; a query must match
// exactly one title.
func resolveTitle(cat catalog.Provider, arg string) (media.Title, error) {
	if t, ok := cat.TitleByID(arg); ok {
		return t, nil
	}

	results := cat.Search(arg)
	switch len(results) {
	case 0:
		return media.Title{}, fmt.Errorf("no catalog match for %q", arg)
	case 1:
		return results[0], nil
	default:
		names := make([]string, len(results))
		for i, t := range results {
			names[i] = FormatDisplayTitle(t)
		}
		return media.Title{}, fmt.Errorf("ambiguous query %q, matches:\n  %s", arg, strings.Join(names, "\n  "))
	}
}
