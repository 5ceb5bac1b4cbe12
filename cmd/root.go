// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vodkaflix/internal/catalog"
	"vodkaflix/internal/config"
	"vodkaflix/internal/progress"
	"vodkaflix/internal/storage"
	"vodkaflix/internal/ui"
	"vodkaflix/internal/userdata"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagServer int
	flagPlayer string
	flagJSON   bool
	flagDebug  bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vodkaflix",
	Short: "Browse a curated catalog and stream through embed servers",
	Long: `Vodkaflix is a terminal catalog browser for a curated set of movies and
shows. Browse categories, search, keep a list, resume where you left off,
and play titles through interchangeable third-party embed servers.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadConfig,
	RunE:              browseRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagServer, "server", "s", 0, "Default embed server (1-6)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Playback surface: browser | <command>")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output as JSON where supported")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagServer != 0 {
		cfg.Server = flagServer
	}
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[vodkaflix] ")
	} else {
		log.SetFlags(0)
	}

	return nil
}

// browseRun launches the interactive browsing shell.
func browseRun(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use the search/play/continue subcommands")
	}

	kv := openLibrary()
	defer kv.Close()

	cat := catalog.New()
	store := openProgress(kv)
	lists := userdata.New(kv)

	return ui.Run(cfg, cat, store, lists)
}

// openProgress builds the progress layer over the library. With history
// disabled it runs over a discarding store instead, so sessions never
// record a watch position; My List and likes are unaffected.
func openProgress(kv storage.KV) *progress.Store {
	if !cfg.History {
		return progress.New(storage.Discard{})
	}
	return progress.New(kv)
}

// openLibrary opens the on-disk library, degrading to an in-memory store if
// the database cannot be opened. Playback must never be blocked by a
// storage failure; progress for the run is simply not retained.
func openLibrary() storage.KV {
	path, err := config.LibraryPath()
	if err == nil {
		kv, err := storage.OpenSQLite(path)
		if err == nil {
			return kv
		}
		debugf("opening library %s failed: %v", path, err)
	}
	return storage.NewMemory()
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}
