package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/anirudh/studyloop/internal/app"
	"github.com/anirudh/studyloop/internal/content"
	"github.com/anirudh/studyloop/internal/llm"
	"github.com/anirudh/studyloop/internal/screens/home"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/spf13/cobra"
)

const (
	defaultTopic    = "general review"
	defaultCount    = 10
	defaultDuration = 10 * time.Minute
)

// runApp opens the store, builds the content source, and launches the TUI
// on the home menu.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	source, err := resolveSource(cmd, st)
	if err != nil {
		return err
	}

	return app.Run(home.New(home.Options{
		Source:    source,
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
		Topic:     defaultTopic,
		Count:     defaultCount,
		Duration:  defaultDuration,
	}))
}

// resolveSource picks the content source: a local course directory when
// --content or STUDYLOOP_CONTENT is set, otherwise the LLM-backed generator.
func resolveSource(cmd *cobra.Command, st *store.Store) (content.Source, error) {
	dir, _ := cmd.Flags().GetString("content")
	if dir == "" {
		dir = os.Getenv("STUDYLOOP_CONTENT")
	}
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("content directory: %w", err)
		}
		return content.NewFileSource(dir), nil
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Pass --content <dir> to use local course files instead.")
		return nil, fmt.Errorf("no content source available")
	}
	return content.NewGenerator(provider, content.DefaultGeneratorConfig()), nil
}
