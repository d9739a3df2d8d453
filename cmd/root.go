package cmd

import (
	"github.com/anirudh/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyloop",
	Short: "Terminal study companion",
	Long:  "Studyloop — adaptive quizzes, chaptered video lessons, and timed practice in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYLOOP_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Directory of JSON course files (overrides STUDYLOOP_CONTENT env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
