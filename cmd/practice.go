package cmd

import (
	"fmt"

	"github.com/anirudh/studyloop/internal/app"
	practicescreen "github.com/anirudh/studyloop/internal/screens/practice"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a timed practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		duration, _ := cmd.Flags().GetDuration("duration")

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

		return app.Run(practicescreen.New(source, st.EventRepo(), topic, count, duration))
	},
}

func init() {
	practiceCmd.Flags().StringP("topic", "t", defaultTopic, "Topic to practice")
	practiceCmd.Flags().IntP("count", "n", defaultCount, "Number of exercises")
	practiceCmd.Flags().DurationP("duration", "d", defaultDuration, "Session time limit")
}
