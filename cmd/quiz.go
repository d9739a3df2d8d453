package cmd

import (
	"fmt"

	"github.com/anirudh/studyloop/internal/app"
	quizscreen "github.com/anirudh/studyloop/internal/screens/quiz"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run an adaptive quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")

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

		return app.Run(quizscreen.New(source, st.EventRepo(), st.SnapshotRepo(), topic, count))
	},
}

func init() {
	quizCmd.Flags().StringP("topic", "t", defaultTopic, "Topic to quiz on")
	quizCmd.Flags().IntP("count", "n", defaultCount, "Number of questions")
}
