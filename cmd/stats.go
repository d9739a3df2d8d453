package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anirudh/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show past sessions and per-topic accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		sessions, err := st.EventRepo().RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet. Run `studyloop quiz` to get started.")
			return nil
		}

		fmt.Println("Recent Sessions")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-19s  %8s  %7s  %7s  %9s  %8s  %s\n",
			"When", "Answered", "Correct", "Timeout", "Score", "Time", "Level")
		fmt.Println(strings.Repeat("─", 78))
		for _, s := range sessions {
			fmt.Printf("%-19s  %8d  %7d  %7d  %4d/%-4d  %8s  %s\n",
				s.Timestamp.Local().Format("2006-01-02 15:04:05"),
				s.Answered,
				s.Correct,
				s.TimedOut,
				s.Score, s.MaxScore,
				(time.Duration(s.DurationSecs) * time.Second).String(),
				s.FinalLevel,
			)
		}

		topics, err := st.EventRepo().TopicAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query topics: %w", err)
		}
		if len(topics) > 0 {
			fmt.Println()
			fmt.Println("Accuracy by Topic")
			fmt.Println(strings.Repeat("─", 52))
			fmt.Printf("%-28s  %8s  %s\n", "Topic", "Answered", "Accuracy")
			fmt.Println(strings.Repeat("─", 52))
			for _, t := range topics {
				pct := 0.0
				if t.Total > 0 {
					pct = float64(t.Correct) / float64(t.Total) * 100
				}
				fmt.Printf("%-28s  %8d  %7.0f%%\n", truncate(t.Topic, 28), t.Total, pct)
			}
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of sessions to show")
}
