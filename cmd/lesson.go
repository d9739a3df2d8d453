package cmd

import (
	"fmt"

	"github.com/anirudh/studyloop/internal/app"
	"github.com/anirudh/studyloop/internal/content"
	lessonscreen "github.com/anirudh/studyloop/internal/screens/lesson"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson [id]",
	Short: "Play a chaptered lesson",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		if id == "" {
			id, err = pickLesson(cmd, source)
			if err != nil {
				return err
			}
		}

		return app.Run(lessonscreen.New(source, st.EventRepo(), st.SnapshotRepo(), id))
	},
}

// pickLesson chooses a lesson when none was named: the first local course
// file, or a generated lesson on the requested topic.
func pickLesson(cmd *cobra.Command, source content.Source) (string, error) {
	if fs, ok := source.(*content.FileSource); ok {
		ids, err := fs.ListLessons()
		if err != nil {
			return "", fmt.Errorf("list lessons: %w", err)
		}
		if len(ids) == 0 {
			return "", fmt.Errorf("no lessons found in content directory")
		}
		return ids[0], nil
	}
	topic, _ := cmd.Flags().GetString("topic")
	return topic, nil
}

func init() {
	lessonCmd.Flags().StringP("topic", "t", defaultTopic, "Topic to generate a lesson for when no id is given")
}
