package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetChapterID(data.ChapterID).
		SetAction(data.Action).
		SetPositionMs(data.PositionMs).
		SetWatchedPct(data.WatchedPct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}
