package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPracticeEvent(ctx context.Context, data PracticeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetTopic(data.Topic).
		SetCorrect(data.Correct).
		SetHintUsed(data.HintUsed).
		SetSolutionShown(data.SolutionShown).
		SetAttempts(data.Attempts).
		SetTimeMs(data.TimeMs).
		SetLoadLevel(data.LoadLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice event: %w", err)
	}
	return nil
}
