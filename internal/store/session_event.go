package store

import (
	"context"
	"fmt"

	"github.com/anirudh/studyloop/ent"
	"github.com/anirudh/studyloop/ent/answerevent"
	"github.com/anirudh/studyloop/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionCount(data.QuestionCount).
		SetAnswered(data.Answered).
		SetCorrect(data.Correct).
		SetTimedOut(data.TimedOut).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetDurationSecs(data.DurationSecs).
		SetFinalLevel(data.FinalLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetPrompt(data.Prompt).
		SetCorrectAnswer(data.CorrectAnswer).
		SetGivenAnswer(data.GivenAnswer).
		SetCorrect(data.Correct).
		SetTimedOut(data.TimedOut).
		SetFlagged(data.Flagged).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummary, len(events))
	for i, e := range events {
		out[i] = SessionSummary{
			SessionID:    e.SessionID,
			Timestamp:    e.Timestamp,
			Answered:     e.Answered,
			Correct:      e.Correct,
			TimedOut:     e.TimedOut,
			Score:        e.Score,
			MaxScore:     e.MaxScore,
			DurationSecs: e.DurationSecs,
			FinalLevel:   e.FinalLevel,
		}
	}
	return out, nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context) ([]TopicStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldTopic)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byTopic := make(map[string]*TopicStats)
	var order []string
	for _, e := range events {
		st, ok := byTopic[e.Topic]
		if !ok {
			st = &TopicStats{Topic: e.Topic}
			byTopic[e.Topic] = st
			order = append(order, e.Topic)
		}
		st.Total++
		if e.Correct {
			st.Correct++
		}
	}

	out := make([]TopicStats, 0, len(order))
	for _, topic := range order {
		out = append(out, *byTopic[topic])
	}
	return out, nil
}
