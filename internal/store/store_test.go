package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "s1",
		Action:        "start",
		QuestionCount: 10,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:    "s1",
		Action:       "end",
		Answered:     9,
		Correct:      7,
		TimedOut:     1,
		Score:        70,
		MaxScore:     100,
		DurationSecs: 300,
		FinalLevel:   "hard",
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	sessions, err := repo.RecentSessions(ctx, 5)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 finished session, got %d", len(sessions))
	}
	got := sessions[0]
	if got.SessionID != "s1" || got.Correct != 7 || got.FinalLevel != "hard" {
		t.Errorf("unexpected summary: %+v", got)
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id,
			Action:    "end",
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	sessions, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].SessionID != "c" || sessions[1].SessionID != "b" {
		t.Errorf("wrong order: %q, %q", sessions[0].SessionID, sessions[1].SessionID)
	}
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionID: "q1", QuestionType: "multiple_choice", Topic: "fractions", Difficulty: "easy", Prompt: "p", Correct: true, TimeMs: 1000},
		{SessionID: "s1", QuestionID: "q2", QuestionType: "multiple_choice", Topic: "fractions", Difficulty: "easy", Prompt: "p", Correct: false, TimeMs: 1000},
		{SessionID: "s1", QuestionID: "q3", QuestionType: "true_false", Topic: "algebra", Difficulty: "medium", Prompt: "p", Correct: true, TimeMs: 1000},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %s: %v", a.QuestionID, err)
		}
	}

	stats, err := repo.TopicAccuracy(ctx)
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(stats))
	}

	byTopic := make(map[string]TopicStats)
	for _, st := range stats {
		byTopic[st.Topic] = st
	}
	if st := byTopic["fractions"]; st.Total != 2 || st.Correct != 1 {
		t.Errorf("fractions = %+v", st)
	}
	if st := byTopic["algebra"]; st.Total != 1 || st.Correct != 1 {
		t.Errorf("algebra = %+v", st)
	}
}

func TestPracticeAndLessonEventsAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendPracticeEvent(ctx, PracticeEventData{
		SessionID:  "p1",
		QuestionID: "q1",
		Correct:    true,
		Attempts:   2,
		TimeMs:     4500,
		LoadLevel:  "medium",
	})
	if err != nil {
		t.Fatalf("append practice event: %v", err)
	}

	err = repo.AppendLessonEvent(ctx, LessonEventData{
		LessonID:   "l1",
		ChapterID:  "c1",
		Action:     "chapter_completed",
		PositionMs: 95_000,
		WatchedPct: 97.5,
	})
	if err != nil {
		t.Fatalf("append lesson event: %v", err)
	}
}

func TestLLMTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "quiz-gen", InputTokens: 80, OutputTokens: 0, Success: false, ErrorMessage: "rate limited"},
	}
	for i, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	usage, err := repo.LLMTotals(ctx)
	if err != nil {
		t.Fatalf("llm totals: %v", err)
	}
	if usage.Requests != 2 || usage.Failures != 1 {
		t.Errorf("requests=%d failures=%d", usage.Requests, usage.Failures)
	}
	if usage.InputTokens != 180 || usage.OutputTokens != 50 {
		t.Errorf("tokens in=%d out=%d", usage.InputTokens, usage.OutputTokens)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:           1,
			DifficultyLevel:   "medium",
			DifficultyHistory: []bool{true, true, false},
			Lessons: map[string]LessonState{
				"l1": {
					PositionSecs:      120,
					WatchedSecs:       map[string]float64{"c1": 95},
					CompletedChapters: []string{"c1"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.DifficultyLevel != "medium" {
		t.Errorf("difficulty = %q, want medium", snap.Data.DifficultyLevel)
	}
	if len(snap.Data.DifficultyHistory) != 3 {
		t.Errorf("history len = %d, want 3", len(snap.Data.DifficultyHistory))
	}
	if got := snap.Data.Lessons["l1"].WatchedSecs["c1"]; got != 95 {
		t.Errorf("watched c1 = %v, want 95", got)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
