package store

import (
	"context"
	"time"

	"github.com/anirudh/studyloop/ent"
)

// SessionEventData is one quiz session lifecycle event.
type SessionEventData struct {
	SessionID     string
	Action        string // "start" or "end"
	QuestionCount int
	Answered      int
	Correct       int
	TimedOut      int
	Score         int
	MaxScore      int
	DurationSecs  int
	FinalLevel    string
}

// AnswerEventData is one answer within a quiz session.
type AnswerEventData struct {
	SessionID     string
	QuestionID    string
	QuestionType  string
	Topic         string
	Difficulty    string
	Prompt        string
	CorrectAnswer string
	GivenAnswer   string
	Correct       bool
	TimedOut      bool
	Flagged       bool
	TimeMs        int
}

// PracticeEventData is one question resolved during a timed practice run.
type PracticeEventData struct {
	SessionID     string
	QuestionID    string
	Topic         string
	Correct       bool
	HintUsed      bool
	SolutionShown bool
	Attempts      int
	TimeMs        int
	LoadLevel     string
}

// LessonEventData is one lesson playback milestone.
type LessonEventData struct {
	LessonID   string
	ChapterID  string
	Action     string // "chapter_completed", "seek", or "finished"
	PositionMs int64
	WatchedPct float64
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummary is a finished quiz session as read back for stats.
type SessionSummary struct {
	SessionID    string
	Timestamp    time.Time
	Answered     int
	Correct      int
	TimedOut     int
	Score        int
	MaxScore     int
	DurationSecs int
	FinalLevel   string
}

// TopicStats aggregates answer events per topic.
type TopicStats struct {
	Topic   string
	Total   int
	Correct int
}

// LLMUsage aggregates request counts and token totals.
type LLMUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate-read access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendPracticeEvent(ctx context.Context, data PracticeEventData) error
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns the most recent finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// TopicAccuracy aggregates answer events per topic.
	TopicAccuracy(ctx context.Context) ([]TopicStats, error)

	// LLMTotals aggregates LLM request events.
	LLMTotals(ctx context.Context) (LLMUsage, error)
}

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// LessonState is per-lesson resume state carried in snapshots.
type LessonState struct {
	PositionSecs      float64            `json:"position_secs"`
	WatchedSecs       map[string]float64 `json:"watched_secs"`
	CompletedChapters []string           `json:"completed_chapters"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version           int                    `json:"version"`
	DifficultyLevel   string                 `json:"difficulty_level"`
	DifficultyHistory []bool                 `json:"difficulty_history"`
	Lessons           map[string]LessonState `json:"lessons"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
