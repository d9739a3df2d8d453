// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anirudh/studyloop/ent/answerevent"
	"github.com/anirudh/studyloop/ent/lessonevent"
	"github.com/anirudh/studyloop/ent/llmrequestevent"
	"github.com/anirudh/studyloop/ent/practiceevent"
	"github.com/anirudh/studyloop/ent/schema"
	"github.com/anirudh/studyloop/ent/sessionevent"
	"github.com/anirudh/studyloop/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[3].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[4].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[5].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[6].Descriptor()
	// answerevent.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	answerevent.DefaultCorrectAnswer = answereventDescCorrectAnswer.Default.(string)
	// answereventDescGivenAnswer is the schema descriptor for given_answer field.
	answereventDescGivenAnswer := answereventFields[7].Descriptor()
	// answerevent.DefaultGivenAnswer holds the default value on creation for the given_answer field.
	answerevent.DefaultGivenAnswer = answereventDescGivenAnswer.Default.(string)
	// answereventDescTimedOut is the schema descriptor for timed_out field.
	answereventDescTimedOut := answereventFields[9].Descriptor()
	// answerevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	answerevent.DefaultTimedOut = answereventDescTimedOut.Default.(bool)
	// answereventDescFlagged is the schema descriptor for flagged field.
	answereventDescFlagged := answereventFields[10].Descriptor()
	// answerevent.DefaultFlagged holds the default value on creation for the flagged field.
	answerevent.DefaultFlagged = answereventDescFlagged.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[0].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescChapterID is the schema descriptor for chapter_id field.
	lessoneventDescChapterID := lessoneventFields[1].Descriptor()
	// lessonevent.DefaultChapterID holds the default value on creation for the chapter_id field.
	lessonevent.DefaultChapterID = lessoneventDescChapterID.Default.(string)
	// lessoneventDescAction is the schema descriptor for action field.
	lessoneventDescAction := lessoneventFields[2].Descriptor()
	// lessonevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	lessonevent.ActionValidator = lessoneventDescAction.Validators[0].(func(string) error)
	// lessoneventDescPositionMs is the schema descriptor for position_ms field.
	lessoneventDescPositionMs := lessoneventFields[3].Descriptor()
	// lessonevent.DefaultPositionMs holds the default value on creation for the position_ms field.
	lessonevent.DefaultPositionMs = lessoneventDescPositionMs.Default.(int64)
	// lessoneventDescWatchedPct is the schema descriptor for watched_pct field.
	lessoneventDescWatchedPct := lessoneventFields[4].Descriptor()
	// lessonevent.DefaultWatchedPct holds the default value on creation for the watched_pct field.
	lessonevent.DefaultWatchedPct = lessoneventDescWatchedPct.Default.(float64)
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescSessionID is the schema descriptor for session_id field.
	practiceeventDescSessionID := practiceeventFields[0].Descriptor()
	// practiceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceevent.SessionIDValidator = practiceeventDescSessionID.Validators[0].(func(string) error)
	// practiceeventDescQuestionID is the schema descriptor for question_id field.
	practiceeventDescQuestionID := practiceeventFields[1].Descriptor()
	// practiceevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	practiceevent.QuestionIDValidator = practiceeventDescQuestionID.Validators[0].(func(string) error)
	// practiceeventDescTopic is the schema descriptor for topic field.
	practiceeventDescTopic := practiceeventFields[2].Descriptor()
	// practiceevent.DefaultTopic holds the default value on creation for the topic field.
	practiceevent.DefaultTopic = practiceeventDescTopic.Default.(string)
	// practiceeventDescHintUsed is the schema descriptor for hint_used field.
	practiceeventDescHintUsed := practiceeventFields[4].Descriptor()
	// practiceevent.DefaultHintUsed holds the default value on creation for the hint_used field.
	practiceevent.DefaultHintUsed = practiceeventDescHintUsed.Default.(bool)
	// practiceeventDescSolutionShown is the schema descriptor for solution_shown field.
	practiceeventDescSolutionShown := practiceeventFields[5].Descriptor()
	// practiceevent.DefaultSolutionShown holds the default value on creation for the solution_shown field.
	practiceevent.DefaultSolutionShown = practiceeventDescSolutionShown.Default.(bool)
	// practiceeventDescAttempts is the schema descriptor for attempts field.
	practiceeventDescAttempts := practiceeventFields[6].Descriptor()
	// practiceevent.DefaultAttempts holds the default value on creation for the attempts field.
	practiceevent.DefaultAttempts = practiceeventDescAttempts.Default.(int)
	// practiceeventDescLoadLevel is the schema descriptor for load_level field.
	practiceeventDescLoadLevel := practiceeventFields[8].Descriptor()
	// practiceevent.DefaultLoadLevel holds the default value on creation for the load_level field.
	practiceevent.DefaultLoadLevel = practiceeventDescLoadLevel.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescAnswered is the schema descriptor for answered field.
	sessioneventDescAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultAnswered holds the default value on creation for the answered field.
	sessionevent.DefaultAnswered = sessioneventDescAnswered.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescTimedOut is the schema descriptor for timed_out field.
	sessioneventDescTimedOut := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	sessionevent.DefaultTimedOut = sessioneventDescTimedOut.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescMaxScore is the schema descriptor for max_score field.
	sessioneventDescMaxScore := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultMaxScore holds the default value on creation for the max_score field.
	sessionevent.DefaultMaxScore = sessioneventDescMaxScore.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescFinalLevel is the schema descriptor for final_level field.
	sessioneventDescFinalLevel := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultFinalLevel holds the default value on creation for the final_level field.
	sessionevent.DefaultFinalLevel = sessioneventDescFinalLevel.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
