package lesson

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anirudh/studyloop/internal/content"
	"github.com/anirudh/studyloop/internal/router"
	"github.com/anirudh/studyloop/internal/screen"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/anirudh/studyloop/internal/ui/layout"
	"github.com/anirudh/studyloop/internal/video"
)

// seekStep is how far the arrow keys move the playhead.
const seekStep = 5 * time.Second

// lessonReadyMsg is sent when the lesson and its saved playback state
// have been loaded.
type lessonReadyMsg struct {
	Lesson   *content.Lesson
	Resume   *store.LessonState
	SnapData store.SnapshotData
	Err      error
}

// tickMsg drives playback while playing.
type tickMsg time.Time

// LessonScreen plays a chaptered lesson timeline.
type LessonScreen struct {
	source   content.Source
	events   store.EventRepo
	snaps    store.SnapshotRepo
	lessonID string

	lesson   *content.Lesson
	timeline *video.Timeline

	playing   bool
	cursor    int // table-of-contents selection
	showNotes bool
	errMsg    string

	// snapData is the last saved snapshot, so saving playback state here
	// keeps quiz difficulty and other lessons intact.
	snapData store.SnapshotData

	// completionSeen tracks which chapter-completed events have already
	// been appended.
	completionSeen map[string]bool
	finishedSeen   bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the given lesson id.
func New(source content.Source, events store.EventRepo, snaps store.SnapshotRepo, lessonID string) *LessonScreen {
	return &LessonScreen{
		source:         source,
		events:         events,
		snaps:          snaps,
		lessonID:       lessonID,
		completionSeen: make(map[string]bool),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return s.loadLesson()
}

func (s *LessonScreen) Title() string {
	if s.lesson != nil {
		return s.lesson.Title
	}
	return "Lesson"
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "←/→", Description: "Seek 5s"},
		{Key: "↑↓+Enter", Description: "Chapter"},
		{Key: "M", Description: "Next marker"},
	}
	if s.lesson != nil && len(s.lesson.Notes) > 0 {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Notes"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		return s.handleReady(msg)
	case tickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// loadLesson fetches the lesson and its resume state from the latest
// snapshot.
func (s *LessonScreen) loadLesson() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		lesson, err := s.source.Lesson(ctx, s.lessonID)
		if err != nil {
			return lessonReadyMsg{Err: err}
		}

		var resume *store.LessonState
		var snapData store.SnapshotData
		if s.snaps != nil {
			if snap, err := s.snaps.Latest(ctx); err == nil && snap != nil {
				snapData = snap.Data
				if state, ok := snapData.Lessons[lesson.ID]; ok {
					resume = &state
				}
			}
		}

		return lessonReadyMsg{Lesson: lesson, Resume: resume, SnapData: snapData}
	}
}

func (s *LessonScreen) handleReady(msg lessonReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	tl, err := msg.Lesson.Timeline()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.lesson = msg.Lesson
	s.timeline = tl
	s.snapData = msg.SnapData

	if msg.Resume != nil {
		tl.Restore(msg.Resume.PositionSecs, msg.Resume.WatchedSecs, msg.Resume.CompletedChapters)
		for _, id := range msg.Resume.CompletedChapters {
			s.completionSeen[id] = true
		}
	}

	s.cursor = s.activeChapterIndex()
	return s, nil
}

func (s *LessonScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.timeline == nil || !s.playing {
		return s, nil
	}

	s.timeline.Advance(time.Second)
	s.recordMilestones()

	if s.timeline.CurrentTime() >= s.timeline.Duration() {
		s.playing = false
		return s, nil
	}
	return s, tickCmd()
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.timeline == nil {
		return s, nil
	}

	switch msg.String() {
	case "esc", "q":
		s.playing = false
		s.savePlaybackState()
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "space":
		s.playing = !s.playing
		if s.playing {
			return s, tickCmd()
		}
		s.savePlaybackState()
		return s, nil

	case "left":
		s.seekTo(s.timeline.CurrentTime() - seekStep.Seconds())
		return s, nil

	case "right":
		s.seekTo(s.timeline.CurrentTime() + seekStep.Seconds())
		return s, nil

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case "down", "j":
		if s.cursor < len(s.timeline.Chapters())-1 {
			s.cursor++
		}
		return s, nil

	case "enter":
		// Click-to-seek on the table-of-contents entry.
		chapters := s.timeline.Chapters()
		if s.cursor < len(chapters) && s.timeline.SeekToChapter(chapters[s.cursor].ID) {
			s.appendSeekEvent()
		}
		return s, nil

	case "m":
		s.seekToNextMarker()
		return s, nil

	case "n":
		s.showNotes = !s.showNotes
		return s, nil
	}

	return s, nil
}

// seekTo relocates the playhead and records the jump.
func (s *LessonScreen) seekTo(t float64) {
	s.timeline.Seek(t)
	s.appendSeekEvent()
	s.cursor = s.activeChapterIndex()
}

// seekToNextMarker jumps to the first marker past the playhead, wrapping
// to the first marker at the end.
func (s *LessonScreen) seekToNextMarker() {
	markers := s.timeline.Markers()
	if len(markers) == 0 {
		return
	}
	current := s.timeline.CurrentTime()
	for _, m := range markers {
		if m.Time > current {
			s.timeline.SeekToMarker(m.ID)
			s.appendSeekEvent()
			return
		}
	}
	s.timeline.SeekToMarker(markers[0].ID)
	s.appendSeekEvent()
}

// recordMilestones appends chapter-completed and finished events as
// playback crosses them.
func (s *LessonScreen) recordMilestones() {
	if s.events == nil {
		return
	}
	ctx := context.Background()

	for _, ch := range s.timeline.Chapters() {
		if s.timeline.Completed(ch.ID) && !s.completionSeen[ch.ID] {
			s.completionSeen[ch.ID] = true
			_ = s.events.AppendLessonEvent(ctx, store.LessonEventData{
				LessonID:   s.lesson.ID,
				ChapterID:  ch.ID,
				Action:     "chapter_completed",
				PositionMs: positionMs(s.timeline),
				WatchedPct: s.timeline.WatchProgress(ch.ID),
			})
		}
	}

	if !s.finishedSeen && s.timeline.CurrentTime() >= s.timeline.Duration() {
		s.finishedSeen = true
		_ = s.events.AppendLessonEvent(ctx, store.LessonEventData{
			LessonID:   s.lesson.ID,
			Action:     "finished",
			PositionMs: positionMs(s.timeline),
		})
		s.savePlaybackState()
	}
}

func (s *LessonScreen) appendSeekEvent() {
	if s.events == nil {
		return
	}
	data := store.LessonEventData{
		LessonID:   s.lesson.ID,
		Action:     "seek",
		PositionMs: positionMs(s.timeline),
	}
	if ch := s.timeline.ActiveChapter(); ch != nil {
		data.ChapterID = ch.ID
	}
	_ = s.events.AppendLessonEvent(context.Background(), data)
}

// savePlaybackState writes resume state into the snapshot without
// touching quiz difficulty or other lessons.
func (s *LessonScreen) savePlaybackState() {
	if s.snaps == nil || s.timeline == nil {
		return
	}

	data := s.snapData
	if data.Version == 0 {
		data.Version = 1
	}
	if data.Lessons == nil {
		data.Lessons = make(map[string]store.LessonState)
	}
	data.Lessons[s.lesson.ID] = store.LessonState{
		PositionSecs:      s.timeline.CurrentTime(),
		WatchedSecs:       s.timeline.WatchedSeconds(),
		CompletedChapters: s.timeline.CompletedChapters(),
	}

	ctx := context.Background()
	_ = s.snaps.Save(ctx, &store.Snapshot{Timestamp: time.Now(), Data: data})
	_ = s.snaps.Prune(ctx, 10)
	s.snapData = data
}

func (s *LessonScreen) activeChapterIndex() int {
	if s.timeline == nil {
		return 0
	}
	active := s.timeline.ActiveChapter()
	if active == nil {
		return 0
	}
	for i, ch := range s.timeline.Chapters() {
		if ch.ID == active.ID {
			return i
		}
	}
	return 0
}

func positionMs(tl *video.Timeline) int64 {
	return int64(tl.CurrentTime() * 1000)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
