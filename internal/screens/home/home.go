package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/studyloop/internal/content"
	lessonscreen "github.com/anirudh/studyloop/internal/screens/lesson"
	practicescreen "github.com/anirudh/studyloop/internal/screens/practice"
	quizscreen "github.com/anirudh/studyloop/internal/screens/quiz"
	"github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/router"
	"github.com/anirudh/studyloop/internal/screen"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/anirudh/studyloop/internal/ui/components"
	"github.com/anirudh/studyloop/internal/ui/theme"
)

// Options carries the dependencies and session defaults the home menu
// hands to the screens it launches.
type Options struct {
	Source    content.Source
	Events    store.EventRepo
	Snapshots store.SnapshotRepo

	Topic    string
	LessonID string
	Count    int
	Duration time.Duration
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu

	lastSession *store.SessionSummary
	level       string
	topics      []store.TopicStats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen, loading headline stats from the store.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{level: quiz.Medium.String()}

	ctx := context.Background()
	if opts.Events != nil {
		if recents, err := opts.Events.RecentSessions(ctx, 1); err == nil && len(recents) > 0 {
			h.lastSession = &recents[0]
		}
		if topics, err := opts.Events.TopicAccuracy(ctx); err == nil {
			h.topics = topics
		}
	}
	if opts.Snapshots != nil {
		if snap, _ := opts.Snapshots.Latest(ctx); snap != nil && snap.Data.DifficultyLevel != "" {
			h.level = snap.Data.DifficultyLevel
		}
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(opts.Source, opts.Events, opts.Snapshots, opts.Topic, opts.Count),
				}
			}
		}},
		{Label: "PLAY LESSON", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lessonscreen.New(opts.Source, opts.Events, opts.Snapshots, opts.LessonID),
				}
			}
		}},
		{Label: "TIMED PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practicescreen.New(opts.Source, opts.Events, opts.Topic, opts.Count, opts.Duration),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("studyloop") + "\n" +
		theme.Subtitle.Width(width).Render("adaptive quizzes · chaptered lessons · timed practice")
	sections = append(sections, title)

	// Headline stats.
	var stats []string
	stats = append(stats, fmt.Sprintf("Difficulty: %s", h.level))
	if h.lastSession != nil {
		stats = append(stats, fmt.Sprintf("Last quiz: %d/%d correct, %d/%d pts",
			h.lastSession.Correct, h.lastSession.Answered,
			h.lastSession.Score, h.lastSession.MaxScore))
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(strings.Join(stats, "      ")))

	// Menu, centered.
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	// Topic accuracy from the event log.
	if len(h.topics) > 0 {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topic accuracy") + "\n")
		shown := h.topics
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, t := range shown {
			pct := 0.0
			if t.Total > 0 {
				pct = float64(t.Correct) / float64(t.Total)
			}
			b.WriteString(fmt.Sprintf("%-20s %s\n", t.Topic,
				components.NewProgressBar("", pct, true, 34).View()))
		}
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String()))
	}

	return "\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
