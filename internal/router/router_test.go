package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/anirudh/studyloop/internal/screen"
)

type stubScreen struct {
	name     string
	initRuns int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRuns++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestPushAndPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}

	child := &stubScreen{name: "child"}
	r.Update(PushScreenMsg{Screen: child})

	if r.Depth() != 2 {
		t.Fatalf("Depth() after push = %d, want 2", r.Depth())
	}
	if r.Active() != child {
		t.Fatalf("Active() = %v, want child", r.Active().Title())
	}
	if child.initRuns != 1 {
		t.Errorf("child Init ran %d times, want 1", child.initRuns)
	}

	r.Update(PopScreenMsg{})
	if r.Active() != root {
		t.Fatalf("Active() after pop = %v, want root", r.Active().Title())
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != root {
		t.Fatal("root screen was popped")
	}
}

func TestReplaceSwapsTopScreen(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	first := &stubScreen{name: "first"}
	r.Update(PushScreenMsg{Screen: first})

	second := &stubScreen{name: "second"}
	r.Update(ReplaceScreenMsg{Screen: second})

	if r.Depth() != 2 {
		t.Fatalf("Depth() after replace = %d, want 2", r.Depth())
	}
	if r.Active() != second {
		t.Fatalf("Active() = %v, want second", r.Active().Title())
	}
	if second.initRuns != 1 {
		t.Errorf("replacement Init ran %d times, want 1", second.initRuns)
	}

	// Popping the replacement lands on root, not the replaced screen.
	r.Update(PopScreenMsg{})
	if r.Active() != root {
		t.Fatalf("Active() after pop = %v, want root", r.Active().Title())
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "child"}})

	if got := r.View(80, 24); got != "child" {
		t.Fatalf("View() = %q, want %q", got, "child")
	}
}
