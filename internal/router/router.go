package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/anirudh/studyloop/internal/screen"
)

// PushScreenMsg asks the router to layer a new screen over the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to discard the top screen and return to the
// one beneath it.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen for another one, so that popping
// the new screen returns to where the replaced screen came from. Used for
// the quiz-to-summary handoff.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The top of the stack is the active screen;
// everything below it is preserved for when the user backs out.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with initial as its only screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push layers s on top of the stack and runs its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the active screen. The bottom screen can never be popped.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen and calls the replacement's Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the screen currently on top of the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update intercepts navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
