// Package screen defines the contract every TUI screen satisfies. The
// router owns a stack of these; the app model frames the active one with
// the shared header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/anirudh/studyloop/internal/ui/layout"
)

// Screen is one full-terminal view. Update returns the screen to keep on
// the stack, which is usually the receiver.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders only the content region; the app adds header and
	// footer around it.
	View(width, height int) string

	// Title labels the header while this screen is active.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
