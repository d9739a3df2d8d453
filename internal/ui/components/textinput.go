package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/studyloop/internal/ui/theme"
)

// TextInput wraps bubbles/textinput and appends a ✓/✗ verdict once the
// answer has been submitted.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	mark, color := "✗", theme.Error
	if t.valid {
		mark, color = "✓", theme.Success
	}
	return view + " " + lipgloss.NewStyle().Foreground(color).Render(mark)
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit freezes the verdict mark shown next to the input.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
