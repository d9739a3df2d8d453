package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/anirudh/studyloop/internal/ui/theme"
)

// ChoiceList is a selector over a fixed option list. In multi mode space
// toggles options and several can be picked; otherwise the cursor row is
// the pick. After Reveal it recolors rows by correctness.
type ChoiceList struct {
	Options []string
	Multi   bool
	Cursor  int

	picked   map[int]bool
	revealed bool
	correct  map[int]bool
}

// NewChoiceList creates a choice list over options.
func NewChoiceList(options []string, multi bool) ChoiceList {
	return ChoiceList{
		Options: options,
		Multi:   multi,
		picked:  make(map[int]bool),
	}
}

// Update handles cursor movement and multi-select toggling.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space":
		if c.Multi {
			c.picked[c.Cursor] = !c.picked[c.Cursor]
		}
	}

	return c, nil
}

// Chosen returns the picked option values: the toggled set in multi mode,
// the cursor row otherwise.
func (c ChoiceList) Chosen() []string {
	if c.Multi {
		var out []string
		for i, opt := range c.Options {
			if c.picked[i] {
				out = append(out, opt)
			}
		}
		return out
	}
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return nil
	}
	return []string{c.Options[c.Cursor]}
}

// Reveal freezes the list and marks the given option values as correct.
func (c *ChoiceList) Reveal(correctValues []string) {
	c.revealed = true
	c.correct = make(map[int]bool)
	for i, opt := range c.Options {
		for _, v := range correctValues {
			if opt == v {
				c.correct[i] = true
			}
		}
	}
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	labels := "ABCDEFGH"

	for i, opt := range c.Options {
		label := "?"
		if i < len(labels) {
			label = string(labels[i])
		}

		marker := " "
		if c.Multi && c.picked[i] {
			marker = "x"
		}

		prefix := "  "
		if i == c.Cursor && !c.revealed {
			prefix = "▸ "
		}

		var line string
		if c.Multi {
			line = fmt.Sprintf("%s[%s] %s)  %s", prefix, marker, label, opt)
		} else {
			line = fmt.Sprintf("%s%s)  %s", prefix, label, opt)
		}

		switch {
		case c.revealed && c.correct[i]:
			s += theme.Correct.Render(line) + "\n"
		case c.revealed && (c.picked[i] || (!c.Multi && i == c.Cursor)):
			s += theme.Incorrect.Render(line) + "\n"
		case c.revealed:
			s += theme.Hint.Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
