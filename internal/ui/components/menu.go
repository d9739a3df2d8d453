package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/studyloop/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. Action runs on enter;
// disabled entries render dimmed and are skipped by the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical cursor-driven menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if i := m.seek(0, 1); i >= 0 {
		m.Selected = i
	}
	return m
}

// seek walks from index i in direction dir to the nearest enabled item,
// returning -1 when none exists that way.
func (m Menu) seek(i, dir int) int {
	for ; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if i := m.seek(m.Selected-1, -1); i >= 0 {
			m.Selected = i
		}
	case "down", "j":
		if i := m.seek(m.Selected+1, 1); i >= 0 {
			m.Selected = i
		}
	case "enter":
		if m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
