package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is the entry page of an unauthenticated client: a two-item
// menu choosing between login and registration.
type WelcomeModel struct {
	items  []string
	idx    int
	status string
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{
		items: []string{"Sign in", "Create an account"},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		if notice.Email != "" {
			m.status = "Account " + notice.Email + " created, you can sign in now"
		} else {
			m.status = "Account created, you can sign in now"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: "register"} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("NOTES", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate")
}
