package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avlasov/go-notes-keeper/internal/adapter"
	"github.com/avlasov/go-notes-keeper/internal/service"
	"github.com/avlasov/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusTitle
	focusBody
)

const (
	sidebarTitleWidth = 24
	statusClearAfter  = 2 * time.Second
)

// mainLoopModel drives the notes screen: a sidebar with the searchable note
// list on the left and the editor with its autosave status line on the right.
//
// Every keystroke in the editor goes through the autosave scheduler; save
// outcomes come back as saveResultMsg via a long-running Results-channel
// reader command that re-arms itself after each message.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	notes   []models.Note
	idx     int
	loading bool
	status  string
	errMsg  string

	focus      focusArea
	search     textinput.Model
	titleInput textinput.Model
	bodyArea   textarea.Model

	// openID is the id of the note loaded into the editor; empty while a
	// brand new draft has not been created on the server yet.
	openID      string
	editorOpen  bool
	lastDraft   models.NoteDraft
	savedNotice bool

	confirmDelete bool

	logout         bool
	sessionExpired bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Width = sidebarTitleWidth

	title := textinput.New()
	title.Placeholder = "Untitled Note"
	title.CharLimit = 256
	title.Width = 48

	body := textarea.New()
	body.Placeholder = "Start typing..."
	body.SetWidth(52)
	body.SetHeight(14)
	body.CharLimit = 0

	return mainLoopModel{
		ctx:        ctx,
		services:   services,
		session:    session,
		loading:    true,
		search:     search,
		titleInput: title,
		bodyArea:   body,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.cmdWaitForSave())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if m.failAuth(msg.err) {
				return m, tea.Quit
			}
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		m.clampIdx()
		return m, nil

	case saveResultMsg:
		// the channel reader is re-armed on every result
		if msg.Err != nil {
			if m.failAuth(msg.Err) {
				return m, tea.Quit
			}
			m.errMsg = humanizeServerError(msg.Err)
			return m, m.cmdWaitForSave()
		}

		m.errMsg = ""
		if msg.Created && m.openID == "" {
			m.openID = msg.Note.ID
		}
		m.upsertNote(msg.Note)
		m.savedNotice = true
		return m, tea.Batch(m.cmdWaitForSave(), m.cmdClearStatus())

	case clearStatusMsg:
		m.savedNotice = false
		m.status = ""
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			if m.failAuth(msg.err) {
				return m, tea.Quit
			}
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.removeNote(msg.noteID)
		if m.openID == msg.noteID {
			m.closeEditor()
		}
		m.errMsg = ""
		m.status = "Note deleted"
		return m, m.cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, m.cmdClearStatus()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		m.services.Autosave.Flush()
		return m, tea.Quit
	}

	if m.confirmDelete {
		return m.updateConfirmDelete(keyMsg)
	}

	switch m.focus {
	case focusList:
		return m.updateList(keyMsg)
	case focusSearch:
		return m.updateSearch(keyMsg)
	default:
		return m.updateEditor(keyMsg)
	}
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		m.services.Autosave.Flush()
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.filtered())-1 {
			m.idx++
		}
	case "enter":
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, m.cmdClearStatus()
		}
		m.openNote(note)
	case "n":
		m.newNote()
	case "/":
		m.focus = focusSearch
		m.search.Focus()
	case "c":
		note, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, m.cmdClearStatus()
		}
		return m, m.cmdCopy(note.Document)
	case "ctrl+d":
		if _, ok := m.current(); !ok {
			m.status = "No notes"
			return m, m.cmdClearStatus()
		}
		m.confirmDelete = true
	case "tab":
		if m.editorOpen {
			m.focusEditor(focusBody)
		}
	case "l":
		m.services.Autosave.Flush()
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.focus = focusList
		m.clampIdx()
		return m, nil
	case "enter", "down":
		m.search.Blur()
		m.focus = focusList
		m.clampIdx()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	m.clampIdx()
	return m, cmd
}

func (m mainLoopModel) updateEditor(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.services.Autosave.Flush()
		m.blurEditor()
		m.focus = focusList
		return m, nil
	case "tab":
		if m.focus == focusTitle {
			m.focusEditor(focusBody)
		} else {
			m.focusEditor(focusTitle)
		}
		return m, nil
	case "ctrl+y":
		return m, m.cmdCopy(m.bodyArea.Value())
	case "enter":
		// enter in the title jumps into the body instead of inserting a newline
		if m.focus == focusTitle {
			m.focusEditor(focusBody)
			return m, nil
		}
	}

	return m.updateFocused(keyMsg)
}

// updateFocused forwards a message to the focused editor widget and pushes the
// resulting draft into the autosave scheduler when the content changed.
func (m mainLoopModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusBody:
		m.bodyArea, cmd = m.bodyArea.Update(msg)
	default:
		return m, nil
	}

	draft := models.NoteDraft{
		NoteID:   m.openID,
		Title:    m.titleInput.Value(),
		Document: m.bodyArea.Value(),
	}
	if draft != m.lastDraft {
		m.lastDraft = draft
		m.savedNotice = false
		m.services.Autosave.Edit(draft)
	}

	return m, cmd
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		m.confirmDelete = false
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(note.ID)
	case "n", "esc":
		m.confirmDelete = false
	}
	return m, nil
}

// ─────────────────────────────────────────────
// Editor state
// ─────────────────────────────────────────────

func (m *mainLoopModel) openNote(note models.Note) {
	// pending edits of the previous note are abandoned on switch
	m.services.Autosave.Discard()

	m.openID = note.ID
	m.editorOpen = true
	m.titleInput.SetValue(note.Title)
	m.bodyArea.SetValue(note.Document)
	m.lastDraft = models.NoteDraft{NoteID: note.ID, Title: note.Title, Document: note.Document}
	m.savedNotice = false
	m.focusEditor(focusBody)
}

func (m *mainLoopModel) newNote() {
	m.services.Autosave.Discard()

	m.openID = ""
	m.editorOpen = true
	m.titleInput.SetValue("")
	m.bodyArea.SetValue("")
	m.lastDraft = models.NoteDraft{}
	m.savedNotice = false
	m.focusEditor(focusTitle)
}

func (m *mainLoopModel) closeEditor() {
	m.services.Autosave.Discard()

	m.openID = ""
	m.editorOpen = false
	m.titleInput.SetValue("")
	m.bodyArea.SetValue("")
	m.lastDraft = models.NoteDraft{}
	m.blurEditor()
	m.focus = focusList
}

func (m *mainLoopModel) focusEditor(area focusArea) {
	m.focus = area
	if area == focusTitle {
		m.titleInput.Focus()
		m.bodyArea.Blur()
	} else {
		m.titleInput.Blur()
		m.bodyArea.Focus()
	}
}

func (m *mainLoopModel) blurEditor() {
	m.titleInput.Blur()
	m.bodyArea.Blur()
}

// ─────────────────────────────────────────────
// List state
// ─────────────────────────────────────────────

// filtered returns the notes matching the search query, newest first. The
// match is a case-insensitive substring check over title and body.
func (m mainLoopModel) filtered() []models.Note {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return m.notes
	}

	matched := make([]models.Note, 0, len(m.notes))
	for _, note := range m.notes {
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Document), query) {
			matched = append(matched, note)
		}
	}
	return matched
}

func (m mainLoopModel) current() (models.Note, bool) {
	visible := m.filtered()
	if m.idx < 0 || m.idx >= len(visible) {
		return models.Note{}, false
	}
	return visible[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if n := len(m.filtered()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *mainLoopModel) upsertNote(note models.Note) {
	replaced := false
	for i := range m.notes {
		if m.notes[i].ID == note.ID {
			m.notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		m.notes = append(m.notes, note)
	}

	sort.SliceStable(m.notes, func(i, j int) bool {
		return m.notes[i].UpdatedAt.After(m.notes[j].UpdatedAt)
	})
	m.clampIdx()
}

func (m *mainLoopModel) removeNote(noteID string) {
	for i := range m.notes {
		if m.notes[i].ID == noteID {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			break
		}
	}
	m.clampIdx()
}

// failAuth flags the session as expired when the server answered 401. The
// caller quits the program; the app layer falls back to the login flow.
func (m *mainLoopModel) failAuth(err error) bool {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return false
	}
	m.sessionExpired = true
	m.logout = true
	return true
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	notes := m.services.NotesService

	return func() tea.Msg {
		loaded, err := notes.ListNotes(ctx)
		return notesLoadedMsg{notes: loaded, err: err}
	}
}

func (m mainLoopModel) cmdWaitForSave() tea.Cmd {
	results := m.services.Autosave.Results()

	return func() tea.Msg {
		return saveResultMsg(<-results)
	}
}

func (m mainLoopModel) cmdDelete(noteID string) tea.Cmd {
	ctx := m.ctx
	notes := m.services.NotesService

	return func() tea.Msg {
		err := notes.DeleteNote(ctx, noteID)
		return noteDeletedMsg{noteID: noteID, err: err}
	}
}

func (m mainLoopModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ─────────────────────────────────────────────
// View
// ─────────────────────────────────────────────

func (m mainLoopModel) View() string {
	if m.confirmDelete {
		note, _ := m.current()
		content := "Delete \"" + fitText(displayTitle(note), 32) + "\"?\n\n"
		content += "y: yes    n: no"
		return overlayBoxStyle.Render(content)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), "   ", m.viewEditor())

	var b strings.Builder
	b.WriteString(titleStyle.Render("NOTES"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(m.session.Email))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	if !m.editorOpen {
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render("Error: " + m.errMsg))
			b.WriteString("\n")
		} else if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
	}
	b.WriteString(helpStyle.Render(m.hotKeys()))

	return b.String()
}

func (m mainLoopModel) viewSidebar() string {
	var b strings.Builder

	b.WriteString("Search [")
	b.WriteString(m.search.View())
	b.WriteString("]\n")
	b.WriteString(strings.Repeat("─", sidebarTitleWidth+9))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading notes...\n")
		return b.String()
	}

	visible := m.filtered()
	if len(visible) == 0 {
		if strings.TrimSpace(m.search.Value()) != "" {
			b.WriteString("No matches\n")
		} else {
			b.WriteString("No notes yet\n")
		}
		return b.String()
	}

	for i, note := range visible {
		cursor := "  "
		line := fitText(displayTitle(note), sidebarTitleWidth)
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(fitText(firstLine(note.Document), sidebarTitleWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m mainLoopModel) viewEditor() string {
	if !m.editorOpen {
		return "Select a note with enter\nor press n to start a new one."
	}

	var b strings.Builder
	b.WriteString("Title [")
	b.WriteString(m.titleInput.View())
	b.WriteString("]\n\n")
	b.WriteString(m.bodyArea.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewStatusLine())

	return b.String()
}

// viewStatusLine renders the autosave state plus the word and character
// counters of the open note.
func (m mainLoopModel) viewStatusLine() string {
	text := m.bodyArea.Value()
	counts := fmt.Sprintf("%d words │ %d chars", len(strings.Fields(text)), utf8.RuneCountInString(text))

	status := m.status
	if status == "" {
		switch m.services.Autosave.State() {
		case service.BufferSaveScheduled:
			status = "Typing..."
		case service.BufferSaving:
			status = "Saving..."
		case service.BufferSaveError:
			status = errorStyle.Render("Error saving!")
		default:
			if m.savedNotice {
				status = "All changes saved"
			}
		}
	}
	if m.errMsg != "" {
		status = errorStyle.Render("Error: " + m.errMsg)
	}

	if status == "" {
		return helpStyle.Render(counts)
	}
	return status + "  " + helpStyle.Render(counts)
}

func (m mainLoopModel) hotKeys() string {
	switch m.focus {
	case focusSearch:
		return "enter: apply │ esc: clear"
	case focusTitle, focusBody:
		return "esc: back to list │ tab: title/body │ ctrl+y: copy"
	default:
		return "enter: open │ n: new │ /: search │ c: copy │ ctrl+d: delete │ l: logout │ q: quit"
	}
}

func displayTitle(note models.Note) string {
	if strings.TrimSpace(note.Title) == "" {
		return "Untitled Note"
	}
	return note.Title
}
