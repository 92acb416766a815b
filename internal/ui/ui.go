package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tasklist/internal/config"
	"tasklist/internal/notify"
	"tasklist/internal/tasks"
	"tasklist/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// editRequestMsg opens the edit prompt seeded with the task's current text.
type editRequestMsg struct {
	ID   int64
	Text string
}

// editResponseMsg answers an editRequestMsg.
type editResponseMsg struct {
	ID        int64
	Text      string
	Cancelled bool
}

type Model struct {
	svc     *tasks.Service
	cfg     config.Config
	log     *zap.Logger
	keys    keyMap
	help    help.Model
	styles  Styles
	rows    []view.Row
	cursor  int
	mode    mode
	input   textinput.Model
	editing int64
	filter  view.Filter
	dark    bool
	notice  notify.Notifier
	errMsg  string
}

func New(svc *tasks.Service, cfg config.Config, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	filter, err := view.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		filter = view.All
	}

	ti := textinput.New()
	ti.Placeholder = "Add a new task"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		svc:    svc,
		cfg:    cfg,
		log:    log,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		input:  ti,
		mode:   modeList,
		filter: filter,
		dark:   cfg.DarkMode,
		styles: stylesFor(cfg.DarkMode),
		notice: notify.New(cfg.NotifyDelay()),
	}
	m.reload()
	return m
}

func Run(svc *tasks.Service, cfg config.Config, log *zap.Logger) error {
	program := tea.NewProgram(New(svc, cfg, log), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.notice.Update(msg) {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case editRequestMsg:
		return m.openEditPrompt(msg)
	case editResponseMsg:
		return m.applyEdit(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(msg)
	case modeEdit:
		return m.updateEditMode(msg)
	}
	return m.updateListMode(msg)
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		ev, err := m.svc.Add(m.input.Value())
		if err != nil {
			cmd := m.fail("add", err)
			return m, cmd
		}
		if !ev.Changed() {
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		cmd := m.applied(ev)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.editing
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, respond(editResponseMsg{ID: id, Cancelled: true})
	case key.Matches(msg, m.keys.Confirm):
		return m, respond(editResponseMsg{ID: id, Text: m.input.Value()})
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.rows))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.rows))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Placeholder = "Add a new task"
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		ev, err := m.svc.ToggleComplete(row.ID)
		if err != nil {
			cmd := m.fail("toggle", err)
			return m, cmd
		}
		cmd := m.applied(ev)
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		t, found, err := m.svc.Find(row.ID)
		if err != nil {
			cmd := m.fail("edit", err)
			return m, cmd
		}
		if !found {
			m.reload()
			return m, nil
		}
		return m, respond(editRequestMsg{ID: t.ID, Text: t.Text})
	case key.Matches(msg, m.keys.Delete):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		ev, err := m.svc.Delete(row.ID)
		if err != nil {
			cmd := m.fail("delete", err)
			return m, cmd
		}
		cmd := m.applied(ev)
		return m, cmd
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(view.All)
	case key.Matches(msg, m.keys.FilterCompleted):
		m.setFilter(view.Completed)
	case key.Matches(msg, m.keys.FilterPending):
		m.setFilter(view.Pending)
	case key.Matches(msg, m.keys.FilterNext):
		m.setFilter(m.filter.Next())
	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.styles = stylesFor(m.dark)
	}
	return m, nil
}

func (m Model) openEditPrompt(req editRequestMsg) (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	m.editing = req.ID
	m.input.SetValue(req.Text)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) applyEdit(resp editResponseMsg) (tea.Model, tea.Cmd) {
	m.mode = modeList
	m.editing = 0
	m.input.SetValue("")
	m.input.Blur()
	if resp.Cancelled {
		return m, nil
	}
	ev, err := m.svc.Edit(resp.ID, resp.Text)
	if err != nil {
		cmd := m.fail("edit", err)
		return m, cmd
	}
	if !ev.Changed() {
		return m, nil
	}
	cmd := m.applied(ev)
	return m, cmd
}

func respond(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// applied re-renders after a successful operation and shows its notice.
func (m *Model) applied(ev tasks.Event) tea.Cmd {
	m.errMsg = ""
	m.reload()
	if !ev.Changed() {
		return nil
	}
	return m.notice.Show(ev.Notice())
}

func (m *Model) fail(op string, err error) tea.Cmd {
	m.log.Error("task operation failed", zap.String("op", op), zap.Error(err))
	m.errMsg = fmt.Sprintf("%s failed: %v", op, err)
	return nil
}

func (m *Model) setFilter(f view.Filter) {
	m.filter = f
	m.cursor = 0
	m.reload()
}

// reload replaces the rows with a fresh render of the stored collection.
func (m *Model) reload() {
	c, err := m.svc.List()
	if err != nil {
		m.rows = nil
		m.cursor = 0
		m.fail("load", err)
		return
	}
	m.rows = view.Render(c, m.filter)
	m.cursor = clampCursor(m.cursor, len(m.rows))
}

func (m Model) selected() (view.Row, bool) {
	if len(m.rows) == 0 {
		return view.Row{}, false
	}
	return m.rows[clampCursor(m.cursor, len(m.rows))], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Todo"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("Add Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	case modeEdit:
		b.WriteString("Edit your task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(m.emptyText())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	if text := m.notice.View(); text != "" {
		b.WriteString(m.styles.Notice.Render(text))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

func (m Model) renderFilterBar() string {
	parts := make([]string, 0, len(view.Filters()))
	for _, f := range view.Filters() {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if f == m.filter {
			parts = append(parts, m.styles.FilterActive.Render("["+label+"]"))
		} else {
			parts = append(parts, m.styles.Filter.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, r := range m.rows {
		cursor := "  "
		if m.cursor == i && m.mode == modeList {
			cursor = m.styles.Cursor.Render("> ")
		}

		checkbox := "[ ]"
		text := m.styles.Task.Render(r.Text)
		if r.Completed {
			checkbox = "[x]"
			text = m.styles.TaskDone.Render(r.Text)
		}

		b.WriteString(fmt.Sprintf("%s%s %s", cursor, checkbox, text))
		if m.cursor == i && m.mode == modeList {
			b.WriteString("  ")
			b.WriteString(m.styles.Action.Render(actionLabels(r.Actions)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func actionLabels(actions []view.Action) string {
	labels := make([]string, 0, len(actions))
	for _, a := range actions {
		labels = append(labels, a.String())
	}
	return strings.Join(labels, " · ")
}

func (m Model) emptyText() string {
	if m.filter == view.All {
		return fmt.Sprintf("No tasks yet. Press '%s' to add one.", m.cfg.Keys.Add)
	}
	return fmt.Sprintf("No %s tasks.", m.filter)
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
