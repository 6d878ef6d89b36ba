package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/cli/formatter"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(a *App) *cobra.Command {
	var scope scopeFlags

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive task board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newBoardModel(cmd.Context(), a)
			m.courseID, m.programID = scope.ids(cmd.Flags())
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	scope.register(cmd.Flags())

	return cmd
}

type boardKeyMap struct {
	Filter  key.Binding
	Cycle   key.Binding
	Submit  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter status")),
		Cycle:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next status")),
		Submit:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle submitted")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Cycle, k.Submit, k.Refresh, k.Quit}
}

// boardFilters is the order the status filter cycles through; "" shows all.
var boardFilters = append([]domain.TaskStatus{""}, domain.TaskStatuses...)

// boardLoadedMsg carries a fresh task list and summary.
type boardLoadedMsg struct {
	tasks   []app.TaskView
	summary *stats.Summary
	err     error
}

// boardChangedMsg reports the outcome of a patch; the board reloads after it.
type boardChangedMsg struct {
	note string
	err  error
}

// boardModel lists tasks with the stats header, like the web dashboard.
type boardModel struct {
	ctx  context.Context
	app  *App
	keys boardKeyMap

	courseID  *int64
	programID *int64
	filter    domain.TaskStatus

	table   table.Model
	tasks   []app.TaskView
	summary *stats.Summary
	loading bool
	note    string
	err     error
}

func newBoardModel(ctx context.Context, a *App) *boardModel {
	cols := make([]table.Column, len(formatter.TaskHeaders))
	widths := []int{4, 10, 16, 9, 28, 13, 13, 8, 9}
	for i, h := range formatter.TaskHeaders {
		cols[i] = table.Column{Title: h, Width: widths[i]}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true).
		BorderForeground(formatter.ColorDim).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorHeader)

	return &boardModel{
		ctx:     ctx,
		app:     a,
		keys:    defaultBoardKeys(),
		loading: true,
		table: table.New(
			table.WithColumns(cols),
			table.WithFocused(true),
			table.WithHeight(15),
			table.WithStyles(styles),
		),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load()
}

func (m *boardModel) load() tea.Cmd {
	a, ctx := m.app, m.ctx
	q := app.TaskQuery{CourseID: m.courseID, ProgramID: m.programID, Status: m.filter}
	req := app.StatsRequest{CourseID: m.courseID, ProgramID: m.programID}
	return func() tea.Msg {
		today := a.today()
		q.Today, req.Today = today, today
		tasks, err := a.Tasks.List(ctx, q)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		summary, err := a.Stats.Summary(ctx, req)
		return boardLoadedMsg{tasks: tasks, summary: summary, err: err}
	}
}

func (m *boardModel) patch(id int64, p domain.TaskPatch, note string) tea.Cmd {
	a, ctx := m.app, m.ctx
	return func() tea.Msg {
		if _, err := a.Tasks.Patch(ctx, id, p); err != nil {
			return boardChangedMsg{err: err}
		}
		return boardChangedMsg{note: note}
	}
}

func (m *boardModel) selected() (app.TaskView, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tasks) {
		return app.TaskView{}, false
	}
	return m.tasks[i], true
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Header, filter line, help and note take six lines.
		m.table.SetHeight(max(msg.Height-6, 3))
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.tasks = msg.tasks
		m.summary = msg.summary
		rows := make([]table.Row, len(m.tasks))
		for i, v := range m.tasks {
			rows[i] = formatter.TaskCells(v)
		}
		m.table.SetRows(rows)
		if m.table.Cursor() >= len(rows) {
			m.table.SetCursor(max(len(rows)-1, 0))
		}
		return m, nil

	case boardChangedMsg:
		m.note, m.err = msg.note, msg.err
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		case key.Matches(msg, m.keys.Filter):
			m.filter = nextFilter(m.filter)
			m.table.SetCursor(0)
			m.loading = true
			return m, m.load()
		case key.Matches(msg, m.keys.Cycle):
			if t, ok := m.selected(); ok {
				next := t.Status.Next()
				return m, m.patch(t.ID, domain.TaskPatch{Status: &next},
					fmt.Sprintf("#%d is now %s", t.ID, next))
			}
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			if t, ok := m.selected(); ok {
				marker := t.Submission.Toggle()
				return m, m.patch(t.ID, domain.TaskPatch{Submission: &marker},
					fmt.Sprintf("#%d marked %s", t.ID, marker))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func nextFilter(cur domain.TaskStatus) domain.TaskStatus {
	for i, f := range boardFilters {
		if f == cur {
			return boardFilters[(i+1)%len(boardFilters)]
		}
	}
	return ""
}

func (m *boardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render("IAMONIT"))
	if m.summary != nil {
		b.WriteString("  " + formatter.Dim(m.summary.Today) + "  " + formatter.SummaryLine(m.summary))
	}
	b.WriteString("\n")

	filter := "All"
	if m.filter != "" {
		filter = string(m.filter)
	}
	b.WriteString(formatter.Dim("Showing: ") + formatter.Bold(filter))
	if m.loading {
		b.WriteString(formatter.Dim("  loading..."))
	}
	b.WriteString("\n\n")

	if len(m.tasks) == 0 && !m.loading {
		b.WriteString(formatter.Empty("tasks"))
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.note != "":
		b.WriteString(formatter.StyleGreen.Render(m.note) + "\n")
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(help, " · ")))
	return b.String()
}
