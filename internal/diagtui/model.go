// Package diagtui is an interactive browser over a diag.Bag: a scrollable
// list of diagnostics on the left, the selected one's source excerpt on the
// right, built with bubbletea/bubbles/lipgloss.
package diagtui

import (
	"fmt"
	"strings"

	"surge/internal/diag"
	"surge/internal/diagfmt"
	"surge/internal/source"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	paneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// item adapts a diag.Diagnostic to bubbles/list's Item contract.
type item struct {
	d  diag.Diagnostic
	fs *source.FileSet
}

func (it item) Title() string {
	sev := it.d.Severity.String()
	switch it.d.Severity {
	case diag.SevError:
		sev = errStyle.Render(sev)
	case diag.SevWarning:
		sev = warnStyle.Render(sev)
	default:
		sev = helpStyle.Render(sev)
	}
	return fmt.Sprintf("%s %s", sev, it.d.Code.String())
}

func (it item) Description() string {
	f := it.fs.Get(it.d.Primary.File())
	return fmt.Sprintf("%s:%d:%d: %s", f.Path, it.d.Primary.Line(), it.d.Primary.Col(), it.d.Message)
}

func (it item) FilterValue() string { return it.d.Message }

// Model is the diagtui bubbletea program state.
type Model struct {
	list   list.Model
	fs     *source.FileSet
	items  []item
	width  int
	height int
}

// New builds a Model over every diagnostic in bag (call bag.Sort() first
// for deterministic ordering).
func New(bag *diag.Bag, fs *source.FileSet) Model {
	items := make([]item, 0, bag.Len())
	listItems := make([]list.Item, 0, bag.Len())
	for _, d := range bag.Items() {
		it := item{d: d, fs: fs}
		items = append(items, it)
		listItems = append(listItems, it)
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(listItems, delegate, 0, 0)
	l.Title = "diagnostics"
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))}
	}

	return Model{list: l, fs: fs, items: items}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listWidth := m.width / 2
		m.list.SetSize(listWidth, m.height-2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return "no diagnostics\n"
	}

	listView := paneStyle.Render(m.list.View())

	idx := m.list.Index()
	var detail string
	if idx >= 0 && idx < len(m.items) {
		detail = m.renderDetail(m.items[idx])
	}
	detailWidth := m.width - lipgloss.Width(listView) - 2
	if detailWidth < 20 {
		detailWidth = 20
	}
	detailView := paneStyle.Width(detailWidth).Render(detail)

	return lipgloss.JoinHorizontal(lipgloss.Top, listView, detailView)
}

func (m Model) renderDetail(it item) string {
	var sb strings.Builder
	diagfmt.Pretty(&sb, singleItemBag(it.d), it.fs, diagfmt.PrettyOpts{Color: true, Context: 2, ShowNotes: true})
	return sb.String()
}

func singleItemBag(d diag.Diagnostic) *diag.Bag {
	b := diag.NewBag(1)
	b.Add(d)
	return b
}

// Run starts the bubbletea program over bag, blocking until the user quits.
func Run(bag *diag.Bag, fs *source.FileSet) error {
	bag.Sort()
	_, err := tea.NewProgram(New(bag, fs), tea.WithAltScreen()).Run()
	return err
}
