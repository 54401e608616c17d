// Package tui is the interactive explorer for knight path sets.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/knightpath/paths"
	"github.com/katalvlaran/knightpath/render"
)

type pathItem struct {
	index int
	path  paths.Path
}

func (it pathItem) Title() string       { return fmt.Sprintf("Path %d • %d moves", it.index+1, it.path.Moves()) }
func (it pathItem) Description() string { return it.path.String() }
func (it pathItem) FilterValue() string { return it.path.String() }

type model struct {
	styles *render.Styles
	set    *paths.PathSet

	menu list.Model
	step int // squares of the selected path currently shown, 1..len(path)
}

// Run opens the full-screen explorer for ps: a path list on the left, a
// stepped board on the right. It blocks until the user quits.
func Run(ps *paths.PathSet, st *render.Styles) error {
	p := tea.NewProgram(newModel(ps, st), tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func newModel(ps *paths.PathSet, st *render.Styles) model {
	if st == nil {
		st = render.DefaultStyles()
	}

	items := make([]list.Item, len(ps.Paths))
	for i, p := range ps.Paths {
		items[i] = pathItem{index: i, path: p}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%s → %s", ps.Start, ps.End)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	step := 1
	if len(ps.Paths) > 0 {
		step = len(ps.Paths[0]) // open with the whole first path painted
	}

	return model{styles: st, set: ps, menu: l, step: step}
}

// selected returns the path under the cursor, or nil for an empty set.
func (m model) selected() paths.Path {
	if it, ok := m.menu.SelectedItem().(pathItem); ok {
		return it.path
	}
	if m.set.Len() > 0 {
		return m.set.Paths[0]
	}

	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width/2, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "right", "l":
			if p := m.selected(); p != nil && m.step < len(p) {
				m.step++
			}
			return m, nil

		case "left", "h":
			if m.step > 1 {
				m.step--
			}
			return m, nil
		}
	}

	before := m.menu.Index()
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if m.menu.Index() != before {
		if p := m.selected(); p != nil {
			m.step = len(p)
		}
	}

	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.styles.Title.Render(fmt.Sprintf("Knight paths %s → %s", m.set.Start, m.set.End))

	p := m.selected()
	if p == nil {
		return wrap.Render(header + "\n\n" + m.styles.Muted.Render("no paths to show"))
	}
	header += "\n" + m.styles.Muted.Render(fmt.Sprintf("%d optimal paths, %d moves each", m.set.Len(), m.set.Moves()))

	prefix := p[:m.step]
	status := m.styles.Muted.Render(fmt.Sprintf("move %d/%d • knight on %s", m.step-1, p.Moves(), prefix.End()))
	help := m.styles.Muted.Render("↑/↓ choose path • ←/→ step • q quit")

	left := m.styles.Border.Render(m.menu.View())
	right := m.styles.Border.Render(render.Board(prefix, m.styles) + "\n" + status)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	return wrap.Render(header + "\n\n" + body + "\n" + help)
}
