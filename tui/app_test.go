package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpath/paths"
	"github.com/katalvlaran/knightpath/render"
)

// testSet returns the two-path A1→D4 result.
func testSet(t *testing.T) *paths.PathSet {
	t.Helper()
	ps, err := paths.Between("A1", "D4")
	require.NoError(t, err)
	require.Equal(t, 2, ps.Len())

	return ps
}

func TestNewModel_OpensWithFullPath(t *testing.T) {
	m := newModel(testSet(t), render.NewStyles(render.MonoTheme()))
	assert.Equal(t, 3, m.step, "whole first path painted on open")
	assert.Equal(t, 0, m.menu.Index())
}

func TestUpdate_StepClamps(t *testing.T) {
	m := newModel(testSet(t), render.NewStyles(render.MonoTheme()))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(model)
	assert.Equal(t, 3, m.step, "cannot step past the end")

	for i := 0; i < 5; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = next.(model)
	}
	assert.Equal(t, 1, m.step, "cannot step before the start")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(model)
	assert.Equal(t, 2, m.step)
}

func TestUpdate_Quit(t *testing.T) {
	m := newModel(testSet(t), render.NewStyles(render.MonoTheme()))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_SelectionResetsStep(t *testing.T) {
	m := newModel(testSet(t), render.NewStyles(render.MonoTheme()))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(model)

	for i := 0; i < 2; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = next.(model)
	}
	require.Equal(t, 1, m.step)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Equal(t, 1, m.menu.Index())
	assert.Equal(t, 3, m.step, "selection change repaints the full path")
}

func TestView_ShowsBoardAndStatus(t *testing.T) {
	m := newModel(testSet(t), render.NewStyles(render.MonoTheme()))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(model)

	out := m.View()
	assert.Contains(t, out, "Knight paths A1 → D4")
	assert.Contains(t, out, "2 optimal paths, 2 moves each")
	assert.Contains(t, out, "move 2/2")
	assert.Contains(t, out, "q quit")
}

func TestView_EmptySet(t *testing.T) {
	m := newModel(&paths.PathSet{}, render.NewStyles(render.MonoTheme()))
	assert.Contains(t, m.View(), "no paths to show")
}
