package controller

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportItems_Order(t *testing.T) {
	items := reportItems(sampleReport())

	require.Len(t, items, 3)
	assert.Equal(t, itemChange, items[0].kind)
	assert.Equal(t, itemUnresolved, items[1].kind)
	assert.Equal(t, itemError, items[2].kind)
	assert.Equal(t, "src/app.js:4", items[0].location())
	assert.Equal(t, "src/locked.js", items[2].location())
	assert.Equal(t, "ط§ظ„ط¹ط±ط¨ظٹط© → العربية", items[0].detail())
}

func TestReportModel_ViewShowsCountsAndRows(t *testing.T) {
	model := newReportModel(sampleReport())

	next, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	rm, ok := next.(reportModel)
	require.True(t, ok)

	view := rm.View()
	assert.Contains(t, view, "Run run-1 (apply)")
	assert.Contains(t, view, "literals 1")
	assert.Contains(t, view, "src/app.js:4")
	assert.Contains(t, view, "src/locked.js")
}

func TestReportModel_Quit(t *testing.T) {
	model := newReportModel(sampleReport())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReportDelegate_Render(t *testing.T) {
	model := newReportModel(sampleReport())
	items := model.list.Items()

	var buf bytes.Buffer

	reportDelegate{}.Render(&buf, model.list, 0, items[0])
	assert.Contains(t, buf.String(), "src/app.js:4")

	buf.Reset()
	reportDelegate{}.Render(&buf, model.list, 1, items[1])
	assert.Contains(t, buf.String(), "unresolved")

	buf.Reset()
	reportDelegate{}.Render(&buf, model.list, 0, list.Item(nil))
	assert.Empty(t, buf.String())
}
