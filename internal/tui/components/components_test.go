package components

import (
	"testing"

	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/selection"
	"github.com/Veraticus/parlatoga/internal/testutil"
	tuitest "github.com/Veraticus/parlatoga/internal/tui/testing"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedID(t *testing.T, cmd tea.Cmd) model.ProposerID {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ProposerSelectedMsg)
	require.True(t, ok)
	return msg.ID
}

func TestSidebar_SkipsSeparators(t *testing.T) {
	m := NewSidebar(themes.Default)
	assert.Equal(t, model.ProposerPresident, m.Current().Proposer.ID)
	assert.Empty(t, m.Selected())

	var cmd tea.Cmd
	m, cmd = m.Update(tuitest.KeyDown())
	assert.Equal(t, model.ProposerGovernment, selectedID(t, cmd))

	// Row 2 is a separator.
	m, cmd = m.Update(tuitest.KeyDown())
	assert.Equal(t, model.ProposerAzores, selectedID(t, cmd))

	m, cmd = m.Update(tuitest.KeyUp())
	assert.Equal(t, model.ProposerGovernment, selectedID(t, cmd))
	assert.Equal(t, model.ProposerGovernment, m.Selected())
}

func TestSidebar_StopsAtEnds(t *testing.T) {
	m := NewSidebar(themes.Default)

	var cmd tea.Cmd
	m, cmd = m.Update(tuitest.KeyPress("G"))
	assert.Equal(t, model.ProposerPSD, selectedID(t, cmd))

	// The trailing separator is never reached and reselecting is a no-op.
	m, cmd = m.Update(tuitest.KeyDown())
	assert.Nil(t, cmd)
	assert.Equal(t, model.ProposerPSD, m.Current().Proposer.ID)

	m, cmd = m.Update(tuitest.KeyPress("g"))
	assert.Equal(t, model.ProposerPresident, selectedID(t, cmd))
	_, cmd = m.Update(tuitest.KeyUp())
	assert.Nil(t, cmd)
}

func TestSidebar_IgnoresKeysWhenBlurred(t *testing.T) {
	m := NewSidebar(themes.Default)
	m.Blur()

	m, cmd := m.Update(tuitest.KeyDown())
	assert.Nil(t, cmd)
	assert.Equal(t, model.ProposerPresident, m.Current().Proposer.ID)
}

func TestSidebar_View(t *testing.T) {
	m := NewSidebar(themes.Default)
	m.SetSelected(model.ProposerPS)

	view := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(view, "PRES. AR", "GOVERNO", model.SeparatorLabel, "AÇORES", "PS", "PSD"))
	assert.Equal(t, model.ProposerPS, m.Current().Proposer.ID)
}

func TestFilters_Cycle(t *testing.T) {
	f := NewFilters(themes.Default)

	cycle := func(field FilterField) FilterChangedMsg {
		msg, ok := f.Cycle(field)().(FilterChangedMsg)
		require.True(t, ok)
		return msg
	}

	assert.Equal(t, FilterChangedMsg{Field: FilterCohesion, Value: string(model.CohesionBlock)}, cycle(FilterCohesion))

	// The panel does not move until the selection comes back.
	assert.Empty(t, f.Value(FilterCohesion))

	block := model.CohesionBlock
	f.SetSelection(selection.Snapshot{Cohesion: &block})
	assert.Equal(t, string(model.CohesionBlock), f.Value(FilterCohesion))
	assert.Equal(t, string(model.CohesionSplit), cycle(FilterCohesion).Value)

	split := model.CohesionSplit
	f.SetSelection(selection.Snapshot{Cohesion: &split})
	assert.Empty(t, cycle(FilterCohesion).Value)

	assert.Equal(t, string(model.Unanimous), cycle(FilterUnanimity).Value)
	assert.Equal(t, string(model.Approved), cycle(FilterApproval).Value)
}

func TestFilters_View(t *testing.T) {
	f := NewFilters(themes.Default)
	rejected := model.Rejected
	f.SetSelection(selection.Snapshot{Approval: &rejected})

	view := tuitest.StripANSI(f.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Coesão", "Todos", "Coeso", "Fragmentado"))
	assert.True(t, tuitest.ContainsInOrder(view, "Aprovação", "[a]", "Todos", "Aprovado", "Rejeitado"))
}

func testRows() []model.VoteRow {
	return []model.VoteRow{
		{VoteID: "101", Contra: 51, Favor: 101, Abstention: 1},
		{VoteID: "102", Contra: 52, Favor: 90, Abstention: 7},
		{VoteID: "110", Contra: 40, Favor: 120, Abstention: 3},
	}
}

func focusedTable(rows []model.VoteRow) VoteTableModel {
	m := NewVoteTable(themes.Default)
	m.Focus()
	m.SetRows(rows)
	return m
}

func TestVoteTable_ActivatesCellUnderCursor(t *testing.T) {
	m := focusedTable(testRows())

	_, cmd := m.Update(tuitest.KeyEnter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(CellActivatedMsg)
	require.True(t, ok)
	assert.Equal(t, engine.ActiveCell{Row: 0, Column: engine.ColumnVoteID}, msg.Cell)
	assert.Equal(t, testRows(), msg.Rows)

	m, _ = m.Update(tuitest.KeyDown())
	m, _ = m.Update(tuitest.KeyRight())
	_, cmd = m.Update(tuitest.KeyEnter())
	msg = cmd().(CellActivatedMsg)
	assert.Equal(t, engine.ActiveCell{Row: 1, Column: engine.ColumnContra}, msg.Cell)
}

func TestVoteTable_ColumnCursorIsBounded(t *testing.T) {
	m := focusedTable(testRows())

	m, _ = m.Update(tuitest.KeyLeft())
	assert.Equal(t, engine.ColumnVoteID, m.Column())

	for i := 0; i < 6; i++ {
		m, _ = m.Update(tuitest.KeyRight())
	}
	assert.Equal(t, engine.ColumnAbstention, m.Column())
}

func TestVoteTable_EmptyTableActivatesNothing(t *testing.T) {
	m := focusedTable(nil)

	_, cmd := m.Update(tuitest.KeyEnter())
	assert.Nil(t, cmd)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Escolha um proponente")
}

func TestVoteTable_SortByColumn(t *testing.T) {
	m := focusedTable(testRows())

	m, _ = m.Update(tuitest.KeyRight())
	m, _ = m.Update(tuitest.KeyRight())
	m, _ = m.Update(tuitest.KeyPress("s"))

	ids := func() []string {
		var out []string
		for _, r := range m.Rows() {
			out = append(out, r.VoteID)
		}
		return out
	}
	assert.Equal(t, []string{"102", "101", "110"}, ids())

	m, _ = m.Update(tuitest.KeyPress("s"))
	assert.Equal(t, []string{"110", "101", "102"}, ids())

	// The activated row refers to the sorted order.
	m, _ = m.Update(tuitest.KeyPress("h"))
	m, _ = m.Update(tuitest.KeyPress("h"))
	_, cmd := m.Update(tuitest.KeyEnter())
	msg := cmd().(CellActivatedMsg)
	assert.Equal(t, "110", msg.Rows[msg.Cell.Row].VoteID)
}

func TestVoteTable_Search(t *testing.T) {
	m := focusedTable(testRows())

	m, _ = m.Update(tuitest.KeyPress("/"))
	assert.Equal(t, ModeSearch, m.Mode())

	for _, r := range "11" {
		m, _ = m.Update(tuitest.KeyPress(string(r)))
	}
	m, _ = m.Update(tuitest.KeyEnter())
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, "11", m.Query())
	require.Len(t, m.Rows(), 1)
	assert.Equal(t, "110", m.Rows()[0].VoteID)

	// Filters replacing the rows keep the search.
	m.SetRows(append(testRows(), model.VoteRow{VoteID: "211"}))
	assert.Len(t, m.Rows(), 2)

	m, _ = m.Update(tuitest.KeyPress("/"))
	m, _ = m.Update(tuitest.KeyEsc())
	assert.Empty(t, m.Query())
	assert.Len(t, m.Rows(), 4)
}

func TestVoteTable_View(t *testing.T) {
	m := focusedTable(testRows())
	view := tuitest.StripANSI(m.View())

	assert.True(t, tuitest.ContainsInOrder(view, "Votações", "3 votações", "ID_Voto", "Contra", "A Favor", "Abstenção", "101", "102", "110"))
}

func TestCharts_View(t *testing.T) {
	ds := testutil.ParliamentFixture()
	c := NewCharts(themes.Default)

	view := tuitest.StripANSI(c.View())
	assert.Contains(t, view, "Escolha um proponente.")

	c.SetProjections(
		engine.ProjectDonut(ds.Initiatives(), model.ProposerPS),
		engine.ProjectFunnel(ds.Funnel(), model.ProposerPS),
	)
	view = tuitest.StripANSI(c.View())
	assert.True(t, tuitest.ContainsInOrder(view, "3 Projeto de Lei (75.0%)", "1 Projeto de Resolução (25.0%)", "4 iniciativas"))
	assert.True(t, tuitest.ContainsInOrder(view, "Funil legislativo", "10.Final", "2.Aprovação", "1.Entrada", "40"))

	c.SetProjections(
		engine.ProjectDonut(ds.Initiatives(), model.ProposerPresident),
		engine.ProjectFunnel(ds.Funnel(), model.ProposerPresident),
	)
	view = tuitest.StripANSI(c.View())
	assert.Contains(t, view, "Nenhum dado disponível para R")
	assert.Contains(t, view, engine.FunnelPlaceholder)
}

func TestDetailPanel_View(t *testing.T) {
	d := NewDetailPanel(themes.Default)
	assert.Contains(t, tuitest.StripANSI(d.View()), "ID_Voto")

	d.SetDetail(&model.DetailRecord{
		VoteID:       "101",
		Title:        "Lei da habitação",
		TextLink:     "https://example.pt/101",
		InitiativeID: "9001",
	})
	view := tuitest.StripANSI(d.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Lei da habitação", "https://example.pt/101", "@ iniciativa nº 9001"))
}

func TestSummary_View(t *testing.T) {
	s := NewSummary(themes.Default)
	assert.Contains(t, tuitest.StripANSI(s.View()), "Nenhum proponente")

	dash := engine.New(testutil.ParliamentFixture())
	snap, err := dash.SelectProposerID(model.ProposerPS)
	require.NoError(t, err)
	s.SetSnapshot(snap)

	view := tuitest.StripANSI(s.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Coesão", "75.0%", "Unanimidade", "75.0%", "Aprovação", "50.0%"))
}
