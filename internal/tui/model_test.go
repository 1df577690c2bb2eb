package tui

import (
	"testing"

	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/testutil"
	"github.com/Veraticus/parlatoga/internal/tui/components"
	tuitest "github.com/Veraticus/parlatoga/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t        *testing.T
	renderer *tuitest.TestRenderer
	model    tea.Model
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	dash := engine.New(testutil.ParliamentFixture())
	h := &harness{
		t:        t,
		renderer: tuitest.NewTestRenderer(),
		model:    New(dash, opts...),
	}
	h.send(tuitest.WindowSize(140, 50))
	if cmd := h.model.Init(); cmd != nil {
		h.send(cmd())
	}
	return h
}

func (h *harness) send(msgs ...tea.Msg) {
	h.t.Helper()
	for _, msg := range msgs {
		h.model = h.renderer.Send(h.model, msg)
	}
}

func (h *harness) current() Model {
	h.t.Helper()
	m, ok := h.model.(Model)
	require.True(h.t, ok)
	return m
}

func (h *harness) voteIDs() []string {
	var ids []string
	for _, r := range h.current().Snapshot().Aggregation.Rows {
		ids = append(ids, r.VoteID)
	}
	return ids
}

func TestModel_SidebarSkipsSeparators(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.current().Snapshot().Selection.HasProposer())

	h.send(tuitest.KeyDown())
	assert.Equal(t, model.ProposerGovernment, h.current().Snapshot().Selection.ProposerID())

	h.send(tuitest.KeyDown())
	assert.Equal(t, model.ProposerAzores, h.current().Snapshot().Selection.ProposerID())

	h.send(tuitest.KeyUp())
	assert.Equal(t, model.ProposerGovernment, h.current().Snapshot().Selection.ProposerID())
	assert.Equal(t, "Aliança Dem.", h.current().Snapshot().Description)
}

func TestModel_InitialProposer(t *testing.T) {
	h := newHarness(t, WithProposer(model.ProposerPS))

	snap := h.current().Snapshot()
	assert.Equal(t, model.ProposerPS, snap.Selection.ProposerID())
	assert.InDelta(t, 75.0, snap.Aggregation.Cohesion.First, 1e-9)
	assert.InDelta(t, 50.0, snap.Aggregation.Approval.First, 1e-9)
	assert.Empty(t, snap.Aggregation.Rows)
	assert.True(t, snap.Donut.HasData())
}

func TestModel_UnknownInitialProposerShowsError(t *testing.T) {
	h := newHarness(t, WithProposer("XYZ"))

	m := h.current()
	assert.False(t, m.Snapshot().Selection.HasProposer())
	require.Error(t, m.LastError())
	assert.Contains(t, tuitest.StripANSI(h.renderer.Output), `"XYZ"`)
}

func TestModel_FilterCycling(t *testing.T) {
	h := newHarness(t, WithProposer(model.ProposerPS))

	h.send(tuitest.KeyPress("c"))
	assert.Equal(t, []string{"101", "102", "105"}, h.voteIDs())

	h.send(tuitest.KeyPress("c"))
	assert.Equal(t, []string{"104"}, h.voteIDs())

	h.send(tuitest.KeyPress("c"))
	assert.Empty(t, h.voteIDs())

	h.send(tuitest.KeyPress("c"), tuitest.KeyPress("u"))
	assert.Equal(t, []string{"101", "105"}, h.voteIDs())

	h.send(tuitest.KeyPress("a"), tuitest.KeyPress("a"))
	assert.Equal(t, []string{"105"}, h.voteIDs())

	// Summaries ignore the filters.
	assert.InDelta(t, 75.0, h.current().Snapshot().Aggregation.Cohesion.First, 1e-9)

	h.send(tuitest.KeyPress("x"))
	assert.Empty(t, h.voteIDs())
	assert.False(t, h.current().Snapshot().Selection.HasOutcomeFilter())
}

func TestModel_ActivateVoteIDCell(t *testing.T) {
	h := newHarness(t, WithProposer(model.ProposerPS))
	h.send(tuitest.KeyPress("c"), tuitest.KeyTab())
	assert.Equal(t, FocusTable, h.current().Focus())

	h.send(tuitest.KeyEnter())
	detail := h.current().Snapshot().Detail
	require.NotNil(t, detail)
	assert.Equal(t, "Lei da habitação", detail.Title)
	assert.Contains(t, tuitest.StripANSI(h.renderer.Output), "@ iniciativa nº 9001")

	// A count column never resolves.
	h.send(tuitest.KeyRight(), tuitest.KeyEnter())
	assert.Nil(t, h.current().Snapshot().Detail)

	// Vote 102 has no detail record.
	h.send(tuitest.KeyLeft(), tuitest.KeyDown(), tuitest.KeyEnter())
	assert.Nil(t, h.current().Snapshot().Detail)
}

func TestModel_DetailFollowsSortedTable(t *testing.T) {
	h := newHarness(t, WithProposer(model.ProposerPS))
	h.send(tuitest.KeyPress("u"), tuitest.KeyTab())
	require.Equal(t, []string{"101", "104", "105"}, h.voteIDs())

	// Sort by vote ID descending: 105, 104, 101.
	h.send(tuitest.KeyPress("s"), tuitest.KeyPress("s"), tuitest.KeyDown(), tuitest.KeyEnter())

	detail := h.current().Snapshot().Detail
	require.NotNil(t, detail)
	assert.Equal(t, "Orçamento retificativo", detail.Title)
}

func TestModel_FilterChangeClearsDetail(t *testing.T) {
	h := newHarness(t, WithProposer(model.ProposerPS))
	h.send(tuitest.KeyPress("c"), tuitest.KeyTab(), tuitest.KeyEnter())
	require.NotNil(t, h.current().Snapshot().Detail)

	h.send(tuitest.KeyPress("a"))
	assert.Nil(t, h.current().Snapshot().Detail)
}

func TestModel_SearchSwallowsKeys(t *testing.T) {
	h := newHarness(t, WithProposer(model.ProposerPS))
	h.send(tuitest.KeyPress("c"), tuitest.KeyTab(), tuitest.KeyPress("/"))
	require.Equal(t, components.ModeSearch, h.current().Table().Mode())

	h.send(tuitest.KeyPress("q"), tuitest.KeyPress("c"))
	assert.False(t, h.renderer.Quit)
	assert.Equal(t, []string{"101", "102", "105"}, h.voteIDs())

	h.send(tuitest.KeyEsc())
	assert.Equal(t, components.ModeNormal, h.current().Table().Mode())
	assert.Equal(t, model.ProposerPS, h.current().Snapshot().Selection.ProposerID())
}

func TestModel_ClearProposerKeepsCharts(t *testing.T) {
	h := newHarness(t, WithProposer(model.ProposerPS))
	h.send(tuitest.KeyEsc())

	snap := h.current().Snapshot()
	assert.False(t, snap.Selection.HasProposer())
	assert.False(t, snap.Aggregation.Selected)
	assert.True(t, snap.Donut.HasData())
	assert.Equal(t, model.ProposerPS, snap.Donut.Proposer)

	// Selecting again works from the sidebar.
	h.send(tuitest.KeyEnter())
	assert.True(t, h.current().Snapshot().Selection.HasProposer())
}

func TestModel_HelpToggle(t *testing.T) {
	h := newHarness(t)

	h.send(tuitest.KeyPress("?"))
	assert.Equal(t, StateHelp, h.current().State())
	assert.Contains(t, tuitest.StripANSI(h.renderer.Output), "Parlatoga - Ajuda")

	// Keys do not leak through the help screen.
	h.send(tuitest.KeyDown())
	assert.False(t, h.current().Snapshot().Selection.HasProposer())

	h.send(tuitest.KeyEsc())
	assert.Equal(t, StateDashboard, h.current().State())
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "q", key: tuitest.KeyPress("q")},
		{name: "ctrl+c", key: tuitest.KeyCtrlC()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.send(tt.key)
			assert.True(t, h.renderer.Quit)
			assert.Empty(t, h.renderer.Output)
		})
	}
}

func TestModel_ResponsiveLayouts(t *testing.T) {
	tests := []struct {
		name        string
		contains    []string
		notContains []string
		width       int
	}{
		{
			name:        "compact",
			width:       70,
			contains:    []string{"Proponentes", "Coesão", "Votações", "Detalhe da votação"},
			notContains: []string{"Tipos de iniciativa", "Funil legislativo"},
		},
		{
			name:        "medium",
			width:       100,
			contains:    []string{"Proponentes", "Detalhe da votação", "Tipos de iniciativa"},
			notContains: []string{"Funil legislativo"},
		},
		{
			name:     "full",
			width:    160,
			contains: []string{"Proponentes", "Tipos de iniciativa", "Funil legislativo", "10.Final"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, WithProposer(model.ProposerPS))
			h.send(tuitest.WindowSize(tt.width, 50))

			view := tuitest.StripANSI(h.renderer.Output)
			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, view, s)
			}
		})
	}
}
