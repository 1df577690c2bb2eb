package engine

import (
	"fmt"
	"sort"

	"github.com/Veraticus/parlatoga/internal/model"
)

// FunnelPlaceholder is shown when a proposer has no funnel stages. Only the
// President of the Assembly is in that position.
const FunnelPlaceholder = "Presidente da Assembleia não propõe leis."

// DonutSlice is one initiative type in the donut chart.
type DonutSlice struct {
	Type    model.InitiativeType `json:"type" yaml:"type"`
	Label   string               `json:"label" yaml:"label"`
	Color   string               `json:"color" yaml:"color"`
	Count   int                  `json:"count" yaml:"count"`
	Percent float64              `json:"percent" yaml:"percent"`
}

// DonutProjection groups a proposer's initiatives by type. When there is
// nothing to chart, Placeholder holds the message to show instead. Empty is
// true when no proposer was given.
type DonutProjection struct {
	Proposer    model.ProposerID `json:"proposer" yaml:"proposer"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Slices      []DonutSlice     `json:"slices" yaml:"slices"`
	Total       int              `json:"total" yaml:"total"`
	Empty       bool             `json:"-" yaml:"-"`
}

// ProjectDonut counts the proposer's initiatives per type, largest group
// first. Groups with equal counts keep the order in which they first appear.
func ProjectDonut(initiatives []model.InitiativeRecord, proposer model.ProposerID) DonutProjection {
	if proposer == "" {
		return DonutProjection{Empty: true}
	}

	counts := make(map[model.InitiativeType]int)
	var order []model.InitiativeType
	total := 0
	for _, ini := range initiatives {
		if ini.Proposer != proposer {
			continue
		}
		if _, seen := counts[ini.TypeDescription]; !seen {
			order = append(order, ini.TypeDescription)
		}
		counts[ini.TypeDescription]++
		total++
	}

	if total == 0 {
		return DonutProjection{
			Proposer:    proposer,
			Placeholder: fmt.Sprintf("Nenhum dado disponível para %s", proposer),
			Slices:      []DonutSlice{},
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	slices := make([]DonutSlice, len(order))
	for i, typ := range order {
		count := counts[typ]
		pct := 100 * float64(count) / float64(total)
		slices[i] = DonutSlice{
			Type:    typ,
			Count:   count,
			Percent: pct,
			Color:   typ.Color(),
			Label:   DonutLabel(count, typ, pct),
		}
	}

	return DonutProjection{Proposer: proposer, Slices: slices, Total: total}
}

// DonutLabel formats a legend entry as "<count> <type> (<percent>%)".
func DonutLabel(count int, typ model.InitiativeType, percent float64) string {
	return fmt.Sprintf("%d %s (%.1f%%)", count, typ, percent)
}

// FunnelStage is one bar of the funnel chart.
type FunnelStage struct {
	Label   string  `json:"label" yaml:"label"`
	Value   float64 `json:"value" yaml:"value"`
	Ordinal int     `json:"ordinal" yaml:"ordinal"`
}

// FunnelProjection lists a proposer's stages from the highest ordinal down.
type FunnelProjection struct {
	Proposer    model.ProposerID `json:"proposer" yaml:"proposer"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Stages      []FunnelStage    `json:"stages" yaml:"stages"`
	Empty       bool             `json:"-" yaml:"-"`
}

// ProjectFunnel selects the proposer's stages and orders them by the numeric
// prefix of the stage label, descending. Equal ordinals keep table order.
func ProjectFunnel(stages []model.FunnelStageRecord, proposer model.ProposerID) FunnelProjection {
	if proposer == "" {
		return FunnelProjection{Empty: true}
	}

	out := []FunnelStage{}
	for _, st := range stages {
		if st.Proposer != proposer {
			continue
		}
		out = append(out, FunnelStage{
			Label:   st.StageLabel,
			Value:   st.SumOfInitiatives,
			Ordinal: st.Ordinal,
		})
	}

	if len(out) == 0 {
		return FunnelProjection{
			Proposer:    proposer,
			Placeholder: FunnelPlaceholder,
			Stages:      out,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ordinal > out[j].Ordinal
	})

	return FunnelProjection{Proposer: proposer, Stages: out}
}

// HasData reports whether the projection has slices to draw.
func (d DonutProjection) HasData() bool {
	return len(d.Slices) > 0
}

// HasData reports whether the projection has stages to draw.
func (f FunnelProjection) HasData() bool {
	return len(f.Stages) > 0
}
