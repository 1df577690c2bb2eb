package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FunnelStageRecord is the number of initiatives a proposer has at a stage.
type FunnelStageRecord struct {
	Proposer         ProposerID
	StageLabel       string
	SumOfInitiatives float64
	Ordinal          int
}

// ParseStageOrdinal reads the numeric prefix of a "<ordinal>.<suffix>" label.
func ParseStageOrdinal(label string) (int, error) {
	prefix, _, found := strings.Cut(strings.TrimSpace(label), ".")
	if !found {
		return 0, fmt.Errorf("stage label %q has no ordinal prefix", label)
	}
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return 0, fmt.Errorf("stage label %q: ordinal %q is not a number", label, prefix)
	}
	return n, nil
}
