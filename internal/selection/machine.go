package selection

import (
	"fmt"
	"strconv"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/taxonomy"
)

// Machine validates transitions against a taxonomy before applying them.
type Machine struct {
	tx *taxonomy.Taxonomy
}

// NewMachine returns a Machine backed by tx.
func NewMachine(tx *taxonomy.Taxonomy) *Machine {
	return &Machine{tx: tx}
}

// StageOptions lists the choices for one stage and whether it is selectable yet.
type StageOptions struct {
	Enabled bool     `json:"enabled"`
	Values  []string `json:"values"`
}

// Options is the per-stage option set for a state.
type Options struct {
	Category    StageOptions `json:"category"`
	Region      StageOptions `json:"region"`
	Country     StageOptions `json:"country"`
	City        StageOptions `json:"city"`
	ResultCount StageOptions `json:"result_count"`
}

// Transition applies value to stage after checking that the stage is
// unlocked and that value is one of its options. An empty value clears the
// stage (and, through the cascade, everything after it).
// For StageResultCount, value is the decimal count.
func (m *Machine) Transition(s State, stage Stage, value string) (State, error) {
	if !s.Unlocked(stage) {
		return s, fmt.Errorf("%w: %s is not available until the previous step is chosen", domain.ErrValidation, stage)
	}

	if stage == StageResultCount {
		n, err := strconv.Atoi(value)
		if err != nil {
			return s, fmt.Errorf("%w: result count must be a number", domain.ErrValidation)
		}
		return SetResultCount(s, n)
	}

	if value != "" && !m.allowed(s, stage, value) {
		return s, fmt.Errorf("%w: %q is not a valid %s", domain.ErrValidation, value, stage)
	}
	return Apply(s, stage, value), nil
}

// Options returns the choices for every stage of s.
func (m *Machine) Options(s State) Options {
	categories := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		categories[i] = string(c)
	}
	counts := make([]string, len(ResultCountOptions))
	for i, n := range ResultCountOptions {
		counts[i] = strconv.Itoa(n)
	}

	return Options{
		Category:    StageOptions{Enabled: true, Values: categories},
		Region:      m.gated(s, StageRegion, m.tx.RegionNames()),
		Country:     m.gated(s, StageCountry, m.tx.Countries(s.Region)),
		City:        m.gated(s, StageCity, m.tx.Cities(s.Region, s.Country)),
		ResultCount: m.gated(s, StageResultCount, counts),
	}
}

func (m *Machine) gated(s State, stage Stage, values []string) StageOptions {
	if !s.Unlocked(stage) {
		return StageOptions{Enabled: false, Values: []string{}}
	}
	if values == nil {
		values = []string{}
	}
	return StageOptions{Enabled: true, Values: values}
}

func (m *Machine) allowed(s State, stage Stage, value string) bool {
	switch stage {
	case StageCategory:
		return domain.Category(value).Valid()
	case StageRegion:
		return m.tx.HasRegion(value)
	case StageCountry:
		return m.tx.HasCountry(s.Region, value)
	case StageCity:
		return m.tx.HasCity(s.Region, s.Country, value)
	}
	return false
}
