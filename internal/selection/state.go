// Package selection implements the four-stage location/category selection
// flow as a pure state-transition function.
//
// Stages are ordered: category, region, country, city. Changing a stage
// always clears every later stage, the chosen result count and the ready
// flag, even when the new value equals the old one. There is no undo.
package selection

import (
	"fmt"

	"github.com/pkordes/guidebook/internal/domain"
)

// Stage names one step of the selection flow.
type Stage string

const (
	StageCategory    Stage = "category"
	StageRegion      Stage = "region"
	StageCountry     Stage = "country"
	StageCity        Stage = "city"
	StageResultCount Stage = "result_count"
)

// Stages lists the four cascading stages in order. StageResultCount is not
// part of the cascade; it is set with SetResultCount.
var Stages = []Stage{StageCategory, StageRegion, StageCountry, StageCity}

// MaxResultCount bounds how many records a single search may ask for.
const MaxResultCount = 50

// ResultCountOptions are the counts offered to the user once a city is chosen.
var ResultCountOptions = []int{5, 10, 20, 30, 50}

// ParseStage validates a stage name coming off the wire.
func ParseStage(s string) (Stage, error) {
	switch st := Stage(s); st {
	case StageCategory, StageRegion, StageCountry, StageCity, StageResultCount:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown stage %q", domain.ErrValidation, s)
}

// State is the current selection tuple.
// Ready is true only after a result count has been picked for a chosen city
// and no upstream stage has changed since.
type State struct {
	Category    domain.Category `json:"category"`
	Region      string          `json:"region"`
	Country     string          `json:"country"`
	City        string          `json:"city"`
	ResultCount int             `json:"result_count"`
	Ready       bool            `json:"ready"`
}

// index returns the position of stage in Stages, or -1.
func index(stage Stage) int {
	for i, s := range Stages {
		if s == stage {
			return i
		}
	}
	return -1
}

// Value returns the current value of a cascading stage.
func (s State) Value(stage Stage) string {
	switch stage {
	case StageCategory:
		return string(s.Category)
	case StageRegion:
		return s.Region
	case StageCountry:
		return s.Country
	case StageCity:
		return s.City
	}
	return ""
}

// Unlocked reports whether stage may be set: the first stage always may,
// every later one only once its predecessor has a value.
func (s State) Unlocked(stage Stage) bool {
	if stage == StageResultCount {
		return s.City != ""
	}
	i := index(stage)
	if i <= 0 {
		return i == 0
	}
	return s.Value(Stages[i-1]) != ""
}

// Apply sets stage to value and clears every later stage, the result count
// and the ready flag. It does no validation: neither gating nor whether value
// is a known option. Unknown stages (including StageResultCount) return s unchanged.
func Apply(s State, stage Stage, value string) State {
	i := index(stage)
	if i < 0 {
		return s
	}

	next := State{}
	for j := 0; j < i; j++ {
		next = set(next, Stages[j], s.Value(Stages[j]))
	}
	return set(next, stage, value)
}

// PromoteCity writes city straight into the state without touching region or
// country. Used by the free-text resolver, whose match is not cross-checked
// against the selected region and country. Like any city change it clears
// the result count and the ready flag.
func PromoteCity(s State, city string) State {
	s.City = city
	s.ResultCount = 0
	s.Ready = false
	return s
}

// SetResultCount records n and marks the state ready to search.
// Returns domain.ErrValidation when no city is chosen or n is out of range.
func SetResultCount(s State, n int) (State, error) {
	if s.City == "" {
		return s, fmt.Errorf("%w: choose a city before the number of results", domain.ErrValidation)
	}
	if n < 1 || n > MaxResultCount {
		return s, fmt.Errorf("%w: result count must be between 1 and %d", domain.ErrValidation, MaxResultCount)
	}
	s.ResultCount = n
	s.Ready = true
	return s, nil
}

func set(s State, stage Stage, value string) State {
	switch stage {
	case StageCategory:
		s.Category = domain.Category(value)
	case StageRegion:
		s.Region = value
	case StageCountry:
		s.Country = value
	case StageCity:
		s.City = value
	}
	return s
}
