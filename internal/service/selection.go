package service

import (
	"fmt"

	"github.com/pkordes/guidebook/internal/selection"
	"github.com/pkordes/guidebook/internal/taxonomy"
)

// SelectionService drives the category → region → country → city picker
// and the free-text city lookup. It holds no per-user state: the caller
// sends the current State and gets the next one back.
type SelectionService struct {
	tax     *taxonomy.Taxonomy
	machine *selection.Machine
}

// NewSelectionService constructs a SelectionService over tax.
func NewSelectionService(tax *taxonomy.Taxonomy) *SelectionService {
	return &SelectionService{tax: tax, machine: selection.NewMachine(tax)}
}

// Taxonomy returns the location tree the service selects from.
func (s *SelectionService) Taxonomy() *taxonomy.Taxonomy { return s.tax }

// Apply sets stage to value and returns the next state with its options.
func (s *SelectionService) Apply(state selection.State, stage selection.Stage, value string) (selection.State, selection.Options, error) {
	next, err := s.machine.Transition(state, stage, value)
	if err != nil {
		return selection.State{}, selection.Options{}, fmt.Errorf("service.SelectionService.Apply: %w", err)
	}
	return next, s.machine.Options(next), nil
}

// Options lists the choices available from state.
func (s *SelectionService) Options(state selection.State) selection.Options {
	return s.machine.Options(state)
}

// ResolveCity finds the city matching query and promotes it into state.
// The matched place's region and country are reported but not applied.
func (s *SelectionService) ResolveCity(state selection.State, query string) (selection.State, taxonomy.Place, error) {
	place, err := s.tax.Resolve(query)
	if err != nil {
		return selection.State{}, taxonomy.Place{}, fmt.Errorf("service.SelectionService.ResolveCity: %w", err)
	}
	return selection.PromoteCity(state, place.City), place, nil
}
