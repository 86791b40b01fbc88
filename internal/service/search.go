package service

import (
	"context"
	"fmt"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/mockgen"
)

// RecordGenerator produces a batch of records for a validated query.
// *mockgen.Generator satisfies it.
type RecordGenerator interface {
	Generate(ctx context.Context, q mockgen.Query) ([]domain.BusinessRecord, error)
}

// SearchService runs mock searches and tracks the latest batch per session.
type SearchService struct {
	gen   RecordGenerator
	board *ResultBoard
}

// NewSearchService constructs a SearchService.
func NewSearchService(gen RecordGenerator, board *ResultBoard) *SearchService {
	return &SearchService{gen: gen, board: board}
}

// Search validates q, generates its records and, when sessionKey is non-empty,
// offers the batch to that session's board. The returned batch always carries
// the caller's own records even when a newer search has since superseded it.
// Anonymous searches get Seq 0.
func (s *SearchService) Search(ctx context.Context, sessionKey string, q mockgen.Query) (Batch, error) {
	if err := mockgen.Validate(q); err != nil {
		return Batch{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	var seq uint64
	if sessionKey != "" {
		seq = s.board.Begin(sessionKey)
	}

	records, err := s.gen.Generate(ctx, q)
	if err != nil {
		return Batch{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	batch := Batch{Seq: seq, Category: q.Category, Records: records}
	if sessionKey != "" {
		s.board.Offer(sessionKey, seq, batch)
	}
	return batch, nil
}

// Latest returns the session's last accepted batch.
// Returns domain.ErrNotFound if the session has not completed a search.
func (s *SearchService) Latest(_ context.Context, sessionKey string) (Batch, error) {
	b, ok := s.board.Latest(sessionKey)
	if !ok {
		return Batch{}, fmt.Errorf("service.SearchService.Latest: %w: no search results yet", domain.ErrNotFound)
	}
	return b, nil
}

// Forget discards the session's board entry. Called on sign-out.
func (s *SearchService) Forget(sessionKey string) {
	s.board.Forget(sessionKey)
}
