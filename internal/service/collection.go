// Package service contains the business logic for the Guidebook API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// MaxCollectionNameLength bounds collection names, counted in characters.
const MaxCollectionNameLength = 100

// SaveRequest describes one save. Exactly one of CollectionID and
// NewCollectionName selects the destination.
type SaveRequest struct {
	CollectionID      *uuid.UUID
	NewCollectionName string
	Record            domain.BusinessRecord
}

// CollectionService implements collections and the records saved into them.
// Every operation is scoped to the calling user.
type CollectionService struct {
	collections repo.CollectionRepo
	saved       repo.SavedRepo
}

// NewCollectionService constructs a CollectionService backed by the provided repos.
func NewCollectionService(collections repo.CollectionRepo, saved repo.SavedRepo) *CollectionService {
	return &CollectionService{collections: collections, saved: saved}
}

// Create validates name and creates a collection for userID.
// Duplicate names are allowed.
func (s *CollectionService) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error) {
	name, err := validateCollectionName(name)
	if err != nil {
		return domain.Collection{}, err
	}
	c, err := s.collections.Create(ctx, userID, name)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("service.CollectionService.Create: %w", err)
	}
	return c, nil
}

// List returns the user's collections. Always non-nil.
func (s *CollectionService) List(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	out, err := s.collections.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.CollectionService.List: %w", err)
	}
	if out == nil {
		return []domain.Collection{}, nil
	}
	return out, nil
}

// Delete removes the collection and, through the database cascade, its saved rows.
func (s *CollectionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.collections.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.CollectionService.Delete: %w", err)
	}
	return nil
}

// ListSaved returns the records saved in one of the user's collections.
// Returns domain.ErrNotFound if the collection is not the user's.
func (s *CollectionService) ListSaved(ctx context.Context, userID, collectionID uuid.UUID) ([]domain.SavedRestaurant, error) {
	if _, err := s.collections.GetByID(ctx, userID, collectionID); err != nil {
		return nil, fmt.Errorf("service.CollectionService.ListSaved: %w", err)
	}
	out, err := s.saved.ListByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("service.CollectionService.ListSaved: %w", err)
	}
	if out == nil {
		return []domain.SavedRestaurant{}, nil
	}
	return out, nil
}

// DeleteSaved removes one saved record owned by the user.
func (s *CollectionService) DeleteSaved(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.saved.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.CollectionService.DeleteSaved: %w", err)
	}
	return nil
}

// Save snapshots req.Record into the chosen collection, creating the
// collection first when req names a new one. A collection created here is
// removed again if the record cannot be saved into it.
// Returns domain.ErrCollectionRequired, writing nothing, when req selects no
// collection at all.
func (s *CollectionService) Save(ctx context.Context, userID uuid.UUID, req SaveRequest) (domain.SavedRestaurant, error) {
	newName := strings.TrimSpace(req.NewCollectionName)
	switch {
	case req.CollectionID == nil && newName == "":
		return domain.SavedRestaurant{}, fmt.Errorf("service.CollectionService.Save: %w", domain.ErrCollectionRequired)
	case req.CollectionID != nil && newName != "":
		return domain.SavedRestaurant{}, fmt.Errorf("%w: choose an existing collection or a new name, not both", domain.ErrValidation)
	}
	if strings.TrimSpace(req.Record.Name) == "" {
		return domain.SavedRestaurant{}, fmt.Errorf("%w: record name is required", domain.ErrValidation)
	}

	var (
		collectionID uuid.UUID
		created      bool
	)
	if req.CollectionID != nil {
		c, err := s.collections.GetByID(ctx, userID, *req.CollectionID)
		if err != nil {
			return domain.SavedRestaurant{}, fmt.Errorf("service.CollectionService.Save: %w", err)
		}
		collectionID = c.ID
	} else {
		c, err := s.Create(ctx, userID, newName)
		if err != nil {
			return domain.SavedRestaurant{}, err
		}
		collectionID, created = c.ID, true
	}

	saved, err := s.saved.Create(ctx, domain.SavedRestaurant{
		CollectionID: collectionID,
		UserID:       userID,
		Record:       req.Record,
	})
	if err != nil {
		if created {
			if derr := s.collections.Delete(ctx, userID, collectionID); derr != nil {
				err = errors.Join(err, fmt.Errorf("remove new collection: %w", derr))
			}
		}
		return domain.SavedRestaurant{}, fmt.Errorf("service.CollectionService.Save: %w", err)
	}
	return saved, nil
}

func validateCollectionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: collection name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxCollectionNameLength {
		return "", fmt.Errorf("%w: collection name must be at most %d characters", domain.ErrValidation, MaxCollectionNameLength)
	}
	return name, nil
}
