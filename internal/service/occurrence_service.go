package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cbmpe-api/internal/model"
)

type OccurrenceStore interface {
	Create(ctx context.Context, o model.Occurrence) error
	FindByID(ctx context.Context, id string) (model.OccurrenceWithReporter, error)
	List(ctx context.Context) ([]model.OccurrenceWithReporter, error)
	Update(ctx context.Context, o model.Occurrence) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type OccurrenceService struct {
	occurrences OccurrenceStore
}

func NewOccurrenceService(occurrences OccurrenceStore) *OccurrenceService {
	return &OccurrenceService{occurrences: occurrences}
}

// Create files a new occurrence owned by the authenticated reporter.
func (s *OccurrenceService) Create(ctx context.Context, req model.CreateOccurrenceRequest, reporterID string) (model.OccurrenceWithReporter, error) {
	now := time.Now().UTC()
	occurrence := model.Occurrence{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Address:     req.Address,
		Priority:    req.Priority,
		Description: req.Description,
		UserID:      reporterID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.occurrences.Create(ctx, occurrence); err != nil {
		return model.OccurrenceWithReporter{}, err
	}

	return s.occurrences.FindByID(ctx, occurrence.ID)
}

func (s *OccurrenceService) Get(ctx context.Context, id string) (model.OccurrenceWithReporter, error) {
	return s.occurrences.FindByID(ctx, id)
}

func (s *OccurrenceService) List(ctx context.Context) ([]model.OccurrenceWithReporter, error) {
	return s.occurrences.List(ctx)
}

func (s *OccurrenceService) Update(ctx context.Context, id string, req model.UpdateOccurrenceRequest) (model.OccurrenceWithReporter, error) {
	existing, err := s.occurrences.FindByID(ctx, id)
	if err != nil {
		return model.OccurrenceWithReporter{}, err
	}

	occurrence := existing.Occurrence
	if req.Type != nil {
		occurrence.Type = *req.Type
	}
	if req.Address != nil {
		occurrence.Address = *req.Address
	}
	if req.Priority != nil {
		occurrence.Priority = *req.Priority
	}
	if req.Description != nil {
		occurrence.Description = *req.Description
	}
	occurrence.UpdatedAt = time.Now().UTC()

	if err := s.occurrences.Update(ctx, occurrence); err != nil {
		return model.OccurrenceWithReporter{}, err
	}

	return model.OccurrenceWithReporter{Occurrence: occurrence, Reporter: existing.Reporter}, nil
}

func (s *OccurrenceService) Delete(ctx context.Context, id string) error {
	return s.occurrences.Delete(ctx, id)
}
