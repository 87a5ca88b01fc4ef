package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cbmpe-api/internal/model"
	"cbmpe-api/internal/util"
)

type SignatureStore interface {
	Create(ctx context.Context, s model.Signature) error
	FindByID(ctx context.Context, id string) (model.SignatureWithOccurrence, error)
	List(ctx context.Context) ([]model.SignatureWithOccurrence, error)
	ListByOccurrence(ctx context.Context, occurrenceID string) ([]model.SignatureWithOccurrence, error)
	Update(ctx context.Context, s model.Signature) error
	Delete(ctx context.Context, id string) error
}

// OccurrenceChecker is the slice of the occurrence store the signature flow
// needs to validate the foreign key before inserting.
type OccurrenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type SignatureService struct {
	signatures  SignatureStore
	occurrences OccurrenceChecker
}

func NewSignatureService(signatures SignatureStore, occurrences OccurrenceChecker) *SignatureService {
	return &SignatureService{signatures: signatures, occurrences: occurrences}
}

func (s *SignatureService) Create(ctx context.Context, req model.CreateSignatureRequest) (model.SignatureWithOccurrence, error) {
	if _, err := util.DecodeImageDataURI(req.Image); err != nil {
		return model.SignatureWithOccurrence{}, fmt.Errorf("%w: assinatura must be a base64 image data URI", model.ErrInvalidInput)
	}

	exists, err := s.occurrences.Exists(ctx, req.OccurrenceID)
	if err != nil {
		return model.SignatureWithOccurrence{}, err
	}
	if !exists {
		return model.SignatureWithOccurrence{}, model.ErrOccurrenceNotFound
	}

	now := time.Now().UTC()
	signature := model.Signature{
		ID:           uuid.NewString(),
		OccurrenceID: req.OccurrenceID,
		Image:        req.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.signatures.Create(ctx, signature); err != nil {
		return model.SignatureWithOccurrence{}, err
	}

	return s.signatures.FindByID(ctx, signature.ID)
}

func (s *SignatureService) Get(ctx context.Context, id string) (model.SignatureWithOccurrence, error) {
	return s.signatures.FindByID(ctx, id)
}

func (s *SignatureService) List(ctx context.Context) ([]model.SignatureWithOccurrence, error) {
	return s.signatures.List(ctx)
}

func (s *SignatureService) ListByOccurrence(ctx context.Context, occurrenceID string) ([]model.SignatureWithOccurrence, error) {
	exists, err := s.occurrences.Exists(ctx, occurrenceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrOccurrenceNotFound
	}

	return s.signatures.ListByOccurrence(ctx, occurrenceID)
}

func (s *SignatureService) Update(ctx context.Context, id string, req model.UpdateSignatureRequest) (model.SignatureWithOccurrence, error) {
	if _, err := util.DecodeImageDataURI(req.Image); err != nil {
		return model.SignatureWithOccurrence{}, fmt.Errorf("%w: assinatura must be a base64 image data URI", model.ErrInvalidInput)
	}

	existing, err := s.signatures.FindByID(ctx, id)
	if err != nil {
		return model.SignatureWithOccurrence{}, err
	}

	signature := existing.Signature
	signature.Image = req.Image
	signature.UpdatedAt = time.Now().UTC()

	if err := s.signatures.Update(ctx, signature); err != nil {
		return model.SignatureWithOccurrence{}, err
	}

	return model.SignatureWithOccurrence{Signature: signature, Occurrence: existing.Occurrence}, nil
}

func (s *SignatureService) Delete(ctx context.Context, id string) error {
	_, err := s.signatures.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.signatures.Delete(ctx, id)
}
