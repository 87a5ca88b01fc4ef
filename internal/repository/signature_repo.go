package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cbmpe-api/internal/model"
)

type SignatureRepository struct {
	db Querier
}

func NewSignatureRepository(db Querier) *SignatureRepository {
	return &SignatureRepository{db: db}
}

const signatureJoin = `
	SELECT s.id, s.occurrence_id, s.assinatura, s.created_at, s.updated_at,
	       o.id, o.tipo, o.endereco, o.prioridade
	FROM signatures s
	JOIN occurrences o ON o.id = s.occurrence_id`

func scanSignature(row pgx.Row) (model.SignatureWithOccurrence, error) {
	var s model.SignatureWithOccurrence
	err := row.Scan(
		&s.ID, &s.OccurrenceID, &s.Image, &s.CreatedAt, &s.UpdatedAt,
		&s.Occurrence.ID, &s.Occurrence.Type, &s.Occurrence.Address, &s.Occurrence.Priority,
	)
	return s, err
}

func (r *SignatureRepository) Create(ctx context.Context, s model.Signature) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO signatures (id, occurrence_id, assinatura, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.OccurrenceID, s.Image, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create signature: %w", err)
	}
	return nil
}

func (r *SignatureRepository) FindByID(ctx context.Context, id string) (model.SignatureWithOccurrence, error) {
	s, err := scanSignature(r.db.QueryRow(ctx, signatureJoin+` WHERE s.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.SignatureWithOccurrence{}, model.ErrSignatureNotFound
	}
	if err != nil {
		return model.SignatureWithOccurrence{}, fmt.Errorf("find signature by id: %w", err)
	}
	return s, nil
}

func (r *SignatureRepository) List(ctx context.Context) ([]model.SignatureWithOccurrence, error) {
	return r.list(ctx, signatureJoin+` ORDER BY s.created_at DESC`)
}

func (r *SignatureRepository) ListByOccurrence(ctx context.Context, occurrenceID string) ([]model.SignatureWithOccurrence, error) {
	return r.list(ctx, signatureJoin+` WHERE s.occurrence_id = $1 ORDER BY s.created_at DESC`, occurrenceID)
}

func (r *SignatureRepository) list(ctx context.Context, sql string, args ...any) ([]model.SignatureWithOccurrence, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()

	signatures := make([]model.SignatureWithOccurrence, 0)
	for rows.Next() {
		s, err := scanSignature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signature: %w", err)
		}
		signatures = append(signatures, s)
	}
	return signatures, rows.Err()
}

func (r *SignatureRepository) Update(ctx context.Context, s model.Signature) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE signatures SET assinatura = $2, updated_at = $3 WHERE id = $1`,
		s.ID, s.Image, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update signature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSignatureNotFound
	}
	return nil
}

func (r *SignatureRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM signatures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete signature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSignatureNotFound
	}
	return nil
}
