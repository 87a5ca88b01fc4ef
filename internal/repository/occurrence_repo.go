package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cbmpe-api/internal/model"
)

type OccurrenceRepository struct {
	db Querier
}

func NewOccurrenceRepository(db Querier) *OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

const occurrenceJoin = `
	SELECT o.id, o.tipo, o.endereco, o.prioridade, o.descricao, o.user_id,
	       o.created_at, o.updated_at,
	       u.id, u.nome, u.email, u.patente, u.unidade
	FROM occurrences o
	JOIN users u ON u.id = o.user_id`

func scanOccurrence(row pgx.Row) (model.OccurrenceWithReporter, error) {
	var o model.OccurrenceWithReporter
	err := row.Scan(
		&o.ID, &o.Type, &o.Address, &o.Priority, &o.Description, &o.UserID,
		&o.CreatedAt, &o.UpdatedAt,
		&o.Reporter.ID, &o.Reporter.Name, &o.Reporter.Email, &o.Reporter.Rank, &o.Reporter.Unit,
	)
	return o, err
}

func (r *OccurrenceRepository) Create(ctx context.Context, o model.Occurrence) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO occurrences (id, tipo, endereco, prioridade, descricao, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.Type, o.Address, o.Priority, o.Description, o.UserID, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create occurrence: %w", err)
	}
	return nil
}

func (r *OccurrenceRepository) FindByID(ctx context.Context, id string) (model.OccurrenceWithReporter, error) {
	o, err := scanOccurrence(r.db.QueryRow(ctx, occurrenceJoin+` WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.OccurrenceWithReporter{}, model.ErrOccurrenceNotFound
	}
	if err != nil {
		return model.OccurrenceWithReporter{}, fmt.Errorf("find occurrence by id: %w", err)
	}
	return o, nil
}

func (r *OccurrenceRepository) List(ctx context.Context) ([]model.OccurrenceWithReporter, error) {
	rows, err := r.db.Query(ctx, occurrenceJoin+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}
	defer rows.Close()

	occurrences := make([]model.OccurrenceWithReporter, 0)
	for rows.Next() {
		o, err := scanOccurrence(rows)
		if err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		occurrences = append(occurrences, o)
	}
	return occurrences, rows.Err()
}

func (r *OccurrenceRepository) Update(ctx context.Context, o model.Occurrence) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE occurrences SET tipo = $2, endereco = $3, prioridade = $4, descricao = $5, updated_at = $6
		 WHERE id = $1`,
		o.ID, o.Type, o.Address, o.Priority, o.Description, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update occurrence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOccurrenceNotFound
	}
	return nil
}

// Delete removes the occurrence; attached signatures cascade at the store.
func (r *OccurrenceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM occurrences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete occurrence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOccurrenceNotFound
	}
	return nil
}

func (r *OccurrenceRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM occurrences WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check occurrence exists: %w", err)
	}
	return exists, nil
}
