package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/mapping"
)

type PgxMaterialRepository struct {
	BaseRepository
}

// newPgxMaterialRepository creates a new repository for material step data.
func newPgxMaterialRepository(pool *pgxpool.Pool) portsrepo.MaterialRepositoryFacade {
	return &PgxMaterialRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MaterialRepositoryFacade = (*PgxMaterialRepository)(nil)

// SaveStep inserts the step and all of its descriptions in one transaction.
func (r *PgxMaterialRepository) SaveStep(ctx context.Context, step domain.MaterialStep, descriptions []domain.MaterialDescription) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	insertStepQuery := `
		INSERT INTO material_steps (client_id, name)
		VALUES ($1, $2)
		RETURNING id;
	`
	var stepID int64
	err = tx.QueryRow(ctx, insertStepQuery, step.ClientID, step.Name).Scan(&stepID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert material step", err)
	}

	if err := insertStepDescriptions(ctx, tx, stepID, descriptions); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return stepID, nil
}

// UpdateStep renames the step and replaces its whole description set in one
// transaction.
func (r *PgxMaterialRepository) UpdateStep(ctx context.Context, step domain.MaterialStep, descriptions []domain.MaterialDescription) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `UPDATE material_steps SET name = $1 WHERE id = $2;`, step.Name, step.StepID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update material step", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("material step not found for update")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM material_descriptions WHERE step_id = $1;`, step.StepID); err != nil {
		return apperrors.NewAppError(500, "failed to clear material descriptions", err)
	}

	if err := insertStepDescriptions(ctx, tx, step.StepID, descriptions); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertStepDescriptions batch-inserts the given descriptions for one step.
func insertStepDescriptions(ctx context.Context, tx pgx.Tx, stepID int64, descriptions []domain.MaterialDescription) error {
	if len(descriptions) == 0 {
		return nil
	}

	insertDescriptionQuery := `
		INSERT INTO material_descriptions (step_id, description, quantity, price)
		VALUES ($1, $2, $3, $4);
	`
	batch := &pgx.Batch{}
	for _, d := range descriptions {
		batch.Queue(insertDescriptionQuery, stepID, d.Description, d.Quantity, d.Price)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range descriptions {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert material description", err)
		}
	}
	return nil
}

// DeleteStep removes a step; its descriptions are cascade-deleted with it.
func (r *PgxMaterialRepository) DeleteStep(ctx context.Context, stepID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM material_steps WHERE id = $1;`, stepID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete material step", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("material step not found for delete")
	}
	return nil
}

// FindStepsByClient retrieves a client's steps oldest first, each with its
// descriptions attached.
func (r *PgxMaterialRepository) FindStepsByClient(ctx context.Context, clientID int64) ([]domain.MaterialStep, error) {
	query := `
		SELECT id, client_id, name, created_at
		FROM material_steps
		WHERE client_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query material steps", err)
	}
	defer rows.Close()

	steps := []domain.MaterialStep{}
	stepIDs := []int64{}
	for rows.Next() {
		var m models.MaterialStep
		if err := rows.Scan(&m.StepID, &m.ClientID, &m.Name, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan material step row", err)
		}
		steps = append(steps, mapping.ToDomainMaterialStep(m))
		stepIDs = append(stepIDs, m.StepID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating material step rows", err)
	}

	if len(stepIDs) == 0 {
		return steps, nil
	}

	descriptionsByStep, err := r.findDescriptionsByStepIDs(ctx, stepIDs)
	if err != nil {
		return nil, err
	}
	for i := range steps {
		steps[i].Descriptions = descriptionsByStep[steps[i].StepID]
	}

	return steps, nil
}

// findDescriptionsByStepIDs fetches the descriptions for a set of steps in
// one query, grouped by step ID.
func (r *PgxMaterialRepository) findDescriptionsByStepIDs(ctx context.Context, stepIDs []int64) (map[int64][]domain.MaterialDescription, error) {
	query := `
		SELECT id, step_id, description, quantity, price, created_at
		FROM material_descriptions
		WHERE step_id = ANY($1)
		ORDER BY id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, stepIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query material descriptions", err)
	}
	defer rows.Close()

	descriptionsByStep := make(map[int64][]domain.MaterialDescription)
	for rows.Next() {
		var m models.MaterialDescription
		if err := rows.Scan(
			&m.DescriptionID,
			&m.StepID,
			&m.Description,
			&m.Quantity,
			&m.Price,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan material description row", err)
		}
		descriptionsByStep[m.StepID] = append(descriptionsByStep[m.StepID], mapping.ToDomainMaterialDescription(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating material description rows", err)
	}

	return descriptionsByStep, nil
}
