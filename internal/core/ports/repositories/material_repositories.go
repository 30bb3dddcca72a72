package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// MaterialRepositoryFacade defines persistence operations for material
// steps and their descriptions. Writes follow the same transactional
// parent-plus-children shape as invoices.
type MaterialRepositoryFacade interface {
	SaveStep(ctx context.Context, step domain.MaterialStep, descriptions []domain.MaterialDescription) (int64, error)
	// UpdateStep replaces the step name and its whole description set.
	UpdateStep(ctx context.Context, step domain.MaterialStep, descriptions []domain.MaterialDescription) error
	DeleteStep(ctx context.Context, stepID int64) error
	// FindStepsByClient returns the client's steps oldest first, each with
	// its descriptions attached.
	FindStepsByClient(ctx context.Context, clientID int64) ([]domain.MaterialStep, error)
}
