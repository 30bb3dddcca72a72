package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// ClientRepositoryFacade defines persistence operations for clients.
type ClientRepositoryFacade interface {
	SaveClient(ctx context.Context, client domain.Client) (int64, error)
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	FindClients(ctx context.Context) ([]domain.Client, error)
}
