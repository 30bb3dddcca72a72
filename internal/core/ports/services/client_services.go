package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

// ClientSvcFacade defines the service operations for clients.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}
