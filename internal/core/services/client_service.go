package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates the client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client := domain.Client{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	clientID, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		return nil, err
	}

	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.FindClients(ctx)
}
