package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

type materialService struct {
	materialRepo portsrepo.MaterialRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
}

// NewMaterialService creates the material step service.
func NewMaterialService(
	materialRepo portsrepo.MaterialRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
) portssvc.MaterialSvcFacade {
	return &materialService{materialRepo: materialRepo, clientRepo: clientRepo}
}

var _ portssvc.MaterialSvcFacade = (*materialService)(nil)

func (s *materialService) CreateStep(ctx context.Context, req dto.CreateMaterialStepRequest) (int64, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if isNotFound(err) {
			return 0, apperrors.NewAppError(400, "client does not exist", apperrors.ErrValidation)
		}
		return 0, err
	}

	step := domain.MaterialStep{ClientID: req.ClientID, Name: req.Name}
	descriptions, err := buildDescriptions(req.Descriptions)
	if err != nil {
		return 0, err
	}

	return s.materialRepo.SaveStep(ctx, step, descriptions)
}

func (s *materialService) UpdateStep(ctx context.Context, stepID int64, req dto.UpdateMaterialStepRequest) error {
	step := domain.MaterialStep{StepID: stepID, Name: req.Name}
	descriptions, err := buildDescriptions(req.Descriptions)
	if err != nil {
		return err
	}

	return s.materialRepo.UpdateStep(ctx, step, descriptions)
}

func (s *materialService) DeleteStep(ctx context.Context, stepID int64) error {
	return s.materialRepo.DeleteStep(ctx, stepID)
}

func (s *materialService) ListSteps(ctx context.Context, clientID int64) ([]domain.MaterialStep, error) {
	return s.materialRepo.FindStepsByClient(ctx, clientID)
}

func buildDescriptions(reqs []dto.MaterialDescriptionRequest) ([]domain.MaterialDescription, error) {
	descriptions := make([]domain.MaterialDescription, 0, len(reqs))
	for _, d := range reqs {
		if (d.Quantity != nil && d.Quantity.IsNegative()) || (d.Price != nil && d.Price.IsNegative()) {
			return nil, apperrors.NewAppError(400, "quantity and price cannot be negative", apperrors.ErrValidation)
		}
		descriptions = append(descriptions, domain.MaterialDescription{
			Description: d.Description,
			Quantity:    d.Quantity,
			Price:       d.Price,
		})
	}
	return descriptions, nil
}
