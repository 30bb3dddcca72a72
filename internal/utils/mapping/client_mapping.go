package mapping

import (
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
)

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:  m.ClientID,
		LastName:  m.LastName,
		FirstName: m.FirstName,
		Phone:     derefString(m.Phone),
		Address:   derefString(m.Address),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
