package dto

import (
	"time"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// CreateClientRequest defines the payload for creating a client.
type CreateClientRequest struct {
	LastName  string `json:"lastName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ClientID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain.Client to []ClientResponse.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(&c)
	}
	return responses
}
