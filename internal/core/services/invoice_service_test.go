package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/core/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

func linesPtr(lines ...dto.InvoiceLineRequest) *[]dto.InvoiceLineRequest {
	return &lines
}

func TestCreateInvoice_Success(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewInvoiceService(invoiceRepo, clientRepo)

	clientRepo.On("FindClientByID", mock.Anything, int64(7)).Return(&domain.Client{ClientID: 7}, nil)
	invoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.ClientID == 7 &&
			inv.Description == "Travaux salle de bain" &&
			inv.InvoiceDate.Equal(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	}), mock.MatchedBy(func(lines []domain.InvoiceLine) bool {
		return len(lines) == 2 && lines[0].Quantity.Equal(decimal.NewFromInt(3))
	})).Return(int64(11), nil)

	id, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ClientID:    7,
		Description: "Travaux salle de bain",
		Date:        "2025-03-15",
		Lines: linesPtr(
			dto.InvoiceLineRequest{Description: "Carrelage", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(50)},
			dto.InvoiceLineRequest{Description: "Peinture", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(120)},
		),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	invoiceRepo.AssertExpectations(t)
	clientRepo.AssertExpectations(t)
}

func TestCreateInvoice_EmptyLineSetIsAllowed(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewInvoiceService(invoiceRepo, clientRepo)

	clientRepo.On("FindClientByID", mock.Anything, int64(7)).Return(&domain.Client{ClientID: 7}, nil)
	invoiceRepo.On("SaveInvoice", mock.Anything, mock.Anything, mock.MatchedBy(func(lines []domain.InvoiceLine) bool {
		return len(lines) == 0
	})).Return(int64(12), nil)

	id, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ClientID:    7,
		Description: "Acompte",
		Date:        "2025-03-15",
		Lines:       linesPtr(),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestCreateInvoice_UnknownClient(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewInvoiceService(invoiceRepo, clientRepo)

	clientRepo.On("FindClientByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ClientID:    99,
		Description: "x",
		Date:        "2025-03-15",
		Lines:       linesPtr(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	invoiceRepo.AssertNotCalled(t, "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateInvoice_BadDate(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewInvoiceService(invoiceRepo, clientRepo)

	_, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ClientID:    7,
		Description: "x",
		Date:        "15/03/2025",
		Lines:       linesPtr(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateInvoice_NegativeQuantity(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewInvoiceService(invoiceRepo, clientRepo)

	clientRepo.On("FindClientByID", mock.Anything, int64(7)).Return(&domain.Client{ClientID: 7}, nil)

	_, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ClientID:    7,
		Description: "x",
		Date:        "2025-03-15",
		Lines: linesPtr(
			dto.InvoiceLineRequest{Description: "Bad", Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(10)},
		),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateInvoice_ReplacesLineSet(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewInvoiceService(invoiceRepo, clientRepo)

	clientRepo.On("FindClientByID", mock.Anything, int64(7)).Return(&domain.Client{ClientID: 7}, nil)
	invoiceRepo.On("UpdateInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == 11 && inv.ClientID == 7
	}), mock.MatchedBy(func(lines []domain.InvoiceLine) bool {
		return len(lines) == 1 && lines[0].Description == "Nouvelle ligne"
	})).Return(nil)

	err := svc.UpdateInvoice(context.Background(), 11, dto.UpdateInvoiceRequest{
		ClientID:    7,
		Description: "Révision",
		Date:        "2025-04-01",
		Lines: linesPtr(
			dto.InvoiceLineRequest{Description: "Nouvelle ligne", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(80)},
		),
	})

	require.NoError(t, err)
	invoiceRepo.AssertExpectations(t)
}

func TestUpdateInvoice_NotFoundPropagates(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewInvoiceService(invoiceRepo, clientRepo)

	clientRepo.On("FindClientByID", mock.Anything, int64(7)).Return(&domain.Client{ClientID: 7}, nil)
	invoiceRepo.On("UpdateInvoice", mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.NewNotFoundError("invoice not found for update"))

	err := svc.UpdateInvoice(context.Background(), 404, dto.UpdateInvoiceRequest{
		ClientID:    7,
		Description: "x",
		Date:        "2025-04-01",
		Lines:       linesPtr(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
