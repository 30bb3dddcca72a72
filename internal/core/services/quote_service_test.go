package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/core/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/platform/config"
)

func testConfig() *config.Config {
	return &config.Config{DefaultTaxRate: 20}
}

func TestCreateQuote_ComputesTotalsServerSide(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewQuoteService(quoteRepo, clientRepo, testConfig())

	clientRepo.On("FindClientByID", mock.Anything, int64(3)).Return(&domain.Client{ClientID: 3}, nil)
	quoteRepo.On("SaveQuote", mock.Anything, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Subtotal.Equal(decimal.NewFromInt(500)) &&
			q.TaxAmount.Equal(decimal.NewFromInt(100)) &&
			q.Total.Equal(decimal.NewFromInt(600)) &&
			q.Status == domain.QuoteStatusPending &&
			q.ValidityDays == 30 &&
			q.Articles[0].Total.Equal(decimal.NewFromInt(200))
	})).Return(int64(21), nil)

	quote, err := svc.CreateQuote(context.Background(), dto.CreateQuoteRequest{
		ClientID: 3,
		Title:    "Devis cuisine",
		Articles: []dto.ArticleRequest{
			{Description: "Plan de travail", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
			{Description: "Pose", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(300)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), quote.QuoteID)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(600)))
	quoteRepo.AssertExpectations(t)
}

func TestCreateQuote_ExplicitTaxRateOverridesDefault(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewQuoteService(quoteRepo, clientRepo, testConfig())

	clientRepo.On("FindClientByID", mock.Anything, int64(3)).Return(&domain.Client{ClientID: 3}, nil)
	quoteRepo.On("SaveQuote", mock.Anything, mock.MatchedBy(func(q domain.Quote) bool {
		return q.TaxAmount.IsZero() && q.Total.Equal(q.Subtotal)
	})).Return(int64(22), nil)

	zero := decimal.Zero
	_, err := svc.CreateQuote(context.Background(), dto.CreateQuoteRequest{
		ClientID: 3,
		Title:    "Hors taxe",
		TaxRate:  &zero,
		Articles: []dto.ArticleRequest{
			{Description: "Ligne", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})

	require.NoError(t, err)
	quoteRepo.AssertExpectations(t)
}

func TestCreateQuote_DescriptionIsOptional(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewQuoteService(quoteRepo, clientRepo, testConfig())

	clientRepo.On("FindClientByID", mock.Anything, int64(3)).Return(&domain.Client{ClientID: 3}, nil)
	quoteRepo.On("SaveQuote", mock.Anything, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Description == ""
	})).Return(int64(23), nil)

	quote, err := svc.CreateQuote(context.Background(), dto.CreateQuoteRequest{
		ClientID: 3,
		Title:    "Sans description",
		Articles: []dto.ArticleRequest{
			{Description: "Ligne", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(23), quote.QuoteID)
	quoteRepo.AssertExpectations(t)
}

func TestCreateQuote_UnknownClient(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewQuoteService(quoteRepo, clientRepo, testConfig())

	clientRepo.On("FindClientByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.CreateQuote(context.Background(), dto.CreateQuoteRequest{
		ClientID: 99,
		Title:    "x",
		Articles: []dto.ArticleRequest{
			{Description: "Ligne", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	quoteRepo.AssertNotCalled(t, "SaveQuote", mock.Anything, mock.Anything)
}

func TestUpdateQuoteStatus(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	svc := services.NewQuoteService(quoteRepo, clientRepo, testConfig())

	quoteRepo.On("UpdateQuoteStatus", mock.Anything, int64(21), domain.QuoteStatusAccepted).Return(nil)

	err := svc.UpdateQuoteStatus(context.Background(), dto.UpdateQuoteStatusRequest{ID: 21, Status: "accepted"})
	require.NoError(t, err)
	quoteRepo.AssertExpectations(t)
}
