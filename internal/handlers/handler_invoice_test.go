package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/utils"
)

// --- Mock InvoiceService ---

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, req dto.UpdateInvoiceRequest) error {
	args := m.Called(ctx, invoiceID, req)
	return args.Error(0)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, clientID *int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

func sessionCookie(t *testing.T, secret, name string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateSessionToken(1, secret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: name, Value: token}
}

func TestCreateInvoice_RequiresSession(t *testing.T) {
	cfg := testAuthConfig()
	r := setupRouterWithServices(cfg, &portssvc.ServiceContainer{User: new(MockUserService), Invoice: new(MockInvoiceService)})

	body, _ := json.Marshal(map[string]any{"clientId": 1, "description": "x", "date": "2025-03-15", "lines": []any{}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateInvoice_Handler(t *testing.T) {
	invoiceService := new(MockInvoiceService)
	cfg := testAuthConfig()
	r := setupRouterWithServices(cfg, &portssvc.ServiceContainer{User: new(MockUserService), Invoice: invoiceService})

	invoiceService.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.ClientID == 7 && req.Lines != nil && len(*req.Lines) == 1
	})).Return(int64(11), nil)

	body, _ := json.Marshal(map[string]any{
		"clientId":    7,
		"description": "Travaux",
		"date":        "2025-03-15",
		"lines": []map[string]any{
			{"description": "Carrelage", "quantity": "3", "unitPrice": "50"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, cfg.JWTSecret, cfg.SessionCookieName))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp["id"])
	invoiceService.AssertExpectations(t)
}

func TestCreateInvoice_MissingLinesFieldRejected(t *testing.T) {
	invoiceService := new(MockInvoiceService)
	cfg := testAuthConfig()
	r := setupRouterWithServices(cfg, &portssvc.ServiceContainer{User: new(MockUserService), Invoice: invoiceService})

	// No "lines" key at all: the payload must be rejected before the service.
	body, _ := json.Marshal(map[string]any{
		"clientId":    7,
		"description": "Travaux",
		"date":        "2025-03-15",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, cfg.JWTSecret, cfg.SessionCookieName))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	invoiceService.AssertNotCalled(t, "CreateInvoice", mock.Anything, mock.Anything)
}

func TestDeleteInvoice_NotFound(t *testing.T) {
	invoiceService := new(MockInvoiceService)
	cfg := testAuthConfig()
	r := setupRouterWithServices(cfg, &portssvc.ServiceContainer{User: new(MockUserService), Invoice: invoiceService})

	invoiceService.On("DeleteInvoice", mock.Anything, int64(404)).
		Return(apperrors.NewNotFoundError("invoice not found for delete"))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/invoices/404", nil)
	req.AddCookie(sessionCookie(t, cfg.JWTSecret, cfg.SessionCookieName))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListInvoices_DerivedTotals(t *testing.T) {
	invoiceService := new(MockInvoiceService)
	cfg := testAuthConfig()
	r := setupRouterWithServices(cfg, &portssvc.ServiceContainer{User: new(MockUserService), Invoice: invoiceService})

	invoiceService.On("ListInvoices", mock.Anything, mock.Anything).
		Return([]domain.Invoice{
			{
				InvoiceID:   11,
				ClientID:    7,
				InvoiceDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
				Lines: []domain.InvoiceLine{
					{LineID: 1, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(50)},
					{LineID: 2, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
				},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	req.AddCookie(sessionCookie(t, cfg.JWTSecret, cfg.SessionCookieName))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].Total.Equal(decimal.NewFromInt(350)))
	assert.True(t, resp[0].Lines[0].Total.Equal(decimal.NewFromInt(150)))
}
