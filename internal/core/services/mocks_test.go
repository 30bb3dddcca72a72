package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
)

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) (int64, error) {
	args := m.Called(ctx, client)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (int64, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error) {
	args := m.Called(ctx, employeeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

// --- Mock AttendanceRepository ---

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) UpsertAttendance(ctx context.Context, employeeID int64, workDate time.Time, present bool) error {
	args := m.Called(ctx, employeeID, workDate, present)
	return args.Error(0)
}

func (m *MockAttendanceRepository) FindAttendance(ctx context.Context, filter portsrepo.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

var _ portsrepo.AttendanceRepositoryFacade = (*MockAttendanceRepository)(nil)

// --- Mock MeterWorkRepository ---

type MockMeterWorkRepository struct {
	mock.Mock
}

func (m *MockMeterWorkRepository) SaveMeterWork(ctx context.Context, record domain.MeterWorkRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMeterWorkRepository) FindMeterWork(ctx context.Context, filter portsrepo.MeterWorkFilter) ([]domain.MeterWorkRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MeterWorkRecord), args.Error(1)
}

func (m *MockMeterWorkRepository) FindMeterWorkByEmployee(ctx context.Context, employeeID int64) ([]domain.MeterWorkRecord, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MeterWorkRecord), args.Error(1)
}

var _ portsrepo.MeterWorkRepositoryFacade = (*MockMeterWorkRepository)(nil)

// --- Mock QuoteRepository ---

type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) (int64, error) {
	args := m.Called(ctx, quote)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuoteRepository) FindQuotes(ctx context.Context, clientID *int64) ([]domain.Quote, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID int64, status domain.QuoteStatus) error {
	args := m.Called(ctx, quoteID, status)
	return args.Error(0)
}

var _ portsrepo.QuoteRepositoryFacade = (*MockQuoteRepository)(nil)

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) (int64, error) {
	args := m.Called(ctx, invoice, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error {
	args := m.Called(ctx, invoice, lines)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context, clientID *int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

// --- Mock MaterialRepository ---

type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) SaveStep(ctx context.Context, step domain.MaterialStep, descriptions []domain.MaterialDescription) (int64, error) {
	args := m.Called(ctx, step, descriptions)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaterialRepository) UpdateStep(ctx context.Context, step domain.MaterialStep, descriptions []domain.MaterialDescription) error {
	args := m.Called(ctx, step, descriptions)
	return args.Error(0)
}

func (m *MockMaterialRepository) DeleteStep(ctx context.Context, stepID int64) error {
	args := m.Called(ctx, stepID)
	return args.Error(0)
}

func (m *MockMaterialRepository) FindStepsByClient(ctx context.Context, clientID int64) ([]domain.MaterialStep, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialStep), args.Error(1)
}

var _ portsrepo.MaterialRepositoryFacade = (*MockMaterialRepository)(nil)

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPayments(ctx context.Context, employeeID *int64) ([]domain.Payment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)
