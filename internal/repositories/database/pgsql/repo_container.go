package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ClientRepo:     newPgxClientRepository(pool),
		EmployeeRepo:   newPgxEmployeeRepository(pool),
		AttendanceRepo: newPgxAttendanceRepository(pool),
		MeterWorkRepo:  newPgxMeterWorkRepository(pool),
		QuoteRepo:      newPgxQuoteRepository(pool),
		InvoiceRepo:    newPgxInvoiceRepository(pool),
		MaterialRepo:   newPgxMaterialRepository(pool),
		PaymentRepo:    newPgxPaymentRepository(pool),
		UserRepo:       newPgxUserRepository(pool),
	}
}
