package pgsql_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	"github.com/tbensalah/gestion_chantier_app/internal/repositories/database/pgsql"
	"github.com/tbensalah/gestion_chantier_app/pkg/database"
)

// setupTestRepos connects to the database named by TEST_DATABASE_URL and
// applies the migrations. Tests relying on it are skipped when the variable
// is unset.
func setupTestRepos(t *testing.T) *portsrepo.RepositoryProvider {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	migrationDB, err := sql.Open("pgx", databaseURL)
	require.NoError(t, err)
	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	require.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations", "postgres", driver)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("applying migrations: %v", err)
	}
	srcErr, dbErr := m.Close()
	require.NoError(t, srcErr)
	require.NoError(t, dbErr)

	pool, err := database.NewPgxPool(context.Background(), databaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	return pgsql.NewRepositoryProvider(pool)
}

func createTestClient(t *testing.T, repos *portsrepo.RepositoryProvider) int64 {
	t.Helper()
	clientID, err := repos.ClientRepo.SaveClient(context.Background(), domain.Client{
		LastName:  "Haddad",
		FirstName: "Nora",
	})
	require.NoError(t, err)
	return clientID
}

func createTestEmployee(t *testing.T, repos *portsrepo.RepositoryProvider, employeeType domain.EmployeeType) int64 {
	t.Helper()
	employee := domain.Employee{
		LastName:  "Benali",
		FirstName: "Karim",
		Type:      employeeType,
	}
	if employeeType == domain.EmployeeTypeDaily {
		r := decimal.NewFromInt(100)
		employee.DailyRate = &r
	}
	employeeID, err := repos.EmployeeRepo.SaveEmployee(context.Background(), employee)
	require.NoError(t, err)
	return employeeID
}

func TestSaveInvoice_FailedLineInsertRollsBackInvoice(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	clientID := createTestClient(t, repos)

	invoice := domain.Invoice{
		ClientID:    clientID,
		Description: "Chantier salle de bain",
		InvoiceDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	// The second line overflows NUMERIC(12,3), so its INSERT fails after
	// the invoice row and the first line were already written in the tx.
	lines := []domain.InvoiceLine{
		{Description: "Carrelage", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(50)},
		{Description: "Pose", Quantity: decimal.New(1, 13), UnitPrice: decimal.NewFromInt(50)},
	}

	_, err := repos.InvoiceRepo.SaveInvoice(ctx, invoice, lines)
	require.Error(t, err)

	invoices, err := repos.InvoiceRepo.FindInvoices(ctx, &clientID)
	require.NoError(t, err)
	assert.Empty(t, invoices, "a failed line insert must leave no invoice behind")
}

func TestUpdateInvoice_FailedLineInsertKeepsOldLineSet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	clientID := createTestClient(t, repos)

	invoice := domain.Invoice{
		ClientID:    clientID,
		InvoiceDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	originalLines := []domain.InvoiceLine{
		{Description: "Plan de travail", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
	}
	invoiceID, err := repos.InvoiceRepo.SaveInvoice(ctx, invoice, originalLines)
	require.NoError(t, err)

	invoice.InvoiceID = invoiceID
	err = repos.InvoiceRepo.UpdateInvoice(ctx, invoice, []domain.InvoiceLine{
		{Description: "Remplacement", Quantity: decimal.New(1, 13), UnitPrice: decimal.NewFromInt(10)},
	})
	require.Error(t, err)

	found, err := repos.InvoiceRepo.FindInvoiceByID(ctx, invoiceID)
	require.NoError(t, err)
	assert.Empty(t, found.Description)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, "Plan de travail", found.Lines[0].Description)
}

func TestUpsertAttendance_ConvergesToOneRow(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	employeeID := createTestEmployee(t, repos, domain.EmployeeTypeDaily)
	workDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repos.AttendanceRepo.UpsertAttendance(ctx, employeeID, workDate, true))
	require.NoError(t, repos.AttendanceRepo.UpsertAttendance(ctx, employeeID, workDate, false))

	records, err := repos.AttendanceRepo.FindAttendanceByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Present, "the last write must win")
}

func TestSaveQuote_EmptyDescriptionAccepted(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	clientID := createTestClient(t, repos)

	quoteID, err := repos.QuoteRepo.SaveQuote(ctx, domain.Quote{
		ClientID: clientID,
		Title:    "Devis terrasse",
		Articles: []domain.Article{
			{Description: "Dalle", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(30), Total: decimal.NewFromInt(300)},
		},
		Subtotal:     decimal.NewFromInt(300),
		TaxAmount:    decimal.NewFromInt(60),
		Total:        decimal.NewFromInt(360),
		Status:       domain.QuoteStatusPending,
		ValidityDays: 30,
	})
	require.NoError(t, err)
	assert.Positive(t, quoteID)

	quotes, err := repos.QuoteRepo.FindQuotes(ctx, &clientID)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Empty(t, quotes[0].Description)
	assert.True(t, quotes[0].Total.Equal(decimal.NewFromInt(360)))
}
