package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo     ClientRepositoryFacade
	EmployeeRepo   EmployeeRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	MeterWorkRepo  MeterWorkRepositoryFacade
	QuoteRepo      QuoteRepositoryFacade
	InvoiceRepo    InvoiceRepositoryFacade
	MaterialRepo   MaterialRepositoryFacade
	PaymentRepo    PaymentRepositoryFacade
	UserRepo       UserRepositoryFacade
}
