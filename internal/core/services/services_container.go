package services

import (
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/platform/config"
)

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Client:     NewClientService(repos.ClientRepo),
		Employee:   NewEmployeeService(repos.EmployeeRepo, repos.AttendanceRepo, repos.MeterWorkRepo, repos.PaymentRepo),
		Attendance: NewAttendanceService(repos.AttendanceRepo, repos.EmployeeRepo),
		MeterWork:  NewMeterWorkService(repos.MeterWorkRepo, repos.EmployeeRepo),
		Quote:      NewQuoteService(repos.QuoteRepo, repos.ClientRepo, cfg),
		Invoice:    NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo),
		Material:   NewMaterialService(repos.MaterialRepo, repos.ClientRepo),
		Payment:    NewPaymentService(repos.PaymentRepo, repos.EmployeeRepo),
		User:       NewUserService(repos.UserRepo),
	}
}
