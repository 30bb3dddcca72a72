package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
	"github.com/tbensalah/gestion_chantier_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Session-protected API v1 routes
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.SessionAuthMiddleware(cfg))

	registerClientRoutes(v1, services.Client)
	registerEmployeeRoutes(v1, services.Employee)
	registerAttendanceRoutes(v1, services.Attendance)
	registerMeterWorkRoutes(v1, services.MeterWork)
	registerQuoteRoutes(v1, services.Quote)
	registerInvoiceRoutes(v1, services.Invoice)
	registerMaterialRoutes(v1, services.Material)
	registerPaymentRoutes(v1, services.Payment)
}
