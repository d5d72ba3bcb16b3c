package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Payroll        *handlers.PayrollHandler
	Claims         *handlers.ClaimsHandler
	Documents      *handlers.DocumentsHandler
	Benefits       *handlers.BenefitsHandler
	Users          *handlers.UsersHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	mw := cfg.AuthMiddleware
	api := app.Group("", mw.Authenticate)
	can := mw.RequirePermission

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/verify-2fa", cfg.Auth.VerifyTwoFactor)
	authGroup.Post("/logout", mw.RequireAuth(), cfg.Auth.Logout)
	authGroup.Get("/me", mw.RequireAuth(), cfg.Auth.Me)

	employees := api.Group("/employees")
	employees.Get("/", can(domain.PermEmployeesRead), cfg.Employees.List)
	employees.Post("/", can(domain.PermEmployeesWrite), cfg.Employees.Create)
	employees.Get("/:id", can(domain.PermEmployeesRead), cfg.Employees.Get)
	employees.Put("/:id", can(domain.PermEmployeesWrite), cfg.Employees.Update)
	employees.Delete("/:id", can(domain.PermEmployeesDelete), cfg.Employees.Delete)

	payroll := api.Group("/payroll")
	payroll.Get("/", can(domain.PermPayrollRead), cfg.Payroll.List)
	payroll.Post("/", can(domain.PermPayrollWrite), cfg.Payroll.Create)
	payroll.Get("/:id", can(domain.PermPayrollRead), cfg.Payroll.Get)
	payroll.Put("/:id", can(domain.PermPayrollWrite), cfg.Payroll.Update)
	payroll.Delete("/:id", can(domain.PermPayrollDelete), cfg.Payroll.Delete)

	claims := api.Group("/claims")
	claims.Get("/", can(domain.PermClaimsRead), cfg.Claims.List)
	claims.Post("/", can(domain.PermClaimsWrite), cfg.Claims.Create)
	claims.Get("/:id", can(domain.PermClaimsRead), cfg.Claims.Get)
	claims.Put("/:id", can(domain.PermClaimsWrite), cfg.Claims.Update)
	claims.Delete("/:id", can(domain.PermClaimsDelete), cfg.Claims.Delete)

	documents := api.Group("/documents")
	documents.Get("/", can(domain.PermDocumentsRead), cfg.Documents.List)
	documents.Post("/", can(domain.PermDocumentsWrite), cfg.Documents.Create)
	documents.Get("/:id", can(domain.PermDocumentsRead), cfg.Documents.Get)
	documents.Delete("/:id", can(domain.PermDocumentsDelete), cfg.Documents.Delete)

	hmo := api.Group("/hmo")
	hmo.Get("/", can(domain.PermBenefitsRead), cfg.Benefits.List)
	hmo.Post("/", can(domain.PermBenefitsWrite), cfg.Benefits.Create)
	hmo.Get("/:id", can(domain.PermBenefitsRead), cfg.Benefits.Get)
	hmo.Put("/:id", can(domain.PermBenefitsWrite), cfg.Benefits.Update)
	hmo.Delete("/:id", can(domain.PermBenefitsDelete), cfg.Benefits.Delete)

	users := api.Group("/users")
	users.Get("/", can(domain.PermUsersRead), cfg.Users.List)
	users.Post("/", can(domain.PermUsersWrite), cfg.Users.Create)
	users.Delete("/:id", can(domain.PermUsersDelete), cfg.Users.Deactivate)

	api.Get("/reports", can(domain.PermReportsRead), cfg.Reports.Get)

	api.Get("/profile", can(domain.PermProfileRead), cfg.Employees.Profile)
}
