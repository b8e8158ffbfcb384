package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/auth"
	"github.com/frahmantamala/gym-management/internal/checkin"
	"github.com/frahmantamala/gym-management/internal/class"
	"github.com/frahmantamala/gym-management/internal/employee"
	"github.com/frahmantamala/gym-management/internal/equipment"
	"github.com/frahmantamala/gym-management/internal/membership"
	"github.com/frahmantamala/gym-management/internal/payment"
	"github.com/frahmantamala/gym-management/internal/stats"
	"github.com/frahmantamala/gym-management/internal/transport/middleware"
	"github.com/frahmantamala/gym-management/internal/transport/swagger"
	"github.com/frahmantamala/gym-management/internal/user"
)

// Handlers bundles every module handler the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	User       *user.Handler
	Membership *membership.Handler
	Employee   *employee.Handler
	CheckIn    *checkin.Handler
	Payment    *payment.Handler
	Class      *class.Handler
	Equipment  *equipment.Handler
	Stats      *stats.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, metricsCfg internal.MetricsConfig, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	if metricsCfg.Enabled {
		router.Use(middleware.Metrics)
		router.Handle(metricsCfg.Path, promhttp.Handler())
	}

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Registration and the plan catalog are public
		r.Post("/users", h.User.Register)
		r.Get("/memberships", h.Membership.ListPlans)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/", h.User.ListUsers)
				ur.Get("/{id}", h.User.GetUser)
				ur.Patch("/{id}", h.User.UpdateUser)
				ur.With(h.Auth.RequireAdmin).Delete("/{id}", h.User.DeleteUser)
			})

			pr.With(h.Auth.RequireStaff).Post("/memberships", h.Membership.CreatePlan)

			pr.Route("/user-memberships", func(mr chi.Router) {
				mr.Post("/", h.Membership.Subscribe)
				mr.Get("/", h.Membership.ListUserMemberships)
				mr.Get("/{id}", h.Membership.GetUserMembership)
				mr.Patch("/{id}", h.Membership.ChangePlanOrDates)
				mr.Delete("/{id}", h.Membership.Deactivate)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Use(h.Auth.RequireStaff)
				er.Post("/", h.Employee.Hire)
				er.Get("/", h.Employee.ListEmployees)
				er.Get("/{id}", h.Employee.GetEmployee)
				er.Patch("/{id}", h.Employee.UpdateEmployee)
				er.With(h.Auth.RequireAdmin).Delete("/{id}", h.Employee.Terminate)
			})

			pr.Get("/trainers", h.Employee.ListTrainers)
			pr.Get("/trainers/{id}", h.Employee.GetTrainer)
			pr.Get("/receptionists", h.Employee.ListReceptionists)

			pr.Route("/check-ins", func(cr chi.Router) {
				cr.Post("/", h.CheckIn.CheckIn)
				cr.Get("/", h.CheckIn.ListCheckIns)
				cr.Get("/{id}", h.CheckIn.GetCheckIn)
			})

			pr.Route("/payments", func(pmr chi.Router) {
				pmr.Use(h.Auth.RequireStaff)
				pmr.Post("/", h.Payment.RecordPayment)
				pmr.Get("/", h.Payment.ListPayments)
				pmr.Get("/{id}", h.Payment.GetPayment)
			})

			pr.Route("/classes", func(clr chi.Router) {
				clr.Get("/", h.Class.ListClasses)
				clr.Get("/{id}", h.Class.GetClass)
				clr.With(h.Auth.RequireStaff).Post("/", h.Class.CreateClass)
				clr.With(h.Auth.RequireStaff).Patch("/{id}", h.Class.UpdateClass)
				clr.With(h.Auth.RequireStaff).Delete("/{id}", h.Class.DeleteClass)
			})

			pr.Route("/equipment", func(eqr chi.Router) {
				eqr.Use(h.Auth.RequireStaff)
				eqr.Post("/", h.Equipment.CreateEquipment)
				eqr.Get("/", h.Equipment.ListEquipment)
				eqr.Get("/{id}", h.Equipment.GetEquipment)
				eqr.Patch("/{id}", h.Equipment.UpdateEquipment)
				eqr.Delete("/{id}", h.Equipment.DeleteEquipment)
				eqr.Post("/{id}/maintenance", h.Equipment.AddMaintenance)
				eqr.Get("/{id}/maintenance", h.Equipment.ListMaintenance)
			})

			pr.With(h.Auth.RequireStaff).Get("/stats", h.Stats.Dashboard)
		})
	})
}
