package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/gestorfin/dre-management/internal/account"
	"github.com/gestorfin/dre-management/internal/auth"
	"github.com/gestorfin/dre-management/internal/company"
	"github.com/gestorfin/dre-management/internal/costcenter"
	"github.com/gestorfin/dre-management/internal/entry"
	"github.com/gestorfin/dre-management/internal/paymentmethod"
	"github.com/gestorfin/dre-management/internal/report"
	"github.com/gestorfin/dre-management/internal/transport/middleware"
	"github.com/gestorfin/dre-management/internal/transport/swagger"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Auth          *auth.Handler
	Company       *company.Handler
	Account       *account.Handler
	CostCenter    *costcenter.Handler
	Entry         *entry.Handler
	PaymentMethod *paymentmethod.Handler
	Report        *report.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware())

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.Auth.Register)
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
		})

		// Everything below requires an authenticated user.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.Auth.Me)

			pr.Route("/companies", func(cr chi.Router) {
				cr.Post("/", h.Company.CreateCompany)
				cr.Get("/", h.Company.ListMyCompanies)
			})

			pr.Route("/accounts", func(ar chi.Router) {
				ar.Post("/", h.Account.CreateAccount)
				ar.Get("/", h.Account.ListAccounts)
			})

			pr.Route("/cost-centers", func(ccr chi.Router) {
				ccr.Post("/", h.CostCenter.CreateCostCenter)
				ccr.Get("/", h.CostCenter.ListCostCenters)
				ccr.Put("/{id}", h.CostCenter.UpdateCostCenter)
				ccr.Delete("/{id}", h.CostCenter.DeleteCostCenter)
			})

			pr.Route("/entries", func(er chi.Router) {
				er.Post("/", h.Entry.CreateEntry)
				er.Get("/", h.Entry.ListEntries)
				er.Put("/{id}", h.Entry.UpdateEntry)
				er.Delete("/{id}", h.Entry.DeleteEntry)
			})

			pr.Route("/payment-methods", func(pmr chi.Router) {
				pmr.Post("/", h.PaymentMethod.CreatePaymentMethod)
				pmr.Get("/", h.PaymentMethod.ListPaymentMethods)
				pmr.Put("/{id}", h.PaymentMethod.UpdatePaymentMethod)
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/dre", h.Report.Statement)
				rr.Get("/dre-by-cost-center", h.Report.StatementByCostCenter)
				rr.Get("/dre-series", h.Report.Series)
			})
		})
	})
}
