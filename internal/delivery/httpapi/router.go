package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sales", handler.ListSales)
		r.Post("/sales", handler.CreateSale)
		r.Get("/sales/{id}", handler.GetSale)
		r.Patch("/sales/{id}", handler.UpdateSale)
		r.Delete("/sales/{id}", handler.DeleteSale)

		r.Get("/customers", handler.ListCustomers)
		r.Post("/customers", handler.CreateCustomer)
		r.Get("/customers/{id}", handler.GetCustomer)
		r.Patch("/customers/{id}", handler.UpdateCustomer)
		r.Delete("/customers/{id}", handler.DeleteCustomer)

		r.Get("/referrers", handler.ListReferrers)
		r.Post("/referrers", handler.CreateReferrer)
		r.Get("/referrers/{id}", handler.GetReferrer)
		r.Patch("/referrers/{id}", handler.UpdateReferrer)
		r.Delete("/referrers/{id}", handler.DeleteReferrer)

		r.Get("/referrals", handler.ListReferrals)
		r.Post("/referrals", handler.CreateReferral)
		r.Get("/referrals/{id}", handler.GetReferral)
		r.Patch("/referrals/{id}", handler.UpdateReferral)
		r.Patch("/referrals/{id}/status", handler.UpdateReferralStatus)
		r.Delete("/referrals/{id}", handler.DeleteReferral)

		r.Get("/goals/progress", handler.GetGoalProgress)

		r.Get("/backup/export", handler.ExportBackup)
		r.Post("/backup/import", handler.ImportBackup)

		r.Get("/vin/{vin}", handler.DecodeVIN)
	})

	return r
}
