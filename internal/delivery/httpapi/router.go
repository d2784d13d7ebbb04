package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.CreateOrderItem)
			r.Get("/{itemID}", h.GetOrderItem)
			r.Get("/{itemID}/dispute", h.GetItemDispute)
			r.Post("/{itemID}/ship", h.MarkShipped)
			r.Post("/{itemID}/deliver", h.MarkDelivered)
			r.Post("/{itemID}/issue", h.MarkIssue)
		})

		r.Route("/disputes", func(r chi.Router) {
			r.Post("/", h.OpenDispute)
			r.Get("/", h.GetDisputes)
			r.Get("/{disputeID}", h.GetDispute)
			r.Post("/{disputeID}/resolve", h.ResolveDispute)
		})

		r.Route("/payouts", func(r chi.Router) {
			r.Post("/", h.MarkPaidOut)
			r.Get("/export", h.ExportPayoutsCSV)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.GetNotifications)
			r.Post("/{notificationID}/read", h.MarkNotificationRead)
		})
		r.Post("/users", h.RegisterUser)

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.CreateProduct)
			r.Get("/", h.GetProducts)
			r.Get("/{productID}", h.GetProduct)
		})
		r.Post("/sellers", h.CreateSellerProfile)
		r.Get("/sellers/{sellerID}", h.GetSellerProfile)
		r.Get("/sellers/{sellerID}/items", h.GetSellerItems)

		r.Post("/payments", h.InitiatePayment)
		r.Post("/webhooks/{provider}", h.PaymentWebhook)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
