package routers

import (
	"hospital-service/internal/app/services/billing"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, billingController *billing.BillingController) {
	router.Get("/", billingController.FindAll)
	router.Post("/", billingController.Create)
	router.Patch("/{billing_id}/status", billingController.UpdateStatus)
}
