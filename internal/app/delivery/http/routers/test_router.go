package routers

import (
	"hospital-service/internal/app/services/tests"

	"github.com/go-chi/chi/v5"
)

func attachTestRoutes(router chi.Router, testController *tests.TestController) {
	router.Get("/", testController.FindAll)
	router.Post("/", testController.Create)
	router.Patch("/{test_id}/status", testController.UpdateStatus)
}
