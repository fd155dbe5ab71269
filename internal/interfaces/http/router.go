package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Fulfillment FulfillmentService // realización según FULFILLMENT_MODE
	Procedure   FulfillmentService // siempre fulfill_order
	JWTSecret   string             // vacío = sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	warehouse := api.Group("/warehouse")
	if deps.JWTSecret != "" {
		warehouse.Use(AuthMiddleware(deps.JWTSecret))
	}

	handler := NewFulfillmentHandler(deps.Fulfillment, deps.Procedure)
	warehouse.Post("/", handler.Fulfill)
	warehouse.Post("/procedure", handler.FulfillWithProcedure)
	warehouse.Get("/allocations/:id", handler.GetAllocation)
}
