package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fulfillment-api/internal/application/dto"
)

// FulfillmentService es lo que el handler necesita del caso de uso.
type FulfillmentService interface {
	Execute(ctx context.Context, in dto.FulfillOrderRequest) (*dto.FulfillOrderResponse, error)
	GetAllocation(ctx context.Context, id int64) (*dto.AllocationResponse, error)
}

// FulfillmentHandler maneja las peticiones HTTP de cumplimiento de órdenes.
type FulfillmentHandler struct {
	uc        FulfillmentService
	procedure FulfillmentService
}

// NewFulfillmentHandler construye el handler. uc atiende POST /api/warehouse según FULFILLMENT_MODE;
// procedure atiende siempre POST /api/warehouse/procedure.
func NewFulfillmentHandler(uc, procedure FulfillmentService) *FulfillmentHandler {
	return &FulfillmentHandler{uc: uc, procedure: procedure}
}

// Fulfill godoc
// @Summary      Cumplir una orden en una bodega
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FulfillOrderRequest  true  "productId, warehouseId, amount (> 0), createdAt"
// @Success      201   {object}  dto.FulfillOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/warehouse [post]
func (h *FulfillmentHandler) Fulfill(c *fiber.Ctx) error {
	return h.fulfill(c, h.uc)
}

// FulfillWithProcedure godoc
// @Summary      Cumplir una orden vía procedimiento almacenado
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FulfillOrderRequest  true  "productId, warehouseId, amount (> 0), createdAt"
// @Success      201   {object}  dto.FulfillOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/warehouse/procedure [post]
func (h *FulfillmentHandler) FulfillWithProcedure(c *fiber.Ctx) error {
	return h.fulfill(c, h.procedure)
}

func (h *FulfillmentHandler) fulfill(c *fiber.Ctx, svc FulfillmentService) error {
	var in dto.FulfillOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if field := in.Validate(); field != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: field + " es requerido y debe ser válido"})
	}
	out, err := svc.Execute(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAllocation godoc
// @Summary      Obtener asignación de stock por ID
// @Tags         warehouse
// @Produce      json
// @Param        id   path  int  true  "ID de la asignación"
// @Success      200  {object}  dto.AllocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/allocations/{id} [get]
func (h *FulfillmentHandler) GetAllocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetAllocation(c.UserContext(), int64(id))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
