package dto

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// FulfillOrderRequest body para POST /api/warehouse.
type FulfillOrderRequest struct {
	ProductID   int64     `json:"productId"`
	WarehouseID int64     `json:"warehouseId"`
	Amount      int       `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate aplica la validación estructural del request (campos requeridos y rangos).
// amount se acota a INTEGER, el tipo de orders.amount.
// Devuelve el nombre del primer campo inválido o "" si el request es válido.
func (r FulfillOrderRequest) Validate() string {
	switch {
	case r.ProductID <= 0:
		return "productId"
	case r.WarehouseID <= 0:
		return "warehouseId"
	case r.Amount <= 0 || r.Amount > math.MaxInt32:
		return "amount"
	case r.CreatedAt.IsZero():
		return "createdAt"
	}
	return ""
}

// FulfillOrderResponse respuesta de un cumplimiento exitoso.
type FulfillOrderResponse struct {
	AllocationID int64 `json:"allocationId"`
}

// AllocationResponse representación de una asignación de stock.
type AllocationResponse struct {
	ID          int64           `json:"id"`
	WarehouseID int64           `json:"warehouseId"`
	ProductID   int64           `json:"productId"`
	OrderID     int64           `json:"orderId"`
	Amount      int             `json:"amount"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}
