package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAllocation registra la entrada de stock de una orden en una bodega.
// Su existencia para una orden es la prueba de que la orden fue cumplida (máximo una por orden).
type StockAllocation struct {
	ID          int64
	WarehouseID int64
	ProductID   int64
	OrderID     int64
	Amount      int
	Price       decimal.Decimal // precio unitario × cantidad
	CreatedAt   time.Time
}

// TotalPrice calcula el precio total de una asignación.
func TotalPrice(unitPrice decimal.Decimal, amount int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(amount)))
}
