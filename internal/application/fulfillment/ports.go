package fulfillment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

// Request es la solicitud de cumplimiento ya validada estructuralmente por la capa HTTP.
type Request struct {
	ProductID   int64
	WarehouseID int64
	Amount      int
	CreatedAt   time.Time
}

// Fulfiller cumple una orden de forma atómica y devuelve el ID de la asignación creada.
// Los errores son *domain.Error; el almacén queda intacto ante cualquier fallo.
type Fulfiller interface {
	Fulfill(ctx context.Context, req Request) (int64, error)
}

// UnitOfWork agrupa los repositorios atados a una misma transacción de BD.
// Se pasa por referencia a cada paso del flujo; su ciclo de vida lo controla TxRunner.
type UnitOfWork struct {
	Products    repository.ProductRepository
	Warehouses  repository.WarehouseRepository
	Orders      repository.OrderRepository
	Allocations repository.StockAllocationRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(uow *UnitOfWork) error) error
}

// AllocationCreated evento emitido tras el Commit de una asignación.
type AllocationCreated struct {
	EventID      string          `json:"eventId"`
	AllocationID int64           `json:"allocationId"`
	OrderID      int64           `json:"orderId"`
	ProductID    int64           `json:"productId"`
	WarehouseID  int64           `json:"warehouseId"`
	Amount       int             `json:"amount"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// EventPublisher publica eventos de cumplimiento hacia el exterior (Kafka o no-op).
type EventPublisher interface {
	PublishAllocationCreated(ctx context.Context, evt AllocationCreated) error
}
