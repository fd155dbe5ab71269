package repository

import (
	"context"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// StockAllocationRepository define el puerto de persistencia para StockAllocation.
type StockAllocationRepository interface {
	ExistsForOrder(ctx context.Context, orderID int64) (bool, error)
	// Create inserta la asignación y deja el ID generado en allocation.ID.
	// Una segunda asignación para la misma orden devuelve un error domain.Conflict.
	Create(ctx context.Context, allocation *entity.StockAllocation) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.StockAllocation, error)
}
