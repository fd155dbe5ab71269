package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

var _ repository.StockAllocationRepository = (*StockAllocationRepo)(nil)

// StockAllocationRepo implementación de StockAllocationRepository sobre PostgreSQL (usable con pool o tx).
type StockAllocationRepo struct {
	q Querier
}

// NewStockAllocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAllocationRepository(q Querier) *StockAllocationRepo {
	return &StockAllocationRepo{q: q}
}

// ExistsForOrder indica si ya hay una asignación para la orden.
func (r *StockAllocationRepo) ExistsForOrder(ctx context.Context, orderID int64) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM stock_allocations WHERE order_id = $1)`, orderID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check allocation: %w", err)
	}
	return ok, nil
}

// Create inserta la asignación y captura el ID generado.
// La restricción UNIQUE(order_id) convierte una carrera perdida en domain.Conflict.
func (r *StockAllocationRepo) Create(ctx context.Context, a *entity.StockAllocation) error {
	query := `
		INSERT INTO stock_allocations (warehouse_id, product_id, order_id, amount, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.WarehouseID, a.ProductID, a.OrderID, a.Amount, a.Price, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(domain.ReasonAlreadyFulfilled)
		}
		return fmt.Errorf("insert allocation: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *StockAllocationRepo) GetByID(ctx context.Context, id int64) (*entity.StockAllocation, error) {
	query := `
		SELECT id, warehouse_id, product_id, order_id, amount, price, created_at
		FROM stock_allocations WHERE id = $1`
	var a entity.StockAllocation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.WarehouseID, &a.ProductID, &a.OrderID, &a.Amount, &a.Price, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allocation: %w", err)
	}
	return &a, nil
}
