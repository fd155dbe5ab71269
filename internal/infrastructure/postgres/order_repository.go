package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL. Pensado para usarse con tx.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// FindMatchingForUpdate busca órdenes por producto y cantidad y bloquea las filas (SELECT FOR UPDATE).
// Una segunda transacción sobre la misma orden espera aquí hasta el Commit/Rollback de la primera.
// amount viaja como bigint: una cantidad fuera de INTEGER simplemente no encuentra orden.
func (r *OrderRepo) FindMatchingForUpdate(ctx context.Context, productID int64, amount, limit int) ([]*entity.Order, error) {
	query := `
		SELECT id, product_id, amount, created_at, fulfilled_at
		FROM orders WHERE product_id = $1 AND amount = $2::bigint
		ORDER BY id
		LIMIT $3
		FOR UPDATE`
	rows, err := r.q.Query(ctx, query, productID, amount, limit)
	if err != nil {
		return nil, fmt.Errorf("match orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("match orders: %w", err)
	}
	return list, nil
}

// MarkFulfilled fija fulfilled_at de la orden.
func (r *OrderRepo) MarkFulfilled(ctx context.Context, orderID int64, at time.Time) error {
	cmd, err := r.q.Exec(ctx, `UPDATE orders SET fulfilled_at = $2 WHERE id = $1`, orderID, at)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() != 1 {
		return fmt.Errorf("update order: %d filas afectadas", cmd.RowsAffected())
	}
	return nil
}
