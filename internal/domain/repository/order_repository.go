package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// OrderRepository define el puerto para localizar y cerrar órdenes dentro de una transacción.
type OrderRepository interface {
	// FindMatchingForUpdate devuelve las órdenes con ese producto y cantidad exacta y bloquea sus filas
	// (SELECT FOR UPDATE). Devuelve como máximo limit filas.
	FindMatchingForUpdate(ctx context.Context, productID int64, amount, limit int) ([]*entity.Order, error)
	MarkFulfilled(ctx context.Context, orderID int64, at time.Time) error
}
