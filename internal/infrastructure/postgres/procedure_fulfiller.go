package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

var _ fulfillment.Fulfiller = (*ProcedureFulfiller)(nil)

// ProcedureFulfiller delega el cumplimiento completo a la función fulfill_order de PostgreSQL.
// Una sola sentencia: la función corre en una transacción implícita y cualquier RAISE la revierte.
type ProcedureFulfiller struct {
	q Querier
}

// NewProcedureFulfiller construye la realización por procedimiento almacenado.
func NewProcedureFulfiller(q Querier) *ProcedureFulfiller {
	return &ProcedureFulfiller{q: q}
}

// Fulfill invoca fulfill_order y traduce los SQLSTATE propios a errores de dominio.
func (f *ProcedureFulfiller) Fulfill(ctx context.Context, req fulfillment.Request) (int64, error) {
	var id int64
	err := f.q.QueryRow(ctx, `SELECT fulfill_order($1, $2, $3, $4)`,
		req.ProductID, req.WarehouseID, req.Amount, req.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, classifyPgError("fulfill_order", fmt.Errorf("fulfill_order: %w", err))
	}
	return id, nil
}
