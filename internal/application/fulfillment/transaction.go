package fulfillment

import (
	"context"
	"time"

	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

var _ Fulfiller = (*TransactionalFulfiller)(nil)

// TransactionalFulfiller cumple la orden con una secuencia de consultas dentro de una transacción:
// producto → bodega → cantidad → orden (SELECT FOR UPDATE) → asignación previa → UPDATE orden → INSERT asignación → Commit.
type TransactionalFulfiller struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewTransactionalFulfiller construye la realización transaccional.
func NewTransactionalFulfiller(txRunner TxRunner) *TransactionalFulfiller {
	return &TransactionalFulfiller{txRunner: txRunner, now: time.Now}
}

// Fulfill ejecuta los pasos en orden; el primer fallo aborta y TxRunner hace Rollback.
func (f *TransactionalFulfiller) Fulfill(ctx context.Context, req Request) (int64, error) {
	// TIMESTAMPTZ guarda microsegundos; se compara con la misma precisión que fulfill_order.
	req.CreatedAt = req.CreatedAt.Truncate(time.Microsecond)

	var allocationID int64
	err := f.txRunner.Run(ctx, func(uow *UnitOfWork) error {
		product, err := validateProduct(ctx, uow, req.ProductID)
		if err != nil {
			return err
		}
		if err := validateWarehouse(ctx, uow, req.WarehouseID); err != nil {
			return err
		}
		if req.Amount <= 0 {
			return domain.Validation(domain.FieldAmount)
		}
		order, err := matchOrder(ctx, uow, req)
		if err != nil {
			return err
		}
		exists, err := uow.Allocations.ExistsForOrder(ctx, order.ID)
		if err != nil {
			return domain.Internal("check allocation", err)
		}
		if exists {
			return domain.Conflict(domain.ReasonAlreadyFulfilled)
		}

		now := f.now()
		if err := uow.Orders.MarkFulfilled(ctx, order.ID, now); err != nil {
			return domain.Internal("mark order fulfilled", err)
		}
		allocation := &entity.StockAllocation{
			WarehouseID: req.WarehouseID,
			ProductID:   req.ProductID,
			OrderID:     order.ID,
			Amount:      req.Amount,
			Price:       entity.TotalPrice(product.Price, req.Amount),
			CreatedAt:   now,
		}
		if err := uow.Allocations.Create(ctx, allocation); err != nil {
			return domain.Internal("insert allocation", err)
		}
		allocationID = allocation.ID
		return nil
	})
	if err != nil {
		return 0, domain.Internal("fulfill order", err)
	}
	return allocationID, nil
}

func validateProduct(ctx context.Context, uow *UnitOfWork, id int64) (*entity.Product, error) {
	product, err := uow.Products.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("get product", err)
	}
	if product == nil {
		return nil, domain.NotFound(domain.SubjectProduct)
	}
	return product, nil
}

func validateWarehouse(ctx context.Context, uow *UnitOfWork, id int64) error {
	ok, err := uow.Warehouses.Exists(ctx, id)
	if err != nil {
		return domain.Internal("get warehouse", err)
	}
	if !ok {
		return domain.NotFound(domain.SubjectWarehouse)
	}
	return nil
}

// matchOrder bloquea hasta dos candidatas: más de una es un fallo de integridad de datos.
func matchOrder(ctx context.Context, uow *UnitOfWork, req Request) (*entity.Order, error) {
	orders, err := uow.Orders.FindMatchingForUpdate(ctx, req.ProductID, req.Amount, 2)
	if err != nil {
		return nil, domain.Internal("match order", err)
	}
	switch len(orders) {
	case 0:
		return nil, domain.NotFound(domain.SubjectOrder)
	case 1:
	default:
		return nil, domain.Internal(domain.ReasonDuplicateOrderRows, nil)
	}
	order := orders[0]
	if !order.CreatedAt.Before(req.CreatedAt) {
		return nil, domain.Validation(domain.FieldTimestampOrdering)
	}
	return order, nil
}
