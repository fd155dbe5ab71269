package fulfillment

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
	"github.com/jhoicas/fulfillment-api/pkg/logger"
)

// FulfillOrderUseCase orquesta el cumplimiento de una orden desde la capa HTTP:
// ejecuta el Fulfiller configurado, registra el resultado y publica el evento tras el Commit.
type FulfillOrderUseCase struct {
	fulfiller   Fulfiller
	allocations repository.StockAllocationRepository
	publisher   EventPublisher
	log         *logger.Logger
}

// NewFulfillOrderUseCase construye el caso de uso. allocations debe estar atado al pool (lecturas fuera de tx).
func NewFulfillOrderUseCase(
	fulfiller Fulfiller,
	allocations repository.StockAllocationRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *FulfillOrderUseCase {
	return &FulfillOrderUseCase{
		fulfiller:   fulfiller,
		allocations: allocations,
		publisher:   publisher,
		log:         log,
	}
}

// Execute cumple la orden descrita por in y devuelve el ID de la asignación.
func (uc *FulfillOrderUseCase) Execute(ctx context.Context, in dto.FulfillOrderRequest) (*dto.FulfillOrderResponse, error) {
	req := Request{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Amount:      in.Amount,
		CreatedAt:   in.CreatedAt,
	}
	id, err := uc.fulfiller.Fulfill(ctx, req)
	if err != nil {
		kind := domain.KindOf(err)
		ev := uc.log.Warn()
		if kind == domain.KindInternal {
			ev = uc.log.Error()
		}
		ev.Err(err).
			Str("kind", kind.String()).
			Int64("product_id", req.ProductID).
			Int64("warehouse_id", req.WarehouseID).
			Int("amount", req.Amount).
			Msg("cumplimiento de orden rechazado")
		return nil, err
	}

	uc.log.Info().
		Int64("allocation_id", id).
		Int64("product_id", req.ProductID).
		Int64("warehouse_id", req.WarehouseID).
		Int("amount", req.Amount).
		Msg("orden cumplida")

	uc.publish(ctx, id)
	return &dto.FulfillOrderResponse{AllocationID: id}, nil
}

// publish emite AllocationCreated. La asignación ya está confirmada: un fallo solo se registra.
func (uc *FulfillOrderUseCase) publish(ctx context.Context, allocationID int64) {
	a, err := uc.allocations.GetByID(ctx, allocationID)
	if err != nil || a == nil {
		uc.log.Error().Err(err).Int64("allocation_id", allocationID).Msg("leer asignación para evento")
		return
	}
	evt := AllocationCreated{
		EventID:      uuid.New().String(),
		AllocationID: a.ID,
		OrderID:      a.OrderID,
		ProductID:    a.ProductID,
		WarehouseID:  a.WarehouseID,
		Amount:       a.Amount,
		Price:        a.Price,
		CreatedAt:    a.CreatedAt,
	}
	if err := uc.publisher.PublishAllocationCreated(ctx, evt); err != nil {
		uc.log.Error().Err(err).Int64("allocation_id", allocationID).Msg("publicar AllocationCreated")
	}
}

// GetAllocation devuelve una asignación confirmada o domain.NotFound.
func (uc *FulfillOrderUseCase) GetAllocation(ctx context.Context, id int64) (*dto.AllocationResponse, error) {
	a, err := uc.allocations.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("get allocation", err)
	}
	if a == nil {
		return nil, domain.NotFound(domain.SubjectAllocation)
	}
	return &dto.AllocationResponse{
		ID:          a.ID,
		WarehouseID: a.WarehouseID,
		ProductID:   a.ProductID,
		OrderID:     a.OrderID,
		Amount:      a.Amount,
		Price:       a.Price,
		CreatedAt:   a.CreatedAt,
	}, nil
}
