package fulfillment_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// memState es el contenido del almacén en memoria.
type memState struct {
	products    map[int64]decimal.Decimal
	warehouses  map[int64]bool
	orders      map[int64]entity.Order
	allocations map[int64]entity.StockAllocation
	nextAllocID int64
}

func (s memState) clone() memState {
	c := memState{
		products:    make(map[int64]decimal.Decimal, len(s.products)),
		warehouses:  make(map[int64]bool, len(s.warehouses)),
		orders:      make(map[int64]entity.Order, len(s.orders)),
		allocations: make(map[int64]entity.StockAllocation, len(s.allocations)),
		nextAllocID: s.nextAllocID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.orders {
		if v.FulfilledAt != nil {
			at := *v.FulfilledAt
			v.FulfilledAt = &at
		}
		c.orders[k] = v
	}
	for k, v := range s.allocations {
		c.allocations[k] = v
	}
	return c
}

// memStore simula la BD: TxRunner trabaja sobre una copia y solo la publica en el Commit.
type memStore struct {
	mu        sync.Mutex
	state     memState
	failOn    string // paso que devuelve un error de infraestructura
	commitErr error
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		products:    map[int64]decimal.Decimal{},
		warehouses:  map[int64]bool{},
		orders:      map[int64]entity.Order{},
		allocations: map[int64]entity.StockAllocation{},
		nextAllocID: 1,
	}}
}

func (m *memStore) addProduct(id int64, price string) {
	m.state.products[id] = decimal.RequireFromString(price)
}

func (m *memStore) addWarehouse(id int64) { m.state.warehouses[id] = true }

func (m *memStore) addOrder(id, productID int64, amount int, createdAt time.Time) {
	m.state.orders[id] = entity.Order{ID: id, ProductID: productID, Amount: amount, CreatedAt: createdAt}
}

func (m *memStore) snapshot() memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

var errInfra = errors.New("conexión perdida")

func (m *memStore) Run(ctx context.Context, fn func(uow *fulfillment.UnitOfWork) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	work := m.state.clone()
	repos := &memRepos{st: &work, failOn: m.failOn}
	uow := &fulfillment.UnitOfWork{
		Products:    memProducts{repos},
		Warehouses:  repos,
		Orders:      repos,
		Allocations: memAllocations{repos},
	}
	if err := fn(uow); err != nil {
		return err
	}
	if m.commitErr != nil {
		return m.commitErr
	}
	m.state = work
	return nil
}

type memRepos struct {
	st     *memState
	failOn string
}

func (r *memRepos) fail(step string) error {
	if r.failOn == step {
		return errInfra
	}
	return nil
}

type memProducts struct{ *memRepos }

type memAllocations struct{ *memRepos }

func (r memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if err := r.fail("product"); err != nil {
		return nil, err
	}
	price, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	return &entity.Product{ID: id, Price: price}, nil
}

func (r *memRepos) Exists(_ context.Context, id int64) (bool, error) {
	if err := r.fail("warehouse"); err != nil {
		return false, err
	}
	return r.st.warehouses[id], nil
}

func (r *memRepos) FindMatchingForUpdate(_ context.Context, productID int64, amount, limit int) ([]*entity.Order, error) {
	if err := r.fail("match"); err != nil {
		return nil, err
	}
	var ids []int64
	for id, o := range r.st.orders {
		if o.ProductID == productID && o.Amount == amount {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Order
	for _, id := range ids {
		if len(out) == limit {
			break
		}
		o := r.st.orders[id]
		out = append(out, &o)
	}
	return out, nil
}

func (r *memRepos) MarkFulfilled(_ context.Context, orderID int64, at time.Time) error {
	if err := r.fail("mark"); err != nil {
		return err
	}
	o := r.st.orders[orderID]
	o.FulfilledAt = &at
	r.st.orders[orderID] = o
	return nil
}

func (r *memRepos) ExistsForOrder(_ context.Context, orderID int64) (bool, error) {
	if err := r.fail("exists"); err != nil {
		return false, err
	}
	for _, a := range r.st.allocations {
		if a.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepos) Create(_ context.Context, a *entity.StockAllocation) error {
	if err := r.fail("insert"); err != nil {
		return err
	}
	for _, existing := range r.st.allocations {
		if existing.OrderID == a.OrderID {
			return domain.Conflict(domain.ReasonAlreadyFulfilled)
		}
	}
	a.ID = r.st.nextAllocID
	r.st.nextAllocID++
	r.st.allocations[a.ID] = *a
	return nil
}

func (r memAllocations) GetByID(_ context.Context, id int64) (*entity.StockAllocation, error) {
	a, ok := r.st.allocations[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// allocationReader lee asignaciones confirmadas (fuera de transacción).
type allocationReader struct {
	store *memStore
	err   error
}

func (r *allocationReader) ExistsForOrder(context.Context, int64) (bool, error) {
	return false, errors.New("no usado")
}

func (r *allocationReader) Create(context.Context, *entity.StockAllocation) error {
	return errors.New("no usado")
}

func (r *allocationReader) GetByID(_ context.Context, id int64) (*entity.StockAllocation, error) {
	if r.err != nil {
		return nil, r.err
	}
	st := r.store.snapshot()
	a, ok := st.allocations[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []fulfillment.AllocationCreated
	err    error
}

func (p *recordingPublisher) PublishAllocationCreated(_ context.Context, evt fulfillment.AllocationCreated) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}
