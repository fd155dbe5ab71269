package entity

import "time"

// Order representa un pedido previo pendiente de cumplimiento.
// FulfilledAt queda nil hasta que se crea su asignación.
type Order struct {
	ID          int64
	ProductID   int64
	Amount      int
	CreatedAt   time.Time
	FulfilledAt *time.Time
}
