package entity

import "github.com/shopspring/decimal"

// Product representa un producto con su precio unitario.
// Para el cumplimiento de órdenes es inmutable: solo se lee el precio.
type Product struct {
	ID    int64
	Price decimal.Decimal // precio unitario, NUMERIC(10,2)
}
