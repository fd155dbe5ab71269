package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

func TestTotalPrice(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	assert.True(t, entity.TotalPrice(price, 20).Equal(decimal.RequireFromString("200.00")))

	price = decimal.RequireFromString("19.99")
	assert.Equal(t, "59.97", entity.TotalPrice(price, 3).StringFixed(2))
}
