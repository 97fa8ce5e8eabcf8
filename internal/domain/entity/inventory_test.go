package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryPriceSettersRoundToNearestCent(t *testing.T) {
	item := &InventoryItem{}

	// 19.99 must land on exactly 1999 cents, not truncate to 1998
	item.SetPurchasePriceFromDecimal(19.99)
	item.SetSellingPriceFromDecimal(29.99)

	assert.Equal(t, int64(1999), item.PurchasePrice)
	assert.Equal(t, int64(2999), item.SellingPrice)

	assert.InDelta(t, 19.99, item.GetPurchasePriceDecimal(), 0.0001)
	assert.InDelta(t, 29.99, item.GetSellingPriceDecimal(), 0.0001)
}
