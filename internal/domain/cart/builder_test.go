package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(name string, qty int, price int64) InventoryItem {
	return InventoryItem{
		ID:           uuid.New(),
		Name:         name,
		ModelNumber:  "M-100",
		AvailableQty: qty,
		SellingPrice: decimal.NewFromInt(price),
	}
}

func TestAddItem_NewLine(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)

	require.NoError(t, b.AddItem(inv))

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, inv.ID, items[0].ItemID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(inv.SellingPrice))
	assert.Equal(t, 5, items[0].AvailableQty)
}

func TestAddItem_DuplicateIncrementsQuantity(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)

	require.NoError(t, b.AddItem(inv))
	require.NoError(t, b.AddItem(inv))

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_OutOfStock(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Brother GS2700", 0, 38000)

	require.ErrorIs(t, b.AddItem(inv), ErrOutOfStock)
	assert.Empty(t, b.Items())
}

func TestAddItem_IncrementPastStockFailsInSaleMode(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Brother GS2700", 1, 38000)

	require.NoError(t, b.AddItem(inv))
	require.ErrorIs(t, b.AddItem(inv), ErrOutOfStock)
	assert.Equal(t, 1, b.Items()[0].Quantity)
}

func TestAddItem_IncrementPastStockWarnsInQuotationMode(t *testing.T) {
	b := New(ModeQuotation)
	inv := newItem("Brother GS2700", 1, 38000)

	require.NoError(t, b.AddItem(inv))
	require.NoError(t, b.AddItem(inv))

	assert.Equal(t, 2, b.Items()[0].Quantity)
	assert.NotEmpty(t, b.Warnings())
}

func TestSetQuantity(t *testing.T) {
	b := New(ModeSale)
	first := newItem("Singer 4423", 5, 45000)
	second := newItem("Juki DDL-8700", 3, 92000)
	require.NoError(t, b.AddItem(first))
	require.NoError(t, b.AddItem(second))

	require.NoError(t, b.SetQuantity(first.ID, 4))

	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 4, items[0].Quantity)
	// Ordering and other lines untouched.
	assert.Equal(t, second.ID, items[1].ItemID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))

	require.NoError(t, b.SetQuantity(inv.ID, 0))

	assert.Empty(t, b.Items())
	assert.True(t, b.Total().IsZero())
}

func TestSetQuantity_Negative(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))

	require.ErrorIs(t, b.SetQuantity(inv.ID, -2), ErrInvalidQuantity)
	assert.Equal(t, 1, b.Items()[0].Quantity)
}

func TestSetQuantity_AboveStock(t *testing.T) {
	sale := New(ModeSale)
	quot := New(ModeQuotation)
	inv := newItem("Singer 4423", 2, 45000)
	require.NoError(t, sale.AddItem(inv))
	require.NoError(t, quot.AddItem(inv))

	require.ErrorIs(t, sale.SetQuantity(inv.ID, 3), ErrInsufficientStock)
	assert.Equal(t, 1, sale.Items()[0].Quantity)

	require.NoError(t, quot.SetQuantity(inv.ID, 3))
	assert.Equal(t, 3, quot.Items()[0].Quantity)
	assert.Len(t, quot.Warnings(), 1)
}

func TestSetQuantity_UnknownItemIsNoop(t *testing.T) {
	b := New(ModeSale)
	require.NoError(t, b.SetQuantity(uuid.New(), 3))
	assert.Empty(t, b.Items())
}

func TestSetUnitPrice(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))

	require.NoError(t, b.SetUnitPrice(inv.ID, decimal.NewFromInt(42000)))
	assert.True(t, b.Items()[0].UnitPrice.Equal(decimal.NewFromInt(42000)))

	require.ErrorIs(t, b.SetUnitPrice(inv.ID, decimal.NewFromInt(-5)), ErrInvalidPrice)
	assert.True(t, b.Items()[0].UnitPrice.Equal(decimal.NewFromInt(42000)))
}

func TestParsePrice(t *testing.T) {
	d, err := ParsePrice("1250.50")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1250.50")))

	_, err = ParsePrice("-5")
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = ParsePrice("abc")
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestParsePaymentAmount(t *testing.T) {
	_, err := ParsePaymentAmount("not-a-number")
	require.ErrorIs(t, err, ErrInvalidPayment)

	d, err := ParsePaymentAmount("0")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))

	b.RemoveItem(uuid.New())
	assert.Len(t, b.Items(), 1)

	b.RemoveItem(inv.ID)
	assert.Empty(t, b.Items())
}

// The worked example from the order-total formula: cart 2 x 100, trade-in
// deduction 50, one extra at 20 x 3 = total 210.
func TestTotal_Formula(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 10, 100)
	require.NoError(t, b.AddItem(inv))
	require.NoError(t, b.SetQuantity(inv.ID, 2))

	b.SetTradeIn("old machine", decimal.NewFromInt(50))

	idx := b.AddExtra()
	b.UpdateExtra(idx, ExtraItem{
		Description: "thread spool",
		UnitCost:    decimal.NewFromInt(12),
		UnitPrice:   decimal.NewFromInt(20),
		Quantity:    3,
	})

	assert.True(t, b.Total().Equal(decimal.NewFromInt(210)), "got %s", b.Total())
	// Idempotent: same state, same result.
	assert.True(t, b.Total().Equal(decimal.NewFromInt(210)))
}

func TestTotal_HalfFilledTradeInIgnored(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 10, 100)
	require.NoError(t, b.AddItem(inv))

	b.SetTradeIn("", decimal.NewFromInt(50))
	assert.True(t, b.Total().Equal(decimal.NewFromInt(100)))

	b.SetTradeIn("old machine", decimal.Zero)
	assert.True(t, b.Total().Equal(decimal.NewFromInt(100)))

	b.SetTradeIn("old machine", decimal.NewFromInt(50))
	assert.True(t, b.Total().Equal(decimal.NewFromInt(50)))

	b.ClearTradeIn()
	assert.True(t, b.Total().Equal(decimal.NewFromInt(100)))
}

func TestExtraProfit(t *testing.T) {
	b := New(ModeQuotation)
	idx := b.AddExtra()
	b.UpdateExtra(idx, ExtraItem{
		Description: "bobbin case",
		UnitCost:    decimal.NewFromInt(150),
		UnitPrice:   decimal.NewFromInt(250),
		Quantity:    2,
	})

	assert.True(t, b.ExtraProfit().Equal(decimal.NewFromInt(200)))
}

func TestPayload_EmptyOrder(t *testing.T) {
	b := New(ModeQuotation)
	_, err := b.Payload()
	require.ErrorIs(t, err, ErrEmptyOrder)

	// A single blank extra row is still an empty order.
	b.AddExtra()
	_, err = b.Payload()
	require.ErrorIs(t, err, ErrEmptyOrder)
}

func TestPayload_SaleRequiresPayment(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))

	_, err := b.Payload()
	require.ErrorIs(t, err, ErrInvalidPayment)

	require.NoError(t, b.SetPayment(decimal.NewFromInt(20000), "Cash"))
	p, err := b.Payload()
	require.NoError(t, err)
	assert.True(t, p.AmountPaid.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, "Cash", p.PaymentMethod)
}

func TestSetPayment_Negative(t *testing.T) {
	b := New(ModeSale)
	require.ErrorIs(t, b.SetPayment(decimal.NewFromInt(-1), "Cash"), ErrInvalidPayment)
}

func TestPayload_FiltersAndSanitizes(t *testing.T) {
	b := New(ModeQuotation)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))

	b.SetTradeIn("old machine", decimal.Zero) // half-filled, excluded

	blank := b.AddExtra()
	_ = blank
	filled := b.AddExtra()
	b.UpdateExtra(filled, ExtraItem{
		Description: "borrowed overlocker",
		UnitCost:    decimal.NewFromInt(-10),
		UnitPrice:   decimal.NewFromInt(5000),
		Quantity:    0,
	})

	p, err := b.Payload()
	require.NoError(t, err)

	assert.Nil(t, p.TradeIn)
	require.Len(t, p.Extras, 1)
	assert.Equal(t, "borrowed overlocker", p.Extras[0].Description)
	assert.Equal(t, 1, p.Extras[0].Quantity)
	assert.True(t, p.Extras[0].UnitCost.IsZero())

	// Line items carry id/qty/price only.
	require.Len(t, p.Items, 1)
	assert.Equal(t, inv.ID, p.Items[0].ItemID)
	assert.Equal(t, 1, p.Items[0].Quantity)
}

// Round-trip: the total implied by the payload's numbers matches Total().
func TestPayload_RoundTripTotal(t *testing.T) {
	b := New(ModeSale)
	first := newItem("Singer 4423", 10, 45000)
	second := newItem("Juki DDL-8700", 4, 92000)
	require.NoError(t, b.AddItem(first))
	require.NoError(t, b.AddItem(second))
	require.NoError(t, b.SetQuantity(first.ID, 3))
	b.SetTradeIn("old machine", decimal.NewFromInt(7500))
	idx := b.AddExtra()
	b.UpdateExtra(idx, ExtraItem{
		Description: "motor belt",
		UnitPrice:   decimal.NewFromInt(650),
		Quantity:    2,
	})
	require.NoError(t, b.SetPayment(decimal.NewFromInt(100000), "Card"))

	p, err := b.Payload()
	require.NoError(t, err)

	implied := decimal.Zero
	for _, item := range p.Items {
		implied = implied.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if p.TradeIn != nil {
		implied = implied.Sub(p.TradeIn.Deduction)
	}
	for _, extra := range p.Extras {
		implied = implied.Add(extra.UnitPrice.Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}

	assert.True(t, implied.Equal(b.Total()), "payload implies %s, builder computed %s", implied, b.Total())
}

func TestPayload_DoesNotMutateBuilder(t *testing.T) {
	b := New(ModeSale)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))
	require.NoError(t, b.SetPayment(decimal.NewFromInt(45000), "Cash"))

	before := b.Total()
	_, err := b.Payload()
	require.NoError(t, err)

	assert.Len(t, b.Items(), 1)
	assert.True(t, b.Total().Equal(before))
}

func TestReset(t *testing.T) {
	b := New(ModeQuotation)
	inv := newItem("Singer 4423", 5, 45000)
	require.NoError(t, b.AddItem(inv))
	b.SetTradeIn("old machine", decimal.NewFromInt(100))
	b.AddExtra()

	b.Reset()

	assert.Empty(t, b.Items())
	assert.Empty(t, b.Extras())
	assert.Empty(t, b.Warnings())
	assert.True(t, b.Total().IsZero())
	assert.Equal(t, ModeQuotation, b.Mode())

	_, err := b.Payload()
	require.ErrorIs(t, err, ErrEmptyOrder)
}
