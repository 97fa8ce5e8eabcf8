package cart

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel errors for cart validation.
var (
	ErrOutOfStock        = fmt.Errorf("item is out of stock")
	ErrInsufficientStock = fmt.Errorf("requested quantity exceeds available stock")
	ErrInvalidQuantity   = fmt.Errorf("quantity must not be negative")
	ErrInvalidPrice      = fmt.Errorf("price must be a non-negative number")
	ErrInvalidPayment    = fmt.Errorf("payment amount must be a non-negative number")
	ErrEmptyOrder        = fmt.Errorf("order must contain at least one item")
)

// Mode selects the validation strictness of a Builder.
type Mode int

const (
	// ModeSale enforces the stock ceiling on every mutation.
	ModeSale Mode = iota
	// ModeQuotation applies over-stock quantities but records a warning,
	// since a quotation reserves nothing.
	ModeQuotation
)

func (m Mode) String() string {
	if m == ModeQuotation {
		return "quotation"
	}
	return "sale"
}

// InventoryItem is the read-only view of a stock item the builder works from.
type InventoryItem struct {
	ID           uuid.UUID
	Name         string
	ModelNumber  string
	AvailableQty int
	SellingPrice decimal.Decimal
}

// LineItem is a cart line backed by an inventory item. AvailableQty is a
// snapshot taken when the line was added.
type LineItem struct {
	ItemID       uuid.UUID
	Name         string
	ModelNumber  string
	Quantity     int
	UnitPrice    decimal.Decimal
	AvailableQty int
}

// TradeIn is an old-item exchange deducted from the order total.
type TradeIn struct {
	Description string
	Deduction   decimal.Decimal
}

// applies reports whether the adjustment affects totals. A half-filled form
// (empty description or non-positive amount) is stored but ignored.
func (t *TradeIn) applies() bool {
	return t != nil && t.Description != "" && t.Deduction.IsPositive()
}

// ExtraItem is an ad hoc line not tied to inventory, typically an item
// borrowed from a neighboring shop. UnitCost is informational only and never
// enters the total.
type ExtraItem struct {
	Description string
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Builder accumulates cart lines, an optional trade-in and extra items, and
// computes the running order total. A Builder is owned by a single session
// and is not safe for concurrent use.
type Builder struct {
	mode          Mode
	items         []LineItem
	tradeIn       *TradeIn
	extras        []ExtraItem
	amountPaid    decimal.Decimal
	paymentMethod string
	hasPayment    bool
	warnings      []string
}

// New creates an empty Builder in the given mode.
func New(mode Mode) *Builder {
	return &Builder{mode: mode}
}

// Mode returns the builder's validation mode.
func (b *Builder) Mode() Mode {
	return b.mode
}

// Items returns a copy of the current cart lines in insertion order.
func (b *Builder) Items() []LineItem {
	out := make([]LineItem, len(b.items))
	copy(out, b.items)
	return out
}

// Extras returns a copy of the current extra items.
func (b *Builder) Extras() []ExtraItem {
	out := make([]ExtraItem, len(b.extras))
	copy(out, b.extras)
	return out
}

// Warnings returns the non-blocking warnings recorded so far.
func (b *Builder) Warnings() []string {
	out := make([]string, len(b.warnings))
	copy(out, b.warnings)
	return out
}

// AddItem adds one unit of an inventory item to the cart. Adding an item that
// is already in the cart increments its quantity instead of creating a second
// line. In sale mode the stock ceiling is enforced; in quotation mode an
// overage is applied with a warning.
func (b *Builder) AddItem(inv InventoryItem) error {
	for i := range b.items {
		if b.items[i].ItemID == inv.ID {
			next := b.items[i].Quantity + 1
			if next > b.items[i].AvailableQty {
				if b.mode == ModeSale {
					return ErrOutOfStock
				}
				b.warnf("quantity %d exceeds available stock %d for %s", next, b.items[i].AvailableQty, b.items[i].Name)
			}
			b.items[i].Quantity = next
			return nil
		}
	}

	if b.mode == ModeSale && inv.AvailableQty < 1 {
		return ErrOutOfStock
	}

	b.items = append(b.items, LineItem{
		ItemID:       inv.ID,
		Name:         inv.Name,
		ModelNumber:  inv.ModelNumber,
		Quantity:     1,
		UnitPrice:    inv.SellingPrice,
		AvailableQty: inv.AvailableQty,
	})
	return nil
}

// SetQuantity replaces the quantity of an existing line. Zero removes the
// line, a negative value fails with ErrInvalidQuantity, and an unknown item
// ID is a no-op. Sale mode rejects quantities above the stock snapshot with
// ErrInsufficientStock; quotation mode applies them and records a warning.
func (b *Builder) SetQuantity(itemID uuid.UUID, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	if qty == 0 {
		b.RemoveItem(itemID)
		return nil
	}

	for i := range b.items {
		if b.items[i].ItemID != itemID {
			continue
		}
		if qty > b.items[i].AvailableQty {
			if b.mode == ModeSale {
				return ErrInsufficientStock
			}
			b.warnf("quantity %d exceeds available stock %d for %s", qty, b.items[i].AvailableQty, b.items[i].Name)
		}
		b.items[i].Quantity = qty
		return nil
	}
	return nil
}

// SetUnitPrice overwrites the unit price of an existing line. A negative
// price fails with ErrInvalidPrice and leaves the line unchanged.
func (b *Builder) SetUnitPrice(itemID uuid.UUID, price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	for i := range b.items {
		if b.items[i].ItemID == itemID {
			b.items[i].UnitPrice = price
			return nil
		}
	}
	return nil
}

// RemoveItem deletes a line from the cart. Removing an absent item is a no-op.
func (b *Builder) RemoveItem(itemID uuid.UUID) {
	for i := range b.items {
		if b.items[i].ItemID == itemID {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// SetTradeIn stores the old-item exchange adjustment. The value may be
// half-filled while the operator is still typing; it only affects totals once
// the description is non-empty and the deduction is positive.
func (b *Builder) SetTradeIn(description string, deduction decimal.Decimal) {
	b.tradeIn = &TradeIn{Description: description, Deduction: deduction}
}

// ClearTradeIn removes the trade-in adjustment.
func (b *Builder) ClearTradeIn() {
	b.tradeIn = nil
}

// AddExtra appends a blank extra item (cost 0, price 0, quantity 1) and
// returns its index.
func (b *Builder) AddExtra() int {
	b.extras = append(b.extras, ExtraItem{
		UnitCost:  decimal.Zero,
		UnitPrice: decimal.Zero,
		Quantity:  1,
	})
	return len(b.extras) - 1
}

// UpdateExtra replaces the extra item at the given index. Extras are freely
// editable, including to incomplete states; validation happens at payload
// time. An out-of-range index is a no-op.
func (b *Builder) UpdateExtra(index int, extra ExtraItem) {
	if index < 0 || index >= len(b.extras) {
		return
	}
	b.extras[index] = extra
}

// RemoveExtra deletes the extra item at the given index.
func (b *Builder) RemoveExtra(index int) {
	if index < 0 || index >= len(b.extras) {
		return
	}
	b.extras = append(b.extras[:index], b.extras[index+1:]...)
}

// SetPayment records the amount paid and payment method for a sale.
func (b *Builder) SetPayment(amount decimal.Decimal, method string) error {
	if amount.IsNegative() {
		return ErrInvalidPayment
	}
	b.amountPaid = amount
	b.paymentMethod = method
	b.hasPayment = true
	return nil
}

// Total computes the current order total:
//
//	sum(line qty x unit price) - trade-in deduction + sum(extra qty x unit price)
//
// The computation is pure; calling it never mutates the builder.
func (b *Builder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if b.tradeIn.applies() {
		total = total.Sub(b.tradeIn.Deduction)
	}
	for _, extra := range b.extras {
		total = total.Add(extra.UnitPrice.Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}
	return total
}

// ExtraProfit computes the margin on extra items, sum((price - cost) x qty).
// Shown to the operator only; it never enters the order total.
func (b *Builder) ExtraProfit() decimal.Decimal {
	profit := decimal.Zero
	for _, extra := range b.extras {
		profit = profit.Add(extra.UnitPrice.Sub(extra.UnitCost).Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}
	return profit
}

// Reset returns the builder to its empty state, keeping the mode.
func (b *Builder) Reset() {
	*b = Builder{mode: b.mode}
}

func (b *Builder) warnf(format string, args ...interface{}) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// ParsePrice parses a user-entered price string. It fails with
// ErrInvalidPrice when the input is not a non-negative number.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}

// ParsePaymentAmount parses a user-entered payment amount. It fails with
// ErrInvalidPayment when the input is not a non-negative number.
func ParsePaymentAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidPayment
	}
	return d, nil
}
