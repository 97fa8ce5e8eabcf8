package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayloadItem is a cart line reduced to what the order sink needs. Name and
// model are deliberately absent: the backend re-resolves them from inventory.
type PayloadItem struct {
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// Payload is a finalized order ready for submission.
type Payload struct {
	Items         []PayloadItem
	TradeIn       *TradeIn
	Extras        []ExtraItem
	AmountPaid    decimal.Decimal
	PaymentMethod string
}

// Payload produces the submission payload for the current cart state. It
// fails with ErrEmptyOrder when there is nothing to submit, and in sale mode
// with ErrInvalidPayment when no payment has been recorded. Building a
// payload does not mutate the builder, so a failed submission leaves every
// field in place for correction.
func (b *Builder) Payload() (*Payload, error) {
	if len(b.items) == 0 && len(b.extras) == 0 {
		return nil, ErrEmptyOrder
	}
	if b.mode == ModeSale && (!b.hasPayment || b.paymentMethod == "") {
		return nil, ErrInvalidPayment
	}

	p := &Payload{
		Items: make([]PayloadItem, 0, len(b.items)),
	}
	for _, item := range b.items {
		p.Items = append(p.Items, PayloadItem{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if b.tradeIn.applies() {
		t := *b.tradeIn
		p.TradeIn = &t
	}

	// Extras with an empty description are unfinished form rows, not order
	// lines. The inclusion rule is identical for sales and quotations.
	for _, extra := range b.extras {
		if extra.Description == "" {
			continue
		}
		p.Extras = append(p.Extras, sanitizeExtra(extra))
	}

	if len(p.Items) == 0 && len(p.Extras) == 0 {
		return nil, ErrEmptyOrder
	}

	if b.mode == ModeSale {
		p.AmountPaid = b.amountPaid
		p.PaymentMethod = b.paymentMethod
	}
	return p, nil
}

// sanitizeExtra normalizes values an operator left incomplete: quantity
// defaults to 1, negative cost and price collapse to zero.
func sanitizeExtra(e ExtraItem) ExtraItem {
	if e.Quantity < 1 {
		e.Quantity = 1
	}
	if e.UnitCost.IsNegative() {
		e.UnitCost = decimal.Zero
	}
	if e.UnitPrice.IsNegative() {
		e.UnitPrice = decimal.Zero
	}
	return e
}
