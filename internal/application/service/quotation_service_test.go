package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuotationFixture() (*QuotationService, *mockInventoryRepo, *mockQuotationRepo, *mockQuotationDetailRepo) {
	invRepo := newMockInventoryRepo(
		&entity.InventoryItem{
			ID:           uuid.New(),
			Name:         "Juki Overlock",
			ModelNumber:  "MO-6714",
			Quantity:     2,
			SellingPrice: 75000, // 750.00
		},
	)
	quotationRepo := newMockQuotationRepo()
	detailRepo := newMockQuotationDetailRepo()
	svc := NewQuotationService(quotationRepo, detailRepo, invRepo)
	return svc, invRepo, quotationRepo, detailRepo
}

func TestCreateQuotation(t *testing.T) {
	svc, invRepo, _, detailRepo := newQuotationFixture()
	itemID := firstItemID(invRepo, "Juki Overlock")

	out, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:       uuid.New(),
		CustomerName: "Garment Factory Ltd",
		Items:        []SaleLineInput{{ItemID: itemID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Quotation)

	assert.Equal(t, int64(150000), out.Quotation.TotalAmount)
	assert.NotEmpty(t, out.Quotation.Reference)
	assert.Empty(t, out.Warnings)

	// Inventory is never touched by a quotation
	assert.Equal(t, 2, invRepo.items[itemID].Quantity)

	// Lines snapshot the available stock at quote time
	items := detailRepo.items[out.Quotation.ID]
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].AvailableQty)
}

func TestCreateQuotationOverStockWarns(t *testing.T) {
	svc, invRepo, _, _ := newQuotationFixture()
	itemID := firstItemID(invRepo, "Juki Overlock")

	out, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:       uuid.New(),
		CustomerName: "Garment Factory Ltd",
		Items:        []SaleLineInput{{ItemID: itemID, Quantity: 10}},
	})
	require.NoError(t, err)

	// Over-stock quantity is quoted as requested, with a warning
	assert.Equal(t, int64(750000), out.Quotation.TotalAmount)
	assert.NotEmpty(t, out.Warnings)
	assert.Equal(t, 2, invRepo.items[itemID].Quantity)
}

func TestCreateQuotationEmpty(t *testing.T) {
	svc, _, _, _ := newQuotationFixture()

	_, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:       uuid.New(),
		CustomerName: "Garment Factory Ltd",
	})
	require.Error(t, err)
}

func TestDeleteQuotation(t *testing.T) {
	svc, invRepo, quotationRepo, _ := newQuotationFixture()
	itemID := firstItemID(invRepo, "Juki Overlock")

	out, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:       uuid.New(),
		CustomerName: "Garment Factory Ltd",
		Items:        []SaleLineInput{{ItemID: itemID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuotation(context.Background(), out.Quotation.ID))
	assert.Empty(t, quotationRepo.quotations)
	// Stock still untouched either way
	assert.Equal(t, 2, invRepo.items[itemID].Quantity)
}
