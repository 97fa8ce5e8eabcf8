package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleFixture() (*SaleService, *mockInventoryRepo, *mockSaleRepo, *mockSaleDetailRepo, *mockCreditRepo) {
	invRepo := newMockInventoryRepo(
		&entity.InventoryItem{
			ID:           uuid.New(),
			Name:         "Singer 1408",
			ModelNumber:  "SM-1408",
			Quantity:     5,
			SellingPrice: 10000, // 100.00
		},
		&entity.InventoryItem{
			ID:           uuid.New(),
			Name:         "Bobbin Case",
			ModelNumber:  "BC-22",
			Quantity:     50,
			SellingPrice: 2000, // 20.00
		},
	)
	saleRepo := newMockSaleRepo()
	detailRepo := newMockSaleDetailRepo()
	saleRepo.details = detailRepo
	creditRepo := newMockCreditRepo()
	svc := NewSaleService(saleRepo, detailRepo, invRepo, creditRepo)
	return svc, invRepo, saleRepo, detailRepo, creditRepo
}

func firstItemID(repo *mockInventoryRepo, name string) uuid.UUID {
	for id, item := range repo.items {
		if item.Name == name {
			return id
		}
	}
	return uuid.Nil
}

func TestCreateSale(t *testing.T) {
	svc, invRepo, _, detailRepo, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")
	bobbinID := firstItemID(invRepo, "Bobbin Case")

	price := 100.0
	tradeIn := 50.0
	qty3 := 3

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
		Items: []SaleLineInput{
			{ItemID: machineID, Quantity: 2, UnitPrice: &price},
			{ItemID: bobbinID, Quantity: qty3},
		},
		TradeIn: &TradeInInput{Description: "Old hand machine", Deduction: tradeIn},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	// 2x100 - 50 + 3x20 = 210
	assert.Equal(t, int64(21000), sale.TotalAmount)
	// Omitted amount paid defaults to the full total
	assert.Equal(t, int64(21000), sale.AmountPaid)
	assert.Equal(t, int64(0), sale.Balance)
	assert.Equal(t, enum.CreditStatusPaid, sale.CreditStatus)
	assert.NotEmpty(t, sale.InvoiceNo)

	// Stock decremented
	assert.Equal(t, 3, invRepo.items[machineID].Quantity)
	assert.Equal(t, 47, invRepo.items[bobbinID].Quantity)

	// Line items snapshot name and model
	items := detailRepo.items[sale.ID]
	require.Len(t, items, 2)
}

func TestCreateSalePartialPayment(t *testing.T) {
	svc, invRepo, _, _, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	paid := 60.0
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Kamala Silva",
		PaymentMethod: "cash",
		AmountPaid:    &paid,
		Items:         []SaleLineInput{{ItemID: machineID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), sale.TotalAmount)
	assert.Equal(t, int64(6000), sale.AmountPaid)
	assert.Equal(t, int64(4000), sale.Balance)
	assert.Equal(t, enum.CreditStatusPartial, sale.CreditStatus)
}

func TestCreateSaleUnpaid(t *testing.T) {
	svc, invRepo, _, _, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	paid := 0.0
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Sunil Fernando",
		PaymentMethod: "credit",
		AmountPaid:    &paid,
		Items:         []SaleLineInput{{ItemID: machineID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), sale.Balance)
	assert.Equal(t, enum.CreditStatusUnpaid, sale.CreditStatus)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	svc, invRepo, saleRepo, _, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
		Items:         []SaleLineInput{{ItemID: machineID, Quantity: 6}},
	})
	require.Error(t, err)

	// Nothing persisted, stock untouched
	assert.Empty(t, saleRepo.sales)
	assert.Equal(t, 5, invRepo.items[machineID].Quantity)
}

func TestCreateSaleEmptyCart(t *testing.T) {
	svc, _, _, _, _ := newSaleFixture()

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
	})
	require.Error(t, err)
}

func TestCreateSaleMissingPaymentMethod(t *testing.T) {
	svc, invRepo, _, _, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       uuid.New(),
		CustomerName: "Nimal Perera",
		Items:        []SaleLineInput{{ItemID: machineID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 5, invRepo.items[machineID].Quantity)
}

func TestCreateSaleUnknownItem(t *testing.T) {
	svc, _, _, _, _ := newSaleFixture()

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
		Items:         []SaleLineInput{{ItemID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
}

func TestCreateSaleExtrasOnly(t *testing.T) {
	svc, _, _, detailRepo, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
		Extras: []ExtraInput{
			{Description: "Motor belt", UnitCost: 5, UnitPrice: 8, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1600), sale.TotalAmount)
	require.Len(t, detailRepo.extras[sale.ID], 1)
	assert.Equal(t, int64(500), detailRepo.extras[sale.ID][0].UnitCost)
}

func TestCreateSaleWithInstallmentPlan(t *testing.T) {
	svc, invRepo, _, _, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	paid := 40.0
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Kamala Silva",
		PaymentMethod: "cash",
		AmountPaid:    &paid,
		Items:         []SaleLineInput{{ItemID: machineID, Quantity: 1}},
		Installments:  &InstallmentInput{Count: 3, DueDates: []string{"2026-09-15", "2026-10-15", "2026-11-15"}},
	})
	require.NoError(t, err)

	assert.True(t, sale.HasInstallmentPlan)
	require.NotNil(t, sale.InstallmentCount)
	assert.Equal(t, 3, *sale.InstallmentCount)
	assert.Len(t, sale.InstallmentDueDates, 3)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	svc, invRepo, saleRepo, _, creditRepo := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
		Items:         []SaleLineInput{{ItemID: machineID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, invRepo.items[machineID].Quantity)

	// Simulate an existing credit payment history
	require.NoError(t, creditRepo.Create(context.Background(), &entity.CreditPayment{
		SaleID: sale.ID,
		UserID: sale.UserID,
		Amount: 1000,
	}))

	require.NoError(t, svc.DeleteSale(context.Background(), sale.ID))

	assert.Equal(t, 5, invRepo.items[machineID].Quantity)
	assert.Empty(t, saleRepo.sales)
	payments, err := creditRepo.ListBySale(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestDeleteSaleNotFound(t *testing.T) {
	svc, _, _, _, _ := newSaleFixture()
	err := svc.DeleteSale(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestUpdateSaleCustomerFields(t *testing.T) {
	svc, invRepo, saleRepo, _, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
		Items:         []SaleLineInput{{ItemID: machineID, Quantity: 1}},
	})
	require.NoError(t, err)

	name := "Kamal Perera"
	phone := "0771234567"
	updated, err := svc.UpdateSale(context.Background(), sale.ID, &UpdateSaleInput{
		CustomerName: &name,
		PhoneNumber:  &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Kamal Perera", updated.CustomerName)
	assert.Equal(t, "0771234567", updated.PhoneNumber)
	// Totals stay untouched
	assert.Equal(t, sale.TotalAmount, saleRepo.sales[sale.ID].TotalAmount)
}

func TestUpdateSaleNotFound(t *testing.T) {
	svc, _, _, _, _ := newSaleFixture()
	name := "Kamal Perera"
	_, err := svc.UpdateSale(context.Background(), uuid.New(), &UpdateSaleInput{CustomerName: &name})
	require.Error(t, err)
}

func TestGetDailySummary(t *testing.T) {
	svc, invRepo, _, _, _ := newSaleFixture()
	machineID := firstItemID(invRepo, "Singer 1408")

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerName:  "Nimal Perera",
		PaymentMethod: "cash",
		Items:         []SaleLineInput{{ItemID: machineID, Quantity: 2}},
	})
	require.NoError(t, err)

	summary, err := svc.GetDailySummary(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), summary.Date)
	assert.InDelta(t, 200.0, summary.Total, 0.001)
}
