package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"github.com/sewlanka/pos-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreditFixture() (*CreditService, *mockSaleRepo, *entity.Sale) {
	sale := &entity.Sale{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		InvoiceNo:    "INV-TEST0001",
		CustomerName: "Sunil Fernando",
		TotalAmount:  50000, // 500.00
		AmountPaid:   10000, // 100.00
		Balance:      40000, // 400.00
		CreditStatus: enum.CreditStatusPartial,
	}
	saleRepo := newMockSaleRepo(sale)
	svc := NewCreditService(newMockCreditRepo(), saleRepo)
	return svc, saleRepo, sale
}

func TestRecordPayment(t *testing.T) {
	svc, saleRepo, sale := newCreditFixture()

	payment, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:        sale.ID,
		UserID:        sale.UserID,
		Amount:        150,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), payment.Amount)

	updated := saleRepo.sales[sale.ID]
	assert.Equal(t, int64(25000), updated.AmountPaid)
	assert.Equal(t, int64(25000), updated.Balance)
	assert.Equal(t, enum.CreditStatusPartial, updated.CreditStatus)
}

func TestRecordPaymentFractionalAmount(t *testing.T) {
	svc, saleRepo, sale := newCreditFixture()

	// 19.99 must land on exactly 1999 cents, not truncate to 1998
	payment, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:        sale.ID,
		UserID:        sale.UserID,
		Amount:        19.99,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1999), payment.Amount)

	updated := saleRepo.sales[sale.ID]
	assert.Equal(t, int64(11999), updated.AmountPaid)
	assert.Equal(t, int64(38001), updated.Balance)
}

func TestRecordPaymentSettlesBalance(t *testing.T) {
	svc, saleRepo, sale := newCreditFixture()

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:        sale.ID,
		UserID:        sale.UserID,
		Amount:        400,
		PaymentMethod: "cheque",
	})
	require.NoError(t, err)

	updated := saleRepo.sales[sale.ID]
	assert.Equal(t, int64(0), updated.Balance)
	assert.Equal(t, enum.CreditStatusPaid, updated.CreditStatus)
}

func TestRecordPaymentRejectsNonPositive(t *testing.T) {
	svc, _, sale := newCreditFixture()

	for _, amount := range []float64{0, -50} {
		_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
			SaleID:        sale.ID,
			UserID:        sale.UserID,
			Amount:        amount,
			PaymentMethod: "cash",
		})
		require.Error(t, err)
	}
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, saleRepo, sale := newCreditFixture()

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:        sale.ID,
		UserID:        sale.UserID,
		Amount:        400.01,
		PaymentMethod: "cash",
	})
	require.Error(t, err)

	// Sale untouched
	assert.Equal(t, int64(40000), saleRepo.sales[sale.ID].Balance)
}

func TestRecordPaymentUnknownSale(t *testing.T) {
	svc, _, _ := newCreditFixture()

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:        uuid.New(),
		UserID:        uuid.New(),
		Amount:        100,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
}

func TestDeletePaymentReversesBalance(t *testing.T) {
	svc, saleRepo, sale := newCreditFixture()

	payment, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:        sale.ID,
		UserID:        sale.UserID,
		Amount:        200,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), saleRepo.sales[sale.ID].Balance)

	require.NoError(t, svc.DeletePayment(context.Background(), payment.ID))

	updated := saleRepo.sales[sale.ID]
	assert.Equal(t, int64(10000), updated.AmountPaid)
	assert.Equal(t, int64(40000), updated.Balance)
	assert.Equal(t, enum.CreditStatusPartial, updated.CreditStatus)
}

func TestListOutstandingSales(t *testing.T) {
	svc, saleRepo, sale := newCreditFixture()

	// A settled sale should not appear in the credit book
	require.NoError(t, saleRepo.Create(context.Background(), &entity.Sale{
		ID:           uuid.New(),
		InvoiceNo:    "INV-TEST0002",
		TotalAmount:  10000,
		AmountPaid:   10000,
		Balance:      0,
		CreditStatus: enum.CreditStatusPaid,
	}))

	result, err := svc.ListOutstandingSales(context.Background(), &pagination.PaginationParams{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, sale.ID, result.Items[0].ID)
}
