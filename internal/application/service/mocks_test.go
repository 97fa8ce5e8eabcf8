package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"github.com/sewlanka/pos-api/internal/domain/repository"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

type mockInventoryRepo struct {
	items map[uuid.UUID]*entity.InventoryItem
}

func newMockInventoryRepo(items ...*entity.InventoryItem) *mockInventoryRepo {
	m := &mockInventoryRepo{items: make(map[uuid.UUID]*entity.InventoryItem)}
	for _, item := range items {
		m.items[item.ID] = item
	}
	return m
}

func (m *mockInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockInventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	return m.items[id], nil
}

func (m *mockInventoryRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func (m *mockInventoryRepo) List(ctx context.Context, params *repository.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	var out []entity.InventoryItem
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (m *mockInventoryRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, amount := range decrements {
		item, ok := m.items[id]
		if !ok || item.Quantity < amount {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, amount := range decrements {
		m.items[id].Quantity -= amount
	}
	return nil, nil
}

func (m *mockInventoryRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, amount := range increments {
		if item, ok := m.items[id]; ok {
			item.Quantity += amount
		}
	}
	return nil
}

type mockSaleRepo struct {
	sales   map[uuid.UUID]*entity.Sale
	details *mockSaleDetailRepo
}

func newMockSaleRepo(sales ...*entity.Sale) *mockSaleRepo {
	m := &mockSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
	for _, sale := range sales {
		m.sales[sale.ID] = sale
	}
	return m
}

func (m *mockSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	m.sales[sale.ID] = sale
	return nil
}

func (m *mockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return m.sales[id], nil
}

func (m *mockSaleRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale := m.sales[id]
	if sale != nil && m.details != nil {
		sale.Items = m.details.items[id]
		sale.Extras = m.details.extras[id]
	}
	return sale, nil
}

func (m *mockSaleRepo) List(ctx context.Context, userID uuid.UUID, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, sale := range m.sales {
		out = append(out, *sale)
	}
	return out, int64(len(out)), nil
}

func (m *mockSaleRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *repository.SaleCursorFilterParams) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, sale := range m.sales {
		out = append(out, *sale)
	}
	return out, nil
}

func (m *mockSaleRepo) ListOutstanding(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, sale := range m.sales {
		if sale.Balance > 0 {
			out = append(out, *sale)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockSaleRepo) TotalForDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, sale := range m.sales {
		if !sale.SaleDate.Before(start) && sale.SaleDate.Before(end) {
			total += sale.TotalAmount
		}
	}
	return total, nil
}

func (m *mockSaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	m.sales[sale.ID] = sale
	return nil
}

func (m *mockSaleRepo) UpdatePayment(ctx context.Context, id uuid.UUID, amountPaid, balance int64, status enum.CreditStatus) error {
	sale, ok := m.sales[id]
	if !ok {
		return nil
	}
	sale.AmountPaid = amountPaid
	sale.Balance = balance
	sale.CreditStatus = status
	return nil
}

func (m *mockSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.sales, id)
	return nil
}

type mockSaleDetailRepo struct {
	items  map[uuid.UUID][]entity.SaleItem
	extras map[uuid.UUID][]entity.SaleExtra
}

func newMockSaleDetailRepo() *mockSaleDetailRepo {
	return &mockSaleDetailRepo{
		items:  make(map[uuid.UUID][]entity.SaleItem),
		extras: make(map[uuid.UUID][]entity.SaleExtra),
	}
}

func (m *mockSaleDetailRepo) CreateItemsBatch(ctx context.Context, items []entity.SaleItem) error {
	for _, item := range items {
		m.items[item.SaleID] = append(m.items[item.SaleID], item)
	}
	return nil
}

func (m *mockSaleDetailRepo) CreateExtrasBatch(ctx context.Context, extras []entity.SaleExtra) error {
	for _, extra := range extras {
		m.extras[extra.SaleID] = append(m.extras[extra.SaleID], extra)
	}
	return nil
}

func (m *mockSaleDetailRepo) DeleteBySale(ctx context.Context, saleID uuid.UUID) error {
	delete(m.items, saleID)
	delete(m.extras, saleID)
	return nil
}

type mockCreditRepo struct {
	payments map[uuid.UUID]*entity.CreditPayment
}

func newMockCreditRepo(payments ...*entity.CreditPayment) *mockCreditRepo {
	m := &mockCreditRepo{payments: make(map[uuid.UUID]*entity.CreditPayment)}
	for _, payment := range payments {
		m.payments[payment.ID] = payment
	}
	return m
}

func (m *mockCreditRepo) Create(ctx context.Context, payment *entity.CreditPayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	m.payments[payment.ID] = payment
	return nil
}

func (m *mockCreditRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CreditPayment, error) {
	return m.payments[id], nil
}

func (m *mockCreditRepo) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.CreditPayment, error) {
	var out []entity.CreditPayment
	for _, payment := range m.payments {
		if payment.SaleID == saleID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (m *mockCreditRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.payments, id)
	return nil
}

func (m *mockCreditRepo) DeleteBySale(ctx context.Context, saleID uuid.UUID) error {
	for id, payment := range m.payments {
		if payment.SaleID == saleID {
			delete(m.payments, id)
		}
	}
	return nil
}

type mockQuotationRepo struct {
	quotations map[uuid.UUID]*entity.Quotation
}

func newMockQuotationRepo() *mockQuotationRepo {
	return &mockQuotationRepo{quotations: make(map[uuid.UUID]*entity.Quotation)}
}

func (m *mockQuotationRepo) Create(ctx context.Context, quotation *entity.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	m.quotations[quotation.ID] = quotation
	return nil
}

func (m *mockQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return m.quotations[id], nil
}

func (m *mockQuotationRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return m.quotations[id], nil
}

func (m *mockQuotationRepo) List(ctx context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var out []entity.Quotation
	for _, quotation := range m.quotations {
		out = append(out, *quotation)
	}
	return out, int64(len(out)), nil
}

func (m *mockQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.quotations, id)
	return nil
}

type mockQuotationDetailRepo struct {
	items  map[uuid.UUID][]entity.QuotationItem
	extras map[uuid.UUID][]entity.QuotationExtra
}

func newMockQuotationDetailRepo() *mockQuotationDetailRepo {
	return &mockQuotationDetailRepo{
		items:  make(map[uuid.UUID][]entity.QuotationItem),
		extras: make(map[uuid.UUID][]entity.QuotationExtra),
	}
}

func (m *mockQuotationDetailRepo) CreateItemsBatch(ctx context.Context, items []entity.QuotationItem) error {
	for _, item := range items {
		m.items[item.QuotationID] = append(m.items[item.QuotationID], item)
	}
	return nil
}

func (m *mockQuotationDetailRepo) CreateExtrasBatch(ctx context.Context, extras []entity.QuotationExtra) error {
	for _, extra := range extras {
		m.extras[extra.QuotationID] = append(m.extras[extra.QuotationID], extra)
	}
	return nil
}

func (m *mockQuotationDetailRepo) DeleteByQuotation(ctx context.Context, quotationID uuid.UUID) error {
	delete(m.items, quotationID)
	delete(m.extras, quotationID)
	return nil
}

type mockExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newMockExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *mockExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return m.expenses[id], nil
}

func (m *mockExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	m.expenses[expense.ID] = expense
	return nil
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.expenses, id)
	return nil
}

func (m *mockExpenseRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, expense := range m.expenses {
		out = append(out, *expense)
	}
	return out, int64(len(out)), nil
}

func (m *mockExpenseRepo) TotalForDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, expense := range m.expenses {
		if !expense.ExpenseDate.Before(start) && expense.ExpenseDate.Before(end) {
			total += expense.Amount
		}
	}
	return total, nil
}
