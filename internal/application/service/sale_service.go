package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/cart"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"github.com/sewlanka/pos-api/internal/domain/repository"
	"github.com/sewlanka/pos-api/pkg/apperror"
	"github.com/sewlanka/pos-api/pkg/pagination"
	"github.com/sewlanka/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo       repository.SaleRepository
	saleDetailRepo repository.SaleDetailRepository
	inventoryRepo  repository.InventoryRepository
	creditRepo     repository.CreditPaymentRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	saleDetailRepo repository.SaleDetailRepository,
	inventoryRepo repository.InventoryRepository,
	creditRepo repository.CreditPaymentRepository,
) *SaleService {
	return &SaleService{
		saleRepo:       saleRepo,
		saleDetailRepo: saleDetailRepo,
		inventoryRepo:  inventoryRepo,
		creditRepo:     creditRepo,
	}
}

// SaleLineInput represents an inventory line in a sale
type SaleLineInput struct {
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice *float64 // nil keeps the inventory selling price
}

// TradeInInput represents an old-item exchange deducted from the total
type TradeInInput struct {
	Description string
	Deduction   float64
}

// ExtraInput represents an ad hoc line not tied to inventory
type ExtraInput struct {
	Description string
	UnitCost    float64
	UnitPrice   float64
	Quantity    int
}

// InstallmentInput represents an installment plan recorded for reference
type InstallmentInput struct {
	Count    int
	DueDates []string
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	UserID        uuid.UUID
	CustomerName  string
	PhoneNumber   string
	PaymentMethod string
	AmountPaid    *float64 // nil defaults to the computed total
	Items         []SaleLineInput
	TradeIn       *TradeInInput
	Extras        []ExtraInput
	Installments  *InstallmentInput
}

// CreateSale validates the submitted cart, atomically decrements stock and
// persists the sale with its line items. Stock already taken is restored if a
// later step fails.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	builder, invMap, err := buildCart(ctx, s.inventoryRepo, cart.ModeSale, input.Items, input.TradeIn, input.Extras)
	if err != nil {
		return nil, err
	}

	total := builder.Total()

	// Operators often take exact payment; an omitted amount means paid in full.
	paid := total
	if input.AmountPaid != nil {
		paid = decimal.NewFromFloat(*input.AmountPaid)
	}
	if err := builder.SetPayment(paid, input.PaymentMethod); err != nil {
		return nil, cartError(err)
	}

	payload, err := builder.Payload()
	if err != nil {
		return nil, cartError(err)
	}

	// Atomically decrement stock - this is race-condition safe.
	// If any item has insufficient stock, the entire operation fails.
	stockDecrements := make(map[uuid.UUID]int)
	for _, item := range payload.Items {
		stockDecrements[item.ItemID] = item.Quantity
	}

	failedIDs, err := s.inventoryRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if item, exists := invMap[id]; exists {
				failedNames = append(failedNames, item.Name)
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	totalCents := centsFromDecimal(total)
	paidCents := centsFromDecimal(paid)
	// Overpayment stores a zero balance; change owed stays recoverable as
	// amountPaid - total.
	balance := totalCents - paidCents
	if balance < 0 {
		balance = 0
	}

	sale := &entity.Sale{
		UserID:        input.UserID,
		InvoiceNo:     utils.GenerateInvoiceNo(),
		SaleDate:      time.Now(),
		CustomerName:  input.CustomerName,
		PhoneNumber:   input.PhoneNumber,
		PaymentMethod: payload.PaymentMethod,
		TotalAmount:   totalCents,
		AmountPaid:    paidCents,
		Balance:       balance,
		CreditStatus:  enum.DeriveCreditStatus(balance, totalCents),
	}

	if payload.TradeIn != nil {
		desc := payload.TradeIn.Description
		deduction := centsFromDecimal(payload.TradeIn.Deduction)
		sale.TradeInDescription = &desc
		sale.TradeInDeduction = &deduction
	}

	if input.Installments != nil && input.Installments.Count > 0 {
		count := input.Installments.Count
		sale.HasInstallmentPlan = true
		sale.InstallmentCount = &count
		sale.InstallmentDueDates = input.Installments.DueDates
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Stock was already decremented - restore it
		_ = s.inventoryRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	saleItems := make([]entity.SaleItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		inv := invMap[item.ItemID]
		unitPriceCents := centsFromDecimal(item.UnitPrice)
		saleItems = append(saleItems, entity.SaleItem{
			SaleID:      sale.ID,
			ItemID:      item.ItemID,
			ItemName:    inv.Name,
			ModelNumber: inv.ModelNumber,
			Quantity:    item.Quantity,
			UnitPrice:   unitPriceCents,
			Total:       unitPriceCents * int64(item.Quantity),
		})
	}

	if err := s.saleDetailRepo.CreateItemsBatch(ctx, saleItems); err != nil {
		_ = s.inventoryRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	saleExtras := make([]entity.SaleExtra, 0, len(payload.Extras))
	for _, extra := range payload.Extras {
		saleExtras = append(saleExtras, entity.SaleExtra{
			SaleID:      sale.ID,
			Description: extra.Description,
			UnitCost:    centsFromDecimal(extra.UnitCost),
			UnitPrice:   centsFromDecimal(extra.UnitPrice),
			Quantity:    extra.Quantity,
		})
	}

	if err := s.saleDetailRepo.CreateExtrasBatch(ctx, saleExtras); err != nil {
		_ = s.inventoryRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	return s.saleRepo.GetWithDetails(ctx, sale.ID)
}

// buildCart replays submitted lines through a cart builder so a sale and a
// quotation are validated by the same rules.
func buildCart(
	ctx context.Context,
	inventoryRepo repository.InventoryRepository,
	mode cart.Mode,
	items []SaleLineInput,
	tradeIn *TradeInInput,
	extras []ExtraInput,
) (*cart.Builder, map[uuid.UUID]*entity.InventoryItem, error) {
	itemIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		itemIDs[i] = item.ItemID
	}

	inventory, err := inventoryRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, nil, err
	}

	invMap := make(map[uuid.UUID]*entity.InventoryItem, len(inventory))
	for i := range inventory {
		invMap[inventory[i].ID] = &inventory[i]
	}

	builder := cart.New(mode)
	for _, line := range items {
		inv, exists := invMap[line.ItemID]
		if !exists {
			return nil, nil, apperror.NewNotFoundError(fmt.Sprintf("Item %s", line.ItemID))
		}

		view := cart.InventoryItem{
			ID:           inv.ID,
			Name:         inv.Name,
			ModelNumber:  inv.ModelNumber,
			AvailableQty: inv.Quantity,
			SellingPrice: decimalFromCents(inv.SellingPrice),
		}
		if err := builder.AddItem(view); err != nil {
			return nil, nil, cartError(err)
		}
		if err := builder.SetQuantity(inv.ID, line.Quantity); err != nil {
			return nil, nil, cartError(err)
		}
		if line.UnitPrice != nil {
			if err := builder.SetUnitPrice(inv.ID, decimal.NewFromFloat(*line.UnitPrice)); err != nil {
				return nil, nil, cartError(err)
			}
		}
	}

	if tradeIn != nil {
		builder.SetTradeIn(tradeIn.Description, decimal.NewFromFloat(tradeIn.Deduction))
	}

	for _, extra := range extras {
		idx := builder.AddExtra()
		builder.UpdateExtra(idx, cart.ExtraItem{
			Description: extra.Description,
			UnitCost:    decimal.NewFromFloat(extra.UnitCost),
			UnitPrice:   decimal.NewFromFloat(extra.UnitPrice),
			Quantity:    extra.Quantity,
		})
	}

	return builder, invMap, nil
}

// GetSale retrieves a sale by ID with its line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, userID uuid.UUID, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ListSalesWithCursor lists sales with cursor-based pagination
func (s *SaleService) ListSalesWithCursor(ctx context.Context, userID uuid.UUID, params *repository.SaleCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Sale], error) {
	sales, err := s.saleRepo.ListWithCursor(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(sales, params.Cursor.Limit,
		func(sl entity.Sale) string { return sl.ID.String() },
		func(sl entity.Sale) time.Time { return sl.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateSaleInput represents the customer fields editable after creation
type UpdateSaleInput struct {
	CustomerName *string
	PhoneNumber  *string
}

// UpdateSale edits the customer fields of a sale. Totals, line items and
// payment tracking are immutable after submission.
func (s *SaleService) UpdateSale(ctx context.Context, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if input.CustomerName != nil {
		sale.CustomerName = *input.CustomerName
	}
	if input.PhoneNumber != nil {
		sale.PhoneNumber = *input.PhoneNumber
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithDetails(ctx, id)
}

// DailySummary holds the sales total for one business day
type DailySummary struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// GetDailySummary sums the sale totals recorded on the given day, for
// end-of-day till reconciliation.
func (s *SaleService) GetDailySummary(ctx context.Context, day time.Time) (*DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	total, err := s.saleRepo.TotalForDateRange(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:  start.Format("2006-01-02"),
		Total: float64(total) / 100,
	}, nil
}

// DeleteSale removes a sale, restoring the stock it consumed and discarding
// its credit payment history.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range sale.Items {
		stockIncrements[item.ItemID] = item.Quantity
	}

	if err := s.inventoryRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	if err := s.creditRepo.DeleteBySale(ctx, id); err != nil {
		return err
	}
	if err := s.saleDetailRepo.DeleteBySale(ctx, id); err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}

// cartError converts cart validation failures into 400-level responses
func cartError(err error) error {
	switch {
	case errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidPrice),
		errors.Is(err, cart.ErrInvalidPayment),
		errors.Is(err, cart.ErrEmptyOrder):
		return apperror.NewBadRequestError(err.Error())
	}
	return err
}

// centsFromDecimal converts a decimal currency amount to cents
func centsFromDecimal(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// centsFromFloat converts a float currency amount to cents, rounding to
// the nearest cent. Truncation would drop a cent from amounts like 19.99.
func centsFromFloat(f float64) int64 {
	return centsFromDecimal(decimal.NewFromFloat(f))
}

// decimalFromCents converts cents to a decimal currency amount
func decimalFromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}
