package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/cart"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/repository"
	"github.com/sewlanka/pos-api/pkg/apperror"
	"github.com/sewlanka/pos-api/pkg/pagination"
	"github.com/sewlanka/pos-api/pkg/utils"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo       repository.QuotationRepository
	quotationDetailRepo repository.QuotationDetailRepository
	inventoryRepo       repository.InventoryRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	quotationDetailRepo repository.QuotationDetailRepository,
	inventoryRepo repository.InventoryRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo:       quotationRepo,
		quotationDetailRepo: quotationDetailRepo,
		inventoryRepo:       inventoryRepo,
	}
}

// CreateQuotationInput represents the create quotation input
type CreateQuotationInput struct {
	UserID       uuid.UUID
	CustomerName string
	PhoneNumber  *string
	Notes        *string
	Items        []SaleLineInput
	TradeIn      *TradeInInput
	Extras       []ExtraInput
	Installments *InstallmentInput
}

// CreateQuotationOutput carries the stored quotation plus any stock warnings
// recorded while the cart was validated.
type CreateQuotationOutput struct {
	Quotation *entity.Quotation
	Warnings  []string
}

// CreateQuotation validates the submitted cart in quotation mode and persists
// it. Inventory is never mutated: a quotation reserves nothing, and quantities
// above the current stock level are accepted with a warning.
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*CreateQuotationOutput, error) {
	builder, invMap, err := buildCart(ctx, s.inventoryRepo, cart.ModeQuotation, input.Items, input.TradeIn, input.Extras)
	if err != nil {
		return nil, err
	}

	payload, err := builder.Payload()
	if err != nil {
		return nil, cartError(err)
	}

	quotation := &entity.Quotation{
		UserID:       input.UserID,
		Reference:    utils.GenerateQuoteReference(),
		QuoteDate:    time.Now(),
		CustomerName: input.CustomerName,
		PhoneNumber:  input.PhoneNumber,
		Notes:        input.Notes,
		TotalAmount:  centsFromDecimal(builder.Total()),
	}

	if payload.TradeIn != nil {
		desc := payload.TradeIn.Description
		deduction := centsFromDecimal(payload.TradeIn.Deduction)
		quotation.TradeInDescription = &desc
		quotation.TradeInDeduction = &deduction
	}

	if input.Installments != nil && input.Installments.Count > 0 {
		count := input.Installments.Count
		quotation.HasInstallmentPlan = true
		quotation.InstallmentCount = &count
		quotation.InstallmentDueDates = input.Installments.DueDates
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	items := make([]entity.QuotationItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		inv := invMap[item.ItemID]
		unitPriceCents := centsFromDecimal(item.UnitPrice)
		items = append(items, entity.QuotationItem{
			QuotationID:  quotation.ID,
			ItemID:       item.ItemID,
			ItemName:     inv.Name,
			ModelNumber:  inv.ModelNumber,
			Quantity:     item.Quantity,
			UnitPrice:    unitPriceCents,
			Total:        unitPriceCents * int64(item.Quantity),
			AvailableQty: inv.Quantity,
		})
	}

	if err := s.quotationDetailRepo.CreateItemsBatch(ctx, items); err != nil {
		return nil, err
	}

	extras := make([]entity.QuotationExtra, 0, len(payload.Extras))
	for _, extra := range payload.Extras {
		extras = append(extras, entity.QuotationExtra{
			QuotationID: quotation.ID,
			Description: extra.Description,
			UnitCost:    centsFromDecimal(extra.UnitCost),
			UnitPrice:   centsFromDecimal(extra.UnitPrice),
			Quantity:    extra.Quantity,
		})
	}

	if err := s.quotationDetailRepo.CreateExtrasBatch(ctx, extras); err != nil {
		return nil, err
	}

	stored, err := s.quotationRepo.GetWithDetails(ctx, quotation.ID)
	if err != nil {
		return nil, err
	}

	return &CreateQuotationOutput{
		Quotation: stored,
		Warnings:  builder.Warnings(),
	}, nil
}

// GetQuotation retrieves a quotation by ID with its line items
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) (*pagination.PaginatedResult[entity.Quotation], error) {
	quotations, total, err := s.quotationRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// DeleteQuotation removes a quotation and its lines. No stock is touched
// because creating one never consumed any.
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if err := s.quotationDetailRepo.DeleteByQuotation(ctx, id); err != nil {
		return err
	}
	return s.quotationRepo.Delete(ctx, id)
}
