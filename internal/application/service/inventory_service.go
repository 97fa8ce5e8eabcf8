package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/repository"
	"github.com/sewlanka/pos-api/pkg/apperror"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// InventoryService handles inventory-related operations
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	expenseRepo   repository.ExpenseRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		expenseRepo:   expenseRepo,
	}
}

// CreateItemInput represents the create inventory item input
type CreateItemInput struct {
	UserID        uuid.UUID
	Name          string
	ModelNumber   string
	Quantity      int
	QuantityAlert int
	PurchasePrice float64
	SellingPrice  float64
}

// UpdateItemInput represents the update inventory item input
type UpdateItemInput struct {
	Name          *string
	ModelNumber   *string
	Quantity      *int
	QuantityAlert *int
	PurchasePrice *float64
	SellingPrice  *float64
}

// CreateItem adds a stock item and logs the purchase as a linked expense so
// the books stay consistent without double entry.
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.InventoryItem, error) {
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity must not be negative")
	}
	if input.PurchasePrice < 0 || input.SellingPrice < 0 {
		return nil, apperror.NewBadRequestError("Prices must not be negative")
	}

	item := &entity.InventoryItem{
		UserID:        input.UserID,
		Name:          input.Name,
		ModelNumber:   input.ModelNumber,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
	}
	item.SetPurchasePriceFromDecimal(input.PurchasePrice)
	item.SetSellingPriceFromDecimal(input.SellingPrice)

	expenseAmount := item.PurchasePrice * int64(input.Quantity)
	if expenseAmount > 0 {
		expense := &entity.Expense{
			UserID:      input.UserID,
			Description: fmt.Sprintf("Inventory purchase: %s", input.Name),
			Amount:      expenseAmount,
			Category:    entity.ExpenseCategoryInventory,
			ExpenseDate: time.Now(),
		}
		if err := s.expenseRepo.Create(ctx, expense); err != nil {
			return nil, err
		}
		item.ExpenseID = &expense.ID
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists inventory with filtering
func (s *InventoryService) ListItems(ctx context.Context, params *repository.InventoryFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItem applies partial updates to an inventory item. When the purchase
// price or quantity changes and the item carries a linked purchase expense,
// the expense amount is brought in line.
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.ModelNumber != nil {
		item.ModelNumber = *input.ModelNumber
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity must not be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		item.QuantityAlert = *input.QuantityAlert
	}
	if input.PurchasePrice != nil {
		if *input.PurchasePrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.SetPurchasePriceFromDecimal(*input.PurchasePrice)
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.SetSellingPriceFromDecimal(*input.SellingPrice)
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if item.ExpenseID != nil && (input.PurchasePrice != nil || input.Quantity != nil) {
		expense, err := s.expenseRepo.GetByID(ctx, *item.ExpenseID)
		if err != nil {
			return nil, err
		}
		if expense != nil {
			expense.Description = fmt.Sprintf("Inventory purchase: %s", item.Name)
			expense.Amount = item.PurchasePrice * int64(item.Quantity)
			if err := s.expenseRepo.Update(ctx, expense); err != nil {
				return nil, err
			}
		}
	}

	return item, nil
}

// DeleteItem removes an inventory item. The linked purchase expense is kept:
// the money was spent whether or not the item stays on the books.
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}
