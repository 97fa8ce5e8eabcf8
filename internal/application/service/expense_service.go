package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/repository"
	"github.com/sewlanka/pos-api/pkg/apperror"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// ExpenseService handles expense logging
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Description string
	Amount      float64
	Category    string
	ExpenseDate *time.Time // nil means today
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	Description *string
	Amount      *float64
	Category    *string
	ExpenseDate *time.Time
}

// CreateExpense logs a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Expense amount must be positive")
	}

	expenseDate := time.Now()
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}

	expense := &entity.Expense{
		UserID:      input.UserID,
		Description: input.Description,
		Amount:      centsFromFloat(input.Amount),
		Category:    input.Category,
		ExpenseDate: expenseDate,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses lists expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// TotalForRange sums expense amounts over [start, end)
func (s *ExpenseService) TotalForRange(ctx context.Context, start, end time.Time) (float64, error) {
	cents, err := s.expenseRepo.TotalForDateRange(ctx, start, end)
	if err != nil {
		return 0, err
	}
	return float64(cents) / 100, nil
}

// UpdateExpense applies partial updates to an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Expense amount must be positive")
		}
		expense.Amount = centsFromFloat(*input.Amount)
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}
