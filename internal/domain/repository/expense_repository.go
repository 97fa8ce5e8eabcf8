package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// ExpenseFilterParams represents filter parameters for expense queries
type ExpenseFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Category       string
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool
}

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ExpenseFilterParams) ([]entity.Expense, int64, error)

	// TotalForDateRange sums expense amounts in cents over [start, end).
	TotalForDateRange(ctx context.Context, start, end time.Time) (int64, error)
}
