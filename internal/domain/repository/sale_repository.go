package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// SaleFilterParams represents filter parameters for sale queries
type SaleFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Status         *enum.CreditStatus
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool
}

// SaleCursorFilterParams represents cursor-based filter parameters for sales
type SaleCursorFilterParams struct {
	Cursor         *pagination.CursorParams
	Search         string
	Status         *enum.CreditStatus
	StartDate      *time.Time
	EndDate        *time.Time
	SkipUserFilter bool
}

// SaleRepository defines the interface for sale data access
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, userID uuid.UUID, params *SaleFilterParams) ([]entity.Sale, int64, error)
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *SaleCursorFilterParams) ([]entity.Sale, error)

	// ListOutstanding returns sales with a positive balance (the credit book).
	ListOutstanding(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error)

	// TotalForDateRange sums sale totals in cents over [start, end).
	TotalForDateRange(ctx context.Context, start, end time.Time) (int64, error)

	Update(ctx context.Context, sale *entity.Sale) error

	// UpdatePayment overwrites the payment tracking columns of a sale.
	UpdatePayment(ctx context.Context, id uuid.UUID, amountPaid, balance int64, status enum.CreditStatus) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleDetailRepository defines the interface for sale line item data access
type SaleDetailRepository interface {
	CreateItemsBatch(ctx context.Context, items []entity.SaleItem) error
	CreateExtrasBatch(ctx context.Context, extras []entity.SaleExtra) error
	DeleteBySale(ctx context.Context, saleID uuid.UUID) error
}
