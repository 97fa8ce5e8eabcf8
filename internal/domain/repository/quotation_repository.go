package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// QuotationFilterParams represents filter parameters for quotation queries
type QuotationFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool
}

// QuotationRepository defines the interface for quotation data access
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	List(ctx context.Context, userID uuid.UUID, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuotationDetailRepository defines the interface for quotation line data access
type QuotationDetailRepository interface {
	CreateItemsBatch(ctx context.Context, items []entity.QuotationItem) error
	CreateExtrasBatch(ctx context.Context, extras []entity.QuotationExtra) error
	DeleteByQuotation(ctx context.Context, quotationID uuid.UUID) error
}
