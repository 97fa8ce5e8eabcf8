package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// InventoryFilterParams represents filter parameters for inventory queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	InStock    bool // only items with quantity > 0
	LowStock   bool // only items at or below their alert level
	SortBy     string
	SortOrder  string
}

// InventoryRepository defines the interface for inventory data access
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)

	// AtomicDecrementBatch decrements stock for each item id by the given
	// quantity in a single statement per item, guarded by quantity >= n.
	// It returns the ids whose stock was insufficient; when any id is
	// returned the whole batch has been rolled back.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error)

	// AtomicIncrementBatch restores stock, used when a sale is deleted or a
	// partially created sale is rolled back.
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
}
