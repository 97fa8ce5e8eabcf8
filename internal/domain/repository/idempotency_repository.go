package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
)

// IdempotencyRepository stores cached responses keyed by the
// Idempotency-Key header of sale submissions
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}
