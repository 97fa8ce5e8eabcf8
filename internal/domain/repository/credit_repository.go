package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
)

// CreditPaymentRepository defines the interface for credit payment data access
type CreditPaymentRepository interface {
	Create(ctx context.Context, payment *entity.CreditPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CreditPayment, error)
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.CreditPayment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySale(ctx context.Context, saleID uuid.UUID) error
}
