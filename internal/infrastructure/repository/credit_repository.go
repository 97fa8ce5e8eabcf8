package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	domainRepo "github.com/sewlanka/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type creditPaymentRepository struct {
	db *gorm.DB
}

// NewCreditPaymentRepository creates a new credit payment repository
func NewCreditPaymentRepository(db *gorm.DB) domainRepo.CreditPaymentRepository {
	return &creditPaymentRepository{db: db}
}

func (r *creditPaymentRepository) Create(ctx context.Context, payment *entity.CreditPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *creditPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CreditPayment, error) {
	var payment entity.CreditPayment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *creditPaymentRepository) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.CreditPayment, error) {
	var payments []entity.CreditPayment
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *creditPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CreditPayment{}, "id = ?", id).Error
}

func (r *creditPaymentRepository) DeleteBySale(ctx context.Context, saleID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CreditPayment{}, "sale_id = ?", saleID).Error
}
