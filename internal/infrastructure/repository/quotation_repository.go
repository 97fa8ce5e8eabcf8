package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	domainRepo "github.com/sewlanka/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Extras").
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var quotations []entity.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quotation{})
	if !params.SkipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.StartDate != nil {
		query = query.Where("quote_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("quote_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "quote_date"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Preload("Items").Preload("Extras").
		Find(&quotations).Error

	return quotations, total, err
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quotation{}, "id = ?", id).Error
}

type quotationDetailRepository struct {
	db *gorm.DB
}

// NewQuotationDetailRepository creates a new quotation detail repository
func NewQuotationDetailRepository(db *gorm.DB) domainRepo.QuotationDetailRepository {
	return &quotationDetailRepository{db: db}
}

func (r *quotationDetailRepository) CreateItemsBatch(ctx context.Context, items []entity.QuotationItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *quotationDetailRepository) CreateExtrasBatch(ctx context.Context, extras []entity.QuotationExtra) error {
	if len(extras) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&extras).Error
}

func (r *quotationDetailRepository) DeleteByQuotation(ctx context.Context, quotationID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.QuotationItem{}, "quotation_id = ?", quotationID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&entity.QuotationExtra{}, "quotation_id = ?", quotationID).Error
}
