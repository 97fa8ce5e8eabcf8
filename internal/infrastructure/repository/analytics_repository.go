package repository

import (
	"context"
	"time"

	domainRepo "github.com/sewlanka/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SalesForDateRange(ctx context.Context, start, end time.Time) (*domainRepo.SalesDayResult, error) {
	var result domainRepo.SalesDayResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0) as total,
			COUNT(*) as count
		FROM sales
		WHERE sale_date >= ? AND sale_date < ? AND deleted_at IS NULL
	`, start, end).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *analyticsRepository) OutstandingCredit(ctx context.Context) (*domainRepo.OutstandingCreditResult, error) {
	var result domainRepo.OutstandingCreditResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(balance), 0) as total_balance,
			COUNT(*) as sale_count
		FROM sales
		WHERE balance > 0 AND deleted_at IS NULL
	`).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *analyticsRepository) LowStockCount(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM inventory_items
		WHERE quantity <= quantity_alert AND deleted_at IS NULL
	`).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) InventoryValue(ctx context.Context) (int64, error) {
	var value int64

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(quantity * purchase_price), 0)
		FROM inventory_items
		WHERE deleted_at IS NULL
	`).Scan(&value).Error

	return value, err
}

func (r *analyticsRepository) TopItems(ctx context.Context, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			si.item_id as item_id,
			si.item_name as item_name,
			si.model_number as model_number,
			COALESCE(SUM(si.quantity), 0) as quantity_sold,
			COALESCE(SUM(si.total), 0) / 100.0 as revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.deleted_at IS NULL
		GROUP BY si.item_id, si.item_name, si.model_number
		ORDER BY quantity_sold DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
