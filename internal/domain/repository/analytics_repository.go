package repository

import (
	"context"
	"time"
)

// OutstandingCreditResult aggregates the credit book
type OutstandingCreditResult struct {
	TotalBalance int64 `json:"-"` // cents
	SaleCount    int64 `json:"sale_count"`
}

// SalesDayResult aggregates one day of sales
type SalesDayResult struct {
	Total int64 // cents
	Count int64
}

// TopItemResult is a best-selling inventory item
type TopItemResult struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	ModelNumber  string  `json:"model_number"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// AnalyticsRepository defines aggregate queries used by the dashboard
type AnalyticsRepository interface {
	SalesForDateRange(ctx context.Context, start, end time.Time) (*SalesDayResult, error)
	OutstandingCredit(ctx context.Context) (*OutstandingCreditResult, error)
	LowStockCount(ctx context.Context) (int64, error)
	InventoryValue(ctx context.Context) (int64, error)
	TopItems(ctx context.Context, limit int) ([]TopItemResult, error)
}
