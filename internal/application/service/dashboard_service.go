package service

import (
	"context"
	"time"

	"github.com/sewlanka/pos-api/internal/domain/repository"
)

// DashboardService provides the summary figures shown on the home screen
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	saleRepo      repository.SaleRepository
	expenseRepo   repository.ExpenseRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		saleRepo:      saleRepo,
		expenseRepo:   expenseRepo,
	}
}

// DashboardStats represents the dashboard summary
type DashboardStats struct {
	TodaySalesTotal    float64           `json:"today_sales_total"`
	TodaySalesCount    int64             `json:"today_sales_count"`
	TodayExpensesTotal float64           `json:"today_expenses_total"`
	MonthSalesTotal    float64           `json:"month_sales_total"`
	MonthExpensesTotal float64           `json:"month_expenses_total"`
	OutstandingCredit  float64           `json:"outstanding_credit"`
	OutstandingSales   int64             `json:"outstanding_sales"`
	LowStockCount      int64             `json:"low_stock_count"`
	InventoryValue     float64           `json:"inventory_value"`
	TopItems           []TopItemPoint    `json:"top_items"`
	DailySalesData     []DailySalesPoint `json:"daily_sales_data"`
}

// DailySalesPoint represents one day of sales totals
type DailySalesPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// TopItemPoint represents a best-selling item
type TopItemPoint struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	ModelNumber  string  `json:"model_number"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// GetDashboardStats returns the dashboard summary
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.analyticsRepo.SalesForDateRange(ctx, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	stats.TodaySalesTotal = float64(today.Total) / 100
	stats.TodaySalesCount = today.Count

	todayExpenses, err := s.expenseRepo.TotalForDateRange(ctx, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	stats.TodayExpensesTotal = float64(todayExpenses) / 100

	month, err := s.analyticsRepo.SalesForDateRange(ctx, startOfMonth, startOfMonth.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	stats.MonthSalesTotal = float64(month.Total) / 100

	monthExpenses, err := s.expenseRepo.TotalForDateRange(ctx, startOfMonth, startOfMonth.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	stats.MonthExpensesTotal = float64(monthExpenses) / 100

	credit, err := s.analyticsRepo.OutstandingCredit(ctx)
	if err != nil {
		return nil, err
	}
	stats.OutstandingCredit = float64(credit.TotalBalance) / 100
	stats.OutstandingSales = credit.SaleCount

	lowStock, err := s.analyticsRepo.LowStockCount(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = lowStock

	inventoryValue, err := s.analyticsRepo.InventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	stats.InventoryValue = float64(inventoryValue) / 100

	topItems, err := s.analyticsRepo.TopItems(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopItems = make([]TopItemPoint, 0, len(topItems))
	for _, item := range topItems {
		stats.TopItems = append(stats.TopItems, TopItemPoint{
			ItemID:       item.ItemID,
			ItemName:     item.ItemName,
			ModelNumber:  item.ModelNumber,
			QuantitySold: item.QuantitySold,
			Revenue:      item.Revenue,
		})
	}

	// Last 7 days of sales for the chart
	stats.DailySalesData = make([]DailySalesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := startOfDay.AddDate(0, 0, -i)
		day, err := s.analyticsRepo.SalesForDateRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:  dayStart.Format("2006-01-02"),
			Total: float64(day.Total) / 100,
			Count: day.Count,
		})
	}

	return stats, nil
}
