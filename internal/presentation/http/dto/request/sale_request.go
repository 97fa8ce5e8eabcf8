package request

import "github.com/google/uuid"

// SaleLineRequest represents one inventory line in a sale or quotation
type SaleLineRequest struct {
	ItemID    uuid.UUID `json:"item_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice *float64  `json:"unit_price" binding:"omitempty,min=0"`
}

// TradeInRequest represents an old-item exchange
type TradeInRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Deduction   float64 `json:"deduction" binding:"min=0"`
}

// ExtraItemRequest represents an ad hoc line not tied to inventory
type ExtraItemRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	UnitCost    float64 `json:"unit_cost" binding:"min=0"`
	UnitPrice   float64 `json:"unit_price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"min=1"`
}

// InstallmentRequest represents an installment plan recorded for reference
type InstallmentRequest struct {
	Count    int      `json:"count" binding:"required,min=1"`
	DueDates []string `json:"due_dates" binding:"omitempty,dive,datetime=2006-01-02"`
}

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	CustomerName  string              `json:"customer_name" binding:"required,max=255"`
	PhoneNumber   string              `json:"phone_number" binding:"omitempty,max=50"`
	PaymentMethod string              `json:"payment_method" binding:"required,max=50"`
	AmountPaid    *float64            `json:"amount_paid" binding:"omitempty,min=0"`
	Items         []SaleLineRequest   `json:"items" binding:"omitempty,dive"`
	TradeIn       *TradeInRequest     `json:"trade_in"`
	Extras        []ExtraItemRequest  `json:"extras" binding:"omitempty,dive"`
	Installments  *InstallmentRequest `json:"installments"`
}

// UpdateSaleRequest represents a sale customer-field update request
type UpdateSaleRequest struct {
	CustomerName *string `json:"customer_name" binding:"omitempty,max=255"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=50"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Search    string `form:"search"`
	Status    *int   `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Cursor    string `form:"cursor"`
	Limit     int    `form:"limit"` // For cursor-based pagination
}
