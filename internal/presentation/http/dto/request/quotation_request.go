package request

// CreateQuotationRequest represents a quotation creation request
type CreateQuotationRequest struct {
	CustomerName string              `json:"customer_name" binding:"required,max=255"`
	PhoneNumber  *string             `json:"phone_number" binding:"omitempty,max=50"`
	Notes        *string             `json:"notes"`
	Items        []SaleLineRequest   `json:"items" binding:"omitempty,dive"`
	TradeIn      *TradeInRequest     `json:"trade_in"`
	Extras       []ExtraItemRequest  `json:"extras" binding:"omitempty,dive"`
	Installments *InstallmentRequest `json:"installments"`
}

// QuotationFilterRequest represents quotation filter parameters
type QuotationFilterRequest struct {
	Search    string `form:"search"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
