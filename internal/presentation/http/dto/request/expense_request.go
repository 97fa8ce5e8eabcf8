package request

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,max=100"`
	ExpenseDate *string `json:"expense_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Description *string  `json:"description" binding:"omitempty,max=255"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	ExpenseDate *string  `json:"expense_date" binding:"omitempty,datetime=2006-01-02"`
}

// ExpenseFilterRequest represents expense filter parameters
type ExpenseFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
