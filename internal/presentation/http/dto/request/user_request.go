package request

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=8"`
	Level    int    `json:"level" binding:"required,min=1,max=2"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Level    *int    `json:"level" binding:"omitempty,min=1,max=2"`
	IsActive *bool   `json:"is_active"`
}

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	Theme          string `json:"theme" binding:"required,oneof=light dark"`
	Language       string `json:"language" binding:"required,max=10"`
	Currency       string `json:"currency" binding:"required,max=10"`
	DateFormat     string `json:"date_format" binding:"required,max=20"`
	LowStockAlerts bool   `json:"low_stock_alerts"`
	CreditAlerts   bool   `json:"credit_alerts"`
}
