package request

// CreateItemRequest represents an inventory item creation request
type CreateItemRequest struct {
	Name          string  `json:"item_name" binding:"required,min=2,max=255"`
	ModelNumber   string  `json:"model_number" binding:"required,max=100"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	QuantityAlert int     `json:"quantity_alert" binding:"min=0"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
}

// UpdateItemRequest represents an inventory item update request
type UpdateItemRequest struct {
	Name          *string  `json:"item_name" binding:"omitempty,min=2,max=255"`
	ModelNumber   *string  `json:"model_number" binding:"omitempty,max=100"`
	Quantity      *int     `json:"quantity" binding:"omitempty,min=0"`
	QuantityAlert *int     `json:"quantity_alert" binding:"omitempty,min=0"`
	PurchasePrice *float64 `json:"purchase_price" binding:"omitempty,min=0"`
	SellingPrice  *float64 `json:"selling_price" binding:"omitempty,min=0"`
}

// InventoryFilterRequest represents inventory filter parameters
type InventoryFilterRequest struct {
	Search    string `form:"search"`
	InStock   bool   `form:"in_stock"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
