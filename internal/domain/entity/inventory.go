package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem represents a stock item in the shop
type InventoryItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string         `gorm:"size:255;not null" json:"item_name"`
	ModelNumber   string         `gorm:"size:100;not null" json:"model_number"`
	Quantity      int            `gorm:"default:0" json:"quantity"`
	QuantityAlert int            `gorm:"default:0" json:"quantity_alert"`
	PurchasePrice int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	SellingPrice  int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ExpenseID     *uuid.UUID     `gorm:"type:uuid;index" json:"expense_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Expense *Expense `gorm:"foreignKey:ExpenseID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type Alias InventoryItem
	return json.Marshal(&struct {
		Alias
		PurchasePrice float64 `json:"purchase_price"`
		SellingPrice  float64 `json:"selling_price"`
	}{
		Alias:         Alias(i),
		PurchasePrice: float64(i.PurchasePrice) / 100,
		SellingPrice:  float64(i.SellingPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// GetPurchasePriceDecimal returns the purchase price as a decimal
func (i *InventoryItem) GetPurchasePriceDecimal() float64 {
	return float64(i.PurchasePrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal
func (i *InventoryItem) GetSellingPriceDecimal() float64 {
	return float64(i.SellingPrice) / 100
}

// SetPurchasePriceFromDecimal sets the purchase price from a decimal value,
// rounded to the nearest cent
func (i *InventoryItem) SetPurchasePriceFromDecimal(price float64) {
	i.PurchasePrice = int64(math.Round(price * 100))
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value,
// rounded to the nearest cent
func (i *InventoryItem) SetSellingPriceFromDecimal(price float64) {
	i.SellingPrice = int64(math.Round(price * 100))
}
