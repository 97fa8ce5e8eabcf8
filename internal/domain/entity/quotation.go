package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quotation represents a priced offer prepared for a customer. Creating one
// never mutates inventory; each line snapshots the stock available at the
// time so the customer can be told what is on hand.
type Quotation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Reference    string    `gorm:"size:100;unique;not null" json:"reference"`
	QuoteDate    time.Time `gorm:"not null;index" json:"quote_date"`
	CustomerName string    `gorm:"size:255;not null" json:"customer_name"`
	PhoneNumber  *string   `gorm:"size:50" json:"phone_number,omitempty"`
	Notes        *string   `gorm:"type:text" json:"notes,omitempty"`
	TotalAmount  int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON

	TradeInDescription *string `gorm:"size:255" json:"trade_in_description,omitempty"`
	TradeInDeduction   *int64  `json:"-"` // Stored in cents

	HasInstallmentPlan  bool     `gorm:"default:false" json:"has_installment_plan"`
	InstallmentCount    *int     `json:"installment_count,omitempty"`
	InstallmentDueDates []string `gorm:"serializer:json" json:"installment_due_dates,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User             `gorm:"foreignKey:UserID" json:"-"`
	Items  []QuotationItem  `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
	Extras []QuotationExtra `gorm:"foreignKey:QuotationID" json:"extras,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (q Quotation) MarshalJSON() ([]byte, error) {
	type Alias Quotation
	var tradeInDeduction *float64
	if q.TradeInDeduction != nil {
		d := float64(*q.TradeInDeduction) / 100
		tradeInDeduction = &d
	}
	return json.Marshal(&struct {
		Alias
		TotalAmount      float64  `json:"total_amount"`
		TradeInDeduction *float64 `json:"trade_in_deduction,omitempty"`
	}{
		Alias:            Alias(q),
		TotalAmount:      float64(q.TotalAmount) / 100,
		TradeInDeduction: tradeInDeduction,
	})
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationItem represents a line item in a quotation. AvailableQty is the
// stock level observed when the quotation was prepared.
type QuotationItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
	ItemID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName     string         `gorm:"size:255;not null" json:"item_name"`
	ModelNumber  string         `gorm:"size:100" json:"model_number"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	UnitPrice    int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total        int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	AvailableQty int            `gorm:"default:0" json:"available_quantity"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quotation Quotation     `gorm:"foreignKey:QuotationID" json:"-"`
	Item      InventoryItem `gorm:"foreignKey:ItemID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (qi QuotationItem) MarshalJSON() ([]byte, error) {
	type Alias QuotationItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(qi),
		UnitPrice: float64(qi.UnitPrice) / 100,
		Total:     float64(qi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new quotation item
func (qi *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationItem model
func (QuotationItem) TableName() string {
	return "quotation_items"
}

// QuotationExtra represents an ad hoc line quoted alongside inventory
type QuotationExtra struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	UnitCost    int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	UnitPrice   int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity    int            `gorm:"default:1" json:"quantity"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quotation Quotation `gorm:"foreignKey:QuotationID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (qe QuotationExtra) MarshalJSON() ([]byte, error) {
	type Alias QuotationExtra
	return json.Marshal(&struct {
		Alias
		UnitCost  float64 `json:"unit_cost"`
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(qe),
		UnitCost:  float64(qe.UnitCost) / 100,
		UnitPrice: float64(qe.UnitPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new quotation extra
func (qe *QuotationExtra) BeforeCreate(tx *gorm.DB) error {
	if qe.ID == uuid.Nil {
		qe.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationExtra model
func (QuotationExtra) TableName() string {
	return "quotation_extras"
}
