package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents a completed sale with payment and credit tracking
type Sale struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceNo     string            `gorm:"size:100;unique;not null" json:"invoice_no"`
	SaleDate      time.Time         `gorm:"not null;index" json:"sale_date"`
	CustomerName  string            `gorm:"size:255;not null" json:"customer_name"`
	PhoneNumber   string            `gorm:"size:50" json:"phone_number"`
	PaymentMethod string            `gorm:"size:50" json:"payment_method"`
	TotalAmount   int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	AmountPaid    int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Balance       int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreditStatus  enum.CreditStatus `gorm:"default:0" json:"credit_status"`

	// Old-item exchange deducted from the total
	TradeInDescription *string `gorm:"size:255" json:"trade_in_description,omitempty"`
	TradeInDeduction   *int64  `json:"-"` // Stored in cents

	// Installment plan info, recorded for reference only
	HasInstallmentPlan  bool     `gorm:"default:false" json:"has_installment_plan"`
	InstallmentCount    *int     `json:"installment_count,omitempty"`
	InstallmentDueDates []string `gorm:"serializer:json" json:"installment_due_dates,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User    User            `gorm:"foreignKey:UserID" json:"-"`
	Items   []SaleItem      `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Extras  []SaleExtra     `gorm:"foreignKey:SaleID" json:"extras,omitempty"`
	Credits []CreditPayment `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	var tradeInDeduction *float64
	if s.TradeInDeduction != nil {
		d := float64(*s.TradeInDeduction) / 100
		tradeInDeduction = &d
	}
	return json.Marshal(&struct {
		Alias
		TotalAmount      float64  `json:"total_amount"`
		AmountPaid       float64  `json:"amount_paid"`
		Balance          float64  `json:"balance"`
		TradeInDeduction *float64 `json:"trade_in_deduction,omitempty"`
	}{
		Alias:            Alias(s),
		TotalAmount:      float64(s.TotalAmount) / 100,
		AmountPaid:       float64(s.AmountPaid) / 100,
		Balance:          float64(s.Balance) / 100,
		TradeInDeduction: tradeInDeduction,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents a line item in a sale. Name and model number are
// snapshots taken from inventory at sale time.
type SaleItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ItemID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName    string         `gorm:"size:255;not null" json:"item_name"`
	ModelNumber string         `gorm:"size:100" json:"model_number"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale          `gorm:"foreignKey:SaleID" json:"-"`
	Item InventoryItem `gorm:"foreignKey:ItemID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
		Total:     float64(si.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// SaleExtra represents an ad hoc line sold alongside inventory, typically an
// item borrowed from a neighboring shop. UnitCost is what the shop paid for
// it and is informational only.
type SaleExtra struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	UnitCost    int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	UnitPrice   int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity    int            `gorm:"default:1" json:"quantity"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (se SaleExtra) MarshalJSON() ([]byte, error) {
	type Alias SaleExtra
	return json.Marshal(&struct {
		Alias
		UnitCost  float64 `json:"unit_cost"`
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(se),
		UnitCost:  float64(se.UnitCost) / 100,
		UnitPrice: float64(se.UnitPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale extra
func (se *SaleExtra) BeforeCreate(tx *gorm.DB) error {
	if se.ID == uuid.Nil {
		se.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleExtra model
func (SaleExtra) TableName() string {
	return "sale_extras"
}
