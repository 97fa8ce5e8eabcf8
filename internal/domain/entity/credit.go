package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreditPayment represents a partial payment recorded against a sale's
// outstanding balance
type CreditPayment struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod string         `gorm:"size:50;not null" json:"payment_method"`
	ChequeNumber  *string        `gorm:"size:100" json:"cheque_number,omitempty"`
	ChequeDate    *time.Time     `gorm:"type:date" json:"cheque_date,omitempty"`
	Note          *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p CreditPayment) MarshalJSON() ([]byte, error) {
	type Alias CreditPayment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new credit payment
func (p *CreditPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CreditPayment model
func (CreditPayment) TableName() string {
	return "credit_payments"
}
