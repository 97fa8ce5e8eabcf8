package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a user in the system
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"size:50;unique;not null" json:"username"`
	FullName  string         `gorm:"size:255;not null" json:"full_name"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Level     enum.UserLevel `gorm:"default:1" json:"level"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales      []Sale          `gorm:"foreignKey:UserID" json:"-"`
	Quotations []Quotation     `gorm:"foreignKey:UserID" json:"-"`
	Inventory  []InventoryItem `gorm:"foreignKey:UserID" json:"-"`
	Expenses   []Expense       `gorm:"foreignKey:UserID" json:"-"`
	Settings   *UserSettings   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsManager reports whether the user holds the L2 (manager) level
func (u *User) IsManager() bool {
	return u.Level == enum.UserLevelManager
}
