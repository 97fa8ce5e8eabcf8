package database

import (
	"fmt"
	"log"

	"github.com/sewlanka/pos-api/internal/config"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.UserSettings{},

		// Inventory entities
		&entity.InventoryItem{},

		// Transaction entities
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.SaleExtra{},
		&entity.Quotation{},
		&entity.QuotationItem{},
		&entity.QuotationExtra{},
		&entity.CreditPayment{},
		&entity.Expense{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the default manager account when configured
// and no user with that username exists yet.
func SeedDefaultData(db *gorm.DB, cfg *config.SeedConfig) error {
	if cfg.ManagerUsername == "" || cfg.ManagerPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("username = ?", cfg.ManagerUsername).First(&existing).Error; err == nil {
		log.Printf("Manager user already exists: %s", cfg.ManagerUsername)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.ManagerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash manager password: %w", err)
	}

	manager := entity.User{
		Username: cfg.ManagerUsername,
		FullName: cfg.ManagerName,
		Password: string(hashedPassword),
		Level:    enum.UserLevelManager,
		IsActive: true,
	}
	if err := db.Create(&manager).Error; err != nil {
		return fmt.Errorf("failed to create manager user: %w", err)
	}

	log.Printf("Manager user created: %s", cfg.ManagerUsername)
	return nil
}
