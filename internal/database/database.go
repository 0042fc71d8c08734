package database

import (
	"fmt"

	"github.com/proroofers/crm-api/internal/config"
	"github.com/proroofers/crm-api/internal/logs"
	"github.com/proroofers/crm-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database selected by the configured driver.
func Connect(cfg *config.Config) error {
	var err error
	switch cfg.Database.Driver {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	case "mysql":
		DB, err = gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logs.Logger.WithField("driver", cfg.Database.Driver).Info("database connection established")
	return nil
}

// Migrate creates and updates the schema.
func Migrate() error {
	logs.Logger.Info("running database migrations")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Project{},
		&models.WorkTask{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logs.Logger.Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
