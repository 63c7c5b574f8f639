package db

import (
	"fmt"

	"github.com/thatcatcamp/themebuilder/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(dbType, dbPath string) error {
	var err error
	var dialector gorm.Dialector

	switch dbType {
	case "sqlite":
		dialector = sqlite.Open(dbPath)
	case "mysql", "mariadb":
		dialector = mysql.Open(dbPath) // dbPath is DSN for MySQL
	default:
		return fmt.Errorf("unsupported database type: %s", dbType)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	return nil
}

// Migrate creates or updates the schema.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&models.SavedTheme{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database connection (used for testing)
func SetDB(database *gorm.DB) {
	DB = database
}
