package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/vke007/jarvis-private/internal/config"
	"github.com/vke007/jarvis-private/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database named by DATABASE_URL. The scheme picks the
// driver: postgres:// and mysql:// select their servers, anything else is
// treated as a sqlite file path (the single-operator default).
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(cfg.DatabaseURL, "postgres://"), strings.HasPrefix(cfg.DatabaseURL, "postgresql://"):
		dialector = postgres.Open(cfg.DatabaseURL)
	case strings.HasPrefix(cfg.DatabaseURL, "mysql://"):
		dialector = mysql.Open(strings.TrimPrefix(cfg.DatabaseURL, "mysql://"))
	default:
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return nil
}

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.Guest{},
		&models.PasswordReset{},
		&models.Task{},
		&models.Event{},
		&models.Note{},
		&models.HealthLog{},
		&models.ChatHistory{},
		&models.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
