package config

import (
	"fmt"

	"medequip-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens the shared GORM handle. It is called once at startup and
// the returned *gorm.DB is safe for concurrent use by in-flight requests.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Auto Migration: creates tables from the structs in internal/model
	if err := db.AutoMigrate(&model.Technician{}, &model.ServiceRecord{}); err != nil {
		return nil, fmt.Errorf("auto migration failed: %w", err)
	}

	return db, nil
}
