package config

import (
	"time"

	"mercadovecino/internal/entity"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDatabase opens a pooled MySQL connection. Every request borrows a
// connection from the pool, so handlers never share a single live connection.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// AutoMigrate creates tables, indexes and constraints for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Session{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Favorite{},
		&entity.Review{},
		&entity.SecurityLog{},
	)
}
