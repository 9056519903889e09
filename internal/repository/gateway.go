package repository

import (
	"context"

	"gorm.io/gorm"
)

// Ping checks datastore connectivity for the /api/test-db health endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
