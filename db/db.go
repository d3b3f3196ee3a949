// api/db/db.go
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/firatsalmanoglu/firesafe-api/config"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

var DB *gorm.DB

func InitPostgres() error {
	dsn := config.GetString("database.dsn")
	logger.Info("Connecting to Postgres")

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		return fmt.Errorf("failed to open Postgres connection: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := migrate(DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

// migrate keeps the schema in sync with the models. The unique indexes on
// actions.name and tables.name created here are what the audit recorder's
// non-atomic get-or-create relies on.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Institution{},
		&model.Device{},
		&model.MaintenanceCard{},
		&model.OfferRequest{},
		&model.OfferCard{},
		&model.Appointment{},
		&model.Notification{},
		&model.IsgMember{},
		&model.Action{},
		&model.Table{},
		&model.Log{},
	)
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error accessing Postgres connection for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection", zap.Error(err))
	} else {
		logger.Info("Postgres connection closed successfully")
	}
}
