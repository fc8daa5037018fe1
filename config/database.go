package config

import (
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tricyvic/alx-travel-app-0x00/models"
)

// ConnectDB mở kết nối Postgres; DB_DRIVER=postgres dùng lib/pq thay cho pgx
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	pgCfg := postgres.Config{DSN: cfg.DatabaseURL}
	if cfg.DBDriver == "postgres" {
		pgCfg.DriverName = "postgres"
	}

	logLevel := gormlogger.Warn
	if cfg.Env == "dev" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.New(pgCfg), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate tạo bảng theo thứ tự phụ thuộc khóa ngoại
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
