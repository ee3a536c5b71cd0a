package core

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"easattend.com/easattend/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

type DatabaseManager struct {
	db       *gorm.DB
	sqlDB    *sql.DB
	LogLevel LogLevel
}

// New opens the MySQL pool and migrates the attendance schema.
func New(dsn string, maxConnection int) (*DatabaseManager, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.AttendanceLog{},
		&model.DailySummary{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DatabaseManager{db: db, sqlDB: sqlDB}, nil
}

// Exec runs fn against the pool with the request context attached.
func (dm *DatabaseManager) Exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	return fn(dm.session(ctx))
}

// Tx runs fn inside a transaction. Row locks taken by fn (FOR UPDATE reads)
// hold until commit, which is what serializes concurrent check-ins per user.
func (dm *DatabaseManager) Tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return dm.session(ctx).Transaction(fn)
}

func (dm *DatabaseManager) session(ctx context.Context) *gorm.DB {
	gormLogLevel := logger.Silent
	switch dm.LogLevel {
	case LogLevelError:
		gormLogLevel = logger.Error
	case LogLevelWarn:
		gormLogLevel = logger.Warn
	case LogLevelInfo:
		gormLogLevel = logger.Info
	}
	return dm.db.Session(&gorm.Session{
		Context: ctx,
		Logger:  logger.Default.LogMode(gormLogLevel),
	})
}

// Close closes the global pool.
func (dm *DatabaseManager) Close() error {
	return dm.sqlDB.Close()
}
