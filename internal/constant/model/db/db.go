package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Pool controls the connection pool of the payments database.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

// DefaultPool returns the pool settings used when none are configured.
func DefaultPool() Pool {
	return Pool{
		MaxOpen:     25,
		MaxIdle:     5,
		MaxLifetime: 5 * time.Minute,
	}
}

// DB wraps the GORM connection to the payments database
type DB struct {
	*gorm.DB
}

// Open connects to the payments database, applies the pool settings and
// migrates the payments table.
func Open(dsn string, pool Pool) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open payments database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("access payments connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetMaxIdleConns(pool.MaxIdle)
	sqlDB.SetConnMaxLifetime(pool.MaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping payments database: %w", err)
	}

	if err := gdb.AutoMigrate(&Payment{}); err != nil {
		return nil, fmt.Errorf("migrate payments schema: %w", err)
	}

	return &DB{DB: gdb}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
