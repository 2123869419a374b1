package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ashwinyue/filechat/internal/config"
)

func TestNewDBSQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			DBName:     ":memory:",
			MaxRetries: 1,
			RetryDelay: 1,
		},
	}

	db, err := NewDB(cfg)
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	// 自动迁移已建表
	if !db.Migrator().HasTable("file_uploads") || !db.Migrator().HasTable("conversations") {
		t.Error("auto migration did not create expected tables")
	}
}

func TestNewDBRetriesBeforeFailing(t *testing.T) {
	// 端口 1 无监听，连接必然被拒绝
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     "postgres",
			Host:       "127.0.0.1",
			Port:       1,
			User:       "postgres",
			DBName:     "filechat",
			SSLMode:    "disable",
			MaxRetries: 2,
			RetryDelay: 1,
		},
	}

	start := time.Now()
	_, err := NewDB(cfg)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("NewDB() expected error for unreachable database")
	}
	if !strings.Contains(err.Error(), "after 2 attempts") {
		t.Errorf("NewDB() error = %v, want retry-exhaustion error", err)
	}
	// 两次尝试之间有一次完整的重试间隔
	if elapsed < time.Second {
		t.Errorf("NewDB() failed after %v, want at least one retry delay", elapsed)
	}
}

func TestNewDBUnsupportedDriver(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "oracle"},
	}

	if _, err := NewDB(cfg); err == nil {
		t.Fatal("NewDB() expected error for unsupported driver")
	}
}
