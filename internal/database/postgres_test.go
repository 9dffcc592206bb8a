package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stwalsh4118/faasdoc/internal/config"
)

// getTestConfig returns configuration for a local PostgreSQL instance.
func getTestConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Enabled:  true,
		Host:     getEnvOrDefault("DB_HOST", "host.docker.internal"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		Name:     getEnvOrDefault("DB_NAME", "rptas"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		PoolMin:  2,
		PoolMax:  5,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host: "db.local", Port: "5433", Name: "rptas",
		User: "assessor", Password: "p@ss:word/1",
	}

	dsn := DSN(cfg)

	parsed, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("ParseConfig(%q) failed: %v", dsn, err)
	}
	if parsed.ConnConfig.Host != "db.local" {
		t.Errorf("Expected host db.local, got %s", parsed.ConnConfig.Host)
	}
	if parsed.ConnConfig.Port != 5433 {
		t.Errorf("Expected port 5433, got %d", parsed.ConnConfig.Port)
	}
	if parsed.ConnConfig.Password != "p@ss:word/1" {
		t.Errorf("Expected escaped password to round-trip, got %q", parsed.ConnConfig.Password)
	}
	if parsed.ConnConfig.Database != "rptas" {
		t.Errorf("Expected database rptas, got %s", parsed.ConnConfig.Database)
	}
}

func TestStats_NilPool(t *testing.T) {
	db := &Database{}
	if db.Stats() != nil {
		t.Error("Expected nil stats for an unopened pool")
	}
	// Close on an unopened pool must not panic
	db.Close()
}

func TestNewPostgresPool_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := getTestConfig()

	db, err := NewPostgresPool(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	defer db.Close()

	if db.Pool == nil {
		t.Error("Expected Pool to be initialized")
	}
	if stats := db.Stats(); stats == nil || stats.MaxConns() != int32(cfg.PoolMax) {
		t.Errorf("Expected MaxConns %d", cfg.PoolMax)
	}
}

func TestNewPostgresPool_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cfg := getTestConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	if _, err := NewPostgresPool(ctx, cfg); err == nil {
		t.Error("Expected error when connecting to invalid host")
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	db, err := NewPostgresPool(ctx, getTestConfig())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := db.EnsureSchema(ctx); err != nil {
			t.Fatalf("EnsureSchema() call %d failed: %v", i+1, err)
		}
	}
}

func TestPing_AfterClose(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	db, err := NewPostgresPool(ctx, getTestConfig())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}

	if err := db.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}

	db.Close()
	db.Close()

	if err := db.Ping(ctx); err == nil {
		t.Error("Expected ping to fail after pool is closed")
	}
}
