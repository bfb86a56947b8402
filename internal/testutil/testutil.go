package testutil

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/books-app/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestDatabase holds test database connection (in-memory SQLite)
type TestDatabase struct {
	DB  *gorm.DB
	DSN string
}

// TestRedis holds test Redis mock (miniredis)
type TestRedis struct {
	Server *miniredis.Miniredis
	URL    string
}

// SetupTestDatabase creates an in-memory SQLite database for integration
// tests. The production models carry no Postgres-only defaults, so they
// migrate unchanged.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	dsn := "file::memory:?cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Book{}, &models.VerificationCode{})
	if err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &TestDatabase{
		DB:  db,
		DSN: dsn,
	}
}

// Teardown cleans up the test database (closes connection)
func (td *TestDatabase) Teardown(t *testing.T) {
	sqlDB, err := td.DB.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// SetupTestRedis creates an in-memory Redis mock (miniredis)
func SetupTestRedis(t *testing.T) *TestRedis {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	redisURL := fmt.Sprintf("redis://%s", server.Addr())

	return &TestRedis{
		Server: server,
		URL:    redisURL,
	}
}

// Teardown cleans up the test Redis mock
func (tr *TestRedis) Teardown(t *testing.T) {
	tr.Server.Close()
}

// CleanDatabase deletes all records from tables (for test isolation)
func CleanDatabase(t *testing.T, db *gorm.DB) {
	// SQLite doesn't support TRUNCATE
	tables := []string{"verification_codes", "books", "users"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("Warning: Failed to clean table %s: %v", table, err)
		}
	}
}
