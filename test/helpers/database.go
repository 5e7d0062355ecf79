package helpers

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/database"
)

// NewTestDB creates a new SQLite in-memory database for testing
func NewTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}

// NewSeededTestDB creates a test database with master data loaded
func NewSeededTestDB(t *testing.T) *gorm.DB {
	db := NewTestDB(t)
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return db
}

// ProvisionTestPlayer creates a player with starter docks and fleets
func ProvisionTestPlayer(t *testing.T, db *gorm.DB, nickname string) *player.Player {
	p, err := database.ProvisionPlayer(context.Background(), db, nickname)
	if err != nil {
		t.Fatalf("failed to provision test player: %v", err)
	}
	return p
}
