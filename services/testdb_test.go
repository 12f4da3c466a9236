package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/reclaim/api-go/config"
	"github.com/reclaim/api-go/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A fresh connection would see a fresh in-memory database, so pin the
	// pool to one connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := models.User{Name: name, Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return &user
}

func createTestItem(t *testing.T, db *gorm.DB, ownerID uint, in CreateItemInput) *models.Item {
	t.Helper()
	item, err := NewItemService(db).Create(ownerID, in)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	return item
}

func foundItemInput(name string) CreateItemInput {
	return CreateItemInput{
		Status:      models.ItemStatusFound,
		Name:        name,
		Location:    "library",
		Date:        "2024-03-10",
		Description: "found near the entrance",
		Contact:     "owner@example.edu",
		ImageKey:    "items/1/abc.jpg",
	}
}

func lostItemInput(name string) CreateItemInput {
	return CreateItemInput{
		Status:      models.ItemStatusLost,
		Name:        name,
		Location:    "cafeteria",
		Date:        "2024-03-11",
		Description: "lost during lunch",
		Contact:     "owner@example.edu",
	}
}
