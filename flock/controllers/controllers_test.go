package controllers

import (
	"context"
	"fmt"
	"testing"

	"flock/flock/config"
	"flock/flock/sources/psql"
	"flock/flock/sources/psql/dao"
	"flock/flock/sources/psql/models"
	"flock/flock/utils/logging"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- Helpers ---

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logging.InitLogger() // ensures loggers aren't nil
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// a single connection keeps every session on the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{Env: "development", JWTSecret: "test-secret"}
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		FullName: "Test " + username,
	}
	if err := dao.NewUserDAO(db).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

// fakeImageStore counts calls instead of talking to a real host.
type fakeImageStore struct {
	uploads int
	deletes int
	deleted []string
}

func (f *fakeImageStore) Upload(ctx context.Context, dataURI string) (string, error) {
	f.uploads++
	return fmt.Sprintf("http://images.local/flock-images/images/img-%d.png", f.uploads), nil
}

func (f *fakeImageStore) Delete(ctx context.Context, url string) error {
	f.deletes++
	f.deleted = append(f.deleted, url)
	return nil
}
