package repository

import (
	"context"
	"testing"

	"linkhive/internal/cache"
	"linkhive/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSQLiteWithCache(t *testing.T) *gorm.DB {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func TestGetByIDCacheRoundTripsPasswordHash(t *testing.T) {
	db := setupSQLiteWithCache(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		FirstName: "Ana",
		LastName:  "Cache",
		Email:     "ana.cache@example.com",
		Password:  "$2a$10$sentinelhashsentinelhashsentinelhashsentinel",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Warm the cache, then remove the row so a second read can only be
	// served from the cache.
	if _, err := repo.GetByID(ctx, user.ID); err != nil {
		t.Fatalf("GetByID (warm): %v", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("delete rows: %v", err)
	}

	cached, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID (cached): %v", err)
	}
	if cached.Password != user.Password {
		t.Errorf("cached copy lost the credential hash: %q", cached.Password)
	}
	if cached.Email != user.Email {
		t.Errorf("cached copy lost profile fields: %q", cached.Email)
	}
}

func TestUpdateAfterCachedReadKeepsCredential(t *testing.T) {
	db := setupSQLiteWithCache(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correcthorse1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		FirstName: "Bea",
		LastName:  "Update",
		Email:     "bea.update@example.com",
		Password:  string(hashed),
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// First read fills the cache; second read is served from it.
	if _, err := repo.GetByID(ctx, user.ID); err != nil {
		t.Fatalf("GetByID (warm): %v", err)
	}
	fromCache, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID (cached): %v", err)
	}

	fromCache.Headline = "Staff engineer"
	if err := repo.Update(ctx, fromCache); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Headline != "Staff engineer" {
		t.Errorf("headline not updated: %q", stored.Headline)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correcthorse1")); err != nil {
		t.Error("credential hash was destroyed by the profile update")
	}
}
