package service

import (
	"blog_system/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with foreign key
// enforcement on, so cascade deletes behave like the MySQL schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the private in-memory database alive
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Post{}))
	return db
}

// seedUser inserts a user directly through the store
func seedUser(t *testing.T, db *gorm.DB, username, email string) domain.User {
	t.Helper()
	u := domain.User{Username: username, Email: email}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// seedPost inserts a post directly through the store
func seedPost(t *testing.T, db *gorm.DB, userID uint, title, content string) domain.Post {
	t.Helper()
	p := domain.Post{Title: title, Content: content, UserID: userID}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func ptr[T any](v T) *T { return &v }
