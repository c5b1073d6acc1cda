package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wallnote/wallnote/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.MessageModel{}))
	return db
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	repo := NewGormMessageRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Insert(ctx, "first")
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "second")
	require.NoError(t, err)

	assert.Equal(t, "first", first.Text)
	assert.Equal(t, "second", second.Text)
	assert.Greater(t, second.ID, first.ID)
}

func TestInsertRoundTrip(t *testing.T) {
	repo := NewGormMessageRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Insert(ctx, "hello world")
	require.NoError(t, err)

	messages, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello world", messages[0].Text)
}

func TestInsertRejectsEmptyText(t *testing.T) {
	repo := NewGormMessageRepository(newTestDB(t))

	_, err := repo.Insert(context.Background(), "")
	assert.ErrorIs(t, err, ErrTextRequired)

	messages, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	repo := NewGormMessageRepository(newTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		_, err := repo.Insert(ctx, fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}

	messages, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, messages, 5)

	want := []string{"m6", "m5", "m4", "m3", "m2"}
	for i, msg := range messages {
		assert.Equal(t, want[i], msg.Text)
	}
}

func TestRecentReturnsFewerThanLimit(t *testing.T) {
	repo := NewGormMessageRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Insert(ctx, "only one")
	require.NoError(t, err)

	messages, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestRecentEmptyStore(t *testing.T) {
	repo := NewGormMessageRepository(newTestDB(t))

	messages, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestRecentSurfacesStoreFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormMessageRepository(db)
	closeDB(t, db)

	_, err := repo.Recent(context.Background(), 5)
	assert.Error(t, err)
}

func TestInsertSurfacesStoreFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormMessageRepository(db)
	closeDB(t, db)

	_, err := repo.Insert(context.Background(), "doomed")
	assert.Error(t, err)
}
