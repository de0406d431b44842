package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestNewDatabase_CreatesTasksTable(t *testing.T) {
	db, err := NewDatabase(":memory:", logger.Silent)
	require.NoError(t, err)
	defer CloseDatabase(db)

	assert.True(t, db.Migrator().HasTable("tasks"))

	require.NoError(t, db.Exec("INSERT INTO tasks (title) VALUES (?)", "defaulted").Error)

	var completed int
	require.NoError(t, db.Raw("SELECT completed FROM tasks WHERE title = ?", "defaulted").Scan(&completed).Error)
	assert.Equal(t, 0, completed)
}

func TestNewDatabase_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "tasks.db")

	db, err := NewDatabase(dsn, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.Exec("INSERT INTO tasks (title) VALUES (?)", "survives restart").Error)
	require.NoError(t, CloseDatabase(db))

	db, err = NewDatabase(dsn, logger.Silent)
	require.NoError(t, err)
	defer CloseDatabase(db)

	var count int64
	require.NoError(t, db.Table("tasks").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	err = client.Do(context.Background(), client.B().Set().Key("ping").Value("pong").Build()).Error()
	require.NoError(t, err)

	got, err := mr.Get("ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}
