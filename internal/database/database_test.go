package database

import (
	"path/filepath"
	"testing"

	"gamereview/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsPostgres(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost:5432/db":                true,
		"postgresql://localhost/db":                       true,
		"host=localhost user=u dbname=db sslmode=disable": true,
		"app.db":        false,
		":memory:":      false,
		"file::memory:": false,
	}

	for dsn, want := range cases {
		assert.Equal(t, want, IsPostgres(dsn), dsn)
	}
}

func TestConnectMigratesSchema(t *testing.T) {
	prev := DB
	defer func() { DB = prev }()

	require.NoError(t, Connect(":memory:"))
	require.NotNil(t, DB)

	for _, m := range []any{&models.Game{}, &models.User{}, &models.Review{}} {
		assert.True(t, DB.Migrator().HasTable(m))
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	err = db.Create(&models.Review{Score: 3, Comment: "orphan", GameID: 42, UserID: 42}).Error
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"app.db":                     "app.db?_foreign_keys=on",
		":memory:":                   ":memory:?_foreign_keys=on",
		"file:app.db?cache=shared":   "file:app.db?cache=shared&_foreign_keys=on",
		"app.db?_foreign_keys=off":   "app.db?_foreign_keys=off",
		"file:app.db?mode=rwc&_fk=1": "file:app.db?mode=rwc&_fk=1",
	}

	for dsn, want := range cases {
		assert.Equal(t, want, SQLiteDSN(dsn), dsn)
	}
}

func TestForeignKeysEnforcedOnFreshConnections(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "reviews.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	// Drop idle connections so each statement runs on a newly opened one.
	sqlDB.SetMaxIdleConns(0)

	for i := 0; i < 3; i++ {
		err = db.Create(&models.Review{Score: 1, Comment: "orphan", GameID: 7, UserID: 7}).Error
		assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	}
}
