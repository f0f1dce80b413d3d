package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/shared/constants"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

func TestNewManagerPicksStrategyByDriver(t *testing.T) {
	log := logger.NewNopLogger()
	assert.Equal(t, "gorm_automigrate", NewManager("sqlite", log).GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager("mysql", log).GetStrategy().GetName())
}

func TestAutoMigrateCreatesTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	m := NewManager("sqlite", logger.NewNopLogger())
	require.NoError(t, m.Migrate(db))
	require.NoError(t, m.Migrate(db))

	for _, table := range []string{
		constants.TableAccounts,
		constants.TableArtworks,
		constants.TableAccountArtworks,
		constants.TableGenres,
		constants.TablePersonalityProfiles,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.Error(t, m.Rollback(db, 1))
}

func TestEmbeddedScriptsPresent(t *testing.T) {
	entries, err := scripts.ReadDir(scriptsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
