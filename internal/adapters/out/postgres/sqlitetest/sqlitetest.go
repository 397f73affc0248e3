// Package sqlitetest opens throwaway in-memory databases with the full schema
// for query and HTTP tests.
package sqlitetest

import (
	"fmt"
	"strings"
	"testing"

	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/identity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a database private to t, migrated and seeded with the role groups.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(postgres.Models()...))
	for _, g := range identity.ManagedGroups() {
		require.NoError(t, db.Where(userrepo.GroupDTO{Name: string(g)}).FirstOrCreate(&userrepo.GroupDTO{}).Error)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
