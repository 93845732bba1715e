// Package coretest opens throwaway databases for tests.
package coretest

import (
	"context"
	"strings"
	"testing"

	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/core/models"
	"github.com/google/uuid"
)

// DSN names a private shared-cache in-memory sqlite database.
func DSN() string {
	return "file:" + strings.ReplaceAll(uuid.NewString(), "-", "") + "?mode=memory&cache=shared&_foreign_keys=on"
}

// NewDatabase returns a migrated in-memory database closed when the test ends.
func NewDatabase(t testing.TB) *core.DatabaseManager {
	t.Helper()

	dm, err := core.New(core.DriverSQLite, DSN(), 1, core.LogLevelSilent)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { dm.Close() })

	if err := dm.Migrate(context.Background(), models.All()...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return dm
}
