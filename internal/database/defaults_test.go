package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/pyrite/internal/catalog"
	"github.com/jask/pyrite/internal/database/repository"
)

func TestSyncCategoriesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "pyrite.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cat, err := catalog.New(
		catalog.Category{Name: "Rent"},
		catalog.Category{Name: "Food: Groceries", Hint: "supermarket"},
	)
	require.NoError(t, err)

	require.NoError(t, SyncCategories(ctx, db, cat))
	require.NoError(t, SyncCategories(ctx, db, cat))
	require.NoError(t, RunMigrations(db))

	rows, err := repository.NewCategoryRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Rent", rows[0].Name)
	require.Equal(t, CategoryID("Rent"), rows[0].ID)
	require.Equal(t, "supermarket", rows[1].Hint)
}
