package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/pyrite/internal/catalog"
	"github.com/jask/pyrite/internal/database/repository"
)

// CategoryID derives a stable row id from a category name.
func CategoryID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("cat:"+name)).String()
}

// SyncCategories upserts every catalog entry, keeping catalog order in
// sort_order. It is idempotent and safe to run on every startup.
func SyncCategories(ctx context.Context, db *sql.DB, cat *catalog.Catalog) error {
	repo := repository.NewCategoryRepo(db)
	for idx, c := range cat.Categories() {
		row := repository.Category{ID: CategoryID(c.Name), Name: c.Name, Hint: c.Hint, SortOrder: idx}
		if err := repo.Upsert(ctx, row); err != nil {
			return err
		}
	}
	return nil
}
