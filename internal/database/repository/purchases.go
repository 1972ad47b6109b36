package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/pyrite/internal/ledger"
	"github.com/jask/pyrite/internal/money"
)

// PurchaseRepo stores the ledger in sqlite. It satisfies ledger.Store.
type PurchaseRepo struct {
	db *sql.DB
}

var _ ledger.Store = (*PurchaseRepo)(nil)

func NewPurchaseRepo(db *sql.DB) *PurchaseRepo { return &PurchaseRepo{db: db} }

// List returns every row in ledger order.
func (r *PurchaseRepo) List(ctx context.Context) ([]Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, seq, category, cost_cents, created_at FROM purchases ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Purchase
	for rows.Next() {
		var (
			p       Purchase
			created string
		)
		if err := rows.Scan(&p.ID, &p.Seq, &p.Category, &p.CostCents, &created); err != nil {
			return nil, err
		}
		p.CreatedAt, err = time.Parse(ledger.TimestampLayout, created)
		if err != nil {
			return nil, fmt.Errorf("%w: purchase %s: %v", ledger.ErrInvalidTimestamp, p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Load implements ledger.Store.
func (r *PurchaseRepo) Load(ctx context.Context) ([]ledger.Purchase, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Purchase, len(rows))
	for i, row := range rows {
		out[i] = ledger.Purchase{
			Category:  row.Category,
			Cost:      money.FromCents(row.CostCents),
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

// Save implements ledger.Store by replacing every row in one transaction.
func (r *PurchaseRepo) Save(ctx context.Context, records []ledger.Purchase) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := replaceAll(ctx, tx, records); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func replaceAll(ctx context.Context, tx *sql.Tx, records []ledger.Purchase) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM purchases`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO purchases(id, seq, category, cost_cents, created_at)
	VALUES(?, ?, ?, ?, ?);
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, p := range records {
		_, err := stmt.ExecContext(ctx, uuid.NewString(), i, p.Category, p.Cost.Cents(), p.CreatedAt.Format(ledger.TimestampLayout))
		if err != nil {
			return err
		}
	}
	return nil
}

