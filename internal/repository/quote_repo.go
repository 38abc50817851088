package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

type QuoteRepo struct {
	db *sql.DB
}

func NewQuoteRepo(db *sql.DB) *QuoteRepo {
	return &QuoteRepo{db: db}
}

// SaveQuotes writes all quotes in a single transaction.
func (r *QuoteRepo) SaveQuotes(ctx context.Context, quotes ...models.Quote) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO quotes
		(id, prescription, price_per_refill, refills, subscription, coupon,
		 base_cost, after_discount, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, q := range quotes {
		_, err := tx.ExecContext(ctx, query,
			q.ID, q.Prescription, q.PricePerRefill, q.Refills, q.Subscription, q.Coupon,
			q.BaseCost, q.AfterDiscount, q.Total, q.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert quote %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	return nil
}
