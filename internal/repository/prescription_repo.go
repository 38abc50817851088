package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

type PrescriptionRepo struct {
	db *sql.DB
}

func NewPrescriptionRepo(db *sql.DB) *PrescriptionRepo {
	return &PrescriptionRepo{db: db}
}

// GetByName returns nil, nil when no prescription matches.
func (r *PrescriptionRepo) GetByName(ctx context.Context, name string) (*models.Prescription, error) {
	var p models.Prescription

	query := `
		SELECT id, name, price_per_refill, refills, subscription, coupon,
		       created_at, updated_at
		FROM prescriptions
		WHERE name = $1;
	`

	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&p.ID,
		&p.Name,
		&p.PricePerRefill,
		&p.Refills,
		&p.Subscription,
		&p.Coupon,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *PrescriptionRepo) List(ctx context.Context) ([]models.Prescription, error) {
	query := `
		SELECT id, name, price_per_refill, refills, subscription, coupon,
		       created_at, updated_at
		FROM prescriptions
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Prescription
	for rows.Next() {
		var p models.Prescription
		if err := rows.Scan(&p.ID, &p.Name, &p.PricePerRefill, &p.Refills,
			&p.Subscription, &p.Coupon, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Upsert inserts or replaces a prescription by name and returns its id.
func (r *PrescriptionRepo) Upsert(ctx context.Context, p models.Prescription) (int, error) {
	query := `
		INSERT INTO prescriptions
		(name, price_per_refill, refills, subscription, coupon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE
		SET price_per_refill = EXCLUDED.price_per_refill,
		    refills = EXCLUDED.refills,
		    subscription = EXCLUDED.subscription,
		    coupon = EXCLUDED.coupon,
		    updated_at = NOW()
		RETURNING id
	`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.PricePerRefill, p.Refills, p.Subscription, p.Coupon,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
