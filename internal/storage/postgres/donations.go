package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
)

const donationColumns = `id::text, donor_id::text, type, amount, food_item, quantity, phone, address, status,
                   COALESCE(accepted_by::text, ''), accepted_at, expected_completion_date, completed_at, created_at`

func scanDonation(row pgx.Row) (*model.Donation, error) {
	var (
		d            model.Donation
		kind, status string
	)
	err := row.Scan(&d.ID, &d.DonorID, &kind, &d.Amount, &d.FoodItem, &d.Quantity, &d.Phone, &d.Address, &status,
		&d.AcceptedBy, &d.AcceptedAt, &d.ExpectedCompletionDate, &d.CompletedAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	d.Type = model.DonationType(kind)
	d.Status = model.DonationStatus(status)
	return &d, nil
}

func (r *donationRepository) Create(ctx context.Context, d model.Donation) (*model.Donation, error) {
	const query = `INSERT INTO donations (donor_id, type, amount, food_item, quantity, phone, address, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id::text, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		d.DonorID, string(d.Type), d.Amount, d.FoodItem, d.Quantity, d.Phone, d.Address, string(d.Status),
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	return &d, nil
}

func (r *donationRepository) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}
	const query = `SELECT ` + donationColumns + ` FROM donations WHERE id=$1`
	d, err := scanDonation(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID string) ([]model.Donation, error) {
	if !validID(donorID) {
		return nil, nil
	}
	const query = `SELECT ` + donationColumns + `
                   FROM donations WHERE donor_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, donorID)
}

func (r *donationRepository) ListAvailable(ctx context.Context) ([]model.Donation, error) {
	const query = `SELECT ` + donationColumns + `
                   FROM donations WHERE type='food' AND status='available' ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *donationRepository) ListAcceptedBy(ctx context.Context, ngoID string, since time.Time) ([]model.Donation, error) {
	if !validID(ngoID) {
		return nil, nil
	}
	const query = `SELECT ` + donationColumns + `
                   FROM donations
                   WHERE type='food' AND status='accepted' AND accepted_by=$1 AND accepted_at >= $2
                   ORDER BY accepted_at DESC`
	return r.list(ctx, query, ngoID, since)
}

func (r *donationRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Donation, error) {
	const query = `SELECT ` + donationColumns + `
                   FROM donations
                   WHERE status='accepted' AND expected_completion_date < $1
                   ORDER BY expected_completion_date`
	return r.list(ctx, query, now)
}

func (r *donationRepository) list(ctx context.Context, query string, args ...any) ([]model.Donation, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Accept moves an available food donation to accepted in one conditional update.
func (r *donationRepository) Accept(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}
	if !validID(ngoID) {
		return nil, domainErrors.ErrForbidden
	}

	const query = `UPDATE donations
                   SET status='accepted', accepted_by=$2, accepted_at=$3, expected_completion_date=$4
                   WHERE id=$1 AND type='food' AND status='available'
                   RETURNING ` + donationColumns
	d, err := scanDonation(r.storage.pool.QueryRow(ctx, query, id, ngoID, at, model.ExpectedCompletion(at)))
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("accept donation: %w", err)
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domainErrors.ErrInvalidState
}

// Complete moves an accepted donation to completed when the caller is the accepting NGO.
func (r *donationRepository) Complete(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}

	if validID(ngoID) {
		const query = `UPDATE donations
                       SET status='completed', completed_at=$3
                       WHERE id=$1 AND status='accepted' AND accepted_by=$2
                       RETURNING ` + donationColumns
		d, err := scanDonation(r.storage.pool.QueryRow(ctx, query, id, ngoID, at))
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("complete donation: %w", err)
		}
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != model.DonationStatusAccepted {
		return nil, domainErrors.ErrInvalidState
	}
	return nil, domainErrors.ErrForbidden
}
