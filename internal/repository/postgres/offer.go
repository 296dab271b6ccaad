package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/326-T/nft-service/internal/model"
)

var _ model.OfferStore = (*OfferRepository)(nil)

type OfferRepository struct {
	db *Connection
}

func NewOfferRepository(db *Connection) *OfferRepository {
	return &OfferRepository{
		db: db,
	}
}

const offerColumns = `id, resume_id, company_id, price, message, status_id, created_at, updated_at`

func (r *OfferRepository) GetAll(ctx context.Context) ([]model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	return collectOffers(rows)
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	offer, err := scanOffer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Offer{}, model.ErrNotFound
		}
		return model.Offer{}, fmt.Errorf("failed to get offer by id: %w", err)
	}

	return offer, nil
}

func (r *OfferRepository) GetByResumeID(ctx context.Context, resumeID uuid.UUID) ([]model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE resume_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers by resume: %w", err)
	}
	defer rows.Close()

	return collectOffers(rows)
}

func (r *OfferRepository) GetDetailsByResumeID(ctx context.Context, resumeID uuid.UUID) ([]model.OfferDetail, error) {
	query := `SELECT id, resume_id, company_id, company_name, price, message, status_id, created_at, updated_at
			  FROM offer_detail_view WHERE resume_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offer details by resume: %w", err)
	}
	defer rows.Close()

	var details []model.OfferDetail
	for rows.Next() {
		var detail model.OfferDetail
		var statusCode int
		err := rows.Scan(
			&detail.ID, &detail.ResumeID, &detail.CompanyID, &detail.CompanyName,
			&detail.Price, &detail.Message, &statusCode, &detail.CreatedAt, &detail.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer detail: %w", err)
		}
		detail.Status = model.OfferStatusFromCode(statusCode)
		details = append(details, detail)
	}

	return details, rows.Err()
}

func (r *OfferRepository) Create(ctx context.Context, offer model.Offer) (model.Offer, error) {
	query := `INSERT INTO offers (id, resume_id, company_id, price, message, status_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + offerColumns

	saved, err := scanOffer(r.db.QueryRow(ctx, query,
		offer.ID, offer.ResumeID, offer.CompanyID, offer.Price, offer.Message,
		offer.Status.Code(), offer.CreatedAt, offer.UpdatedAt,
	))
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to create offer: %w", err)
	}

	return saved, nil
}

// Update replaces price, message and status. The pending precondition is
// enforced by the service; this layer is last-write-wins.
func (r *OfferRepository) Update(ctx context.Context, offer model.Offer) (model.Offer, error) {
	query := `UPDATE offers
			  SET price = $2, message = $3, status_id = $4, updated_at = $5
			  WHERE id = $1
			  RETURNING ` + offerColumns

	saved, err := scanOffer(r.db.QueryRow(ctx, query,
		offer.ID, offer.Price, offer.Message, offer.Status.Code(), offer.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Offer{}, model.ErrNotFound
		}
		return model.Offer{}, fmt.Errorf("failed to update offer: %w", err)
	}

	return saved, nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return nil
}

func scanOffer(row pgx.Row) (model.Offer, error) {
	var offer model.Offer
	var statusCode int
	err := row.Scan(
		&offer.ID, &offer.ResumeID, &offer.CompanyID, &offer.Price, &offer.Message,
		&statusCode, &offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		return model.Offer{}, err
	}
	offer.Status = model.OfferStatusFromCode(statusCode)
	return offer, nil
}

func collectOffers(rows pgx.Rows) ([]model.Offer, error) {
	var offers []model.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
