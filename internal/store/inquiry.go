package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const inquiryColumns = `id, name, email, phone, company, country, subject, message, product_interest, status, created_at, updated_at`

// InquiryRepository handles persistence for contact form inquiries.
type InquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func scanInquiry(row rowScanner) (types.Inquiry, error) {
	var inquiry types.Inquiry
	err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.Company,
		&inquiry.Country,
		&inquiry.Subject,
		&inquiry.Message,
		&inquiry.ProductInterest,
		&inquiry.Status,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Inquiry{}, ErrNotFound
		}
		return types.Inquiry{}, err
	}
	return inquiry, nil
}

// List returns inquiries newest first, optionally filtered by status.
func (r *InquiryRepository) List(ctx context.Context, status string) ([]types.Inquiry, error) {
	const query = `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []types.Inquiry{}
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inquiry)
	}
	return items, rows.Err()
}

func (r *InquiryRepository) Get(ctx context.Context, id int) (types.Inquiry, error) {
	const query = `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	return scanInquiry(r.db.QueryRowContext(ctx, query, id))
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry types.Inquiry) (types.Inquiry, error) {
	now := time.Now().UTC()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now
	if inquiry.Status == "" {
		inquiry.Status = types.InquiryStatusNew
	}

	const query = `
		INSERT INTO inquiries (name, email, phone, company, country, subject, message, product_interest, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Company,
		inquiry.Country,
		inquiry.Subject,
		inquiry.Message,
		inquiry.ProductInterest,
		inquiry.Status,
		inquiry.CreatedAt,
		inquiry.UpdatedAt,
	).Scan(&inquiry.ID); err != nil {
		return types.Inquiry{}, err
	}
	return inquiry, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int, status string) (types.Inquiry, error) {
	const query = `
		UPDATE inquiries
		SET status = $1,
			updated_at = $2
		WHERE id = $3
		RETURNING ` + inquiryColumns
	return scanInquiry(r.db.QueryRowContext(ctx, query, status, time.Now().UTC(), id))
}

func (r *InquiryRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, `DELETE FROM inquiries WHERE id = $1`, id)
}
