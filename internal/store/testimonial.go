package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const testimonialColumns = `id, name, company, country, content, rating, image_url, approved, featured, created_at`

// TestimonialRepository handles persistence for customer testimonials.
type TestimonialRepository struct {
	db *sql.DB
}

func NewTestimonialRepository(db *sql.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func scanTestimonial(row rowScanner) (types.Testimonial, error) {
	var t types.Testimonial
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Company,
		&t.Country,
		&t.Content,
		&t.Rating,
		&t.ImageURL,
		&t.Approved,
		&t.Featured,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Testimonial{}, ErrNotFound
		}
		return types.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialRepository) List(ctx context.Context, approvedOnly bool) ([]types.Testimonial, error) {
	const query = `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE ($1 = FALSE OR approved = TRUE)
		ORDER BY featured DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, approvedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []types.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *TestimonialRepository) Get(ctx context.Context, id int) (types.Testimonial, error) {
	const query = `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	return scanTestimonial(r.db.QueryRowContext(ctx, query, id))
}

func (r *TestimonialRepository) Create(ctx context.Context, t types.Testimonial) (types.Testimonial, error) {
	t.CreatedAt = time.Now().UTC()

	const query = `
		INSERT INTO testimonials (name, company, country, content, rating, image_url, approved, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		t.Name,
		t.Company,
		t.Country,
		t.Content,
		t.Rating,
		t.ImageURL,
		t.Approved,
		t.Featured,
		t.CreatedAt,
	).Scan(&t.ID); err != nil {
		return types.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t types.Testimonial) (types.Testimonial, error) {
	const query = `
		UPDATE testimonials
		SET name = $1,
			company = $2,
			country = $3,
			content = $4,
			rating = $5,
			image_url = $6,
			approved = $7,
			featured = $8
		WHERE id = $9
		RETURNING ` + testimonialColumns
	return scanTestimonial(r.db.QueryRowContext(
		ctx,
		query,
		t.Name,
		t.Company,
		t.Country,
		t.Content,
		t.Rating,
		t.ImageURL,
		t.Approved,
		t.Featured,
		t.ID,
	))
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, `DELETE FROM testimonials WHERE id = $1`, id)
}
