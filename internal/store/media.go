package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const mediaColumns = `id, filename, original_name, mime_type, size, url, alt, category, uploaded_by, created_at`

// MediaRepository handles persistence for uploaded media metadata.
type MediaRepository struct {
	db *sql.DB
}

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func scanMedia(row rowScanner) (types.MediaFile, error) {
	var media types.MediaFile
	err := row.Scan(
		&media.ID,
		&media.Filename,
		&media.OriginalName,
		&media.MimeType,
		&media.Size,
		&media.URL,
		&media.Alt,
		&media.Category,
		&media.UploadedBy,
		&media.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.MediaFile{}, ErrNotFound
		}
		return types.MediaFile{}, err
	}
	return media, nil
}

func (r *MediaRepository) Get(ctx context.Context, id int) (types.MediaFile, error) {
	const query = `SELECT ` + mediaColumns + ` FROM media_files WHERE id = $1`
	return scanMedia(r.db.QueryRowContext(ctx, query, id))
}

// List returns media newest first, optionally filtered by category.
func (r *MediaRepository) List(ctx context.Context, category string) ([]types.MediaFile, error) {
	const query = `
		SELECT ` + mediaColumns + `
		FROM media_files
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []types.MediaFile{}
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, media)
	}
	return items, rows.Err()
}

// Create inserts the metadata row inside a transaction and runs finalize
// before committing. A finalize error rolls the row back, so the record only
// becomes visible once the caller has made the bytes durable.
func (r *MediaRepository) Create(ctx context.Context, media types.MediaFile, finalize func(types.MediaFile) error) (types.MediaFile, error) {
	media.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.MediaFile{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
		INSERT INTO media_files (filename, original_name, mime_type, size, url, alt, category, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	if err := tx.QueryRowContext(
		ctx,
		query,
		media.Filename,
		media.OriginalName,
		media.MimeType,
		media.Size,
		media.URL,
		media.Alt,
		media.Category,
		media.UploadedBy,
		media.CreatedAt,
	).Scan(&media.ID); err != nil {
		return types.MediaFile{}, translateError(err)
	}

	if finalize != nil {
		if err := finalize(media); err != nil {
			return types.MediaFile{}, fmt.Errorf("finalize media: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.MediaFile{}, err
	}
	return media, nil
}

// Update changes the alt text and category of a media record.
func (r *MediaRepository) Update(ctx context.Context, id int, alt *string, category string) (types.MediaFile, error) {
	const query = `
		UPDATE media_files
		SET alt = $1,
			category = $2
		WHERE id = $3
		RETURNING ` + mediaColumns
	return scanMedia(r.db.QueryRowContext(ctx, query, alt, category, id))
}

// Delete removes the metadata row only; stored bytes are left in place.
func (r *MediaRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, `DELETE FROM media_files WHERE id = $1`, id)
}

func deleteByID(ctx context.Context, db *sql.DB, query string, id any) error {
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
