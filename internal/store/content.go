package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const contentColumns = `id, section, key, value, type, updated_by, updated_at`

// ContentRepository handles persistence for website content blocks and
// site settings.
type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func scanContentBlock(row rowScanner) (types.ContentBlock, error) {
	var block types.ContentBlock
	err := row.Scan(
		&block.ID,
		&block.Section,
		&block.Key,
		&block.Value,
		&block.Type,
		&block.UpdatedBy,
		&block.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.ContentBlock{}, ErrNotFound
		}
		return types.ContentBlock{}, err
	}
	return block, nil
}

func (r *ContentRepository) ListBlocks(ctx context.Context, section string) ([]types.ContentBlock, error) {
	const query = `
		SELECT ` + contentColumns + `
		FROM content_blocks
		WHERE ($1 = '' OR section = $1)
		ORDER BY section, key`
	rows, err := r.db.QueryContext(ctx, query, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := []types.ContentBlock{}
	for rows.Next() {
		block, err := scanContentBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}

// UpsertBlock writes the block addressed by (section, key), creating it if
// it does not exist yet.
func (r *ContentRepository) UpsertBlock(ctx context.Context, block types.ContentBlock) (types.ContentBlock, error) {
	if block.Type == "" {
		block.Type = "text"
	}

	const query = `
		INSERT INTO content_blocks (section, key, value, type, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (section, key) DO UPDATE
		SET value = EXCLUDED.value,
			type = EXCLUDED.type,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + contentColumns
	return scanContentBlock(r.db.QueryRowContext(
		ctx,
		query,
		block.Section,
		block.Key,
		block.Value,
		block.Type,
		block.UpdatedBy,
		time.Now().UTC(),
	))
}

func (r *ContentRepository) DeleteBlock(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, `DELETE FROM content_blocks WHERE id = $1`, id)
}

func (r *ContentRepository) ListSettings(ctx context.Context) ([]types.Setting, error) {
	const query = `SELECT key, value, updated_at FROM settings ORDER BY key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []types.Setting{}
	for rows.Next() {
		var setting types.Setting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

func (r *ContentRepository) PutSetting(ctx context.Context, key, value string) (types.Setting, error) {
	const query = `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
		RETURNING key, value, updated_at`
	var setting types.Setting
	err := r.db.QueryRowContext(ctx, query, key, value, time.Now().UTC()).
		Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		return types.Setting{}, err
	}
	return setting, nil
}
