package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const blogColumns = `id, title, slug, excerpt, content, featured_image, category, tags, published, published_at, author_id, created_at, updated_at`

// BlogRepository handles persistence for blog posts.
type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func scanBlogPost(row rowScanner) (types.BlogPost, error) {
	var post types.BlogPost
	var tagsJSON []byte
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.FeaturedImage,
		&post.Category,
		&tagsJSON,
		&post.Published,
		&post.PublishedAt,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.BlogPost{}, ErrNotFound
		}
		return types.BlogPost{}, err
	}
	_ = json.Unmarshal(tagsJSON, &post.Tags)
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post, nil
}

// List returns posts newest first. With publishedOnly set, drafts are hidden.
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool) ([]types.BlogPost, error) {
	const query = `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE ($1 = FALSE OR published = TRUE)
		ORDER BY COALESCE(published_at, created_at) DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []types.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *BlogRepository) Get(ctx context.Context, id int) (types.BlogPost, error) {
	const query = `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`
	return scanBlogPost(r.db.QueryRowContext(ctx, query, id))
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (types.BlogPost, error) {
	const query = `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`
	return scanBlogPost(r.db.QueryRowContext(ctx, query, slug))
}

func (r *BlogRepository) Create(ctx context.Context, post types.BlogPost) (types.BlogPost, error) {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	tagsJSON, err := marshalTags(post.Tags)
	if err != nil {
		return types.BlogPost{}, err
	}

	const query = `
		INSERT INTO blog_posts (title, slug, excerpt, content, featured_image, category, tags, published, published_at, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.FeaturedImage,
		post.Category,
		tagsJSON,
		post.Published,
		post.PublishedAt,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return types.BlogPost{}, translateError(err)
	}
	return post, nil
}

func (r *BlogRepository) Update(ctx context.Context, post types.BlogPost) (types.BlogPost, error) {
	tagsJSON, err := marshalTags(post.Tags)
	if err != nil {
		return types.BlogPost{}, err
	}

	const query = `
		UPDATE blog_posts
		SET title = $1,
			slug = $2,
			excerpt = $3,
			content = $4,
			featured_image = $5,
			category = $6,
			tags = $7,
			published = $8,
			published_at = $9,
			updated_at = $10
		WHERE id = $11
		RETURNING ` + blogColumns
	updated, err := scanBlogPost(r.db.QueryRowContext(
		ctx,
		query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.FeaturedImage,
		post.Category,
		tagsJSON,
		post.Published,
		post.PublishedAt,
		time.Now().UTC(),
		post.ID,
	))
	if err != nil {
		return types.BlogPost{}, translateError(err)
	}
	return updated, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, `DELETE FROM blog_posts WHERE id = $1`, id)
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}
