package store

import (
	"context"
	"testing"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_ListPublishedOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)
	now := time.Now()

	cols := []string{"id", "title", "slug", "excerpt", "content", "featured_image", "category", "tags",
		"published", "published_at", "author_id", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM blog_posts").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Harvest", "harvest", nil, "body", nil, nil, []byte(`["shrimp","export"]`), true, now, "u-1", now, now))

	posts, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, []string{"shrimp", "export"}, posts[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreateDefaultsSpecifications(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Black Tiger Shrimp", "black-tiger-shrimp", "Frozen", "shrimp", nil, []byte(`{}`),
			true, true, 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	product, err := repo.Create(context.Background(), types.Product{
		Name:        "Black Tiger Shrimp",
		Slug:        "black-tiger-shrimp",
		Description: "Frozen",
		Category:    "shrimp",
		Featured:    true,
		Active:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, product.ID)
	assert.JSONEq(t, `{}`, string(product.Specifications))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_UpsertBlock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO content_blocks (.+) ON CONFLICT \\(section, key\\) DO UPDATE").
		WithArgs("home", "hero_title", "Fresh from the coast", "text", "u-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "section", "key", "value", "type", "updated_by", "updated_at"}).
			AddRow(4, "home", "hero_title", "Fresh from the coast", "text", "u-1", now))

	block, err := repo.UpsertBlock(context.Background(), types.ContentBlock{
		Section:   "home",
		Key:       "hero_title",
		Value:     "Fresh from the coast",
		UpdatedBy: strPtr("u-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, block.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryRepository_UpdateStatusNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInquiryRepository(db)

	mock.ExpectQuery("UPDATE inquiries").
		WithArgs(types.InquiryStatusRead, sqlmock.AnyArg(), 42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateStatus(context.Background(), 42, types.InquiryStatusRead)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFieldFromConstraint(t *testing.T) {
	assert.Equal(t, "username", fieldFromConstraint("users_username_key"))
	assert.Equal(t, "email", fieldFromConstraint("users_email_key"))
	assert.Equal(t, "slug", fieldFromConstraint("products_slug_key"))
	assert.Equal(t, "section", fieldFromConstraint("content_blocks_section_key_key"))
}
