package services

import (
	"context"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]types.BlogPost, error)
	Get(ctx context.Context, id int) (types.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (types.BlogPost, error)
	Create(ctx context.Context, post types.BlogPost) (types.BlogPost, error)
	Update(ctx context.Context, post types.BlogPost) (types.BlogPost, error)
	Delete(ctx context.Context, id int) error
}

// BlogService encapsulates blog use-cases.
type BlogService struct {
	repo BlogRepository
	now  func() time.Time
}

func NewBlogService(repo BlogRepository) *BlogService {
	return &BlogService{repo: repo, now: time.Now}
}

// List returns published posts, or every post when includeDrafts is set.
func (s *BlogService) List(ctx context.Context, includeDrafts bool) ([]types.BlogPost, error) {
	return s.repo.List(ctx, !includeDrafts)
}

// GetBySlug returns a post by slug. Drafts are hidden unless includeDrafts
// is set.
func (s *BlogService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (types.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return types.BlogPost{}, err
	}
	if !post.Published && !includeDrafts {
		return types.BlogPost{}, ErrNotFound
	}
	return post, nil
}

func (s *BlogService) Create(ctx context.Context, authorID string, post types.BlogPost) (types.BlogPost, error) {
	post.Slug = slugOr(post.Slug, post.Title)
	if authorID != "" {
		post.AuthorID = &authorID
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.PublishedAt = s.publishedAt(post.Published, nil)

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return types.BlogPost{}, translateDuplicate(err)
	}
	return created, nil
}

// Update replaces the editable fields of post id. The publication time is
// set on first publish and kept across later edits.
func (s *BlogService) Update(ctx context.Context, id int, post types.BlogPost) (types.BlogPost, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return types.BlogPost{}, err
	}
	post.ID = id
	post.Slug = slugOr(post.Slug, post.Title)
	post.AuthorID = current.AuthorID
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.PublishedAt = s.publishedAt(post.Published, current.PublishedAt)

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return types.BlogPost{}, translateDuplicate(err)
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *BlogService) publishedAt(published bool, current *time.Time) *time.Time {
	if !published {
		return nil
	}
	if current != nil {
		return current
	}
	now := s.now().UTC()
	return &now
}
