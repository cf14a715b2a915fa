package services

import (
	"context"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

// TestimonialRepository defines persistence operations for testimonials.
type TestimonialRepository interface {
	List(ctx context.Context, approvedOnly bool) ([]types.Testimonial, error)
	Get(ctx context.Context, id int) (types.Testimonial, error)
	Create(ctx context.Context, t types.Testimonial) (types.Testimonial, error)
	Update(ctx context.Context, t types.Testimonial) (types.Testimonial, error)
	Delete(ctx context.Context, id int) error
}

type TestimonialService struct {
	repo TestimonialRepository
}

func NewTestimonialService(repo TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

func (s *TestimonialService) List(ctx context.Context, includeUnapproved bool) ([]types.Testimonial, error) {
	return s.repo.List(ctx, !includeUnapproved)
}

func (s *TestimonialService) Create(ctx context.Context, t types.Testimonial) (types.Testimonial, error) {
	if t.Rating == 0 {
		t.Rating = 5
	}
	return s.repo.Create(ctx, t)
}

func (s *TestimonialService) Update(ctx context.Context, id int, t types.Testimonial) (types.Testimonial, error) {
	t.ID = id
	if t.Rating == 0 {
		t.Rating = 5
	}
	return s.repo.Update(ctx, t)
}

func (s *TestimonialService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
