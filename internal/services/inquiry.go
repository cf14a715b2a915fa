package services

import (
	"context"
	"strings"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

// InquiryRepository defines persistence operations for contact inquiries.
type InquiryRepository interface {
	List(ctx context.Context, status string) ([]types.Inquiry, error)
	Get(ctx context.Context, id int) (types.Inquiry, error)
	Create(ctx context.Context, inquiry types.Inquiry) (types.Inquiry, error)
	UpdateStatus(ctx context.Context, id int, status string) (types.Inquiry, error)
	Delete(ctx context.Context, id int) error
}

// InquiryNotifier is told about every new inquiry. It must not block or fail
// the request.
type InquiryNotifier interface {
	InquiryReceived(ctx context.Context, inquiry types.Inquiry)
}

type InquiryService struct {
	repo     InquiryRepository
	notifier InquiryNotifier
}

func NewInquiryService(repo InquiryRepository, notifier InquiryNotifier) *InquiryService {
	return &InquiryService{repo: repo, notifier: notifier}
}

// Submit stores a contact form submission and notifies staff.
func (s *InquiryService) Submit(ctx context.Context, inquiry types.Inquiry) (types.Inquiry, error) {
	inquiry.Status = types.InquiryStatusNew
	inquiry.Email = strings.TrimSpace(inquiry.Email)

	created, err := s.repo.Create(ctx, inquiry)
	if err != nil {
		return types.Inquiry{}, err
	}
	if s.notifier != nil {
		s.notifier.InquiryReceived(ctx, created)
	}
	return created, nil
}

func (s *InquiryService) List(ctx context.Context, status string) ([]types.Inquiry, error) {
	if status != "" && !validInquiryStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *InquiryService) Get(ctx context.Context, id int) (types.Inquiry, error) {
	return s.repo.Get(ctx, id)
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id int, status string) (types.Inquiry, error) {
	if !validInquiryStatus(status) {
		return types.Inquiry{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *InquiryService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func validInquiryStatus(status string) bool {
	switch status {
	case types.InquiryStatusNew, types.InquiryStatusRead, types.InquiryStatusReplied, types.InquiryStatusClosed:
		return true
	}
	return false
}
