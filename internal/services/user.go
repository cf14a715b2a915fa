package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

// ErrSelfLockout is returned when an admin tries to demote or deactivate
// their own account.
var ErrSelfLockout = errors.New("admins can not demote or deactivate themselves")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	List(ctx context.Context) ([]types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, id string, patch types.UserPatch) (types.User, error)
	Upsert(ctx context.Context, user types.User) (types.User, error)
}

// UserService encapsulates admin user management.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

// Update applies an admin edit to the user identified by id. actorID is the
// admin performing the change.
func (s *UserService) Update(ctx context.Context, actorID, id string, req types.UserUpdateRequest) (types.User, error) {
	if id == types.SystemUserID {
		return types.User{}, ErrNotFound
	}
	if actorID == id {
		if (req.Role != nil && *req.Role != types.RoleAdmin) || (req.IsActive != nil && !*req.IsActive) {
			return types.User{}, ErrSelfLockout
		}
	}

	patch := types.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  req.IsActive,
	}
	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" {
			patch.Email = &email
		}
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return types.User{}, translateDuplicate(err)
	}
	return user, nil
}
