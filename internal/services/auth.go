package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/google/uuid"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
)

// PasswordHasher derives and checks password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(supplied, stored string) (bool, error)
}

// AuthService handles registration, login and session identity resolution.
// Establishing and destroying the session itself is left to the HTTP layer.
type AuthService struct {
	users     UserRepository
	hasher    PasswordHasher
	dummyHash string
	now       func() time.Time
}

// NewAuthService builds the service. It derives one throwaway hash up front
// so logins for unknown usernames cost as much as real ones.
func NewAuthService(users UserRepository, hasher PasswordHasher) *AuthService {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		logger.Log.Warnw("failed to derive dummy password hash", "error", err)
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		dummyHash: dummy,
		now:       time.Now,
	}
}

// Register creates an account and returns its public projection. The first
// account ever registered becomes admin; later ones become regular users.
func (s *AuthService) Register(ctx context.Context, req types.RegisterRequest) (types.PublicUser, error) {
	username := strings.TrimSpace(req.Username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return types.PublicUser{}, &FieldError{Field: "username", Reason: "must be 3 to 64 characters"}
	}
	email := trimmedOrNil(req.Email)

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return types.PublicUser{}, ErrDuplicateUsername
	} else if !errors.Is(err, ErrNotFound) {
		return types.PublicUser{}, err
	}
	if email != nil {
		if _, err := s.users.GetByEmail(ctx, *email); err == nil {
			return types.PublicUser{}, ErrDuplicateEmail
		} else if !errors.Is(err, ErrNotFound) {
			return types.PublicUser{}, err
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return types.PublicUser{}, err
	}

	user, err := s.users.Create(ctx, types.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		FirstName:    trimmedOrNil(req.FirstName),
		LastName:     trimmedOrNil(req.LastName),
		IsActive:     true,
		PasswordHash: hash,
	})
	if err != nil {
		return types.PublicUser{}, translateDuplicate(err)
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return user.Public(), nil
}

// Login checks the credentials and records the login time. Unknown
// usernames, inactive accounts and wrong passwords all fail with
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (types.PublicUser, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return types.PublicUser{}, err
		}
		_, _ = s.hasher.Verify(req.Password, s.dummyHash)
		return types.PublicUser{}, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		logger.Log.Warnw("password verification failed", "user_id", user.ID, "error", err)
		return types.PublicUser{}, ErrInvalidCredentials
	}
	if !ok || !user.IsActive {
		return types.PublicUser{}, ErrInvalidCredentials
	}

	now := s.now().UTC()
	updated, err := s.users.Update(ctx, user.ID, types.UserPatch{LastLoginAt: &now})
	if err != nil {
		return types.PublicUser{}, err
	}
	return updated.Public(), nil
}

// Authenticate resolves the user a session points at. Missing and
// inactive users are rejected with ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, userID string) (types.User, error) {
	if userID == "" {
		return types.User{}, ErrUnauthenticated
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return types.User{}, ErrUnauthenticated
		}
		return types.User{}, err
	}
	if !user.IsActive {
		return types.User{}, ErrUnauthenticated
	}
	return user, nil
}

// UpsertUser creates or refreshes an account keyed by its id in a single
// atomic statement.
func (s *AuthService) UpsertUser(ctx context.Context, user types.User) (types.User, error) {
	if user.ID == "" {
		return types.User{}, errors.New("user id is required")
	}
	upserted, err := s.users.Upsert(ctx, user)
	if err != nil {
		return types.User{}, translateDuplicate(err)
	}
	return upserted, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
