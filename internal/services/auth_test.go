package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ashupap/ShorelineVision-sub000/internal/security"
	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/internal/store"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastHasher() *security.Hasher {
	return &security.Hasher{N: 1024, R: 8, P: 1, KeyLength: 64, SaltLength: 16}
}

func strPtr(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     types.RegisterRequest
		setup   func(repo *services.MockUserRepository)
		wantErr error
	}{
		{
			name: "first user becomes admin",
			req:  types.RegisterRequest{Username: "siteadmin", Password: "Secr3t!2024"},
			setup: func(repo *services.MockUserRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "siteadmin").Return(types.User{}, store.ErrNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u types.User) (types.User, error) {
						u.Role = types.RoleAdmin
						return u, nil
					})
			},
		},
		{
			name: "duplicate username",
			req:  types.RegisterRequest{Username: "taken", Password: "password1"},
			setup: func(repo *services.MockUserRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "taken").Return(types.User{ID: "u-1"}, nil)
			},
			wantErr: services.ErrDuplicateUsername,
		},
		{
			name: "duplicate email",
			req:  types.RegisterRequest{Username: "fresh", Email: strPtr(" a@example.com "), Password: "password1"},
			setup: func(repo *services.MockUserRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "fresh").Return(types.User{}, store.ErrNotFound)
				repo.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(types.User{ID: "u-1"}, nil)
			},
			wantErr: services.ErrDuplicateEmail,
		},
		{
			name: "concurrent registration hits unique constraint",
			req:  types.RegisterRequest{Username: "racer", Password: "password1"},
			setup: func(repo *services.MockUserRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "racer").Return(types.User{}, store.ErrNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(types.User{}, &store.DuplicateKeyError{Field: "username"})
			},
			wantErr: services.ErrDuplicateUsername,
		},
		{
			name: "lookup failure",
			req:  types.RegisterRequest{Username: "broken", Password: "password1"},
			setup: func(repo *services.MockUserRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "broken").Return(types.User{}, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name:    "blank username",
			req:     types.RegisterRequest{Username: "   ", Password: "password1"},
			setup:   func(repo *services.MockUserRepository) {},
			wantErr: &services.FieldError{Field: "username", Reason: "must be 3 to 64 characters"},
		},
		{
			name:    "padded short username",
			req:     types.RegisterRequest{Username: " ab ", Password: "password1"},
			setup:   func(repo *services.MockUserRepository) {},
			wantErr: &services.FieldError{Field: "username", Reason: "must be 3 to 64 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := services.NewMockUserRepository(ctrl)
			tt.setup(repo)
			svc := services.NewAuthService(repo, fastHasher())

			user, err := svc.Register(ctx, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "siteadmin", user.Username)
			assert.Equal(t, types.RoleAdmin, user.Role)
			assert.NotEmpty(t, user.ID)
		})
	}
}

func TestAuthService_RegisterStoresHashNotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := fastHasher()
	repo := services.NewMockUserRepository(ctrl)
	repo.EXPECT().GetByUsername(gomock.Any(), "bob").Return(types.User{}, store.ErrNotFound)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u types.User) (types.User, error) {
			assert.NotEqual(t, "password1", u.PasswordHash)
			ok, err := hasher.Verify("password1", u.PasswordHash)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, u.IsActive)
			assert.Empty(t, u.Role)
			u.Role = types.RoleUser
			return u, nil
		})

	svc := services.NewAuthService(repo, hasher)
	user, err := svc.Register(context.Background(), types.RegisterRequest{Username: " bob ", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, types.RoleUser, user.Role)
}

func TestAuthService_Login(t *testing.T) {
	hasher := fastHasher()
	stored, err := hasher.Hash("Secr3t!2024")
	require.NoError(t, err)

	active := types.User{ID: "u-1", Username: "siteadmin", Role: types.RoleAdmin, IsActive: true, PasswordHash: stored}
	inactive := active
	inactive.IsActive = false

	tests := []struct {
		name     string
		password string
		user     types.User
		lookup   error
		wantErr  error
	}{
		{name: "valid credentials", password: "Secr3t!2024", user: active},
		{name: "unknown user", password: "Secr3t!2024", lookup: store.ErrNotFound, wantErr: services.ErrInvalidCredentials},
		{name: "wrong password", password: "wrong-password", user: active, wantErr: services.ErrInvalidCredentials},
		{name: "inactive user", password: "Secr3t!2024", user: inactive, wantErr: services.ErrInvalidCredentials},
		{
			name:     "malformed stored hash",
			password: "Secr3t!2024",
			user:     types.User{ID: "u-2", Username: "siteadmin", IsActive: true, PasswordHash: "garbage"},
			wantErr:  services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := services.NewMockUserRepository(ctrl)
			repo.EXPECT().GetByUsername(gomock.Any(), "siteadmin").Return(tt.user, tt.lookup)
			if tt.wantErr == nil {
				repo.EXPECT().Update(gomock.Any(), "u-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, patch types.UserPatch) (types.User, error) {
						require.NotNil(t, patch.LastLoginAt)
						u := tt.user
						u.LastLoginAt = patch.LastLoginAt
						return u, nil
					})
			}

			svc := services.NewAuthService(repo, hasher)
			user, err := svc.Login(context.Background(), types.LoginRequest{Username: "siteadmin", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "invalid credentials", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", user.ID)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockUserRepository(ctrl)
	svc := services.NewAuthService(repo, fastHasher())
	ctx := context.Background()

	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(types.User{ID: "u-1", IsActive: true}, nil)
	repo.EXPECT().GetByID(gomock.Any(), "gone").Return(types.User{}, store.ErrNotFound)
	repo.EXPECT().GetByID(gomock.Any(), "off").Return(types.User{ID: "off", IsActive: false}, nil)

	user, err := svc.Authenticate(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	_, err = svc.Authenticate(ctx, "gone")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	_, err = svc.Authenticate(ctx, "off")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestAuthService_UpsertUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockUserRepository(ctrl)
	svc := services.NewAuthService(repo, fastHasher())

	in := types.User{ID: "ext-1", Username: "guest"}
	repo.EXPECT().Upsert(gomock.Any(), in).Return(in, nil)

	out, err := svc.UpsertUser(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "ext-1", out.ID)

	_, err = svc.UpsertUser(context.Background(), types.User{Username: "no-id"})
	assert.Error(t, err)
}
