package types

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// SystemUserID identifies the built-in anonymous uploader. The account is
// seeded by migration, is inactive and has an unusable password hash, so it
// can own records but can never authenticate.
const SystemUserID = "system"

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the opaque, immutable identifier of the user.
	ID string `json:"id" db:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username" db:"username"`

	// Email is the user's email address. It is unique when present.
	Email *string `json:"email" db:"email"`

	FirstName *string `json:"firstName" db:"first_name"`
	LastName  *string `json:"lastName" db:"last_name"`

	// Role indicates the user's authorization level ("admin" or "user").
	Role string `json:"role" db:"role"`

	// IsActive is false for disabled accounts, which can not log in.
	IsActive bool `json:"isActive" db:"is_active"`

	// PasswordHash stores the "<hash>.<salt>" encoding of the password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	LastLoginAt *time.Time `json:"lastLoginAt" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns the projection of the user that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// PublicUser is the client-facing view of a User. It never carries the
// password hash.
type PublicUser struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      string  `json:"role"`
}

// UserPatch carries a partial update for a user. Nil fields are left as is.
type UserPatch struct {
	Email        *string
	FirstName    *string
	LastName     *string
	Role         *string
	IsActive     *bool
	PasswordHash *string
	LastLoginAt  *time.Time
}
