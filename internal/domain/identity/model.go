package identity

import (
	"time"

	"github.com/google/uuid"
)

// BootstrapUsername is the seeded administrator account. It cannot be
// deleted or deactivated so the system always has a working admin login.
const BootstrapUsername = "admin"

const MinPasswordLength = 6

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginResult carries the issued token together with the user it belongs to.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
