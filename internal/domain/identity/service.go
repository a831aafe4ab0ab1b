package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lims/lims/internal/platform/auth"
)

type Service struct {
	repo Repository
	jwt  auth.JWTConfig
}

func NewService(repo Repository, jwt auth.JWTConfig) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Login verifies credentials and issues a signed token. Disabled accounts
// cannot log in even with the correct password.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := auth.IssueToken(s.jwt, u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: u}, nil
}

func (s *Service) CreateUser(ctx context.Context, username, password, fullName, role string) (*User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !auth.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// CountUsers reports how many accounts can currently log in.
func (s *Service) CountUsers(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, fullName, role string) (*User, error) {
	if !auth.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Username == BootstrapUsername && role != auth.RoleAdmin {
		return nil, ErrAdminImmutable
	}
	u.FullName = fullName
	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ToggleActive flips a user's active flag and returns the new state.
func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Username == BootstrapUsername {
		return nil, ErrAdminImmutable
	}
	u.IsActive = !u.IsActive
	if err := s.repo.SetActive(ctx, id, u.IsActive); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Username == BootstrapUsername {
		return ErrAdminImmutable
	}
	return s.repo.Delete(ctx, id)
}

// ChangePassword rotates a user's own password. The current password must
// verify first so a hijacked session cannot silently lock the owner out.
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

// EnsureBootstrapAdmin creates the admin account if no users exist yet.
func (s *Service) EnsureBootstrapAdmin(ctx context.Context, password string) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = s.CreateUser(ctx, BootstrapUsername, password, "System Administrator", auth.RoleAdmin)
	return err
}
