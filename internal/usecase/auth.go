package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
	pkgAuth "github.com/polkiloo/foodbridge/internal/pkg/auth"
	"github.com/polkiloo/foodbridge/internal/pkg/sanitize"
)

// AuthUseCase handles accounts and session tokens.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	notifier Notifier
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, notifier Notifier) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, notifier: notifier}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and returns a session token. Role defaults to donor.
func (u *AuthUseCase) Register(ctx context.Context, reg model.Registration) (*model.User, string, error) {
	email := normalizeEmail(reg.Email)
	if email == "" || reg.Password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	role := reg.Role
	if role == "" {
		role = model.RoleDonor
	}
	if !role.Valid() {
		return nil, "", domainErrors.ErrInvalidRole
	}

	hash, err := u.hasher.Hash(reg.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{
		Email:        email,
		Name:         sanitize.Text(reg.Name),
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := u.tokens.IssueToken(model.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}
	u.notifier.Welcome(*usr)
	return usr, token, nil
}

// Authenticate validates credentials and returns a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(model.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ParseToken resolves the caller identity from a session token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
