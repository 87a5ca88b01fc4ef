package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cbmpe-api/internal/auth"
	"cbmpe-api/internal/model"
)

// AccountStore is the slice of the user repository the auth flow needs.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, u model.User) error
}

type AuthService struct {
	accounts AccountStore
	hasher   *auth.PasswordHasher
	codec    *auth.TokenCodec
}

func NewAuthService(accounts AccountStore, hasher *auth.PasswordHasher, codec *auth.TokenCodec) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, codec: codec}
}

// Register creates an account and signs a session token for it. The email
// pre-check and the store's unique index both surface as ErrEmailTaken, so a
// concurrent registration losing the race observes the same conflict.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResult, error) {
	_, err := s.accounts.FindByEmail(ctx, req.Email)
	if err == nil {
		return model.AuthResult{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return model.AuthResult{}, fmt.Errorf("check email availability: %w", err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Rank:         req.Rank,
		Unit:         req.Unit,
		PasswordHash: digest,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.Create(ctx, user); err != nil {
		return model.AuthResult{}, err
	}

	token, err := s.codec.Sign(user.ID)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("sign token: %w", err)
	}

	return model.AuthResult{User: user.Profile(), Token: token}, nil
}

// Login verifies the credentials and signs a fresh session token. An unknown
// email and a wrong password produce the identical error so callers cannot
// probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResult, error) {
	user, err := s.accounts.FindByEmail(ctx, req.Email)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("find account: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	token, err := s.codec.Sign(user.ID)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("sign token: %w", err)
	}

	return model.AuthResult{User: user.Profile(), Token: token}, nil
}

// Me returns the profile behind an already-verified token subject. A missing
// account is a not-found, not an authentication failure: the token itself
// was valid.
func (s *AuthService) Me(ctx context.Context, userID string) (model.UserProfile, error) {
	user, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	return user.Profile(), nil
}
