package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cbmpe-api/internal/auth"
	"cbmpe-api/internal/model"
)

type UserStore interface {
	AccountStore
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.User, error)
}

// UserService is the administrative CRUD surface over accounts. Passwords
// are set only at creation; profile updates never touch the hash.
type UserService struct {
	users  UserStore
	hasher *auth.PasswordHasher
}

func NewUserService(users UserStore, hasher *auth.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.UserProfile, error) {
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("hash password: %w", err)
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

	if err := s.users.Create(ctx, user); err != nil {
		return model.UserProfile{}, err
	}

	return user.Profile(), nil
}

func (s *UserService) Get(ctx context.Context, id string) (model.UserProfile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.UserProfile{}, err
	}
	return user.Profile(), nil
}

func (s *UserService) List(ctx context.Context) ([]model.UserProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]model.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (model.UserProfile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.UserProfile{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Rank != nil {
		user.Rank = *req.Rank
	}
	if req.Unit != nil {
		user.Unit = *req.Unit
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return model.UserProfile{}, err
	}

	return user.Profile(), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
