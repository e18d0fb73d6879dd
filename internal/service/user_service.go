package service

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nkshtr/CropIn/internal/cache"
	"github.com/nkshtr/CropIn/internal/errors"
	"github.com/nkshtr/CropIn/internal/model"
	"github.com/nkshtr/CropIn/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateInput carries the admin-editable fields. Nil pointers leave the
// current value untouched.
type UpdateInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Role     *model.Role
	Location *model.Location
}

// UserService exposes account administration and profile reads.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

// ListUsers returns every account. The password hash is excluded from
// serialization at the model level.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UpdateUser applies the requested field changes and saves the full
// record. Changing the email re-checks uniqueness.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		if email != user.Email {
			other, err := s.users.FindByEmail(ctx, email)
			if err == nil && other != nil && other.ID != user.ID {
				return nil, errors.ErrEmailTaken
			}
			if err != nil && !goerrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("check email: %w", err)
			}
			user.Email = email
		}
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, errors.ErrInvalidRole
		}
		user.Role = *in.Role
	}
	if in.Location != nil {
		user.Location = in.Location
	}

	if err := s.users.Update(ctx, user); err != nil {
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// DeleteUser permanently removes the record. A second delete of the
// same id reports ErrUserNotFound.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
