// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       newValidator(),
	}
}

// UserProfile is the public view of a user.
type UserProfile struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Role       model.Role `json:"role"`
	Department *string    `json:"department"`
	Position   *string    `json:"position"`
	Location   *string    `json:"location"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func newUserProfile(u *model.User) *UserProfile {
	return &UserProfile{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		Department: u.Department,
		Position:   u.Position,
		Location:   u.Location,
		CreatedAt:  u.CreatedAt,
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// Login checks the credentials and issues a bearer token carrying the user's role.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		Token: token,
		User:  newUserProfile(user),
	}, nil
}

// ListUsers returns every user's public profile.
func (s *UserService) ListUsers(ctx context.Context) ([]*UserProfile, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]*UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, newUserProfile(u))
	}
	return profiles, nil
}

func (s *UserService) GetProfile(ctx context.Context, principal auth.Principal) (*UserProfile, error) {
	user, err := s.repo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	return newUserProfile(user), nil
}

// UpdateProfileInput lists the self-service fields. Absent fields are left unchanged.
type UpdateProfileInput struct {
	FirstName  *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Position   *string `json:"position" validate:"omitempty,max=100"`
	Location   *string `json:"location" validate:"omitempty,max=100"`
}

func (s *UserService) UpdateProfile(ctx context.Context, principal auth.Principal, input UpdateProfileInput) (*UserProfile, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	fields := make(map[string]interface{})
	if input.FirstName != nil {
		fields["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["last_name"] = *input.LastName
	}
	if input.Department != nil {
		fields["department"] = *input.Department
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, principal.UserID, fields); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, principal)
}
