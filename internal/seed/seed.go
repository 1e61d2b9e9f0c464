// Package seed creates the fixed demo accounts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
)

// Account is one seeded login.
type Account struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Role       model.Role
	Department string
	Position   string
	Location   string
}

// DefaultAccounts are deterministic demo credentials, not a provisioning mechanism.
var DefaultAccounts = []Account{
	{
		Email:      "admin@traininghub.com",
		Password:   "admin123",
		FirstName:  "Admin",
		LastName:   "User",
		Role:       model.RoleAdmin,
		Department: "Administration",
		Position:   "System Administrator",
		Location:   "Head Office",
	},
	{
		Email:      "manager@traininghub.com",
		Password:   "manager123",
		FirstName:  "Manager",
		LastName:   "User",
		Role:       model.RoleManager,
		Department: "Human Resources",
		Position:   "HR Manager",
		Location:   "Head Office",
	},
	{
		Email:      "employee@traininghub.com",
		Password:   "employee123",
		FirstName:  "Employee",
		LastName:   "User",
		Role:       model.RoleEmployee,
		Department: "Engineering",
		Position:   "Software Developer",
		Location:   "Main Office",
	},
}

// Users creates each account whose email is not taken yet. Existing users are left untouched.
// It returns the emails that were created.
func Users(ctx context.Context, repo repository.UserRepositoryIface, hasher *auth.PasswordHasher, accounts []Account) ([]string, error) {
	var (
		created []string
		errs    []error
	)

	for _, acct := range accounts {
		_, err := repo.FindByEmail(ctx, acct.Email)
		if err == nil {
			slog.DebugContext(ctx, "seed account exists", "email", acct.Email)
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			errs = append(errs, fmt.Errorf("looking up %s: %w", acct.Email, err))
			continue
		}

		hash, err := hasher.Hash(acct.Password)
		if err != nil {
			errs = append(errs, fmt.Errorf("hashing password for %s: %w", acct.Email, err))
			continue
		}

		user := &model.User{
			Email:        acct.Email,
			PasswordHash: hash,
			FirstName:    acct.FirstName,
			LastName:     acct.LastName,
			Role:         acct.Role,
			Department:   optional(acct.Department),
			Position:     optional(acct.Position),
			Location:     optional(acct.Location),
		}
		if err := repo.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				continue
			}
			errs = append(errs, fmt.Errorf("creating %s: %w", acct.Email, err))
			continue
		}

		slog.InfoContext(ctx, "seeded account", "email", acct.Email, "role", acct.Role)
		created = append(created, acct.Email)
	}

	return created, errors.Join(errs...)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
