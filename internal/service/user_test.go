package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/mocks"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasherWithConfig(auth.PasswordConfig{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := testHasher()
	tm := auth.NewTokenManager("login-secret", time.Hour)

	hash, err := hasher.Hash("manager123")
	require.NoError(t, err)
	stored := &model.User{
		ID:           uuid.New(),
		Email:        "manager@company.com",
		PasswordHash: hash,
		FirstName:    "Mina",
		LastName:     "Manager",
		Role:         model.RoleManager,
	}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(repo, hasher, tm)

		repo.EXPECT().FindByEmail(ctx, "manager@company.com").Return(stored, nil)

		out, err := svc.Login(ctx, service.LoginInput{Email: "Manager@Company.com", Password: "manager123"})
		require.NoError(t, err)
		assert.Equal(t, stored.ID, out.User.ID)
		assert.Equal(t, model.RoleManager, out.User.Role)

		principal, err := tm.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, principal.UserID)
		assert.Equal(t, model.RoleManager, principal.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(repo, hasher, tm)

		repo.EXPECT().FindByEmail(ctx, "manager@company.com").Return(stored, nil)

		_, err := svc.Login(ctx, service.LoginInput{Email: "manager@company.com", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same as wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(repo, hasher, tm)

		repo.EXPECT().FindByEmail(ctx, "ghost@company.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.Login(ctx, service.LoginInput{Email: "ghost@company.com", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("malformed email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(repo, hasher, tm)

		_, err := svc.Login(ctx, service.LoginInput{Email: "not-an-email", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	caller := employee()

	t.Run("writes only provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(repo, testHasher(), nil)

		dept := "Finance"
		repo.EXPECT().UpdateFields(ctx, caller.UserID, map[string]interface{}{"department": "Finance"}).Return(nil)
		repo.EXPECT().FindByID(ctx, caller.UserID).Return(&model.User{ID: caller.UserID, Department: &dept}, nil)

		profile, err := svc.UpdateProfile(ctx, caller, service.UpdateProfileInput{Department: &dept})
		require.NoError(t, err)
		assert.Equal(t, &dept, profile.Department)
	})

	t.Run("empty first name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(repo, testHasher(), nil)

		empty := ""
		_, err := svc.UpdateProfile(ctx, caller, service.UpdateProfileInput{FirstName: &empty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := service.NewUserService(repo, testHasher(), nil)

	repo.EXPECT().FindAll(ctx).Return([]*model.User{
		{ID: uuid.New(), Email: "a@company.com", PasswordHash: "secret"},
		{ID: uuid.New(), Email: "b@company.com", PasswordHash: "secret"},
	}, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "a@company.com", users[0].Email)
}
