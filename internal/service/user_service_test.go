package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/mocks"
	"github.com/lelec0/fintech-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		user, err := svc.CreateUser(ctx, "João Silva", "joao.silva@email.com", "12345678901")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "João Silva", user.Name)
		assert.Equal(t, "joao.silva@email.com", user.Email)
		assert.Len(t, userStore.Users, 1)
	})

	t.Run("invalid email rejected before store access", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		userStore.ExistsByEmailFn = func(ctx context.Context, email string) (bool, error) {
			t.Fatal("store should not be reached for an invalid email")
			return false, nil
		}
		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		user, err := svc.CreateUser(ctx, "João Silva", "not-an-email", "12345678901")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Nil(t, user)
		assert.Empty(t, userStore.Users)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("Maria Santos", "maria.santos@email.com", "98765432100")
		require.NoError(t, err)
		userStore.Users[existing.ID] = existing

		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		user, err := svc.CreateUser(ctx, "Other Maria", "maria.santos@email.com", "11122233344")
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Nil(t, user)
		assert.Len(t, userStore.Users, 1)
	})

	t.Run("duplicate national ID with distinct email", func(t *testing.T) {
		// Uniqueness checks are independent: a fresh email does not
		// excuse a taken national ID.
		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("Maria Santos", "maria.santos@email.com", "98765432100")
		require.NoError(t, err)
		userStore.Users[existing.ID] = existing

		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		user, err := svc.CreateUser(ctx, "Other Maria", "other.maria@email.com", "98765432100")
		assert.ErrorIs(t, err, store.ErrNationalIDExists)
		assert.Nil(t, user)
		assert.Len(t, userStore.Users, 1)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
		require.NoError(t, err)
		userStore.Users[existing.ID] = existing

		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		user, err := svc.GetUser(ctx, existing.ID)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
		assert.Equal(t, existing.Email, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockTransactor(), testLogger())

		user, err := svc.GetUser(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewMockUserStore()
	svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	u1, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
	require.NoError(t, err)
	u2, err := domain.NewUser("Maria Santos", "maria.santos@email.com", "98765432100")
	require.NoError(t, err)
	userStore.Users[u1.ID] = u1
	userStore.Users[u2.ID] = u2

	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	newUserStore := func(t *testing.T) (*mocks.MockUserStore, *domain.User) {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
		require.NoError(t, err)
		userStore.Users[existing.ID] = existing
		return userStore, existing
	}

	t.Run("success", func(t *testing.T) {
		userStore, existing := newUserStore(t)
		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		updated, err := svc.UpdateUser(ctx, existing.ID, "João S. Silva", "joao.s@email.com", "12345678901")
		require.NoError(t, err)
		assert.Equal(t, "João S. Silva", updated.Name)
		assert.Equal(t, "joao.s@email.com", updated.Email)
	})

	t.Run("unchanged email skips uniqueness check", func(t *testing.T) {
		userStore, existing := newUserStore(t)
		userStore.ExistsByEmailFn = func(ctx context.Context, email string) (bool, error) {
			t.Fatal("uniqueness check should be skipped when the email is unchanged")
			return false, nil
		}
		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		updated, err := svc.UpdateUser(ctx, existing.ID, "Renamed", existing.Email, existing.NationalID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("changed email collides", func(t *testing.T) {
		userStore, existing := newUserStore(t)
		other, err := domain.NewUser("Maria Santos", "maria.santos@email.com", "98765432100")
		require.NoError(t, err)
		userStore.Users[other.ID] = other

		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		updated, err := svc.UpdateUser(ctx, existing.ID, existing.Name, other.Email, existing.NationalID)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Nil(t, updated)
	})

	t.Run("invalid email", func(t *testing.T) {
		userStore, existing := newUserStore(t)
		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		updated, err := svc.UpdateUser(ctx, existing.ID, existing.Name, "broken@", existing.NationalID)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Nil(t, updated)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockTransactor(), testLogger())

		updated, err := svc.UpdateUser(ctx, uuid.New(), "Name", "name@email.com", "12345678901")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Nil(t, updated)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
		require.NoError(t, err)
		userStore.Users[existing.ID] = existing

		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		require.NoError(t, svc.DeleteUser(ctx, existing.ID))
		assert.Empty(t, userStore.Users)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockTransactor(), testLogger())

		err := svc.DeleteUser(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		storeErr := errors.New("connection reset")
		userStore.DeleteFn = func(ctx context.Context, id uuid.UUID) error {
			return storeErr
		}

		svc := NewUserService(userStore, mocks.NewMockTransactor(), testLogger())

		err := svc.DeleteUser(ctx, uuid.New())
		assert.ErrorIs(t, err, storeErr)
	})
}
