package postgres_test

import (
	"context"
	"testing"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository/postgres"
	"github.com/dcastro/clientadmin/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCredentialRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, cred, _ := testutil.NewAccountBuilder().
		WithEmail("repo@example.com").
		Build(t, testDB.DB)

	t.Run("GetByEmail preloads the owning user", func(t *testing.T) {
		got, err := repos.Credential.GetByEmail(ctx, "repo@example.com")
		require.NoError(t, err)

		assert.Equal(t, cred.ID, got.ID)
		require.NotNil(t, got.User, "owning user must be joined")
		assert.Equal(t, user.ID, got.User.ID)
	})

	t.Run("GetByEmail unknown email", func(t *testing.T) {
		_, err := repos.Credential.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("GetByUserID", func(t *testing.T) {
		got, err := repos.Credential.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, cred.ID, got.ID)

		_, err = repos.Credential.GetByUserID(ctx, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("UpdatePasswordHash", func(t *testing.T) {
		err := repos.Credential.UpdatePasswordHash(ctx, cred.ID, "new-hash-value")
		require.NoError(t, err)

		got, err := repos.Credential.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash-value", got.PasswordHash)
	})

	t.Run("rejects a second credential for the same user", func(t *testing.T) {
		dup := &domain.Credential{
			ID:           uuid.New(),
			Email:        "second@example.com",
			PasswordHash: "irrelevant",
			IsActive:     true,
			UserID:       user.ID,
		}
		assert.Error(t, repos.Credential.Create(ctx, dup))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		// A user without any credential yet, so only the email collides.
		bare := &domain.User{
			ID:       uuid.New(),
			Name:     "No",
			LastName: "Credential",
			Email:    "bare@example.com",
			IsActive: true,
			RoleID:   user.RoleID,
		}
		require.NoError(t, repos.User.Create(ctx, bare))

		dup := &domain.Credential{
			ID:           uuid.New(),
			Email:        "repo@example.com",
			PasswordHash: "irrelevant",
			IsActive:     true,
			UserID:       bare.ID,
		}
		assert.Error(t, repos.Credential.Create(ctx, dup))
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		err := repos.Credential.UpdateStatus(ctx, cred.ID, false)
		require.NoError(t, err)

		got, err := repos.Credential.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})
}

func TestUnitOfWork(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, cred, _ := testutil.NewAccountBuilder().
		WithEmail("uow@example.com").
		Build(t, testDB.DB)

	t.Run("rolled back writes are not visible", func(t *testing.T) {
		uow, err := repos.Tx.Begin(ctx)
		require.NoError(t, err)
		defer uow.Close()

		require.NoError(t, uow.Credentials().UpdatePasswordHash(ctx, cred.ID, "uncommitted"))
		require.NoError(t, uow.Rollback())

		got, err := repos.Credential.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, cred.PasswordHash, got.PasswordHash)
	})

	t.Run("committed writes are visible", func(t *testing.T) {
		uow, err := repos.Tx.Begin(ctx)
		require.NoError(t, err)
		defer uow.Close()

		require.NoError(t, uow.Credentials().UpdatePasswordHash(ctx, cred.ID, "committed"))
		require.NoError(t, uow.Commit())

		got, err := repos.Credential.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "committed", got.PasswordHash)
	})

	t.Run("rollback after commit is harmless", func(t *testing.T) {
		uow, err := repos.Tx.Begin(ctx)
		require.NoError(t, err)
		defer uow.Close()

		require.NoError(t, uow.Commit())
		assert.NoError(t, uow.Rollback())
	})

	t.Run("close without commit discards the transaction", func(t *testing.T) {
		uow, err := repos.Tx.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, uow.Credentials().UpdatePasswordHash(ctx, cred.ID, "abandoned"))
		uow.Close()
		uow.Close() // idempotent

		got, err := repos.Credential.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "committed", got.PasswordHash)
	})
}
