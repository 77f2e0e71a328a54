package service_test

import (
	"context"
	"testing"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository/postgres"
	"github.com/dcastro/clientadmin/internal/service"
	"github.com/dcastro/clientadmin/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	user, _, rawPassword := testutil.NewAccountBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		WithRole("manager").
		Build(t, testDB.DB)

	testutil.NewAccountBuilder().
		WithEmail("inactive-cred@example.com").
		WithInactiveCredential().
		Build(t, testDB.DB)

	testutil.NewAccountBuilder().
		WithEmail("inactive-user@example.com").
		WithInactiveUser().
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    "login@example.com",
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    "login@example.com",
				Password: "wrongpassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "non-existent email",
			input: service.LoginInput{
				Email:    "nobody@example.com",
				Password: "anypassword",
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "inactive credential rejects even with correct password",
			input: service.LoginInput{
				Email:    "inactive-cred@example.com",
				Password: "testpassword123",
			},
			wantErr: domain.ErrInactiveAccount,
		},
		{
			name: "inactive user rejects even with correct password",
			input: service.LoginInput{
				Email:    "inactive-user@example.com",
				Password: "testpassword123",
			},
			wantErr: domain.ErrInactiveAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := services.Auth.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.Token)
		})
	}

	t.Run("token claims carry user id, display name and role name", func(t *testing.T) {
		result, err := services.Auth.Login(ctx, service.LoginInput{
			Email:    "login@example.com",
			Password: rawPassword,
		})
		require.NoError(t, err)

		claims, err := services.Auth.ValidateToken(result.Token)
		require.NoError(t, err)

		assert.Equal(t, user.ID.String(), (*claims)["sub"])
		assert.Equal(t, user.Name+" "+user.LastName, (*claims)["name"])
		assert.Equal(t, "manager", (*claims)["role"])
	})
}

func TestAuthService_Login_TemporaryPassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	_, cred, rawPassword := testutil.NewAccountBuilder().
		WithEmail("temp@example.com").
		WithPassword("originalpassword").
		Build(t, testDB.DB)

	// First login with the configured temporary value succeeds and
	// normalizes it into the stored hash.
	result, err := services.Auth.Login(ctx, service.LoginInput{
		Email:    "temp@example.com",
		Password: cfg.TempPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	stored, err := repos.Credential.GetByUserID(ctx, cred.UserID)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(cfg.TempPassword)))

	// Repeat temporary-password login still succeeds.
	_, err = services.Auth.Login(ctx, service.LoginInput{
		Email:    "temp@example.com",
		Password: cfg.TempPassword,
	})
	require.NoError(t, err)

	// The original password has been superseded.
	_, err = services.Auth.Login(ctx, service.LoginInput{
		Email:    "temp@example.com",
		Password: rawPassword,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ResetPassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	_, cred, rawPassword := testutil.NewAccountBuilder().
		WithEmail("reset@example.com").
		WithPassword("oldpassword").
		Build(t, testDB.DB)

	testutil.NewAccountBuilder().
		WithEmail("reset-inactive@example.com").
		WithInactiveCredential().
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{
			name:  "successful reset",
			email: "reset@example.com",
		},
		{
			name:    "non-existent email",
			email:   "nobody@example.com",
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:    "inactive credential",
			email:   "reset-inactive@example.com",
			wantErr: domain.ErrInactiveAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.Auth.ResetPassword(ctx, tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}

	// The account is armed for a temporary-password login and the old
	// password no longer works.
	stored, err := repos.Credential.GetByUserID(ctx, cred.UserID)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(cfg.TempPassword)))

	_, err = services.Auth.Login(ctx, service.LoginInput{
		Email:    "reset@example.com",
		Password: rawPassword,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_UpdatePassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	user, cred, rawPassword := testutil.NewAccountBuilder().
		WithEmail("update@example.com").
		WithPassword("currentpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		userID  uuid.UUID
		input   service.UpdatePasswordInput
		wantErr error
	}{
		{
			name:   "mismatched confirmation leaves hash unchanged",
			userID: user.ID,
			input: service.UpdatePasswordInput{
				NewPassword:     "newpassword1",
				ConfirmPassword: "newpassword2",
			},
			wantErr: domain.ErrPasswordMismatch,
		},
		{
			name:   "wrong current password",
			userID: user.ID,
			input: service.UpdatePasswordInput{
				Password:        "notthecurrentone",
				NewPassword:     "newpassword1",
				ConfirmPassword: "newpassword1",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "unknown user",
			userID:  uuid.New(),
			input:   service.UpdatePasswordInput{},
			wantErr: domain.ErrCredentialNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Auth.UpdatePassword(ctx, tt.userID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)

			stored, err := repos.Credential.GetByUserID(ctx, cred.UserID)
			require.NoError(t, err)
			assert.Equal(t, cred.PasswordHash, stored.PasswordHash, "hash must be unchanged after a rejected update")
		})
	}

	t.Run("administrative override skips current-password check", func(t *testing.T) {
		updated, err := services.Auth.UpdatePassword(ctx, user.ID, service.UpdatePasswordInput{
			NewPassword:     "adminchosen1",
			ConfirmPassword: "adminchosen1",
		})
		require.NoError(t, err)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("adminchosen1")))
	})

	t.Run("strict update verifies the current password", func(t *testing.T) {
		_, err := services.Auth.UpdatePassword(ctx, user.ID, service.UpdatePasswordInput{
			Password:        "adminchosen1",
			NewPassword:     "userchosen2",
			ConfirmPassword: "userchosen2",
		})
		require.NoError(t, err)

		_, err = services.Auth.Login(ctx, service.LoginInput{
			Email:    "update@example.com",
			Password: "userchosen2",
		})
		require.NoError(t, err)

		// The build-time password has long been superseded.
		_, err = services.Auth.Login(ctx, service.LoginInput{
			Email:    "update@example.com",
			Password: rawPassword,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_UpdateStatus(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	user, _, _ := testutil.NewAccountBuilder().
		WithEmail("status@example.com").
		Build(t, testDB.DB)

	cred, err := services.Auth.UpdateStatus(ctx, user.ID, false)
	require.NoError(t, err)
	assert.False(t, cred.IsActive)

	// Deactivated credentials reject logins outright.
	_, err = services.Auth.Login(ctx, service.LoginInput{
		Email:    "status@example.com",
		Password: "testpassword123",
	})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)

	cred, err = services.Auth.UpdateStatus(ctx, user.ID, true)
	require.NoError(t, err)
	assert.True(t, cred.IsActive)

	_, err = services.Auth.UpdateStatus(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}
