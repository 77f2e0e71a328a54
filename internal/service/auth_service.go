package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dcastro/clientadmin/internal/config"
	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository"
	"github.com/dcastro/clientadmin/internal/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordHasher is the one-way hashing contract consumed by AuthService.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs and validates identity tokens.
type TokenIssuer interface {
	Issue(claims token.Claims) (string, error)
	Validate(tokenString string) (*jwt.MapClaims, error)
}

// AuthService orchestrates login, password reset and credential updates.
// Every mutating flow except UpdateStatus runs inside a unit of work;
// UpdateStatus is a single-column toggle and uses the plain repository.
type AuthService struct {
	tx          repository.TxManager
	credentials repository.CredentialRepository
	hasher      PasswordHasher
	tokens      TokenIssuer
	cfg         *config.Config
}

func NewAuthService(tx repository.TxManager, credentials repository.CredentialRepository, hasher PasswordHasher, tokens TokenIssuer, cfg *config.Config) *AuthService {
	return &AuthService{
		tx:          tx,
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		cfg:         cfg,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
}

// UpdatePasswordInput carries presence-conditional fields; an empty
// string means the caller omitted the field.
type UpdatePasswordInput struct {
	Password        string
	NewPassword     string
	ConfirmPassword string
}

// loginPath selects how a submitted password is checked. Temporary-password
// logins rehash and persist the submitted plaintext inside the transaction;
// stored-hash logins are read-only.
type loginPath int

const (
	loginPathStoredHash loginPath = iota
	loginPathTemporary
)

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Close()

	cred, err := uow.Credentials().GetByEmail(ctx, input.Email)
	if err != nil {
		s.abort(uow, "Login")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}

	if !cred.IsActive || cred.User == nil || !cred.User.IsActive {
		s.abort(uow, "Login")
		return nil, domain.ErrInactiveAccount
	}

	path := loginPathStoredHash
	if input.Password == s.cfg.TempPassword {
		path = loginPathTemporary
	}

	switch path {
	case loginPathTemporary:
		// The bootstrap secret becomes this account's persisted password.
		// Repeat logins with the same value keep succeeding via this path.
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			s.abort(uow, "Login")
			return nil, fmt.Errorf("hash temporary password: %w", err)
		}
		if err := uow.Credentials().UpdatePasswordHash(ctx, cred.ID, hash); err != nil {
			s.abort(uow, "Login")
			return nil, fmt.Errorf("persist temporary password: %w", err)
		}
	case loginPathStoredHash:
		if !s.hasher.Verify(input.Password, cred.PasswordHash) {
			s.abort(uow, "Login")
			return nil, domain.ErrInvalidCredentials
		}
	}

	role, err := uow.Roles().GetByID(ctx, cred.User.RoleID)
	if err != nil {
		// A user without a resolvable role is an integrity fault, not a
		// domain error.
		s.abort(uow, "Login")
		return nil, fmt.Errorf("resolve role for user %s: %w", cred.UserID, err)
	}

	signed, err := s.tokens.Issue(token.Claims{
		UserID: cred.UserID,
		Name:   cred.User.DisplayName(),
		Role:   role.Name,
	})
	if err != nil {
		s.abort(uow, "Login")
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return &LoginResult{Token: signed}, nil
}

// ResetPassword arms the account for the next temporary-password login.
// No token is issued.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Close()

	cred, err := uow.Credentials().GetByEmail(ctx, email)
	if err != nil {
		s.abort(uow, "ResetPassword")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("lookup credential: %w", err)
	}

	if !cred.IsActive {
		s.abort(uow, "ResetPassword")
		return domain.ErrInactiveAccount
	}

	hash, err := s.hasher.Hash(s.cfg.TempPassword)
	if err != nil {
		s.abort(uow, "ResetPassword")
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := uow.Credentials().UpdatePasswordHash(ctx, cred.ID, hash); err != nil {
		s.abort(uow, "ResetPassword")
		return fmt.Errorf("persist password: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, input UpdatePasswordInput) (*domain.Credential, error) {
	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Close()

	cred, err := uow.Credentials().GetByUserID(ctx, userID)
	if err != nil {
		s.abort(uow, "UpdatePassword")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}

	// Verification of the current password is skipped when the caller
	// omits it. That is the administrative override path, not an oversight.
	if input.Password != "" && !s.hasher.Verify(input.Password, cred.PasswordHash) {
		s.abort(uow, "UpdatePassword")
		return nil, domain.ErrInvalidCredentials
	}

	if input.NewPassword != "" {
		if input.NewPassword != input.ConfirmPassword {
			s.abort(uow, "UpdatePassword")
			return nil, domain.ErrPasswordMismatch
		}

		hash, err := s.hasher.Hash(input.NewPassword)
		if err != nil {
			s.abort(uow, "UpdatePassword")
			return nil, fmt.Errorf("hash password: %w", err)
		}

		if err := uow.Credentials().UpdatePasswordHash(ctx, cred.ID, hash); err != nil {
			s.abort(uow, "UpdatePassword")
			return nil, fmt.Errorf("persist password: %w", err)
		}
		cred.PasswordHash = hash
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return cred, nil
}

// UpdateStatus toggles the credential's active flag. Runs outside the
// unit of work.
func (s *AuthService) UpdateStatus(ctx context.Context, userID uuid.UUID, isActive bool) (*domain.Credential, error) {
	cred, err := s.credentials.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}

	if err := s.credentials.UpdateStatus(ctx, cred.ID, isActive); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	cred.IsActive = isActive
	return cred, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	return s.tokens.Validate(tokenString)
}

// abort rolls back the open transaction. A rollback failure is logged and
// swallowed so it never masks the error that triggered the abort.
func (s *AuthService) abort(uow repository.UnitOfWork, op string) {
	if err := uow.Rollback(); err != nil {
		log.Printf("ERROR [auth.%s] failed to abort transaction: %v", op, err)
	}
}
