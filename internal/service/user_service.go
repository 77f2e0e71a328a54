package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dcastro/clientadmin/internal/config"
	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService manages staff users. Creating a user also provisions its
// credential, armed with the temporary password, in the same transaction.
type UserService struct {
	tx      repository.TxManager
	users   repository.UserRepository
	hasher  PasswordHasher
	auditor *auditor
	cfg     *config.Config
}

func NewUserService(tx repository.TxManager, users repository.UserRepository, audit repository.AuditRepository, hasher PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		tx:      tx,
		users:   users,
		hasher:  hasher,
		auditor: &auditor{repo: audit},
		cfg:     cfg,
	}
}

type CreateUserInput struct {
	Name     string
	LastName string
	Address  string
	DNI      string
	Email    string
	Phone    string
	RoleID   uuid.UUID
}

type UpdateUserInput struct {
	Name     *string
	LastName *string
	Address  *string
	DNI      *string
	Phone    *string
	RoleID   *uuid.UUID
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Close()

	if _, err := uow.Users().GetByEmail(ctx, input.Email); err == nil {
		s.rollback(uow, "Create")
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.rollback(uow, "Create")
		return nil, fmt.Errorf("check email: %w", err)
	}

	if _, err := uow.Roles().GetByID(ctx, input.RoleID); err != nil {
		s.rollback(uow, "Create")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("check role: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New(),
		Name:      input.Name,
		LastName:  input.LastName,
		Address:   input.Address,
		DNI:       input.DNI,
		Email:     input.Email,
		Phone:     input.Phone,
		IsActive:  true,
		RoleID:    input.RoleID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.Users().Create(ctx, user); err != nil {
		s.rollback(uow, "Create")
		return nil, fmt.Errorf("create user: %w", err)
	}

	// New accounts start on the temporary password and normalize it on
	// first login.
	hash, err := s.hasher.Hash(s.cfg.TempPassword)
	if err != nil {
		s.rollback(uow, "Create")
		return nil, fmt.Errorf("hash temporary password: %w", err)
	}

	cred := &domain.Credential{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
		UserID:       user.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.Credentials().Create(ctx, cred); err != nil {
		s.rollback(uow, "Create")
		return nil, fmt.Errorf("create credential: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventCreate, "users", user.ID, nil)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// Relations stay out of the audit diff.
	before := *user
	before.Role = nil

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.DNI != nil {
		user.DNI = *input.DNI
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.RoleID != nil {
		user.RoleID = *input.RoleID
	}
	user.Role = nil

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventUpdate, "users", user.ID, diffChanges(&before, user))
	return user, nil
}

// Deactivate soft-disables the user and its credential together.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Close()

	user, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		s.rollback(uow, "Deactivate")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	user.IsActive = false
	user.Role = nil
	if err := uow.Users().Update(ctx, user); err != nil {
		s.rollback(uow, "Deactivate")
		return fmt.Errorf("deactivate user: %w", err)
	}

	cred, err := uow.Credentials().GetByUserID(ctx, id)
	if err != nil {
		s.rollback(uow, "Deactivate")
		return fmt.Errorf("lookup credential: %w", err)
	}

	if err := uow.Credentials().UpdateStatus(ctx, cred.ID, false); err != nil {
		s.rollback(uow, "Deactivate")
		return fmt.Errorf("deactivate credential: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventDelete, "users", id, nil)
	return nil
}

func (s *UserService) rollback(uow repository.UnitOfWork, op string) {
	if err := uow.Rollback(); err != nil {
		log.Printf("ERROR [user.%s] failed to abort transaction: %v", op, err)
	}
}
