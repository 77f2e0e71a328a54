package repository

import (
	"context"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/google/uuid"
)

type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	// GetByEmail loads a credential with its owning user joined.
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Credential, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	CountByRoleID(ctx context.Context, roleID uuid.UUID) (int64, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByNumber(ctx context.Context, numberOrder int) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	List(ctx context.Context) ([]*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*domain.AuditEntry, error)
}

// UnitOfWork groups reads and writes into a single database transaction.
// The repositories it exposes operate inside that transaction. A unit of
// work is owned by exactly one flow invocation and must be Closed on
// every exit path; Close after Commit or Rollback is a no-op.
type UnitOfWork interface {
	Credentials() CredentialRepository
	Users() UserRepository
	Roles() RoleRepository
	Commit() error
	Rollback() error
	Close()
}

type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

type Repositories struct {
	Credential CredentialRepository
	User       UserRepository
	Role       RoleRepository
	Client     ClientRepository
	Order      OrderRepository
	Comment    CommentRepository
	Audit      AuditRepository
	Tx         TxManager
}
