package postgres

import (
	"context"
	"errors"

	"github.com/dcastro/clientadmin/internal/repository"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *txManager {
	return &txManager{db: db}
}

func (m *txManager) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &unitOfWork{tx: tx}, nil
}

type unitOfWork struct {
	tx   *gorm.DB
	done bool
}

func (u *unitOfWork) Credentials() repository.CredentialRepository {
	return NewCredentialRepository(u.tx)
}

func (u *unitOfWork) Users() repository.UserRepository {
	return NewUserRepository(u.tx)
}

func (u *unitOfWork) Roles() repository.RoleRepository {
	return NewRoleRepository(u.tx)
}

func (u *unitOfWork) Commit() error {
	if err := u.tx.Commit().Error; err != nil {
		return err
	}
	u.done = true
	return nil
}

func (u *unitOfWork) Rollback() error {
	err := u.tx.Rollback().Error
	if err == nil || errors.Is(err, gorm.ErrInvalidTransaction) {
		u.done = true
		return nil
	}
	return err
}

// Close releases the transaction if it is still open. Safe to defer on
// every path; rolling back an already-finished transaction is a no-op.
func (u *unitOfWork) Close() {
	if u.done {
		return
	}
	u.tx.Rollback()
	u.done = true
}
