package postgres

import (
	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Credential{},
		&domain.Client{},
		&domain.Order{},
		&domain.Comment{},
		&domain.AuditEntry{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Credential: NewCredentialRepository(db),
		User:       NewUserRepository(db),
		Role:       NewRoleRepository(db),
		Client:     NewClientRepository(db),
		Order:      NewOrderRepository(db),
		Comment:    NewCommentRepository(db),
		Audit:      NewAuditRepository(db),
		Tx:         NewTxManager(db),
	}
}
