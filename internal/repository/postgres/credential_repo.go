package postgres

import (
	"context"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *credentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	return r.db.WithContext(ctx).Create(cred).Error
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&cred, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.db.WithContext(ctx).First(&cred, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Credential{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (r *credentialRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Credential{}).
		Where("id = ?", id).
		Update("is_active", isActive).Error
}
