package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentService struct {
	comments repository.CommentRepository
}

func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

type CreateCommentInput struct {
	Message  string
	ClientID *uuid.UUID
}

func (s *CommentService) List(ctx context.Context) ([]*domain.Comment, error) {
	return s.comments.List(ctx)
}

func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	now := time.Now()
	comment := &domain.Comment{
		ID:        uuid.New(),
		Date:      now,
		Message:   input.Message,
		IsActive:  true,
		ClientID:  input.ClientID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.comments.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return s.comments.Delete(ctx, id)
}
