package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

type Service struct {
	messageRepo repository.MessageRepository
}

func NewService(messageRepo repository.MessageRepository) *Service {
	return &Service{messageRepo: messageRepo}
}

type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (s *Service) Submit(ctx context.Context, input SubmitInput) (*entity.ContactMessage, error) {
	msg := entity.NewContactMessage(input.Name, input.Email, input.Subject, input.Body)

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("saving contact message: %w", err)
	}

	return msg, nil
}

type ListInput struct {
	Page  int
	Limit int
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.ContactMessage, *pagination.Info, error) {
	params := pagination.NewParams(input.Page, input.Limit)

	messages, pageInfo, err := s.messageRepo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing contact messages: %w", err)
	}

	return messages, pageInfo, nil
}

func (s *Service) Delete(ctx context.Context, messageID uuid.UUID) error {
	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		return err
	}
	return nil
}
