package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
)

type Service struct {
	eventRepo repository.EventRepository
}

func NewService(eventRepo repository.EventRepository) *Service {
	return &Service{eventRepo: eventRepo}
}

type CreateInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	CreatorID   uuid.UUID
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Event, error) {
	event := entity.NewEvent(
		input.Title, input.Description, input.Location,
		input.StartsAt, input.EndsAt, input.CreatorID,
	)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	return event, nil
}

type ListInput struct {
	UpcomingOnly bool
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Event, error) {
	events, err := s.eventRepo.List(ctx, repository.EventListParams{
		UpcomingOnly: input.UpcomingOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

func (s *Service) GetByID(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

type UpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
}

func (s *Service) Update(ctx context.Context, eventID uuid.UUID, input UpdateInput) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	title := event.Title
	description := event.Description
	location := event.Location
	startsAt := event.StartsAt
	endsAt := event.EndsAt

	if input.Title != nil {
		title = *input.Title
	}
	if input.Description != nil {
		description = *input.Description
	}
	if input.Location != nil {
		location = *input.Location
	}
	if input.StartsAt != nil {
		startsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		endsAt = input.EndsAt
	}

	event.Update(title, description, location, startsAt, endsAt)

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}

	return event, nil
}

func (s *Service) Delete(ctx context.Context, eventID uuid.UUID) error {
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}
	return nil
}
