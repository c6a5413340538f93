package member

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
)

type Service struct {
	memberRepo repository.MemberRepository
}

func NewService(memberRepo repository.MemberRepository) *Service {
	return &Service{memberRepo: memberRepo}
}

type CreateInput struct {
	Name      string
	Relation  string
	Bio       string
	PhotoPath string
	BirthDate *time.Time
	SpouseID  *uuid.UUID
	ParentID  *uuid.UUID
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.FamilyMember, error) {
	if input.SpouseID != nil {
		if _, err := s.memberRepo.GetByID(ctx, *input.SpouseID); err != nil {
			return nil, err
		}
	}
	if input.ParentID != nil {
		if _, err := s.memberRepo.GetByID(ctx, *input.ParentID); err != nil {
			return nil, err
		}
	}

	member := entity.NewFamilyMember(
		input.Name, input.Relation, input.Bio, input.PhotoPath,
		input.BirthDate, input.SpouseID, input.ParentID,
	)

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("creating family member: %w", err)
	}

	return member, nil
}

func (s *Service) List(ctx context.Context) ([]entity.FamilyMember, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing family members: %w", err)
	}
	return members, nil
}

func (s *Service) GetByID(ctx context.Context, memberID uuid.UUID) (*entity.FamilyMember, error) {
	return s.memberRepo.GetByID(ctx, memberID)
}

type UpdateInput struct {
	Name      *string
	Relation  *string
	Bio       *string
	PhotoPath *string
	BirthDate *time.Time
	SpouseID  *uuid.UUID
	ParentID  *uuid.UUID
}

func (s *Service) Update(ctx context.Context, memberID uuid.UUID, input UpdateInput) (*entity.FamilyMember, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	name := member.Name
	relation := member.Relation
	bio := member.Bio
	photoPath := member.PhotoPath
	birthDate := member.BirthDate
	spouseID := member.SpouseID
	parentID := member.ParentID

	if input.Name != nil {
		name = *input.Name
	}
	if input.Relation != nil {
		relation = *input.Relation
	}
	if input.Bio != nil {
		bio = *input.Bio
	}
	if input.PhotoPath != nil {
		photoPath = *input.PhotoPath
	}
	if input.BirthDate != nil {
		birthDate = input.BirthDate
	}
	if input.SpouseID != nil {
		if *input.SpouseID == memberID {
			return nil, domain.ErrInvalidMemberRef
		}
		if _, err := s.memberRepo.GetByID(ctx, *input.SpouseID); err != nil {
			return nil, err
		}
		spouseID = input.SpouseID
	}
	if input.ParentID != nil {
		if *input.ParentID == memberID {
			return nil, domain.ErrInvalidMemberRef
		}
		if _, err := s.memberRepo.GetByID(ctx, *input.ParentID); err != nil {
			return nil, err
		}
		parentID = input.ParentID
	}

	member.Update(name, relation, bio, photoPath, birthDate, spouseID, parentID)

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("updating family member: %w", err)
	}

	return member, nil
}

func (s *Service) Delete(ctx context.Context, memberID uuid.UUID) error {
	if err := s.memberRepo.Delete(ctx, memberID); err != nil {
		return err
	}
	return nil
}
