package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
)

type MemberResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Relation  string     `json:"relation,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	PhotoPath string     `json:"photo_path,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	SpouseID  *uuid.UUID `json:"spouse_id,omitempty"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func MemberFromEntity(m *entity.FamilyMember) MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Relation:  m.Relation,
		Bio:       m.Bio,
		PhotoPath: m.PhotoPath,
		BirthDate: m.BirthDate,
		SpouseID:  m.SpouseID,
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
	}
}

func MembersFromEntities(members []entity.FamilyMember) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, MemberFromEntity(&m))
	}
	return result
}
