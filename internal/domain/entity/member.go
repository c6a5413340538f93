package entity

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMember is a node in the family tree. SpouseID and ParentID are weak
// self references; clients assemble the tree from ParentID links.
type FamilyMember struct {
	ID        uuid.UUID
	Name      string
	Relation  string
	Bio       string
	PhotoPath string
	BirthDate *time.Time
	SpouseID  *uuid.UUID
	ParentID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewFamilyMember(name, relation, bio, photoPath string, birthDate *time.Time, spouseID, parentID *uuid.UUID) *FamilyMember {
	now := time.Now().UTC()
	return &FamilyMember{
		ID:        uuid.New(),
		Name:      name,
		Relation:  relation,
		Bio:       bio,
		PhotoPath: photoPath,
		BirthDate: birthDate,
		SpouseID:  spouseID,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (m *FamilyMember) Update(name, relation, bio, photoPath string, birthDate *time.Time, spouseID, parentID *uuid.UUID) {
	m.Name = name
	m.Relation = relation
	m.Bio = bio
	m.PhotoPath = photoPath
	m.BirthDate = birthDate
	m.SpouseID = spouseID
	m.ParentID = parentID
	m.UpdatedAt = time.Now().UTC()
}
