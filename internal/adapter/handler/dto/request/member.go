package request

import "time"

type CreateMemberRequest struct {
	Name      string     `json:"name" binding:"required,max=120"`
	Relation  string     `json:"relation" binding:"omitempty,max=60"`
	Bio       string     `json:"bio" binding:"omitempty,max=4000"`
	PhotoPath string     `json:"photo_path" binding:"omitempty,max=500"`
	BirthDate *time.Time `json:"birth_date"`
	SpouseID  *string    `json:"spouse_id" binding:"omitempty,uuid"`
	ParentID  *string    `json:"parent_id" binding:"omitempty,uuid"`
}

type UpdateMemberRequest struct {
	Name      *string    `json:"name" binding:"omitempty,max=120"`
	Relation  *string    `json:"relation" binding:"omitempty,max=60"`
	Bio       *string    `json:"bio" binding:"omitempty,max=4000"`
	PhotoPath *string    `json:"photo_path" binding:"omitempty,max=500"`
	BirthDate *time.Time `json:"birth_date"`
	SpouseID  *string    `json:"spouse_id" binding:"omitempty,uuid"`
	ParentID  *string    `json:"parent_id" binding:"omitempty,uuid"`
}
