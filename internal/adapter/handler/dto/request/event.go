package request

import "time"

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"omitempty,max=4000"`
	Location    string     `json:"location" binding:"omitempty,max=300"`
	StartsAt    time.Time  `json:"starts_at" binding:"required"`
	EndsAt      *time.Time `json:"ends_at"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=4000"`
	Location    *string    `json:"location" binding:"omitempty,max=300"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

type ListEventsRequest struct {
	Upcoming bool `form:"upcoming"`
}
