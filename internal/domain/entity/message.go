package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
}

func NewContactMessage(name, email, subject, body string) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}
