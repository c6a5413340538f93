package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Messages   []MessageResponse `json:"messages"`
	Pagination *pagination.Info  `json:"pagination"`
}

func MessageFromEntity(m *entity.ContactMessage) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

func MessagesFromEntities(messages []entity.ContactMessage) []MessageResponse {
	result := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, MessageFromEntity(&m))
	}
	return result
}
