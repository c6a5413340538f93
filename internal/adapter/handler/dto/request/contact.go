package request

type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Body    string `json:"body" binding:"required,max=8000"`
}

type ListMessagesRequest struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
