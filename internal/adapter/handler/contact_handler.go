package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/adapter/handler/dto/request"
	"github.com/shadrack-family/family-site-backend/internal/adapter/handler/dto/response"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/pkg/apperror"
	"github.com/shadrack-family/family-site-backend/internal/pkg/httputil"
	"github.com/shadrack-family/family-site-backend/internal/usecase/contact"
)

type ContactHandler struct {
	contactSvc ContactService
}

func NewContactHandler(contactSvc ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	msg, err := h.contactSvc.Submit(c.Request.Context(), contact.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.MessageFromEntity(msg))
}

func (h *ContactHandler) List(c *gin.Context) {
	var req request.ListMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	messages, pageInfo, err := h.contactSvc.List(c.Request.Context(), contact.ListInput{
		Page:  req.Page,
		Limit: req.Limit,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.MessageListResponse{
		Messages:   response.MessagesFromEntities(messages),
		Pagination: pageInfo,
	})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid message id")
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), messageID); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			httputil.NotFound(c, "message not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}
