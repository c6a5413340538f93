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
	"github.com/shadrack-family/family-site-backend/internal/usecase/event"
)

type EventHandler struct {
	eventSvc EventService
}

func NewEventHandler(eventSvc EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

func (h *EventHandler) List(c *gin.Context) {
	var req request.ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	events, err := h.eventSvc.List(c.Request.Context(), event.ListInput{
		UpcomingOnly: req.Upcoming,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.EventsFromEntities(events))
}

func (h *EventHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid event id")
		return
	}

	e, err := h.eventSvc.GetByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			httputil.NotFound(c, "event not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.EventFromEntity(e))
}

func (h *EventHandler) Create(c *gin.Context) {
	var req request.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	e, err := h.eventSvc.Create(c.Request.Context(), event.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatorID:   httputil.GetUserID(c),
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.EventFromEntity(e))
}

func (h *EventHandler) Update(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid event id")
		return
	}

	var req request.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	e, err := h.eventSvc.Update(c.Request.Context(), eventID, event.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			httputil.NotFound(c, "event not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.EventFromEntity(e))
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid event id")
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			httputil.NotFound(c, "event not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}
