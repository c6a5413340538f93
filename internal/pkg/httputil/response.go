package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/pkg/apperror"
)

// Every endpoint answers with the same discriminated envelope:
// {"ok": true, "data": ...} on success, {"ok": false, "error": {...}} otherwise.

type Envelope struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	OK        bool      `json:"ok"`
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{OK: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{OK: true, Data: data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, kind, message string) {
	c.JSON(status, ErrorEnvelope{
		OK:        false,
		Error:     ErrorBody{Kind: kind, Message: message},
		RequestID: GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, apperror.KindValidation, err.Error())
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, apperror.KindNotFound, message)
}

func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, apperror.KindInternal, "internal server error")
}

func GetUserID(c *gin.Context) uuid.UUID {
	if id, exists := c.Get("user_id"); exists {
		return id.(uuid.UUID)
	}
	return uuid.Nil
}

func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		return id.(string)
	}
	return ""
}
