package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shadrack-family/family-site-backend/internal/adapter/handler"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/mocks"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
	"github.com/shadrack-family/family-site-backend/internal/usecase/contact"
)

func TestContactHandler_Submit(t *testing.T) {
	t.Run("accepts a message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contactSvc := mocks.NewMockContactService(ctrl)
		h := handler.NewContactHandler(contactSvc)

		router := setupRouter()
		router.POST("/contact", h.Submit)

		msg := &entity.ContactMessage{ID: uuid.New(), Name: "Joe", Email: "joe@example.com", Body: "hello"}
		contactSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input contact.SubmitInput) (*entity.ContactMessage, error) {
				assert.Equal(t, "joe@example.com", input.Email)
				return msg, nil
			})

		body := `{"name":"Joe","email":"joe@example.com","body":"hello"}`
		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects a bad email address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contactSvc := mocks.NewMockContactService(ctrl)
		h := handler.NewContactHandler(contactSvc)

		router := setupRouter()
		router.POST("/contact", h.Submit)

		body := `{"name":"Joe","email":"not-an-email","body":"hello"}`
		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactHandler_List(t *testing.T) {
	t.Run("lists messages newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contactSvc := mocks.NewMockContactService(ctrl)
		h := handler.NewContactHandler(contactSvc)

		router := setupRouter()
		router.GET("/contact", h.List)

		contactSvc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return([]entity.ContactMessage{
				{ID: uuid.New(), Name: "Joe", Body: "hello"},
			}, pagination.NewInfo(1, 20, 1), nil)

		req := httptest.NewRequest(http.MethodGet, "/contact", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeEnvelope(t, w.Body.Bytes())
		data := resp["data"].(map[string]any)
		assert.Len(t, data["messages"], 1)
	})
}
