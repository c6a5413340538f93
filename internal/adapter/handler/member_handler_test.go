package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shadrack-family/family-site-backend/internal/adapter/handler"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/mocks"
	"github.com/shadrack-family/family-site-backend/internal/usecase/member"
)

func TestMemberHandler_Create(t *testing.T) {
	t.Run("creates member with references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		memberSvc := mocks.NewMockMemberService(ctrl)
		h := handler.NewMemberHandler(memberSvc)

		router := setupRouter()
		router.POST("/members", h.Create)

		spouseID := uuid.New()
		created := &entity.FamilyMember{ID: uuid.New(), Name: "Grace", Relation: "grandmother", SpouseID: &spouseID, CreatedAt: time.Now()}

		memberSvc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input member.CreateInput) (*entity.FamilyMember, error) {
				assert.Equal(t, "Grace", input.Name)
				require.NotNil(t, input.SpouseID)
				assert.Equal(t, spouseID, *input.SpouseID)
				return created, nil
			})

		body := `{"name":"Grace","relation":"grandmother","spouse_id":"` + spouseID.String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/members", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := decodeEnvelope(t, w.Body.Bytes())
		data := resp["data"].(map[string]any)
		assert.Equal(t, "Grace", data["name"])
	})

	t.Run("maps a dangling reference to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		memberSvc := mocks.NewMockMemberService(ctrl)
		h := handler.NewMemberHandler(memberSvc)

		router := setupRouter()
		router.POST("/members", h.Create)

		memberSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrMemberNotFound)

		body := `{"name":"Orphan","parent_id":"` + uuid.NewString() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/members", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMemberHandler_Update(t *testing.T) {
	t.Run("rejects a self reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		memberSvc := mocks.NewMockMemberService(ctrl)
		h := handler.NewMemberHandler(memberSvc)

		router := setupRouter()
		router.PUT("/members/:id", h.Update)

		memberID := uuid.New()
		memberSvc.EXPECT().Update(gomock.Any(), memberID, gomock.Any()).Return(nil, domain.ErrInvalidMemberRef)

		body := `{"spouse_id":"` + memberID.String() + `"}`
		req := httptest.NewRequest(http.MethodPut, "/members/"+memberID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMemberHandler_List(t *testing.T) {
	t.Run("lists members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		memberSvc := mocks.NewMockMemberService(ctrl)
		h := handler.NewMemberHandler(memberSvc)

		router := setupRouter()
		router.GET("/members", h.List)

		memberSvc.EXPECT().List(gomock.Any()).Return([]entity.FamilyMember{
			{ID: uuid.New(), Name: "Ada"},
			{ID: uuid.New(), Name: "Ben"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/members", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeEnvelope(t, w.Body.Bytes())
		assert.Len(t, resp["data"], 2)
	})
}

func TestMemberHandler_Delete(t *testing.T) {
	t.Run("answers 404 for an unknown member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		memberSvc := mocks.NewMockMemberService(ctrl)
		h := handler.NewMemberHandler(memberSvc)

		router := setupRouter()
		router.DELETE("/members/:id", h.Delete)

		memberID := uuid.New()
		memberSvc.EXPECT().Delete(gomock.Any(), memberID).Return(domain.ErrMemberNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/members/"+memberID.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
