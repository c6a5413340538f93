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
	"github.com/shadrack-family/family-site-backend/internal/usecase/member"
)

type MemberHandler struct {
	memberSvc MemberService
}

func NewMemberHandler(memberSvc MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberSvc.List(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.MembersFromEntities(members))
}

func (h *MemberHandler) Get(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid member id")
		return
	}

	m, err := h.memberSvc.GetByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			httputil.NotFound(c, "family member not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.MemberFromEntity(m))
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req request.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	spouseID, parentID, ok := parseMemberRefs(c, req.SpouseID, req.ParentID)
	if !ok {
		return
	}

	m, err := h.memberSvc.Create(c.Request.Context(), member.CreateInput{
		Name:      req.Name,
		Relation:  req.Relation,
		Bio:       req.Bio,
		PhotoPath: req.PhotoPath,
		BirthDate: req.BirthDate,
		SpouseID:  spouseID,
		ParentID:  parentID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "referenced member does not exist")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.MemberFromEntity(m))
}

func (h *MemberHandler) Update(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid member id")
		return
	}

	var req request.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	spouseID, parentID, ok := parseMemberRefs(c, req.SpouseID, req.ParentID)
	if !ok {
		return
	}

	m, err := h.memberSvc.Update(c.Request.Context(), memberID, member.UpdateInput{
		Name:      req.Name,
		Relation:  req.Relation,
		Bio:       req.Bio,
		PhotoPath: req.PhotoPath,
		BirthDate: req.BirthDate,
		SpouseID:  spouseID,
		ParentID:  parentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMemberRef):
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "a member cannot reference itself")
		case errors.Is(err, domain.ErrMemberNotFound):
			httputil.NotFound(c, "family member not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.MemberFromEntity(m))
}

func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid member id")
		return
	}

	if err := h.memberSvc.Delete(c.Request.Context(), memberID); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			httputil.NotFound(c, "family member not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

func parseMemberRefs(c *gin.Context, spouse, parent *string) (*uuid.UUID, *uuid.UUID, bool) {
	var spouseID, parentID *uuid.UUID

	if spouse != nil {
		id, err := uuid.Parse(*spouse)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid spouse id")
			return nil, nil, false
		}
		spouseID = &id
	}
	if parent != nil {
		id, err := uuid.Parse(*parent)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid parent id")
			return nil, nil, false
		}
		parentID = &id
	}

	return spouseID, parentID, true
}
