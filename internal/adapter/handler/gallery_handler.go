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
	"github.com/shadrack-family/family-site-backend/internal/usecase/gallery"
)

const (
	photosField = "photos"
	// Aggregate request cap: batch limit times the per-file limit plus
	// form-field headroom. The acceptor still checks each file on its own.
	maxUploadRequestSize = gallery.DefaultMaxFiles*gallery.DefaultMaxFileSize + 1<<20
)

type GalleryHandler struct {
	gallerySvc GalleryService
}

func NewGalleryHandler(gallerySvc GalleryService) *GalleryHandler {
	return &GalleryHandler{gallerySvc: gallerySvc}
}

func (h *GalleryHandler) ListPhotos(c *gin.Context) {
	var req request.ListPhotosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	var albumID *uuid.UUID
	if req.AlbumID != "" {
		id, err := uuid.Parse(req.AlbumID)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid album id")
			return
		}
		albumID = &id
	}

	photos, pageInfo, err := h.gallerySvc.ListPhotos(c.Request.Context(), gallery.ListPhotosInput{
		Page:    req.Page,
		Limit:   req.Limit,
		AlbumID: albumID,
		Search:  req.Search,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.PhotoListResponse{
		Photos:     response.PhotosFromEntities(photos),
		Pagination: pageInfo,
	})
}

func (h *GalleryHandler) ListAlbums(c *gin.Context) {
	albums, err := h.gallerySvc.ListAlbums(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.AlbumsFromEntities(albums))
}

func (h *GalleryHandler) CreateAlbum(c *gin.Context) {
	var req request.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	album, err := h.gallerySvc.CreateAlbum(c.Request.Context(), gallery.CreateAlbumInput{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   httputil.GetUserID(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlbumNameRequired) {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, err.Error())
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.AlbumFromEntity(album))
}

func (h *GalleryHandler) DeleteAlbum(c *gin.Context) {
	albumID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid album id")
		return
	}

	if err := h.gallerySvc.DeleteAlbum(c.Request.Context(), albumID); err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			httputil.NotFound(c, "album not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

func (h *GalleryHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadRequestSize)

	form, err := c.MultipartForm()
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid multipart form")
		return
	}

	headers := form.File[photosField]
	if len(headers) == 0 {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "no files were uploaded")
		return
	}

	var albumID *uuid.UUID
	if v := c.PostForm("album_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid album id")
			return
		}
		albumID = &id
	}

	parts := make([]gallery.FilePart, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "unreadable file part")
			return
		}
		defer file.Close()

		parts = append(parts, gallery.FilePart{
			Filename:    header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      file,
		})
	}

	result, err := h.gallerySvc.UploadPhotos(c.Request.Context(), gallery.UploadInput{
		Files:      parts,
		AlbumID:    albumID,
		Caption:    c.PostForm("caption"),
		Tags:       form.Value["tags"],
		UploaderID: httputil.GetUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFilesUploaded):
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "no valid files were uploaded")
		case errors.Is(err, domain.ErrTooManyFiles):
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "too many files in upload batch")
		case errors.Is(err, domain.ErrAlbumNotFound):
			httputil.NotFound(c, "album not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.Created(c, response.UploadResultToResponse(result))
}

func (h *GalleryHandler) UpdatePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid photo id")
		return
	}

	var req request.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	var albumID *uuid.UUID
	if req.AlbumID != nil {
		id, err := uuid.Parse(*req.AlbumID)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid album id")
			return
		}
		albumID = &id
	}

	photo, err := h.gallerySvc.UpdatePhoto(c.Request.Context(), photoID, gallery.UpdatePhotoInput{
		Caption:    req.Caption,
		AlbumID:    albumID,
		ClearAlbum: req.ClearAlbum,
		Tags:       req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPhotoNotFound):
			httputil.NotFound(c, "photo not found")
		case errors.Is(err, domain.ErrAlbumNotFound):
			httputil.NotFound(c, "album not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.PhotoFromEntity(photo))
}

func (h *GalleryHandler) DeletePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, apperror.KindValidation, "invalid photo id")
		return
	}

	if err := h.gallerySvc.DeletePhoto(c.Request.Context(), photoID); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			httputil.NotFound(c, "photo not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}
