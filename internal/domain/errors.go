package domain

import "errors"

var (
	ErrPhotoNotFound     = errors.New("photo not found")
	ErrAlbumNotFound     = errors.New("album not found")
	ErrMemberNotFound    = errors.New("family member not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrMessageNotFound   = errors.New("message not found")
	ErrNoFilesUploaded   = errors.New("no valid files were uploaded")
	ErrTooManyFiles      = errors.New("too many files in upload batch")
	ErrAlbumNameRequired = errors.New("album name is required")
	ErrInvalidMemberRef  = errors.New("invalid family member reference")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
)
