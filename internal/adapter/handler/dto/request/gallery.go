package request

type ListPhotosRequest struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	AlbumID string `form:"album_id" binding:"omitempty,uuid"`
	Search  string `form:"search" binding:"omitempty,max=200"`
}

type CreateAlbumRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

type UpdatePhotoRequest struct {
	Caption    *string  `json:"caption" binding:"omitempty,max=2000"`
	AlbumID    *string  `json:"album_id" binding:"omitempty,uuid"`
	ClearAlbum bool     `json:"clear_album"`
	Tags       []string `json:"tags" binding:"omitempty,dive,max=60"`
}
