package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository"
	"github.com/shadrack-family/family-site-backend/internal/adapter/repository/postgres"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

func createTestAlbum(t *testing.T, db *TestDB, name string) *entity.Album {
	t.Helper()
	albumRepo := postgres.NewAlbumRepo(db.Pool)

	album := entity.NewAlbum(name, "", uuid.New())
	require.NoError(t, albumRepo.Create(context.Background(), album))
	return album
}

func newGalleryPhoto(filename, caption string, albumID *uuid.UUID, tags []string) *entity.Photo {
	return entity.NewPhoto(filename, "/images/gallery/"+filename, caption, "image/jpeg", 1024, albumID, uuid.New(), tags)
}

func TestIntegrationPhotoRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	t.Run("creates photo successfully", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		photo := newGalleryPhoto("a.jpg", "first", nil, []string{"summer", "beach"})
		err := repo.Create(ctx, photo)

		require.NoError(t, err)

		found, err := repo.GetByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, "a.jpg", found.Filename)
		assert.Equal(t, []string{"summer", "beach"}, found.Tags)
	})

	t.Run("creates photo linked to an album", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")
		album := createTestAlbum(t, db, "Summer 2025")

		photo := newGalleryPhoto("b.jpg", "linked", &album.ID, nil)
		require.NoError(t, repo.Create(ctx, photo))

		found, err := repo.GetByID(ctx, photo.ID)
		require.NoError(t, err)
		require.NotNil(t, found.AlbumID)
		assert.Equal(t, album.ID, *found.AlbumID)
		assert.Equal(t, "Summer 2025", found.AlbumName)
	})
}

func TestIntegrationPhotoRepo_GetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	t.Run("returns not found error", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		found, err := repo.GetByID(ctx, uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}

func TestIntegrationPhotoRepo_List(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	t.Run("paginates newest first", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		for i := 0; i < 25; i++ {
			photo := newGalleryPhoto(fmt.Sprintf("p%02d.jpg", i), fmt.Sprintf("photo %d", i), nil, nil)
			require.NoError(t, repo.Create(ctx, photo))
		}

		photos, pageInfo, err := repo.List(ctx, repository.PhotoListParams{
			Pagination: pagination.NewParams(2, 10),
		})

		require.NoError(t, err)
		assert.Len(t, photos, 10)
		assert.Equal(t, 25, pageInfo.Total)
		assert.Equal(t, 2, pageInfo.Page)
		assert.Equal(t, 10, pageInfo.Limit)
		assert.Equal(t, 3, pageInfo.Pages)
	})

	t.Run("filters by album", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")
		album := createTestAlbum(t, db, "Holidays")

		require.NoError(t, repo.Create(ctx, newGalleryPhoto("in.jpg", "in album", &album.ID, nil)))
		require.NoError(t, repo.Create(ctx, newGalleryPhoto("out.jpg", "no album", nil, nil)))

		photos, pageInfo, err := repo.List(ctx, repository.PhotoListParams{
			Pagination: pagination.NewParams(1, 20),
			AlbumID:    &album.ID,
		})

		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Equal(t, "in.jpg", photos[0].Filename)
		assert.Equal(t, 1, pageInfo.Total)
	})

	t.Run("matches caption and tags case-insensitively", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		require.NoError(t, repo.Create(ctx, newGalleryPhoto("c1.jpg", "Day at the BEACH", nil, nil)))
		require.NoError(t, repo.Create(ctx, newGalleryPhoto("c2.jpg", "mountains", nil, []string{"Beach", "sand"})))
		require.NoError(t, repo.Create(ctx, newGalleryPhoto("c3.jpg", "city lights", nil, []string{"night"})))

		photos, pageInfo, err := repo.List(ctx, repository.PhotoListParams{
			Pagination: pagination.NewParams(1, 20),
			Search:     "beach",
		})

		require.NoError(t, err)
		assert.Len(t, photos, 2)
		assert.Equal(t, 2, pageInfo.Total)
	})

	t.Run("treats wildcards in search as literals", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		require.NoError(t, repo.Create(ctx, newGalleryPhoto("w1.jpg", "50% off sale", nil, nil)))
		require.NoError(t, repo.Create(ctx, newGalleryPhoto("w2.jpg", "fifty percent", nil, nil)))

		photos, _, err := repo.List(ctx, repository.PhotoListParams{
			Pagination: pagination.NewParams(1, 20),
			Search:     "50%",
		})

		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Equal(t, "w1.jpg", photos[0].Filename)
	})
}

func TestIntegrationPhotoRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	t.Run("updates caption, album and tags", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")
		album := createTestAlbum(t, db, "Target")

		photo := newGalleryPhoto("u.jpg", "old", nil, nil)
		require.NoError(t, repo.Create(ctx, photo))

		photo.Update("new caption", &album.ID, []string{"edited"})
		require.NoError(t, repo.Update(ctx, photo))

		found, err := repo.GetByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, "new caption", found.Caption)
		require.NotNil(t, found.AlbumID)
		assert.Equal(t, album.ID, *found.AlbumID)
		assert.Equal(t, []string{"edited"}, found.Tags)
	})

	t.Run("returns not found for a missing photo", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		ghost := newGalleryPhoto("ghost.jpg", "", nil, nil)
		err := repo.Update(ctx, ghost)

		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}

func TestIntegrationPhotoRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewPhotoRepo(db.Pool)
	ctx := context.Background()

	t.Run("deletes photo", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		photo := newGalleryPhoto("d.jpg", "", nil, nil)
		require.NoError(t, repo.Create(ctx, photo))

		require.NoError(t, repo.Delete(ctx, photo.ID))

		_, err := repo.GetByID(ctx, photo.ID)
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})

	t.Run("returns not found for a missing photo", func(t *testing.T) {
		db.Truncate(t, "photos", "albums")

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domain.ErrPhotoNotFound)
	})
}
