package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository/postgres"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

func TestIntegrationMessageRepo_List(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewMessageRepo(db.Pool)
	ctx := context.Background()

	t.Run("paginates newest first", func(t *testing.T) {
		db.Truncate(t, "contact_messages")

		for i := 1; i <= 5; i++ {
			msg := entity.NewContactMessage(
				fmt.Sprintf("Sender %d", i),
				fmt.Sprintf("sender%d@example.com", i),
				"hello",
				"just checking in",
			)
			require.NoError(t, repo.Create(ctx, msg))
		}

		messages, info, err := repo.List(ctx, pagination.NewParams(1, 2))

		require.NoError(t, err)
		assert.Equal(t, 5, info.Total)
		assert.Equal(t, 3, info.Pages)
		require.Len(t, messages, 2)
		assert.Equal(t, "Sender 5", messages[0].Name)
		assert.Equal(t, "Sender 4", messages[1].Name)
	})

	t.Run("returns empty page past the end", func(t *testing.T) {
		db.Truncate(t, "contact_messages")

		msg := entity.NewContactMessage("Solo", "solo@example.com", "hi", "one message")
		require.NoError(t, repo.Create(ctx, msg))

		messages, info, err := repo.List(ctx, pagination.NewParams(3, 20))

		require.NoError(t, err)
		assert.Equal(t, 1, info.Total)
		assert.Empty(t, messages)
	})
}

func TestIntegrationMessageRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewMessageRepo(db.Pool)
	ctx := context.Background()

	t.Run("removes a stored message", func(t *testing.T) {
		db.Truncate(t, "contact_messages")

		msg := entity.NewContactMessage("Dana", "dana@example.com", "re: photos", "loved the album")
		require.NoError(t, repo.Create(ctx, msg))

		require.NoError(t, repo.Delete(ctx, msg.ID))

		_, info, err := repo.List(ctx, pagination.NewParams(1, 20))
		require.NoError(t, err)
		assert.Zero(t, info.Total)
	})

	t.Run("returns not found for a missing message", func(t *testing.T) {
		db.Truncate(t, "contact_messages")

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domain.ErrMessageNotFound)
	})
}
