package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository/postgres"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
)

func TestIntegrationMemberRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewMemberRepo(db.Pool)
	ctx := context.Background()

	t.Run("round-trips a member with references", func(t *testing.T) {
		db.Truncate(t, "family_members")

		parent := entity.NewFamilyMember("Pat", "grandparent", "", "", nil, nil, nil)
		require.NoError(t, repo.Create(ctx, parent))

		birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
		child := entity.NewFamilyMember("Chris", "parent", "bio", "/images/chris.jpg", &birth, nil, &parent.ID)
		require.NoError(t, repo.Create(ctx, child))

		found, err := repo.GetByID(ctx, child.ID)
		require.NoError(t, err)
		assert.Equal(t, "Chris", found.Name)
		require.NotNil(t, found.ParentID)
		assert.Equal(t, parent.ID, *found.ParentID)
		require.NotNil(t, found.BirthDate)
		assert.Equal(t, birth.Year(), found.BirthDate.Year())
	})

	t.Run("returns not found error", func(t *testing.T) {
		db.Truncate(t, "family_members")

		found, err := repo.GetByID(ctx, uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})
}

func TestIntegrationMemberRepo_List(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewMemberRepo(db.Pool)
	ctx := context.Background()

	t.Run("lists roots before children", func(t *testing.T) {
		db.Truncate(t, "family_members")

		root := entity.NewFamilyMember("Root", "", "", "", nil, nil, nil)
		require.NoError(t, repo.Create(ctx, root))

		child := entity.NewFamilyMember("Child", "", "", "", nil, nil, &root.ID)
		require.NoError(t, repo.Create(ctx, child))

		members, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "Root", members[0].Name)
		assert.Equal(t, "Child", members[1].Name)
	})
}

func TestIntegrationMemberRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewMemberRepo(db.Pool)
	ctx := context.Background()

	t.Run("clears references held by other members", func(t *testing.T) {
		db.Truncate(t, "family_members")

		spouse := entity.NewFamilyMember("Gone", "", "", "", nil, nil, nil)
		require.NoError(t, repo.Create(ctx, spouse))

		widowed := entity.NewFamilyMember("Left", "", "", "", nil, &spouse.ID, nil)
		require.NoError(t, repo.Create(ctx, widowed))

		require.NoError(t, repo.Delete(ctx, spouse.ID))

		found, err := repo.GetByID(ctx, widowed.ID)
		require.NoError(t, err)
		assert.Nil(t, found.SpouseID)
	})

	t.Run("returns not found for a missing member", func(t *testing.T) {
		db.Truncate(t, "family_members")

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domain.ErrMemberNotFound)
	})
}
