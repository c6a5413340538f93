package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
)

type MemberRepo struct {
	pool *pgxpool.Pool
}

func NewMemberRepo(pool *pgxpool.Pool) *MemberRepo {
	return &MemberRepo{pool: pool}
}

func (r *MemberRepo) Create(ctx context.Context, member *entity.FamilyMember) error {
	query := `
		INSERT INTO family_members (id, name, relation, bio, photo_path, birth_date, spouse_id, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		member.ID, member.Name, member.Relation, member.Bio, member.PhotoPath,
		member.BirthDate, member.SpouseID, member.ParentID,
		member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting family member: %w", err)
	}
	return nil
}

func (r *MemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FamilyMember, error) {
	query := `
		SELECT id, name, relation, bio, photo_path, birth_date, spouse_id, parent_id, created_at, updated_at
		FROM family_members
		WHERE id = $1
	`
	var member entity.FamilyMember
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Relation, &member.Bio, &member.PhotoPath,
		&member.BirthDate, &member.SpouseID, &member.ParentID,
		&member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("querying family member: %w", err)
	}
	return &member, nil
}

func (r *MemberRepo) List(ctx context.Context) ([]entity.FamilyMember, error) {
	// Parents before children so clients can build the tree in one pass.
	query := `
		SELECT id, name, relation, bio, photo_path, birth_date, spouse_id, parent_id, created_at, updated_at
		FROM family_members
		ORDER BY parent_id NULLS FIRST, birth_date ASC NULLS LAST, name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying family members: %w", err)
	}
	defer rows.Close()

	var members []entity.FamilyMember
	for rows.Next() {
		var member entity.FamilyMember
		if err := rows.Scan(
			&member.ID, &member.Name, &member.Relation, &member.Bio, &member.PhotoPath,
			&member.BirthDate, &member.SpouseID, &member.ParentID,
			&member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning family member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *MemberRepo) Update(ctx context.Context, member *entity.FamilyMember) error {
	query := `
		UPDATE family_members
		SET name = $2, relation = $3, bio = $4, photo_path = $5, birth_date = $6,
			spouse_id = $7, parent_id = $8, updated_at = $9
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		member.ID, member.Name, member.Relation, member.Bio, member.PhotoPath,
		member.BirthDate, member.SpouseID, member.ParentID, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating family member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM family_members WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting family member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
