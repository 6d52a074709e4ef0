package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/pkg/apperrors"
	"github.com/Aisyah456/liblary-web/internal/pkg/dberrors"
	"github.com/Aisyah456/liblary-web/internal/pkg/logger"
)

// MemberRepository handles library member database operations. Members are
// read-only through the HTTP surface; Create exists for seeding.
type MemberRepository interface {
	Create(ctx context.Context, member *models.LibMember) error
	GetByID(ctx context.Context, id string) (*models.LibMember, error)
	GetAllSummaries(ctx context.Context) ([]*models.LibMember, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type memberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) MemberRepository {
	return &memberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new member. The id is externally assigned.
func (r *memberRepository) Create(ctx context.Context, member *models.LibMember) error {
	sql, args, err := r.sb.Insert("lib_members").
		Columns("id", "major_id", "full_name", "member_type", "email", "phone", "active").
		Values(member.ID, member.MajorID, member.FullName, member.MemberType, member.Email, member.Phone, member.Active).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create member SQL")
		return fmt.Errorf("failed to build create member query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("member id or email already in use: %w", apperrors.ErrConflict)
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMajorNotFound
		}
		logger.Error().Err(err).Str("memberID", member.ID).Msg("Error executing create member query")
		return fmt.Errorf("error creating member: %w", err)
	}

	return nil
}

// GetByID retrieves a member by their externally assigned id
func (r *memberRepository) GetByID(ctx context.Context, id string) (*models.LibMember, error) {
	sql, args, err := r.sb.Select("id", "major_id", "full_name", "member_type", "email", "phone", "active").
		From("lib_members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get member by ID SQL")
		return nil, fmt.Errorf("failed to build get member query: %w", err)
	}

	member := &models.LibMember{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&member.ID,
		&member.MajorID,
		&member.FullName,
		&member.MemberType,
		&member.Email,
		&member.Phone,
		&member.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		logger.Error().Err(err).Str("memberID", id).Msg("Error scanning member row")
		return nil, fmt.Errorf("error getting member by ID: %w", err)
	}

	return member, nil
}

// GetAllSummaries retrieves the reduced projection (id, full name, member type)
// used by selection widgets.
func (r *memberRepository) GetAllSummaries(ctx context.Context) ([]*models.LibMember, error) {
	sql, args, err := r.sb.Select("id", "full_name", "member_type").
		From("lib_members").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list members SQL")
		return nil, fmt.Errorf("failed to build list members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list members query")
		return nil, fmt.Errorf("error querying members: %w", err)
	}
	defer rows.Close()

	members := []*models.LibMember{}
	for rows.Next() {
		member := &models.LibMember{}
		if err := rows.Scan(&member.ID, &member.FullName, &member.MemberType); err != nil {
			logger.Error().Err(err).Msg("Error scanning member row")
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating member rows")
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// Exists checks whether a member with the id exists
func (r *memberRepository) Exists(ctx context.Context, id string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("lib_members").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building member exists SQL")
		return false, fmt.Errorf("failed to build member existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("memberID", id).Msg("Error checking member existence")
		return false, fmt.Errorf("error checking member existence: %w", err)
	}

	return exists, nil
}
