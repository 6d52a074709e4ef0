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

// MajorRepository handles major (program of study) database operations
type MajorRepository interface {
	Create(ctx context.Context, major *models.Major) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Major, error)
	GetAll(ctx context.Context) ([]*models.Major, error)
	GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Major, error)
	Update(ctx context.Context, major *models.Major) error
	Delete(ctx context.Context, id int64) error
}

type majorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMajorRepository creates a new MajorRepository
func NewMajorRepository(db *pgxpool.Pool) MajorRepository {
	return &majorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new major and returns its assigned id
func (r *majorRepository) Create(ctx context.Context, major *models.Major) (int64, error) {
	sql, args, err := r.sb.Insert("majors").
		Columns("faculty_id", "name", "level").
		Values(major.FacultyID, major.Name, major.Level).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create major SQL")
		return 0, fmt.Errorf("failed to build create major query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Msg("Error executing create major query")
		return 0, fmt.Errorf("error creating major: %w", err)
	}

	return id, nil
}

// GetByID retrieves a major by ID
func (r *majorRepository) GetByID(ctx context.Context, id int64) (*models.Major, error) {
	sql, args, err := r.sb.Select("id", "faculty_id", "name", "level").
		From("majors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get major by ID SQL")
		return nil, fmt.Errorf("failed to build get major query: %w", err)
	}

	major := &models.Major{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&major.ID, &major.FacultyID, &major.Name, &major.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMajorNotFound
		}
		logger.Error().Err(err).Int64("majorID", id).Msg("Error scanning major row")
		return nil, fmt.Errorf("error getting major by ID: %w", err)
	}

	return major, nil
}

// GetAll retrieves all majors ordered by id ascending
func (r *majorRepository) GetAll(ctx context.Context) ([]*models.Major, error) {
	return r.list(ctx, nil)
}

// GetByFacultyID retrieves all majors owned by a faculty
func (r *majorRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Major, error) {
	return r.list(ctx, squirrel.Eq{"faculty_id": facultyID})
}

func (r *majorRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Major, error) {
	query := r.sb.Select("id", "faculty_id", "name", "level").
		From("majors").
		OrderBy("id ASC")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list majors SQL")
		return nil, fmt.Errorf("failed to build list majors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list majors query")
		return nil, fmt.Errorf("error querying majors: %w", err)
	}
	defer rows.Close()

	majors := []*models.Major{}
	for rows.Next() {
		major := &models.Major{}
		if err := rows.Scan(&major.ID, &major.FacultyID, &major.Name, &major.Level); err != nil {
			logger.Error().Err(err).Msg("Error scanning major row")
			return nil, fmt.Errorf("error scanning major row: %w", err)
		}
		majors = append(majors, major)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating major rows")
		return nil, fmt.Errorf("error iterating major rows: %w", err)
	}

	return majors, nil
}

// Update updates an existing major
func (r *majorRepository) Update(ctx context.Context, major *models.Major) error {
	sql, args, err := r.sb.Update("majors").
		SetMap(map[string]interface{}{
			"faculty_id": major.FacultyID,
			"name":       major.Name,
			"level":      major.Level,
		}).
		Where(squirrel.Eq{"id": major.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update major SQL")
		return fmt.Errorf("failed to build update major query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("majorID", major.ID).Msg("Error executing update major query")
		return fmt.Errorf("error updating major: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMajorNotFound
	}

	return nil
}

// Delete deletes a major by ID. Deletion is blocked while library members
// reference the major (restrict policy).
func (r *majorRepository) Delete(ctx context.Context, id int64) error {
	var hasMembers bool
	checkSql, checkArgs, err := r.sb.Select("1").
		From("lib_members").
		Where(squirrel.Eq{"major_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building check members SQL")
		return fmt.Errorf("failed to build check members query: %w", err)
	}

	err = r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasMembers)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("majorID", id).Msg("Error checking associated members")
		return fmt.Errorf("error checking associated members: %w", err)
	}

	if hasMembers {
		return apperrors.ErrMajorHasMembers
	}

	sql, args, err := r.sb.Delete("majors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete major SQL")
		return fmt.Errorf("failed to build delete major query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMajorHasMembers
		}
		logger.Error().Err(err).Int64("majorID", id).Msg("Error executing delete major query")
		return fmt.Errorf("error deleting major: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMajorNotFound
	}

	return nil
}
