package repositories

import (
	"context"
	"database/sql"
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

// ClearanceRepository handles clearance request (bebas pustaka) database
// operations. The WithRelations readers resolve the request's member, the
// member's major and the major's faculty abbreviation in one query.
type ClearanceRepository interface {
	Create(ctx context.Context, request *models.ClearanceRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ClearanceRequest, error)
	GetByIDWithRelations(ctx context.Context, id int64) (*models.ClearanceRequest, error)
	GetAllWithRelations(ctx context.Context) ([]*models.ClearanceRequest, error)
	Update(ctx context.Context, request *models.ClearanceRequest) error
	Delete(ctx context.Context, id int64) error
}

type clearanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClearanceRepository creates a new ClearanceRepository
func NewClearanceRepository(db *pgxpool.Pool) ClearanceRepository {
	return &clearanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new clearance request and returns its assigned id
func (r *clearanceRepository) Create(ctx context.Context, request *models.ClearanceRequest) (int64, error) {
	sql, args, err := r.sb.Insert("free_libraries").
		Columns("member_id", "submitted_at", "reason", "status", "note", "validated_at", "cert_number").
		Values(request.MemberID, request.SubmittedAt, request.Reason, request.Status,
			request.Note, request.ValidatedAt, request.CertNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create clearance request SQL")
		return 0, fmt.Errorf("failed to build create clearance request query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrMemberNotFound
		}
		logger.Error().Err(err).Msg("Error executing create clearance request query")
		return 0, fmt.Errorf("error creating clearance request: %w", err)
	}

	return id, nil
}

// GetByID retrieves a clearance request without relations, for review loads
func (r *clearanceRepository) GetByID(ctx context.Context, id int64) (*models.ClearanceRequest, error) {
	sql, args, err := r.sb.Select("id", "member_id", "submitted_at", "reason", "status",
		"note", "validated_at", "cert_number").
		From("free_libraries").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get clearance request SQL")
		return nil, fmt.Errorf("failed to build get clearance request query: %w", err)
	}

	request := &models.ClearanceRequest{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&request.ID,
		&request.MemberID,
		&request.SubmittedAt,
		&request.Reason,
		&request.Status,
		&request.Note,
		&request.ValidatedAt,
		&request.CertNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClearanceNotFound
		}
		logger.Error().Err(err).Int64("requestID", id).Msg("Error scanning clearance request row")
		return nil, fmt.Errorf("error getting clearance request by ID: %w", err)
	}

	return request, nil
}

// joinedSelect builds the 3-level join: request -> member -> major -> faculty.
// Major and faculty legs are left joins; a member may have no major.
func (r *clearanceRepository) joinedSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"fl.id", "fl.member_id", "fl.submitted_at", "fl.reason", "fl.status",
		"fl.note", "fl.validated_at", "fl.cert_number",
		"m.full_name", "m.member_type", "m.major_id",
		"p.name", "p.faculty_id",
		"f.abbreviation",
	).
		From("free_libraries fl").
		Join("lib_members m ON fl.member_id = m.id").
		LeftJoin("majors p ON m.major_id = p.id").
		LeftJoin("faculties f ON p.faculty_id = f.id")
}

// scanJoined scans one joined row into a nested ClearanceRequest.
func scanJoined(row pgx.Row) (*models.ClearanceRequest, error) {
	request := &models.ClearanceRequest{}
	member := &models.LibMember{}
	var majorName sql.NullString
	var majorFacultyID sql.NullInt64
	var facultyAbbreviation *string

	err := row.Scan(
		&request.ID,
		&request.MemberID,
		&request.SubmittedAt,
		&request.Reason,
		&request.Status,
		&request.Note,
		&request.ValidatedAt,
		&request.CertNumber,
		&member.FullName,
		&member.MemberType,
		&member.MajorID,
		&majorName,
		&majorFacultyID,
		&facultyAbbreviation,
	)
	if err != nil {
		return nil, err
	}

	member.ID = request.MemberID
	request.Member = member

	if member.MajorID != nil && majorName.Valid {
		major := &models.Major{
			ID:        *member.MajorID,
			FacultyID: majorFacultyID.Int64,
			Name:      majorName.String,
		}
		if majorFacultyID.Valid {
			major.Faculty = &models.Faculty{
				ID:           majorFacultyID.Int64,
				Abbreviation: facultyAbbreviation,
			}
		}
		member.Major = major
	}

	return request, nil
}

// GetByIDWithRelations retrieves one clearance request with its member,
// major and faculty abbreviation resolved
func (r *clearanceRepository) GetByIDWithRelations(ctx context.Context, id int64) (*models.ClearanceRequest, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"fl.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building joined get clearance request SQL")
		return nil, fmt.Errorf("failed to build joined get clearance request query: %w", err)
	}

	request, err := scanJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClearanceNotFound
		}
		logger.Error().Err(err).Int64("requestID", id).Msg("Error scanning joined clearance request row")
		return nil, fmt.Errorf("error getting clearance request with relations: %w", err)
	}

	return request, nil
}

// GetAllWithRelations retrieves all clearance requests with relations resolved
func (r *clearanceRepository) GetAllWithRelations(ctx context.Context) ([]*models.ClearanceRequest, error) {
	sql, args, err := r.joinedSelect().OrderBy("fl.id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building joined list clearance requests SQL")
		return nil, fmt.Errorf("failed to build joined list clearance requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing joined list clearance requests query")
		return nil, fmt.Errorf("error querying clearance requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.ClearanceRequest{}
	for rows.Next() {
		request, err := scanJoined(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning joined clearance request row")
			return nil, fmt.Errorf("error scanning clearance request row: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating clearance request rows")
		return nil, fmt.Errorf("error iterating clearance request rows: %w", err)
	}

	return requests, nil
}

// Update writes all mutable fields of an existing clearance request in one
// statement. Member id and submission timestamp are never rewritten.
func (r *clearanceRepository) Update(ctx context.Context, request *models.ClearanceRequest) error {
	sql, args, err := r.sb.Update("free_libraries").
		SetMap(map[string]interface{}{
			"reason":       request.Reason,
			"status":       request.Status,
			"note":         request.Note,
			"validated_at": request.ValidatedAt,
			"cert_number":  request.CertNumber,
		}).
		Where(squirrel.Eq{"id": request.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update clearance request SQL")
		return fmt.Errorf("failed to build update clearance request query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requestID", request.ID).Msg("Error executing update clearance request query")
		return fmt.Errorf("error updating clearance request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClearanceNotFound
	}

	return nil
}

// Delete removes a clearance request by ID
func (r *clearanceRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("free_libraries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete clearance request SQL")
		return fmt.Errorf("failed to build delete clearance request query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requestID", id).Msg("Error executing delete clearance request query")
		return fmt.Errorf("error deleting clearance request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClearanceNotFound
	}

	return nil
}
