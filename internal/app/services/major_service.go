package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/app/repositories"
	"github.com/Aisyah456/liblary-web/internal/pkg/apperrors"
)

// MajorService defines the interface for major-related operations
type MajorService interface {
	CreateMajor(ctx context.Context, major *models.Major) (int64, error)
	GetMajorByID(ctx context.Context, id int64) (*models.Major, error)
	GetAllMajors(ctx context.Context, facultyID int64) ([]*models.Major, error)
	UpdateMajor(ctx context.Context, major *models.Major) error
	DeleteMajor(ctx context.Context, id int64) error
}

// majorServiceImpl implements the MajorService interface
type majorServiceImpl struct {
	majorRepo   repositories.MajorRepository
	facultyRepo repositories.FacultyRepository
}

// NewMajorService creates a new major service instance
func NewMajorService(majorRepo repositories.MajorRepository, facultyRepo repositories.FacultyRepository) MajorService {
	return &majorServiceImpl{
		majorRepo:   majorRepo,
		facultyRepo: facultyRepo,
	}
}

// validateMajor checks field rules and that the parent faculty exists.
func (s *majorServiceImpl) validateMajor(ctx context.Context, major *models.Major) error {
	verr := apperrors.NewValidationError()

	name := strings.TrimSpace(major.Name)
	switch {
	case name == "":
		verr.Add("name", "name is required")
	case len(name) > 100:
		verr.Add("name", "name must be at most 100 characters")
	}
	major.Name = name

	if major.Level != nil && !models.ValidMajorLevel(*major.Level) {
		verr.Add("level", "level must be one of: D3, D4, S1, S2, S3")
	}

	if major.FacultyID <= 0 {
		verr.Add("faculty_id", "faculty_id is required")
	} else {
		_, err := s.facultyRepo.GetByID(ctx, major.FacultyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				verr.Add("faculty_id", "faculty does not exist")
			} else {
				return fmt.Errorf("error checking faculty: %w", err)
			}
		}
	}

	return verr.ErrOrNil()
}

// CreateMajor creates a new major
func (s *majorServiceImpl) CreateMajor(ctx context.Context, major *models.Major) (int64, error) {
	if err := s.validateMajor(ctx, major); err != nil {
		return 0, err
	}

	id, err := s.majorRepo.Create(ctx, major)
	if err != nil {
		// Faculty deleted between the check and the insert.
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return 0, apperrors.NewValidationError().Add("faculty_id", "faculty does not exist")
		}
		return 0, fmt.Errorf("error creating major: %w", err)
	}
	return id, nil
}

// GetMajorByID retrieves a major by ID with its faculty attached
func (s *majorServiceImpl) GetMajorByID(ctx context.Context, id int64) (*models.Major, error) {
	major, err := s.majorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrMajorNotFound
		}
		return nil, fmt.Errorf("error retrieving major: %w", err)
	}

	faculty, err := s.facultyRepo.GetByID(ctx, major.FacultyID)
	if err == nil {
		major.Faculty = faculty
	}

	return major, nil
}

// GetAllMajors retrieves all majors, optionally scoped to one faculty
// (facultyID 0 means no filter)
func (s *majorServiceImpl) GetAllMajors(ctx context.Context, facultyID int64) ([]*models.Major, error) {
	var majors []*models.Major
	var err error
	if facultyID > 0 {
		majors, err = s.majorRepo.GetByFacultyID(ctx, facultyID)
	} else {
		majors, err = s.majorRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving majors: %w", err)
	}
	return majors, nil
}

// UpdateMajor updates an existing major
func (s *majorServiceImpl) UpdateMajor(ctx context.Context, major *models.Major) error {
	if _, err := s.majorRepo.GetByID(ctx, major.ID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrMajorNotFound
		}
		return fmt.Errorf("error loading major: %w", err)
	}

	if err := s.validateMajor(ctx, major); err != nil {
		return err
	}

	err := s.majorRepo.Update(ctx, major)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return apperrors.NewValidationError().Add("faculty_id", "faculty does not exist")
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrMajorNotFound
		}
		return fmt.Errorf("error updating major: %w", err)
	}
	return nil
}

// DeleteMajor deletes a major by ID. Deletion is rejected while members
// reference the major.
func (s *majorServiceImpl) DeleteMajor(ctx context.Context, id int64) error {
	err := s.majorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		return fmt.Errorf("error deleting major: %w", err)
	}
	return nil
}
