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

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo repositories.FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo repositories.FacultyRepository) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// validateFaculty checks field rules and uniqueness. excludeID skips the
// record's own row on update so renaming to the unchanged name succeeds.
func (s *facultyServiceImpl) validateFaculty(ctx context.Context, faculty *models.Faculty, excludeID int64) error {
	verr := apperrors.NewValidationError()

	name := strings.TrimSpace(faculty.Name)
	switch {
	case name == "":
		verr.Add("name", "name is required")
	case len(name) > 100:
		verr.Add("name", "name must be at most 100 characters")
	default:
		taken, err := s.facultyRepo.NameExists(ctx, name, excludeID)
		if err != nil {
			return fmt.Errorf("error checking faculty name uniqueness: %w", err)
		}
		if taken {
			verr.Add("name", "name is already in use")
		}
	}
	faculty.Name = name

	if faculty.Abbreviation != nil {
		abbreviation := strings.TrimSpace(*faculty.Abbreviation)
		switch {
		case abbreviation == "":
			faculty.Abbreviation = nil
		case len(abbreviation) > 10:
			verr.Add("abbreviation", "abbreviation must be at most 10 characters")
		default:
			taken, err := s.facultyRepo.AbbreviationExists(ctx, abbreviation, excludeID)
			if err != nil {
				return fmt.Errorf("error checking faculty abbreviation uniqueness: %w", err)
			}
			if taken {
				verr.Add("abbreviation", "abbreviation is already in use")
			}
			faculty.Abbreviation = &abbreviation
		}
	}

	return verr.ErrOrNil()
}

// CreateFaculty creates a new faculty
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	if err := s.validateFaculty(ctx, faculty, 0); err != nil {
		return 0, err
	}

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		// Duplicates slipping past the pre-checks trip the unique constraints.
		if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			return 0, apperrors.NewValidationError().Add("name", "name is already in use")
		}
		if errors.Is(err, apperrors.ErrAbbreviationAlreadyExists) {
			return 0, apperrors.NewValidationError().Add("abbreviation", "abbreviation is already in use")
		}
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}
	return id, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// GetAllFaculties retrieves all faculties ordered by id
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	faculties, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// UpdateFaculty updates an existing faculty. The record is loaded first so a
// missing id surfaces as not-found before any validation runs.
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if _, err := s.facultyRepo.GetByID(ctx, faculty.ID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error loading faculty: %w", err)
	}

	if err := s.validateFaculty(ctx, faculty, faculty.ID); err != nil {
		return err
	}

	err := s.facultyRepo.Update(ctx, faculty)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			return apperrors.NewValidationError().Add("name", "name is already in use")
		}
		if errors.Is(err, apperrors.ErrAbbreviationAlreadyExists) {
			return apperrors.NewValidationError().Add("abbreviation", "abbreviation is already in use")
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}
	return nil
}

// DeleteFaculty deletes a faculty by ID. Deletion is rejected while dependent
// majors exist.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	err := s.facultyRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
