package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/app/models/dto"
	"github.com/Aisyah456/liblary-web/internal/app/repositories"
	"github.com/Aisyah456/liblary-web/internal/pkg/apperrors"
)

// ClearanceService implements the library clearance (bebas pustaka) workflow:
// members submit requests, staff review them through the three verification
// states, and the validation timestamp is stamped once on the first pass.
type ClearanceService interface {
	Submit(ctx context.Context, memberID, reason string) (*models.ClearanceRequest, error)
	Review(ctx context.Context, id int64, patch *dto.ReviewClearanceRequest) (*models.ClearanceRequest, error)
	GetClearanceByID(ctx context.Context, id int64) (*models.ClearanceRequest, error)
	GetAllClearances(ctx context.Context) ([]*models.ClearanceRequest, error)
	DeleteClearance(ctx context.Context, id int64) error
}

type clearanceServiceImpl struct {
	clearanceRepo repositories.ClearanceRepository
	memberRepo    repositories.MemberRepository
	now           func() time.Time
}

// NewClearanceService creates a new clearance service instance
func NewClearanceService(clearanceRepo repositories.ClearanceRepository, memberRepo repositories.MemberRepository) ClearanceService {
	return &clearanceServiceImpl{
		clearanceRepo: clearanceRepo,
		memberRepo:    memberRepo,
		now:           time.Now,
	}
}

func validateReason(verr *apperrors.ValidationError, reason string) {
	switch {
	case reason == "":
		verr.Add("reason", "reason is required")
	case len(reason) > 50:
		verr.Add("reason", "reason must be at most 50 characters")
	}
}

// Submit creates a new clearance request for a member. Status and submission
// timestamp are assigned here, never taken from the caller.
func (s *clearanceServiceImpl) Submit(ctx context.Context, memberID, reason string) (*models.ClearanceRequest, error) {
	verr := apperrors.NewValidationError()

	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		verr.Add("member_id", "member_id is required")
	} else {
		exists, err := s.memberRepo.Exists(ctx, memberID)
		if err != nil {
			return nil, fmt.Errorf("error checking member existence: %w", err)
		}
		if !exists {
			verr.Add("member_id", "member does not exist")
		}
	}

	reason = strings.TrimSpace(reason)
	validateReason(verr, reason)

	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	request := &models.ClearanceRequest{
		MemberID:    memberID,
		SubmittedAt: s.now(),
		Reason:      reason,
		Status:      models.StatusSubmitted,
	}

	id, err := s.clearanceRepo.Create(ctx, request)
	if err != nil {
		// Member deleted between the check and the insert.
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			return nil, apperrors.NewValidationError().Add("member_id", "member does not exist")
		}
		return nil, fmt.Errorf("error creating clearance request: %w", err)
	}

	request.ID = id
	return request, nil
}

// Review applies a staff patch to an existing request. Only supplied fields
// are applied. Entry into Passed stamps the validation timestamp when it is
// still unset and the patch does not provide one; a request already stamped
// keeps its original timestamp on every later review.
func (s *clearanceServiceImpl) Review(ctx context.Context, id int64, patch *dto.ReviewClearanceRequest) (*models.ClearanceRequest, error) {
	request, err := s.clearanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrClearanceNotFound
		}
		return nil, fmt.Errorf("error loading clearance request: %w", err)
	}

	verr := apperrors.NewValidationError()

	if patch.Reason != nil {
		reason := strings.TrimSpace(*patch.Reason)
		validateReason(verr, reason)
		request.Reason = reason
	}
	if patch.Status != nil {
		status := models.ClearanceStatus(*patch.Status)
		if !models.ValidClearanceStatus(status) {
			verr.Add("status", "status must be one of: Submitted, Pending, Passed")
		}
		request.Status = status
	}

	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if patch.Note != nil {
		request.Note = patch.Note
	}
	if patch.CertNumber != nil {
		request.CertNumber = patch.CertNumber
	}
	if patch.ValidatedAt != nil {
		request.ValidatedAt = patch.ValidatedAt
	} else if request.Status == models.StatusPassed && request.ValidatedAt == nil {
		validatedAt := s.now()
		request.ValidatedAt = &validatedAt
	}

	if err := s.clearanceRepo.Update(ctx, request); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrClearanceNotFound
		}
		return nil, fmt.Errorf("error updating clearance request: %w", err)
	}

	return request, nil
}

// GetClearanceByID retrieves one request with member, major and faculty
// abbreviation resolved
func (s *clearanceServiceImpl) GetClearanceByID(ctx context.Context, id int64) (*models.ClearanceRequest, error) {
	request, err := s.clearanceRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrClearanceNotFound
		}
		return nil, fmt.Errorf("error retrieving clearance request: %w", err)
	}
	return request, nil
}

// GetAllClearances retrieves all requests with relations resolved
func (s *clearanceServiceImpl) GetAllClearances(ctx context.Context) ([]*models.ClearanceRequest, error) {
	requests, err := s.clearanceRepo.GetAllWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving clearance requests: %w", err)
	}
	return requests, nil
}

// DeleteClearance removes a request by ID
func (s *clearanceServiceImpl) DeleteClearance(ctx context.Context, id int64) error {
	err := s.clearanceRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrClearanceNotFound
		}
		return fmt.Errorf("error deleting clearance request: %w", err)
	}
	return nil
}
