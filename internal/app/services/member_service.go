package services

import (
	"context"
	"fmt"

	"github.com/Aisyah456/liblary-web/internal/app/models/dto"
	"github.com/Aisyah456/liblary-web/internal/app/repositories"
)

// MemberService exposes the read-only member directory. Member mutation is
// owned by an external system; only the selection-widget projection is served.
type MemberService interface {
	GetAllMembers(ctx context.Context) ([]*dto.MemberSummary, error)
}

type memberServiceImpl struct {
	memberRepo repositories.MemberRepository
}

// NewMemberService creates a new member service instance
func NewMemberService(memberRepo repositories.MemberRepository) MemberService {
	return &memberServiceImpl{
		memberRepo: memberRepo,
	}
}

// GetAllMembers retrieves the reduced projection of every member
func (s *memberServiceImpl) GetAllMembers(ctx context.Context) ([]*dto.MemberSummary, error) {
	members, err := s.memberRepo.GetAllSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members: %w", err)
	}

	summaries := make([]*dto.MemberSummary, 0, len(members))
	for _, member := range members {
		summaries = append(summaries, &dto.MemberSummary{
			ID:         member.ID,
			FullName:   member.FullName,
			MemberType: member.MemberType,
		})
	}
	return summaries, nil
}
