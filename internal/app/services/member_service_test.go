package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aisyah456/liblary-web/internal/app/models"
)

func TestMemberService_GetAllMembers(t *testing.T) {
	memberRepo := newMockMemberRepo()
	svc := NewMemberService(memberRepo)

	err := memberRepo.Create(context.Background(), &models.LibMember{
		ID:         "2021002",
		FullName:   "Budi Santoso",
		MemberType: models.MemberStudent,
		Email:      "budi@example.ac.id",
		Phone:      strPtr("081234567890"),
		Active:     true,
	})
	require.NoError(t, err)
	err = memberRepo.Create(context.Background(), &models.LibMember{
		ID:         "NIDN0001",
		FullName:   "Dr. Citra Lestari",
		MemberType: models.MemberLecturer,
		Email:      "citra@example.ac.id",
		Active:     true,
	})
	require.NoError(t, err)

	summaries, err := svc.GetAllMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "2021002", summaries[0].ID)
	assert.Equal(t, "Budi Santoso", summaries[0].FullName)
	assert.Equal(t, models.MemberStudent, summaries[0].MemberType)
	assert.Equal(t, models.MemberLecturer, summaries[1].MemberType)
}

func TestMemberService_GetAllMembers_Empty(t *testing.T) {
	svc := NewMemberService(newMockMemberRepo())

	summaries, err := svc.GetAllMembers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
