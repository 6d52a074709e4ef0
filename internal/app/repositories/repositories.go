package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository   FacultyRepository
	MajorRepository     MajorRepository
	MemberRepository    MemberRepository
	ClearanceRepository ClearanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository:   NewFacultyRepository(db),
		MajorRepository:     NewMajorRepository(db),
		MemberRepository:    NewMemberRepository(db),
		ClearanceRepository: NewClearanceRepository(db),
	}
}
