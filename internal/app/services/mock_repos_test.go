package services

import (
	"context"
	"sort"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the behavior of the Postgres
// implementations, including the sentinel errors they return.

type mockFacultyRepo struct {
	faculties map[int64]*models.Faculty
	nextID    int64
	majors    *mockMajorRepo
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{faculties: make(map[int64]*models.Faculty), nextID: 1}
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *models.Faculty) (int64, error) {
	taken, _ := m.NameExists(context.Background(), faculty.Name, 0)
	if !taken && faculty.Abbreviation != nil {
		taken, _ = m.AbbreviationExists(context.Background(), *faculty.Abbreviation, 0)
	}
	if taken {
		return 0, apperrors.ErrFacultyAlreadyExists
	}

	id := m.nextID
	m.nextID++
	stored := *faculty
	stored.ID = id
	m.faculties[id] = &stored
	return id, nil
}

func (m *mockFacultyRepo) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	if f, ok := m.faculties[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (m *mockFacultyRepo) GetAll(_ context.Context) ([]*models.Faculty, error) {
	result := make([]*models.Faculty, 0, len(m.faculties))
	for _, f := range m.faculties {
		copied := *f
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockFacultyRepo) Update(_ context.Context, faculty *models.Faculty) error {
	if _, ok := m.faculties[faculty.ID]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	stored := *faculty
	m.faculties[faculty.ID] = &stored
	return nil
}

func (m *mockFacultyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.faculties[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	if m.majors != nil {
		for _, major := range m.majors.majors {
			if major.FacultyID == id {
				return apperrors.ErrFacultyHasMajors
			}
		}
	}
	delete(m.faculties, id)
	return nil
}

func (m *mockFacultyRepo) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, f := range m.faculties {
		if f.Name == name && f.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFacultyRepo) AbbreviationExists(_ context.Context, abbreviation string, excludeID int64) (bool, error) {
	for _, f := range m.faculties {
		if f.Abbreviation != nil && *f.Abbreviation == abbreviation && f.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type mockMajorRepo struct {
	majors    map[int64]*models.Major
	nextID    int64
	faculties *mockFacultyRepo
	members   *mockMemberRepo
}

func newMockMajorRepo() *mockMajorRepo {
	return &mockMajorRepo{majors: make(map[int64]*models.Major), nextID: 1}
}

func (m *mockMajorRepo) Create(_ context.Context, major *models.Major) (int64, error) {
	if m.faculties != nil {
		if _, ok := m.faculties.faculties[major.FacultyID]; !ok {
			return 0, apperrors.ErrFacultyNotFound
		}
	}
	id := m.nextID
	m.nextID++
	stored := *major
	stored.ID = id
	m.majors[id] = &stored
	return id, nil
}

func (m *mockMajorRepo) GetByID(_ context.Context, id int64) (*models.Major, error) {
	if major, ok := m.majors[id]; ok {
		copied := *major
		return &copied, nil
	}
	return nil, apperrors.ErrMajorNotFound
}

func (m *mockMajorRepo) GetAll(_ context.Context) ([]*models.Major, error) {
	result := make([]*models.Major, 0, len(m.majors))
	for _, major := range m.majors {
		copied := *major
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockMajorRepo) GetByFacultyID(_ context.Context, facultyID int64) ([]*models.Major, error) {
	var result []*models.Major
	for _, major := range m.majors {
		if major.FacultyID == facultyID {
			copied := *major
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockMajorRepo) Update(_ context.Context, major *models.Major) error {
	if _, ok := m.majors[major.ID]; !ok {
		return apperrors.ErrMajorNotFound
	}
	if m.faculties != nil {
		if _, ok := m.faculties.faculties[major.FacultyID]; !ok {
			return apperrors.ErrFacultyNotFound
		}
	}
	stored := *major
	m.majors[major.ID] = &stored
	return nil
}

func (m *mockMajorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.majors[id]; !ok {
		return apperrors.ErrMajorNotFound
	}
	if m.members != nil {
		for _, member := range m.members.members {
			if member.MajorID != nil && *member.MajorID == id {
				return apperrors.ErrMajorHasMembers
			}
		}
	}
	delete(m.majors, id)
	return nil
}

type mockMemberRepo struct {
	members map[string]*models.LibMember
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[string]*models.LibMember)}
}

func (m *mockMemberRepo) Create(_ context.Context, member *models.LibMember) error {
	stored := *member
	m.members[member.ID] = &stored
	return nil
}

func (m *mockMemberRepo) GetByID(_ context.Context, id string) (*models.LibMember, error) {
	if member, ok := m.members[id]; ok {
		copied := *member
		return &copied, nil
	}
	return nil, apperrors.ErrMemberNotFound
}

func (m *mockMemberRepo) GetAllSummaries(_ context.Context) ([]*models.LibMember, error) {
	result := make([]*models.LibMember, 0, len(m.members))
	for _, member := range m.members {
		copied := *member
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockMemberRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.members[id]
	return ok, nil
}

type mockClearanceRepo struct {
	requests map[int64]*models.ClearanceRequest
	nextID   int64
	members  *mockMemberRepo
}

func newMockClearanceRepo() *mockClearanceRepo {
	return &mockClearanceRepo{requests: make(map[int64]*models.ClearanceRequest), nextID: 1}
}

func (m *mockClearanceRepo) Create(_ context.Context, request *models.ClearanceRequest) (int64, error) {
	if m.members != nil {
		if _, ok := m.members.members[request.MemberID]; !ok {
			return 0, apperrors.ErrMemberNotFound
		}
	}
	id := m.nextID
	m.nextID++
	stored := *request
	stored.ID = id
	m.requests[id] = &stored
	return id, nil
}

func (m *mockClearanceRepo) GetByID(_ context.Context, id int64) (*models.ClearanceRequest, error) {
	if request, ok := m.requests[id]; ok {
		copied := *request
		return &copied, nil
	}
	return nil, apperrors.ErrClearanceNotFound
}

func (m *mockClearanceRepo) GetByIDWithRelations(ctx context.Context, id int64) (*models.ClearanceRequest, error) {
	request, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.members != nil {
		if member, ok := m.members.members[request.MemberID]; ok {
			copied := *member
			request.Member = &copied
		}
	}
	return request, nil
}

func (m *mockClearanceRepo) GetAllWithRelations(ctx context.Context) ([]*models.ClearanceRequest, error) {
	ids := make([]int64, 0, len(m.requests))
	for id := range m.requests {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]*models.ClearanceRequest, 0, len(ids))
	for _, id := range ids {
		request, err := m.GetByIDWithRelations(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, nil
}

func (m *mockClearanceRepo) Update(_ context.Context, request *models.ClearanceRequest) error {
	if _, ok := m.requests[request.ID]; !ok {
		return apperrors.ErrClearanceNotFound
	}
	stored := *request
	m.requests[request.ID] = &stored
	return nil
}

func (m *mockClearanceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.requests[id]; !ok {
		return apperrors.ErrClearanceNotFound
	}
	delete(m.requests, id)
	return nil
}
