package controllers

import (
	"context"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/app/models/dto"
)

// Binding errors must report json field names, as configured at bootstrap.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Scripted service fakes. Each method returns the canned value or error the
// test configured.

type fakeFacultyService struct {
	createID  int64
	createErr error
	faculty   *models.Faculty
	faculties []*models.Faculty
	err       error
}

func (f *fakeFacultyService) CreateFaculty(_ context.Context, _ *models.Faculty) (int64, error) {
	return f.createID, f.createErr
}

func (f *fakeFacultyService) GetFacultyByID(_ context.Context, _ int64) (*models.Faculty, error) {
	return f.faculty, f.err
}

func (f *fakeFacultyService) GetAllFaculties(_ context.Context) ([]*models.Faculty, error) {
	return f.faculties, f.err
}

func (f *fakeFacultyService) UpdateFaculty(_ context.Context, _ *models.Faculty) error {
	return f.err
}

func (f *fakeFacultyService) DeleteFaculty(_ context.Context, _ int64) error {
	return f.err
}

type fakeMajorService struct {
	createID  int64
	createErr error
	major     *models.Major
	majors    []*models.Major
	err       error

	lastFacultyFilter int64
}

func (f *fakeMajorService) CreateMajor(_ context.Context, _ *models.Major) (int64, error) {
	return f.createID, f.createErr
}

func (f *fakeMajorService) GetMajorByID(_ context.Context, _ int64) (*models.Major, error) {
	return f.major, f.err
}

func (f *fakeMajorService) GetAllMajors(_ context.Context, facultyID int64) ([]*models.Major, error) {
	f.lastFacultyFilter = facultyID
	return f.majors, f.err
}

func (f *fakeMajorService) UpdateMajor(_ context.Context, _ *models.Major) error {
	return f.err
}

func (f *fakeMajorService) DeleteMajor(_ context.Context, _ int64) error {
	return f.err
}

type fakeMemberService struct {
	members []*dto.MemberSummary
	err     error
}

func (f *fakeMemberService) GetAllMembers(_ context.Context) ([]*dto.MemberSummary, error) {
	return f.members, f.err
}

type fakeClearanceService struct {
	request  *models.ClearanceRequest
	requests []*models.ClearanceRequest
	err      error
}

func (f *fakeClearanceService) Submit(_ context.Context, _, _ string) (*models.ClearanceRequest, error) {
	return f.request, f.err
}

func (f *fakeClearanceService) Review(_ context.Context, _ int64, _ *dto.ReviewClearanceRequest) (*models.ClearanceRequest, error) {
	return f.request, f.err
}

func (f *fakeClearanceService) GetClearanceByID(_ context.Context, _ int64) (*models.ClearanceRequest, error) {
	return f.request, f.err
}

func (f *fakeClearanceService) GetAllClearances(_ context.Context) ([]*models.ClearanceRequest, error) {
	return f.requests, f.err
}

func (f *fakeClearanceService) DeleteClearance(_ context.Context, _ int64) error {
	return f.err
}
