package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Aisyah456/liblary-web/internal/app/models"
	appRepos "github.com/Aisyah456/liblary-web/internal/app/repositories"
	"github.com/Aisyah456/liblary-web/internal/pkg/apperrors"
)

type facultySeed struct {
	name         string
	abbreviation string
	majors       []majorSeed
}

type majorSeed struct {
	name  string
	level appModels.MajorLevel
}

type memberSeed struct {
	id         string
	majorName  string
	fullName   string
	memberType appModels.MemberType
	email      string
}

var defaultFaculties = []facultySeed{
	{name: "Fakultas Teknik", abbreviation: "FT", majors: []majorSeed{
		{name: "Teknik Informatika", level: appModels.LevelS1},
		{name: "Teknik Sipil", level: appModels.LevelS1},
	}},
	{name: "Fakultas Ekonomi dan Bisnis", abbreviation: "FEB", majors: []majorSeed{
		{name: "Manajemen", level: appModels.LevelS1},
		{name: "Akuntansi", level: appModels.LevelD3},
	}},
	{name: "Fakultas Ilmu Sosial dan Ilmu Politik", abbreviation: "FISIP"},
	{name: "Fakultas Kesehatan", abbreviation: "FKES", majors: []majorSeed{
		{name: "Keperawatan", level: appModels.LevelD3},
	}},
	{name: "Fakultas Hukum", abbreviation: "FH", majors: []majorSeed{
		{name: "Ilmu Hukum", level: appModels.LevelS1},
	}},
	{name: "Fakultas Kedokteran", abbreviation: "FK"},
	{name: "Fakultas Pertanian", abbreviation: "FAPERTA"},
}

var defaultMembers = []memberSeed{
	{id: "2021001", majorName: "Teknik Informatika", fullName: "Aisyah Putri", memberType: appModels.MemberStudent, email: "aisyah.putri@student.example.ac.id"},
	{id: "2021002", majorName: "Manajemen", fullName: "Budi Santoso", memberType: appModels.MemberStudent, email: "budi.santoso@student.example.ac.id"},
	{id: "NIDN0001", majorName: "Ilmu Hukum", fullName: "Dr. Citra Lestari", memberType: appModels.MemberLecturer, email: "citra.lestari@example.ac.id"},
}

// CreateDefaultData seeds the faculty, major and member reference data. It is
// safe to run on every startup; existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	facultyRepo := appRepos.NewFacultyRepository(dbPool)
	majorRepo := appRepos.NewMajorRepository(dbPool)
	memberRepo := appRepos.NewMemberRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default reference data...")
	var finalErr error

	majorIDsByName := make(map[string]int64)

	for _, fs := range defaultFaculties {
		abbreviation := fs.abbreviation
		faculty := &appModels.Faculty{Name: fs.name, Abbreviation: &abbreviation}

		facultyID, err := facultyRepo.Create(ctx, faculty)
		if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			faculties, errGet := facultyRepo.GetAll(ctx)
			if errGet != nil {
				lgr.Error().Err(errGet).Msg("Error listing faculties while seeding")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			for _, f := range faculties {
				if f.Name == fs.name {
					facultyID = f.ID
					break
				}
			}
		} else if err != nil {
			lgr.Error().Err(err).Str("faculty", fs.name).Msg("Error creating faculty")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if facultyID == 0 {
			continue
		}

		existing, err := majorRepo.GetByFacultyID(ctx, facultyID)
		if err != nil {
			lgr.Error().Err(err).Str("faculty", fs.name).Msg("Error listing majors while seeding")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		existingNames := make(map[string]int64, len(existing))
		for _, m := range existing {
			existingNames[m.Name] = m.ID
		}

		for _, ms := range fs.majors {
			if id, ok := existingNames[ms.name]; ok {
				majorIDsByName[ms.name] = id
				continue
			}
			level := ms.level
			major := &appModels.Major{FacultyID: facultyID, Name: ms.name, Level: &level}
			id, err := majorRepo.Create(ctx, major)
			if err != nil {
				lgr.Error().Err(err).Str("major", ms.name).Msg("Error creating major")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			majorIDsByName[ms.name] = id
		}
	}

	for _, ms := range defaultMembers {
		exists, err := memberRepo.Exists(ctx, ms.id)
		if err != nil {
			lgr.Error().Err(err).Str("member", ms.id).Msg("Error checking member while seeding")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		member := &appModels.LibMember{
			ID:         ms.id,
			FullName:   ms.fullName,
			MemberType: ms.memberType,
			Email:      ms.email,
			Active:     true,
		}
		if majorID, ok := majorIDsByName[ms.majorName]; ok {
			member.MajorID = &majorID
		}

		if err := memberRepo.Create(ctx, member); err != nil {
			lgr.Error().Err(err).Str("member", ms.id).Msg("Error creating member")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
