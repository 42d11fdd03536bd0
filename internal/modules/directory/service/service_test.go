package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/dto"
)

type fakeClassRepo struct {
	classes []entity.Class
}

func (f *fakeClassRepo) Create(ctx context.Context, class *entity.Class) error {
	if class.ID == uuid.Nil {
		class.ID = uuid.New()
	}
	f.classes = append(f.classes, *class)
	return nil
}

func (f *fakeClassRepo) CreateSection(ctx context.Context, section *entity.Section) error {
	if section.ID == uuid.Nil {
		section.ID = uuid.New()
	}
	for i := range f.classes {
		if f.classes[i].ID == section.ClassID {
			f.classes[i].Sections = append(f.classes[i].Sections, *section)
			return nil
		}
	}
	return nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	for i := range f.classes {
		if f.classes[i].ID == id {
			return &f.classes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClassRepo) FindAll(ctx context.Context) ([]entity.Class, error) {
	out := make([]entity.Class, len(f.classes))
	copy(out, f.classes)
	return out, nil
}

func (f *fakeClassRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.classes {
		if f.classes[i].ID == id {
			f.classes = append(f.classes[:i], f.classes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeClassRepo) DeleteSection(ctx context.Context, classID, sectionID uuid.UUID) error {
	for i := range f.classes {
		if f.classes[i].ID != classID {
			continue
		}
		sections := f.classes[i].Sections
		for j := range sections {
			if sections[j].ID == sectionID {
				f.classes[i].Sections = append(sections[:j], sections[j+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeClassRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.classes)), nil
}

func newTestService() (DirectoryService, *fakeClassRepo) {
	repo := &fakeClassRepo{}
	return NewDirectoryService(repo, nil), repo
}

func classWithSections(name string, sectionNames ...string) entity.Class {
	c := entity.Class{ID: uuid.New(), Name: name}
	for _, sn := range sectionNames {
		c.Sections = append(c.Sections, entity.Section{ID: uuid.New(), ClassID: c.ID, Name: sn})
	}
	return c
}

func student(name, class, section string) entity.Profile {
	return entity.Profile{UserID: uuid.New(), Name: name, Role: entity.RoleStudent, Class: class, Section: section}
}

func TestAddClassDefaultsCode(t *testing.T) {
	svc, repo := newTestService()

	assert.NoError(t, svc.AddClass(context.Background(), "Class 10", ""))
	assert.Len(t, repo.classes, 1)
	assert.Equal(t, "CLA", repo.classes[0].Code)

	assert.NoError(t, svc.AddClass(context.Background(), "X", ""))
	assert.Equal(t, "X", repo.classes[1].Code)

	assert.NoError(t, svc.AddClass(context.Background(), "Nursery", "NUR-1"))
	assert.Equal(t, "NUR-1", repo.classes[2].Code)
}

func TestAddClassEmptyNameIsNoOp(t *testing.T) {
	svc, repo := newTestService()
	assert.NoError(t, svc.AddClass(context.Background(), "", ""))
	assert.NoError(t, svc.AddClass(context.Background(), "   ", ""))
	assert.Empty(t, repo.classes)
}

func TestAddSectionDefaultsCodeAndIgnoresBadInput(t *testing.T) {
	svc, repo := newTestService()
	assert.NoError(t, svc.AddClass(context.Background(), "Class 10", ""))
	classID := repo.classes[0].ID

	assert.NoError(t, svc.AddSection(context.Background(), classID, "A", ""))
	assert.Equal(t, "S-A", repo.classes[0].Sections[0].Code)

	// Empty name, nil class, unknown class: all silent no-ops.
	assert.NoError(t, svc.AddSection(context.Background(), classID, "", ""))
	assert.NoError(t, svc.AddSection(context.Background(), uuid.Nil, "B", ""))
	assert.NoError(t, svc.AddSection(context.Background(), uuid.New(), "B", ""))
	assert.Len(t, repo.classes[0].Sections, 1)
}

func TestAddSectionPermitsDuplicateNames(t *testing.T) {
	svc, repo := newTestService()
	assert.NoError(t, svc.AddClass(context.Background(), "Class 10", ""))
	classID := repo.classes[0].ID

	assert.NoError(t, svc.AddSection(context.Background(), classID, "A", ""))
	assert.NoError(t, svc.AddSection(context.Background(), classID, "A", ""))
	assert.Len(t, repo.classes[0].Sections, 2)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, repo := newTestService()
	assert.NoError(t, svc.AddClass(context.Background(), "Class 10", ""))

	assert.NoError(t, svc.DeleteClass(context.Background(), uuid.New()))
	assert.Len(t, repo.classes, 1)

	assert.NoError(t, svc.DeleteSection(context.Background(), repo.classes[0].ID, uuid.New()))
	assert.Len(t, repo.classes, 1)

	classID := repo.classes[0].ID
	assert.NoError(t, svc.DeleteClass(context.Background(), classID))
	assert.NoError(t, svc.DeleteClass(context.Background(), classID))
	assert.Empty(t, repo.classes)
}

func TestFormatOptionsWithSections(t *testing.T) {
	classes := []entity.Class{classWithSections("Class 10", "A", "B")}

	options := FormatOptions(classes)

	assert.Equal(t, []dto.ClassOption{
		{Label: "Class 10 - Sec A", Value: "Class 10-A", ClassName: "Class 10", Section: "A"},
		{Label: "Class 10 - Sec B", Value: "Class 10-B", ClassName: "Class 10", Section: "B"},
	}, options)
}

func TestFormatOptionsWithoutSections(t *testing.T) {
	classes := []entity.Class{classWithSections("Class 11")}

	options := FormatOptions(classes)

	assert.Equal(t, []dto.ClassOption{
		{Label: "Class 11", Value: "Class 11", ClassName: "Class 11", Section: ""},
	}, options)
}

func TestFilterRosterMatchesClassAndSection(t *testing.T) {
	options := FormatOptions([]entity.Class{
		classWithSections("Class 10", "A", "B"),
		classWithSections("Class 11", "A"),
	})
	roster := []entity.Profile{
		student("Amira", "Class 10", "A"),
		student("Bilal", "Class 10", "B"),
		student("Chandra", "Class 11", "A"),
	}

	matched := FilterRoster(roster, "Class 10-A", options)

	assert.Len(t, matched, 1)
	assert.Equal(t, "Amira", matched[0].Name)
}

func TestFilterRosterEmptySectionAdmitsWholeClass(t *testing.T) {
	options := FormatOptions([]entity.Class{classWithSections("Class 11")})
	roster := []entity.Profile{
		student("Chandra", "Class 11", "A"),
		student("Dewi", "Class 11", ""),
		student("Eka", "Class 10", "A"),
	}

	matched := FilterRoster(roster, "Class 11", options)

	assert.Len(t, matched, 2)
}

func TestFilterRosterSectionMatchIsEqualityNotPresence(t *testing.T) {
	options := FormatOptions([]entity.Class{classWithSections("Class 10", "A")})
	roster := []entity.Profile{
		student("Amira", "Class 10", "A"),
		student("Farid", "Class 10", ""),
	}

	matched := FilterRoster(roster, "Class 10-A", options)

	assert.Len(t, matched, 1)
	assert.Equal(t, "Amira", matched[0].Name)
}

func TestFilterRosterUnknownSelector(t *testing.T) {
	options := FormatOptions([]entity.Class{classWithSections("Class 10", "A")})
	roster := []entity.Profile{student("Amira", "Class 10", "A")}

	assert.Nil(t, FilterRoster(roster, "Class 12-Z", options))

	// A known selector with nobody enrolled is empty but not nil.
	matched := FilterRoster(nil, "Class 10-A", options)
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}
