package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/dto"
	directoryDTO "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/dto"
)

type fakeAttendanceRepo struct {
	days map[string][]entity.AttendanceRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{days: map[string][]entity.AttendanceRecord{}}
}

func dayKey(selector, date string) string { return selector + "|" + date }

func (f *fakeAttendanceRepo) ReplaceDay(ctx context.Context, selector, date string, records []entity.AttendanceRecord) error {
	f.days[dayKey(selector, date)] = records
	return nil
}

func (f *fakeAttendanceRepo) FindDay(ctx context.Context, selector, date string) ([]entity.AttendanceRecord, error) {
	return f.days[dayKey(selector, date)], nil
}

func (f *fakeAttendanceRepo) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.AttendanceRecord, error) {
	var out []entity.AttendanceRecord
	for _, records := range f.days {
		for _, rec := range records {
			if rec.StudentID == studentID {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

// fakeUsers satisfies the user repository; only the roster listing matters
// for attendance.
type fakeUsers struct {
	students []entity.Profile
}

func (f *fakeUsers) ListStudentsByClass(ctx context.Context, class string) ([]entity.Profile, error) {
	return f.students, nil
}

func (f *fakeUsers) Create(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	return nil
}
func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUsers) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUsers) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return nil, nil
}
func (f *fakeUsers) SaveProfile(ctx context.Context, profile *entity.Profile) error { return nil }
func (f *fakeUsers) UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.Status) error {
	return nil
}
func (f *fakeUsers) Delete(ctx context.Context, userID uuid.UUID) error { return nil }
func (f *fakeUsers) ListProfilesByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error) {
	return nil, nil
}
func (f *fakeUsers) ListProfilesByStatus(ctx context.Context, status entity.Status) ([]entity.Profile, error) {
	return nil, nil
}
func (f *fakeUsers) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	return 0, nil
}

type fakeDirectory struct {
	options []directoryDTO.ClassOption
}

func (f *fakeDirectory) ListOptions(ctx context.Context) ([]directoryDTO.ClassOption, error) {
	return f.options, nil
}

func (f *fakeDirectory) ListClasses(ctx context.Context) ([]entity.Class, error) { return nil, nil }
func (f *fakeDirectory) AddClass(ctx context.Context, name, code string) error   { return nil }
func (f *fakeDirectory) AddSection(ctx context.Context, classID uuid.UUID, name, code string) error {
	return nil
}
func (f *fakeDirectory) DeleteClass(ctx context.Context, classID uuid.UUID) error { return nil }
func (f *fakeDirectory) DeleteSection(ctx context.Context, classID, sectionID uuid.UUID) error {
	return nil
}

func testStudent(name string) entity.Profile {
	return entity.Profile{
		UserID:  uuid.New(),
		Name:    name,
		Role:    entity.RoleStudent,
		Class:   "Class 10",
		Section: "A",
	}
}

func testFixture() (AttendanceService, *fakeAttendanceRepo, []entity.Profile) {
	students := []entity.Profile{testStudent("Amira"), testStudent("Bilal")}
	repo := newFakeAttendanceRepo()
	dir := &fakeDirectory{options: []directoryDTO.ClassOption{
		{Label: "Class 10 - Sec A", Value: "Class 10-A", ClassName: "Class 10", Section: "A"},
	}}
	svc := NewAttendanceService(repo, &fakeUsers{students: students}, dir)
	return svc, repo, students
}

func TestDaySheetDefaultsToPresent(t *testing.T) {
	svc, _, students := testFixture()

	sheet, err := svc.BuildDaySheet(context.Background(), "Class 10-A", "2026-08-29")
	require.NoError(t, err)

	require.Len(t, sheet.Entries, len(students))
	for _, entry := range sheet.Entries {
		assert.Equal(t, entity.AttendancePresent, entry.Status)
	}
}

func TestDaySheetReflectsSavedStatuses(t *testing.T) {
	svc, _, students := testFixture()
	marker := uuid.New()

	err := svc.SaveDay(context.Background(), marker, dto.SaveAttendanceRequest{
		Selector: "Class 10-A",
		Date:     "2026-08-29",
		Entries: map[string]string{
			students[0].UserID.String(): "absent",
			students[1].UserID.String(): "late",
		},
	})
	require.NoError(t, err)

	sheet, err := svc.BuildDaySheet(context.Background(), "Class 10-A", "2026-08-29")
	require.NoError(t, err)

	byID := map[uuid.UUID]entity.AttendanceStatus{}
	for _, entry := range sheet.Entries {
		byID[entry.StudentID] = entry.Status
	}
	assert.Equal(t, entity.AttendanceAbsent, byID[students[0].UserID])
	assert.Equal(t, entity.AttendanceLate, byID[students[1].UserID])
}

func TestSaveDayReplacesPreviousBlock(t *testing.T) {
	svc, repo, students := testFixture()
	marker := uuid.New()

	first := dto.SaveAttendanceRequest{
		Selector: "Class 10-A",
		Date:     "2026-08-29",
		Entries: map[string]string{
			students[0].UserID.String(): "absent",
			students[1].UserID.String(): "absent",
		},
	}
	require.NoError(t, svc.SaveDay(context.Background(), marker, first))

	second := dto.SaveAttendanceRequest{
		Selector: "Class 10-A",
		Date:     "2026-08-29",
		Entries:  map[string]string{students[0].UserID.String(): "late"},
	}
	require.NoError(t, svc.SaveDay(context.Background(), marker, second))

	saved := repo.days[dayKey("Class 10-A", "2026-08-29")]
	require.Len(t, saved, 1)
	assert.Equal(t, entity.AttendanceLate, saved[0].Status)
	assert.Equal(t, marker, saved[0].MarkedBy)
}

func TestSaveDayRejectsBadInput(t *testing.T) {
	svc, _, students := testFixture()
	marker := uuid.New()

	err := svc.SaveDay(context.Background(), marker, dto.SaveAttendanceRequest{
		Selector: "Class 10-A",
		Date:     "2026-08-29",
		Entries:  map[string]string{students[0].UserID.String(): "sleeping"},
	})
	assert.Error(t, err)

	err = svc.SaveDay(context.Background(), marker, dto.SaveAttendanceRequest{
		Selector: "Class 10-A",
		Date:     "2026-08-29",
		Entries:  map[string]string{uuid.NewString(): "present"},
	})
	assert.Error(t, err, "students outside the roster are rejected")

	err = svc.SaveDay(context.Background(), marker, dto.SaveAttendanceRequest{
		Selector: "Class 12-Z",
		Date:     "2026-08-29",
		Entries:  map[string]string{},
	})
	assert.Error(t, err, "unknown selectors are rejected")
}
