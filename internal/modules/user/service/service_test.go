package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/user/dto"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if profile != nil {
		profile.UserID = user.ID
		user.Profile = profile
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	user, err := f.FindByID(ctx, userID)
	if err != nil || user.Profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return user.Profile, nil
}

func (f *fakeUserRepo) SaveProfile(ctx context.Context, profile *entity.Profile) error { return nil }
func (f *fakeUserRepo) UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.Status) error {
	return nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, userID uuid.UUID) error { return nil }
func (f *fakeUserRepo) ListProfilesByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListProfilesByStatus(ctx context.Context, status entity.Status) ([]entity.Profile, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListStudentsByClass(ctx context.Context, class string) ([]entity.Profile, error) {
	return nil, nil
}
func (f *fakeUserRepo) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	return 0, nil
}

func newAuthService(repo *fakeUserRepo) UserService {
	return NewUserService(repo, nil, nil, "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Amira",
		Email:    "amira@example.com",
		Password: "sup3rsecret",
		Role:     "student",
		Class:    "Class 10",
		Section:  "A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "dashboard", resp.HomeView)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, entity.StatusApproved, resp.Profile.Status)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "amira@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "amira@example.com",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestRegisterTeacherStartsPending(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ms Rahma",
		Email:    "rahma@example.com",
		Password: "sup3rsecret",
		Role:     "teacher",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, entity.StatusPending, resp.Profile.Status)
	assert.Equal(t, "teacherDashboard", resp.HomeView)
}

func TestRegisterRejectsAdminRoles(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	for _, role := range []string{"admin", "superadmin"} {
		_, err := svc.Register(context.Background(), dto.RegisterRequest{
			Name:     "Intruder",
			Email:    role + "@example.com",
			Password: "sup3rsecret",
			Role:     role,
		})
		assert.Error(t, err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	req := dto.RegisterRequest{
		Name:     "Amira",
		Email:    "amira@example.com",
		Password: "sup3rsecret",
		Role:     "student",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLoginRejectedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(),
		&entity.User{Email: "rejected@example.com", PasswordHash: string(hash)},
		&entity.Profile{Name: "R", Role: entity.RoleTeacher, Status: entity.StatusRejected},
	))

	svc := newAuthService(repo)
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "rejected@example.com",
		Password: "sup3rsecret",
	})
	assert.Error(t, err)
}

func TestLogoutWithoutBlacklistIsNoOp(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	assert.NoError(t, svc.Logout(context.Background(), "whatever"))
}
