package navigation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type fakeSessions struct {
	mu       sync.Mutex
	observer func(*Identity)
	current  *Identity
	signOuts int
}

func (f *fakeSessions) ObserveIdentity(fn func(*Identity)) func() {
	f.mu.Lock()
	f.observer = fn
	current := f.current
	f.mu.Unlock()
	fn(current)
	return func() {
		f.mu.Lock()
		f.observer = nil
		f.mu.Unlock()
	}
}

func (f *fakeSessions) SignOut(ctx context.Context) error {
	f.mu.Lock()
	f.signOuts++
	f.current = nil
	observer := f.observer
	f.mu.Unlock()
	if observer != nil {
		observer(nil)
	}
	return nil
}

type fakeResolver struct {
	profile *entity.Profile
	err     error
}

func (f *fakeResolver) Resolve(ctx context.Context, identityID string) (*entity.Profile, error) {
	return f.profile, f.err
}

func newTestController(profile *entity.Profile, err error) (*Controller, *fakeSessions) {
	sessions := &fakeSessions{}
	c := NewController(sessions, &fakeResolver{profile: profile, err: err}, 10*time.Millisecond)
	return c, sessions
}

func profileWithRole(role entity.Role) *entity.Profile {
	return &entity.Profile{Name: "Someone", Role: role, Status: entity.StatusApproved}
}

func TestInitialStateIsSplash(t *testing.T) {
	c, _ := newTestController(nil, nil)
	assert.Equal(t, ViewSplash, c.CurrentView())
}

func TestSplashTimerAdvancesToOnboardingOnce(t *testing.T) {
	c, _ := newTestController(nil, nil)
	c.SplashElapsed()
	assert.Equal(t, ViewOnboarding, c.CurrentView())

	c.SelectView(ViewAuth)
	c.SplashElapsed()
	assert.Equal(t, ViewAuth, c.CurrentView())
}

func TestOnboardingAdvanceAndSkip(t *testing.T) {
	c, _ := newTestController(nil, nil)
	c.SplashElapsed()
	c.AdvanceOnboarding()
	c.AdvanceOnboarding()
	assert.Equal(t, ViewOnboarding, c.CurrentView())
	c.AdvanceOnboarding()
	assert.Equal(t, ViewAuth, c.CurrentView())

	c2, _ := newTestController(nil, nil)
	c2.SplashElapsed()
	c2.SkipOnboarding()
	assert.Equal(t, ViewAuth, c2.CurrentView())
}

func TestSignedOutIdentityDoesNotInterruptFirstRun(t *testing.T) {
	c, _ := newTestController(nil, nil)
	c.IdentityObserved(context.Background(), nil)
	assert.Equal(t, ViewSplash, c.CurrentView())

	c.SplashElapsed()
	c.IdentityObserved(context.Background(), nil)
	assert.Equal(t, ViewOnboarding, c.CurrentView())
}

func TestSignedOutIdentityForcesAuthFromAppViews(t *testing.T) {
	c, _ := newTestController(profileWithRole(entity.RoleStudent), nil)
	c.SelectView(ViewDashboard)
	c.IdentityObserved(context.Background(), nil)
	assert.Equal(t, ViewAuth, c.CurrentView())
}

func TestTeacherLandsOnTeacherDashboardFromAuth(t *testing.T) {
	c, _ := newTestController(profileWithRole(entity.RoleTeacher), nil)
	c.SelectView(ViewAuth)
	c.IdentityObserved(context.Background(), &Identity{ID: "t-1"})
	assert.Equal(t, ViewTeacherDashboard, c.CurrentView())
}

func TestRoleHomeViews(t *testing.T) {
	cases := map[entity.Role]View{
		entity.RoleSuperAdmin: ViewSuperDashboard,
		entity.RoleAdmin:      ViewAdminDashboard,
		entity.RoleTeacher:    ViewTeacherDashboard,
		entity.RoleParent:     ViewParentDashboard,
		entity.RoleStudent:    ViewDashboard,
	}
	for role, want := range cases {
		c, _ := newTestController(profileWithRole(role), nil)
		c.SelectView(ViewAuth)
		c.IdentityObserved(context.Background(), &Identity{ID: "u-1"})
		assert.Equal(t, want, c.CurrentView(), "role %s", role)
	}
}

func TestNavigatedStudentStaysPut(t *testing.T) {
	c, _ := newTestController(profileWithRole(entity.RoleStudent), nil)
	c.SelectView(ViewHomework)
	c.IdentityObserved(context.Background(), &Identity{ID: "s-1"})
	assert.Equal(t, ViewHomework, c.CurrentView())
}

func TestMissingProfileFailsOpenOnlyFromPublicViews(t *testing.T) {
	c, _ := newTestController(nil, nil)
	c.SelectView(ViewAuth)
	c.IdentityObserved(context.Background(), &Identity{ID: "u-1"})
	assert.Equal(t, ViewDashboard, c.CurrentView())

	c2, _ := newTestController(nil, nil)
	c2.SelectView(ViewNotices)
	c2.IdentityObserved(context.Background(), &Identity{ID: "u-1"})
	assert.Equal(t, ViewNotices, c2.CurrentView())
}

func TestResolveFailureLeavesViewUnchanged(t *testing.T) {
	c, _ := newTestController(nil, errors.New("store offline"))
	c.SelectView(ViewAuth)
	c.IdentityObserved(context.Background(), &Identity{ID: "u-1"})
	assert.Equal(t, ViewAuth, c.CurrentView())
	assert.Nil(t, c.Profile())
}

func TestSelectViewIsUnconditional(t *testing.T) {
	c, _ := newTestController(nil, nil)
	c.SelectView(ViewSuperLogs)
	assert.Equal(t, ViewSuperLogs, c.CurrentView())
}

func TestLogoutGraceSuppressesSelectViewThenSignsOut(t *testing.T) {
	c, sessions := newTestController(profileWithRole(entity.RoleTeacher), nil)
	c.SelectView(ViewAuth)
	c.IdentityObserved(context.Background(), &Identity{ID: "t-1"})
	assert.Equal(t, ViewTeacherDashboard, c.CurrentView())

	c.SelectView(ViewTeacherNotices)
	c.Logout(context.Background())
	assert.True(t, c.LoggingOut())

	c.SelectView(ViewTeacherHomework)
	assert.Equal(t, ViewTeacherNotices, c.CurrentView())

	assert.Eventually(t, func() bool { return !c.LoggingOut() }, time.Second, 5*time.Millisecond)

	sessions.mu.Lock()
	signOuts := sessions.signOuts
	sessions.mu.Unlock()
	assert.Equal(t, 1, signOuts)

	// The store then reports the signed-out identity; input is unmuted.
	c.IdentityObserved(context.Background(), nil)
	assert.Equal(t, ViewAuth, c.CurrentView())
	c.SelectView(ViewOnboarding)
	assert.Equal(t, ViewOnboarding, c.CurrentView())
}

func TestObserveIdentityFiresImmediatelyOnStart(t *testing.T) {
	sessions := &fakeSessions{current: &Identity{ID: "s-1"}}
	c := NewController(sessions, &fakeResolver{profile: profileWithRole(entity.RoleParent)}, time.Millisecond)
	c.SelectView(ViewAuth)
	c.Start(context.Background())
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return c.CurrentView() == ViewParentDashboard
	}, time.Second, 5*time.Millisecond)
}
