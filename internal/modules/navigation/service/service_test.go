package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/navigation/dto"
)

type fakeResolver struct {
	profile *entity.Profile
}

func (f *fakeResolver) Resolve(ctx context.Context, identityID string) (*entity.Profile, error) {
	return f.profile, nil
}

func teacherProfile() *entity.Profile {
	return &entity.Profile{
		UserID: uuid.New(),
		Name:   "Ms Rahma",
		Role:   entity.RoleTeacher,
		Status: entity.StatusApproved,
	}
}

func TestSessionLandsOnRoleHome(t *testing.T) {
	svc := NewNavigatorService(&fakeResolver{profile: teacherProfile()}, time.Millisecond, 0)
	userID := uuid.New()

	// The first touch signs the identity in; the redirect applies once the
	// profile resolve completes.
	assert.Eventually(t, func() bool {
		return svc.State(context.Background(), userID).View == "teacherDashboard"
	}, time.Second, 5*time.Millisecond)

	state := svc.State(context.Background(), userID)
	assert.Equal(t, "teacher", state.Namespace)
	assert.Equal(t, "teacher", state.NavBar)
	assert.False(t, state.FullScreen)
}

func TestEventsDriveTheController(t *testing.T) {
	svc := NewNavigatorService(&fakeResolver{profile: teacherProfile()}, time.Millisecond, 0)
	userID := uuid.New()

	assert.Eventually(t, func() bool {
		return svc.State(context.Background(), userID).View == "teacherDashboard"
	}, time.Second, 5*time.Millisecond)

	state, err := svc.Event(context.Background(), userID, dto.EventRequest{Event: "select", View: "teacherNotices"})
	require.NoError(t, err)
	assert.Equal(t, "teacherNotices", state.View)

	_, err = svc.Event(context.Background(), userID, dto.EventRequest{Event: "select", View: "notAView"})
	assert.Error(t, err)

	_, err = svc.Event(context.Background(), userID, dto.EventRequest{Event: "shake"})
	assert.Error(t, err)
}

func TestLogoutEventOpensGraceWindow(t *testing.T) {
	svc := NewNavigatorService(&fakeResolver{profile: teacherProfile()}, 50*time.Millisecond, 0)
	userID := uuid.New()

	assert.Eventually(t, func() bool {
		return svc.State(context.Background(), userID).View == "teacherDashboard"
	}, time.Second, 5*time.Millisecond)

	state, err := svc.Event(context.Background(), userID, dto.EventRequest{Event: "logout"})
	require.NoError(t, err)
	assert.True(t, state.LoggingOut)

	// Taps during the window are swallowed.
	state, err = svc.Event(context.Background(), userID, dto.EventRequest{Event: "select", View: "teacherNotices"})
	require.NoError(t, err)
	assert.NotEqual(t, "teacherNotices", state.View)

	// Once the grace elapses the bridge signs out and the view falls to auth.
	assert.Eventually(t, func() bool {
		return svc.State(context.Background(), userID).View == "auth"
	}, time.Second, 5*time.Millisecond)
}

func TestEndSessionForgetsTheController(t *testing.T) {
	svc := NewNavigatorService(&fakeResolver{profile: teacherProfile()}, time.Millisecond, 0)
	userID := uuid.New()

	assert.Eventually(t, func() bool {
		return svc.State(context.Background(), userID).View == "teacherDashboard"
	}, time.Second, 5*time.Millisecond)

	svc.EndSession(userID)

	// A fresh session starts over from splash and redirects again.
	state := svc.State(context.Background(), userID)
	assert.Contains(t, []string{"splash", "teacherDashboard"}, state.View)
}
