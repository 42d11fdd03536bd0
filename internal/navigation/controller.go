package navigation

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

// Identity is the externally authenticated user as the session store reports
// it. Empty DisplayName/Email mean the provider did not supply them.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
}

// SessionStore is the identity provider contract. ObserveIdentity fires the
// callback once immediately with the current state and again on every
// sign-in/out; a nil identity means signed out.
type SessionStore interface {
	ObserveIdentity(fn func(*Identity)) (unsubscribe func())
	SignOut(ctx context.Context) error
}

// ProfileResolver maps an identity to its stored role record. A missing
// record is (nil, nil), not an error.
type ProfileResolver interface {
	Resolve(ctx context.Context, identityID string) (*entity.Profile, error)
}

// HomeView is the landing view for a role. Unknown roles are an error, never
// a silent fallback to the student dashboard.
func HomeView(role entity.Role) (View, error) {
	switch role {
	case entity.RoleSuperAdmin:
		return ViewSuperDashboard, nil
	case entity.RoleAdmin:
		return ViewAdminDashboard, nil
	case entity.RoleTeacher:
		return ViewTeacherDashboard, nil
	case entity.RoleParent:
		return ViewParentDashboard, nil
	case entity.RoleStudent:
		return ViewDashboard, nil
	}
	return 0, fmt.Errorf("no home view for role %q", role)
}

const (
	onboardingSteps    = 3
	defaultLogoutGrace = 600 * time.Millisecond
)

// Controller is the navigation state machine. It owns its state instance and
// talks to the identity provider only through the injected ports, so it can
// be driven entirely by fakes in tests.
//
// Profile resolution happens without the lock held; the lock is taken only
// when the result is applied, and the public-view guard reads the view at
// that moment. That live read is the only mitigation for a resolve landing
// after the user navigated elsewhere; in-flight resolves are never cancelled.
type Controller struct {
	sessions SessionStore
	resolver ProfileResolver
	grace    time.Duration

	mu             sync.Mutex
	view           View
	identity       *Identity
	profile        *entity.Profile
	onboardingStep int
	loggingOut     bool
	unsubscribe    func()
}

func NewController(sessions SessionStore, resolver ProfileResolver, logoutGrace time.Duration) *Controller {
	if logoutGrace <= 0 {
		logoutGrace = defaultLogoutGrace
	}
	return &Controller{
		sessions: sessions,
		resolver: resolver,
		grace:    logoutGrace,
		view:     ViewSplash,
	}
}

// Start subscribes the controller to the session store. Identity callbacks
// run on their own goroutine so a slow profile resolve never blocks the
// store's event delivery.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe != nil {
		return
	}
	c.unsubscribe = c.sessions.ObserveIdentity(func(id *Identity) {
		go c.IdentityObserved(ctx, id)
	})
}

func (c *Controller) Stop() {
	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (c *Controller) CurrentView() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller) Profile() *entity.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

func (c *Controller) Identity() *Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// SplashElapsed fires once after the fixed splash delay.
func (c *Controller) SplashElapsed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == ViewSplash {
		c.view = ViewOnboarding
	}
}

// AdvanceOnboarding moves to the next onboarding step; past the last step it
// lands on auth.
func (c *Controller) AdvanceOnboarding() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view != ViewOnboarding {
		return
	}
	c.onboardingStep++
	if c.onboardingStep >= onboardingSteps {
		c.view = ViewAuth
	}
}

// SkipOnboarding jumps straight to auth.
func (c *Controller) SkipOnboarding() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == ViewOnboarding {
		c.view = ViewAuth
	}
}

// SelectView is a user-driven navigation tap. It is unconditional, except
// while the logout grace window is open, when all taps are suppressed.
func (c *Controller) SelectView(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loggingOut {
		return
	}
	c.view = v
}

// IdentityObserved latches the new identity and applies the role redirect
// rules. With a live identity the profile is fetched via the resolver; the
// caller's goroutine blocks on that fetch, and the outcome is applied against
// the view as it is at completion time, not as it was when the fetch began.
func (c *Controller) IdentityObserved(ctx context.Context, id *Identity) {
	c.mu.Lock()
	c.identity = id

	if id == nil {
		c.profile = nil
		// A forced logout redirect must not interrupt first-run onboarding.
		if c.view != ViewSplash && c.view != ViewOnboarding {
			c.view = ViewAuth
		}
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	profile, err := c.resolver.Resolve(ctx, id.ID)
	if err != nil {
		// Swallowed: the user stays where they are and retries by
		// re-navigating (documented behaviour, not a bug).
		log.Printf("navigation: resolving profile for %s failed: %v", id.ID, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = profile

	isPublic := c.view.IsPublic() // live read, see type comment

	if profile == nil {
		// No role record provisioned for this identity. Fail open to the
		// student dashboard, but only off a public view.
		if isPublic {
			c.view = ViewDashboard
		}
		return
	}

	home, err := HomeView(profile.Role)
	if err != nil {
		log.Printf("navigation: %v", err)
		return
	}
	if profile.Role == entity.RoleStudent {
		// An already-navigated student session is not yanked back home.
		if isPublic {
			c.view = home
		}
		return
	}
	c.view = home
}

// Logout opens the grace window, signs out of the session store once it
// elapses, and then relies on the store's identity(nil) callback for the
// redirect to auth. The grace state is cosmetic: it only mutes SelectView.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	if c.loggingOut {
		c.mu.Unlock()
		return
	}
	c.loggingOut = true
	c.mu.Unlock()

	go func() {
		time.Sleep(c.grace)
		if err := c.sessions.SignOut(ctx); err != nil {
			log.Printf("navigation: sign-out failed: %v", err)
		}
		c.mu.Lock()
		c.loggingOut = false
		c.mu.Unlock()
	}()
}

// LoggingOut reports whether the grace window is open.
func (c *Controller) LoggingOut() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loggingOut
}
