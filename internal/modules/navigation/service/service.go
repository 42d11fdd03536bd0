package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/modules/navigation/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/navigation"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

// NavigatorService hosts one navigation controller per signed-in user and
// translates HTTP events into controller calls. Sessions are created lazily
// on first touch and the identity is signed in immediately, which kicks off
// the role redirect.
type NavigatorService interface {
	State(ctx context.Context, userID uuid.UUID) dto.StateResponse
	Event(ctx context.Context, userID uuid.UUID, req dto.EventRequest) (dto.StateResponse, error)
	EndSession(userID uuid.UUID)
}

type navigatorService struct {
	resolver    navigation.ProfileResolver
	grace       time.Duration
	splashDelay time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*clientSession
}

type clientSession struct {
	bridge     *sessionBridge
	controller *navigation.Controller
}

func NewNavigatorService(resolver navigation.ProfileResolver, logoutGrace, splashDelay time.Duration) NavigatorService {
	return &navigatorService{
		resolver:    resolver,
		grace:       logoutGrace,
		splashDelay: splashDelay,
		sessions:    make(map[uuid.UUID]*clientSession),
	}
}

func (s *navigatorService) sessionFor(userID uuid.UUID) *clientSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[userID]; ok {
		return session
	}

	bridge := newSessionBridge()
	controller := navigation.NewController(bridge, s.resolver, s.grace)
	controller.Start(context.Background())
	bridge.SignIn(&navigation.Identity{ID: userID.String()})

	// The splash screen advances on a fixed timer, same as the client shell.
	if s.splashDelay > 0 {
		time.AfterFunc(s.splashDelay, controller.SplashElapsed)
	}

	session := &clientSession{bridge: bridge, controller: controller}
	s.sessions[userID] = session
	return session
}

func (s *navigatorService) State(ctx context.Context, userID uuid.UUID) dto.StateResponse {
	return snapshot(s.sessionFor(userID).controller)
}

func (s *navigatorService) Event(ctx context.Context, userID uuid.UUID, req dto.EventRequest) (dto.StateResponse, error) {
	controller := s.sessionFor(userID).controller

	switch req.Event {
	case "splashElapsed":
		controller.SplashElapsed()
	case "advanceOnboarding":
		controller.AdvanceOnboarding()
	case "skipOnboarding":
		controller.SkipOnboarding()
	case "select":
		view, err := navigation.ParseView(req.View)
		if err != nil {
			return dto.StateResponse{}, apperror.New(http.StatusBadRequest, "unknown view", apperror.ErrInvalidInput)
		}
		controller.SelectView(view)
	case "logout":
		controller.Logout(ctx)
	default:
		return dto.StateResponse{}, apperror.New(http.StatusBadRequest, "unknown event", apperror.ErrInvalidInput)
	}

	return snapshot(controller), nil
}

// EndSession drops the user's controller, typically after an API logout.
func (s *navigatorService) EndSession(userID uuid.UUID) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if ok {
		session.controller.Stop()
	}
}

func snapshot(c *navigation.Controller) dto.StateResponse {
	view := c.CurrentView()
	return dto.StateResponse{
		View:       view.String(),
		Namespace:  view.Namespace().String(),
		NavBar:     view.NavBar().String(),
		FullScreen: view.IsFullScreen(),
		LoggingOut: c.LoggingOut(),
	}
}

// sessionBridge adapts the HTTP session to the controller's SessionStore
// port: sign-in happens when the session is created, sign-out when the
// controller's grace window closes.
type sessionBridge struct {
	mu        sync.Mutex
	identity  *navigation.Identity
	nextID    int
	observers map[int]func(*navigation.Identity)
}

func newSessionBridge() *sessionBridge {
	return &sessionBridge{observers: make(map[int]func(*navigation.Identity))}
}

func (b *sessionBridge) ObserveIdentity(fn func(*navigation.Identity)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.observers[id] = fn
	current := b.identity
	b.mu.Unlock()

	fn(current)

	return func() {
		b.mu.Lock()
		delete(b.observers, id)
		b.mu.Unlock()
	}
}

func (b *sessionBridge) SignIn(identity *navigation.Identity) {
	b.notify(identity)
}

func (b *sessionBridge) SignOut(ctx context.Context) error {
	b.notify(nil)
	return nil
}

func (b *sessionBridge) notify(identity *navigation.Identity) {
	b.mu.Lock()
	b.identity = identity
	observers := make([]func(*navigation.Identity), 0, len(b.observers))
	for _, fn := range b.observers {
		observers = append(observers, fn)
	}
	b.mu.Unlock()

	for _, fn := range observers {
		fn(identity)
	}
}
