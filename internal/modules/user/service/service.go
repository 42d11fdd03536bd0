package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	searchSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/search/service"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/user/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/user/repository"
	"github.com/zaheerabbaspac-hue/PAC/internal/navigation"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type userService struct {
	repo      repository.UserRepository
	search    searchSvc.SearchService
	blacklist *RedisBlacklist
	secret    string
	tokenTTL  time.Duration
}

func NewUserService(repo repository.UserRepository, search searchSvc.SearchService, blacklist *RedisBlacklist, secret string, tokenTTL time.Duration) UserService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &userService{
		repo:      repo,
		search:    search,
		blacklist: blacklist,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates credentials plus a profile in one transaction. Admin tiers
// cannot self-register; teachers and parents start pending and wait for
// approval, students are approved immediately.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, "unknown role", apperror.ErrInvalidInput)
	}
	if role == entity.RoleAdmin || role == entity.RoleSuperAdmin {
		return nil, apperror.New(http.StatusForbidden, "admin accounts are provisioned, not registered", apperror.ErrForbidden)
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.New(http.StatusConflict, "email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	status := entity.StatusPending
	if role == entity.RoleStudent {
		status = entity.StatusApproved
	}

	user := &entity.User{Email: req.Email, PasswordHash: string(hash)}
	profile := &entity.Profile{
		Name:    req.Name,
		Email:   req.Email,
		Role:    role,
		Status:  status,
		Class:   req.Class,
		Section: req.Section,
	}
	if req.Subject != "" {
		profile.Subject = &req.Subject
	}
	if req.ParentName != "" {
		profile.ParentName = &req.ParentName
	}

	if err := s.repo.Create(ctx, user, profile); err != nil {
		return nil, err
	}

	if role == entity.RoleStudent && s.search != nil {
		if err := s.search.IndexStudent(profile); err != nil {
			log.Printf("auth: failed to index student %s: %v", profile.UserID, err)
		}
	}

	return s.issueSession(user.ID, profile)
}

func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusUnauthorized, "invalid credentials", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.New(http.StatusUnauthorized, "invalid credentials", apperror.ErrUnauthorized)
	}

	if user.Profile != nil && user.Profile.Status == entity.StatusRejected {
		return nil, apperror.New(http.StatusForbidden, "account rejected", apperror.ErrForbidden)
	}

	return s.issueSession(user.ID, user.Profile)
}

// Logout blacklists the presented token for its remaining lifetime. Without a
// redis-backed blacklist this degrades to a client-side logout.
func (s *userService) Logout(ctx context.Context, tokenString string) error {
	if s.blacklist == nil || tokenString == "" {
		return nil
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil {
		// Already invalid, nothing to revoke.
		return nil
	}

	ttl := s.tokenTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Revoke(ctx, tokenString, ttl)
}

func (s *userService) issueSession(userID uuid.UUID, profile *entity.Profile) (*dto.AuthResponse, error) {
	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	resp := &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   profile,
		// A signed-in identity with no profile record lands on the student
		// dashboard rather than being locked out.
		HomeView: navigation.ViewDashboard.String(),
	}

	if profile != nil {
		home, err := navigation.HomeView(profile.Role)
		if err != nil {
			return nil, err
		}
		resp.HomeView = home.String()

		if s.search != nil {
			searchToken, err := s.search.GenerateSearchToken(profile.Role)
			if err != nil {
				log.Printf("auth: failed to generate search token for %s: %v", userID, err)
			} else {
				resp.SearchToken = searchToken
			}
		}
	}
	return resp, nil
}

// RedisBlacklist stores revoked tokens until their natural expiry. It is the
// write side of the middleware's TokenBlacklist.
type RedisBlacklist struct {
	client *redis.Client
}

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	if client == nil {
		return nil
	}
	return &RedisBlacklist{client: client}
}

func (b *RedisBlacklist) key(token string) string { return "blacklist:" + token }

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return b.client.Set(ctx, b.key(token), "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
