package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"appraisal/internal/auth"
	"appraisal/internal/cache"
	apperrors "appraisal/internal/errors"
	"appraisal/internal/logger"
	"appraisal/internal/model"
	"appraisal/internal/repository"
	"appraisal/internal/session"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *model.User
	Session      session.Context
}

// IdentityService handles registration, authentication and session identity.
type IdentityService interface {
	Register(ctx context.Context, username, password, name string, role model.Role) (*model.User, error)
	Authenticate(ctx context.Context, username, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, username, password string, role model.Role) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string, access *auth.Claims) error
	CurrentIdentity(ctx context.Context, sess session.Context) (*model.User, error)
	ListFaculty(ctx context.Context) ([]model.FacultySummary, error)
	SeedSampleUsers(ctx context.Context) (int, error)
}

// SampleUser is a demo account created on an empty store.
type SampleUser struct {
	Username string
	Password string
	Name     string
	Role     model.Role
}

// SampleUsers are the demo accounts, one per role.
var SampleUsers = []SampleUser{
	{Username: "john", Password: "faculty123", Name: "John Smith", Role: model.RoleFaculty},
	{Username: "jane", Password: "dean123", Name: "Jane Doe", Role: model.RoleEvaluator},
	{Username: "mike", Password: "student123", Name: "Mike Johnson", Role: model.RoleStudent},
}

type identityService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	cache      *cache.Client
}

// NewIdentityService creates a new identity service.
func NewIdentityService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, cache *cache.Client) IdentityService {
	return &identityService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		cache:      cache,
	}
}

const userCacheKeyPrefix = "user:"

func userCacheKey(username string) string {
	return userCacheKeyPrefix + username
}

// Register creates a new user with a hashed password.
func (s *identityService) Register(ctx context.Context, username, password, name string, role model.Role) (*model.User, error) {
	parsed, ok := model.ParseRole(string(role))
	if !ok {
		return nil, apperrors.ErrInvalidRole
	}
	role = parsed

	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateIdentifier
	}
	if err != nil && !isNotFound(err) {
		return nil, storeError("check user existence", err, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		Name:         name,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateIdentifier
		}
		return nil, storeError("create user", err, nil)
	}

	logger.Info().Str("username", username).Str("role", string(role)).Msg("user registered")
	return user, nil
}

// Authenticate succeeds only when username, password and role all match.
func (s *identityService) Authenticate(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, storeError("find user", err, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	claimed, ok := model.ParseRole(string(role))
	if !ok || user.Role != claimed {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and returns an access/refresh token pair.
func (s *identityService) Login(ctx context.Context, username, password string, role model.Role) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, username, password, role)
	if err != nil {
		return nil, err
	}

	_, accessToken, err := s.jwtService.GenerateAccessToken(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, refreshID, user.Username, user.Role, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Session:      session.Anonymous().Login(user.Username, user.Role),
	}, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *identityService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedUsername, storedRole, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if storedUsername != claims.Username || storedRole != claims.Role {
		return "", apperrors.ErrInvalidRefreshToken
	}

	_, accessToken, err := s.jwtService.GenerateAccessToken(claims.Username, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes the refresh token and blacklists the current access token.
func (s *identityService) Logout(ctx context.Context, refreshToken string, access *auth.Claims) error {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	if access != nil && access.Username != claims.Username {
		return apperrors.ErrInvalidRefreshToken
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	if access != nil {
		if err := s.tokenStore.BlacklistAccessToken(ctx, access.ID, s.jwtService.Remaining(access)); err != nil {
			return fmt.Errorf("blacklist access token: %w", err)
		}
	}
	return nil
}

// CurrentIdentity resolves the session back to a user. An unauthenticated
// session, or one whose user no longer exists, yields nil without error.
func (s *identityService) CurrentIdentity(ctx context.Context, sess session.Context) (*model.User, error) {
	if !sess.IsAuthenticated() {
		return nil, nil
	}

	var cached model.User
	if s.cache.GetJSON(ctx, userCacheKey(sess.Identifier), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindByUsername(ctx, sess.Identifier)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storeError("find user", err, nil)
	}

	_ = s.cache.SetJSON(ctx, userCacheKey(user.Username), user, userCacheTTL)
	return user, nil
}

// ListFaculty returns every faculty member as a directory entry.
func (s *identityService) ListFaculty(ctx context.Context) ([]model.FacultySummary, error) {
	users, err := s.users.ListByRole(ctx, model.RoleFaculty)
	if err != nil {
		return nil, storeError("list faculty", err, nil)
	}
	out := make([]model.FacultySummary, 0, len(users))
	for _, u := range users {
		out = append(out, model.FacultySummary{Username: u.Username, Name: u.Name})
	}
	return out, nil
}

// SeedSampleUsers registers SampleUsers when the store has no users yet and
// returns how many were created.
func (s *identityService) SeedSampleUsers(ctx context.Context) (int, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return 0, storeError("count users", err, nil)
	}
	if n > 0 {
		return 0, nil
	}

	created := 0
	for _, u := range SampleUsers {
		if _, err := s.Register(ctx, u.Username, u.Password, u.Name, u.Role); err != nil {
			return created, fmt.Errorf("seed %s: %w", u.Username, err)
		}
		created++
	}
	return created, nil
}
