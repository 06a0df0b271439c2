package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"appraisal/internal/model"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 30 * time.Minute
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	errUnexpectedMethod = errors.New("unexpected signing method")
	errInvalidToken     = errors.New("invalid token")
	errWrongTokenType   = errors.New("wrong token type")
)

// Claims carries the session identity inside a JWT.
type Claims struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	Type     string     `json:"typ"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateAccessToken issues a short-lived token. The token id is returned
// so that logout can blacklist it.
func (s *JWTService) GenerateAccessToken(username string, role model.Role) (tokenID, token string, err error) {
	return s.generate(username, role, tokenTypeAccess, AccessTokenExpiry)
}

// GenerateRefreshToken issues a long-lived token whose id is stored in Redis.
func (s *JWTService) GenerateRefreshToken(username string, role model.Role) (tokenID, token string, err error) {
	return s.generate(username, role, tokenTypeRefresh, RefreshTokenExpiry)
}

func (s *JWTService) generate(username string, role model.Role, typ string, ttl time.Duration) (string, string, error) {
	now := s.now()
	tokenID := uuid.New().String()
	claims := &Claims{
		Username: username,
		Role:     role,
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return tokenID, token, nil
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedMethod
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}

// ValidateAccessToken validates tokenString and requires it to be an access token.
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.validateType(tokenString, tokenTypeAccess)
}

// ValidateRefreshToken validates tokenString and requires it to be a refresh token.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.validateType(tokenString, tokenTypeRefresh)
}

func (s *JWTService) validateType(tokenString, typ string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != typ {
		return nil, errWrongTokenType
	}
	return claims, nil
}

// Remaining returns how long claims stay valid, never negative.
func (s *JWTService) Remaining(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	d := claims.ExpiresAt.Time.Sub(s.now())
	if d < 0 {
		return 0
	}
	return d
}
