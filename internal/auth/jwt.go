package auth

import (
	"errors"
	"fmt"
	"task-service/internal/domain/user"
	"task-service/internal/rbac"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. The subject carries the identity id.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller reconstructed from a valid token.
type Principal struct {
	ID        string
	Name      string
	Role      rbac.Role
	ExpiresAt time.Time
}

// TokenService issues and validates HS256 tokens. Validation is stateless
// and uses zero clock-skew leeway.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
	now      func() time.Time
}

type TokenOption func(*TokenService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(secret, issuer, audience string, expiry time.Duration, opts ...TokenOption) *TokenService {
	s := &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate signs a token for u valid for the configured window.
func (s *TokenService) Generate(u *user.User) (string, time.Time, error) {
	if u == nil {
		return "", time.Time{}, errors.New(msgNilIdentity)
	}

	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := Claims{
		Name: u.UserName,
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(msgTokenSignFailed, err)
	}

	return signed, claims.ExpiresAt.Time, nil
}

// Validate verifies signature, algorithm, issuer, audience and expiry.
// A token is rejected once now >= exp.
func (s *TokenService) Validate(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(msgUnexpectedSigningMethod, token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		return nil, fmt.Errorf(msgTokenParseFailed, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New(msgInvalidTokenClaims)
	}

	if claims.Subject == "" {
		return nil, errors.New(msgMissingSubject)
	}

	return &Principal{
		ID:        claims.Subject,
		Name:      claims.Name,
		Role:      rbac.Role(claims.Role),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IsExpired reports whether tokenString is a syntactically valid JWT whose
// expiry has passed. The signature is not checked; the result is only used
// to pick the rejection message.
func (s *TokenService) IsExpired(tokenString string) bool {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !s.now().Before(exp.Time)
}
