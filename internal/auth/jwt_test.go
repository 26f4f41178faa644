package auth

import (
	"task-service/internal/domain/user"
	"task-service/internal/rbac"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "k3J9x!Qw7Zp2Lm5Nv8Rt4Yb6Hc1Df0Gs"
	testIssuer   = "task-service"
	testAudience = "task-service-clients"
	testExpiry   = 20 * time.Minute
)

var issuedAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestTokenService(now time.Time) *TokenService {
	return NewTokenService(testSecret, testIssuer, testAudience, testExpiry, WithClock(fixedClock(now)))
}

func adminUser() *user.User {
	return &user.User{
		ID:       uuid.MustParse("61c26ccd-dfb0-4f39-820c-067db886a858"),
		UserName: "Jhon",
		Password: "jhonpw",
		Role:     rbac.RoleAdmin,
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(issuedAt)
	u := adminUser()

	token, expiresAt, err := svc.Generate(u)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(testExpiry), expiresAt)

	p, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), p.ID)
	assert.Equal(t, "Jhon", p.Name)
	assert.Equal(t, rbac.RoleAdmin, p.Role)
	assert.Equal(t, expiresAt, p.ExpiresAt)
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	token, _, err := newTestTokenService(issuedAt).Generate(adminUser())
	require.NoError(t, err)

	_, err = newTestTokenService(issuedAt.Add(testExpiry - time.Second)).Validate(token)
	assert.NoError(t, err, "one second before expiry must be accepted")

	_, err = newTestTokenService(issuedAt.Add(testExpiry)).Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired, "at the expiry instant must be rejected")

	_, err = newTestTokenService(issuedAt.Add(testExpiry + time.Second)).Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	verifier := newTestTokenService(issuedAt)

	tests := []struct {
		name   string
		issuer *TokenService
	}{
		{"wrong secret", NewTokenService("Zp2Lm5Nv8Rt4Yb6Hc1Df0Gsk3J9x!Qw7", testIssuer, testAudience, testExpiry, WithClock(fixedClock(issuedAt)))},
		{"wrong issuer", NewTokenService(testSecret, "someone-else", testAudience, testExpiry, WithClock(fixedClock(issuedAt)))},
		{"wrong audience", NewTokenService(testSecret, testIssuer, "other-clients", testExpiry, WithClock(fixedClock(issuedAt)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := tt.issuer.Generate(adminUser())
			require.NoError(t, err)

			_, err = verifier.Validate(token)
			assert.Error(t, err)
		})
	}
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Role: string(rbac.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "x",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := newTestTokenService(issuedAt)
	for _, token := range []string{hs512, none, "not-a-token", ""} {
		_, err := svc.Validate(token)
		assert.Error(t, err)
	}
}

func TestTokenService_RequiresExpiryAndSubject(t *testing.T) {
	svc := newTestTokenService(issuedAt)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "x", Issuer: testIssuer, Audience: jwt.ClaimStrings{testAudience}},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Validate(noExp)
	assert.Error(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Validate(noSub)
	assert.Error(t, err)
}

func TestTokenService_IsExpired(t *testing.T) {
	token, _, err := newTestTokenService(issuedAt).Generate(adminUser())
	require.NoError(t, err)

	assert.False(t, newTestTokenService(issuedAt.Add(time.Minute)).IsExpired(token))
	assert.True(t, newTestTokenService(issuedAt.Add(testExpiry)).IsExpired(token))
	assert.True(t, newTestTokenService(issuedAt.Add(time.Hour)).IsExpired(token))

	// expired tokens signed with another key still classify as expired
	foreign, _, err := NewTokenService("Zp2Lm5Nv8Rt4Yb6Hc1Df0Gsk3J9x!Qw7", "x", "y", testExpiry, WithClock(fixedClock(issuedAt))).Generate(adminUser())
	require.NoError(t, err)
	assert.True(t, newTestTokenService(issuedAt.Add(time.Hour)).IsExpired(foreign))

	assert.False(t, newTestTokenService(issuedAt).IsExpired("garbage"))
}

func TestTokenService_GenerateNil(t *testing.T) {
	_, _, err := newTestTokenService(issuedAt).Generate(nil)
	assert.Error(t, err)
}
