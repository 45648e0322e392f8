//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"court-slot-engine/internal/domain/user"
	slotjwt "court-slot-engine/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-secret"

func sign(t *testing.T, claims slotjwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestService_RoundTrip(t *testing.T) {
	svc := slotjwt.NewService(secret, time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleOwner)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, slotjwt.Issuer, claims.Issuer)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestService_Rejects(t *testing.T) {
	svc := slotjwt.NewService(secret, time.Hour)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	testCases := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				return sign(t, slotjwt.Claims{UserID: uuid.New(), Role: "admin",
					RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", ExpiresAt: exp}})
			},
			wantErr: slotjwt.ErrInvalidToken,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				return sign(t, slotjwt.Claims{UserID: uuid.New(), Role: "admin",
					RegisteredClaims: jwt.RegisteredClaims{Issuer: slotjwt.Issuer}})
			},
			wantErr: slotjwt.ErrInvalidToken,
		},
		{
			name: "missing user id",
			token: func(t *testing.T) string {
				return sign(t, slotjwt.Claims{Role: "customer",
					RegisteredClaims: jwt.RegisteredClaims{Issuer: slotjwt.Issuer, ExpiresAt: exp}})
			},
			wantErr: slotjwt.ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return sign(t, slotjwt.Claims{UserID: uuid.New(), Role: "customer",
					RegisteredClaims: jwt.RegisteredClaims{Issuer: slotjwt.Issuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}})
			},
			wantErr: slotjwt.ErrExpiredToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not-a-jwt" },
			wantErr: slotjwt.ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token(t))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
