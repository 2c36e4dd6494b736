package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-api/internal/apperr"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 10*time.Hour)

	signed, err := m.Issue("staff", "ST-042")
	require.NoError(t, err)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "ST-042", claims.StaffID)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyFailuresCollapse(t *testing.T) {
	m := NewManager("test-secret", 10*time.Hour)

	expired := NewManager("test-secret", 10*time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-11 * time.Hour) }
	expiredToken, err := expired.Issue("staff", "ST-042")
	require.NoError(t, err)

	otherSecret, err := NewManager("other-secret", 10*time.Hour).Issue("staff", "ST-042")
	require.NoError(t, err)

	// token signed with "none" must never pass, even with matching claims
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"role":     "admin",
		"staff_id": "ST-001",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"expired", expiredToken},
		{"wrong secret", otherSecret},
		{"alg none", unsigned},
		{"missing identity claims", noIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.Verify(tt.token)
			assert.Nil(t, claims)
			require.Error(t, err)
			assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
			// no detail leak: same message for every failure mode
			assert.Equal(t, "invalid or expired token", err.Error())
		})
	}
}
