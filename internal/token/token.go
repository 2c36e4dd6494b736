package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"inventory-api/internal/apperr"
)

// Claims carries the identity minted at login and trusted verbatim for the
// token's lifetime. There is no revocation: a deleted account's old tokens
// stay valid until expiry.
type Claims struct {
	Role    string `json:"role"`
	StaffID string `json:"staff_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies bearer tokens. The secret and TTL are injected
// at construction, never read from ambient globals.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs an HS256 token for the given role and staff id.
func (m *Manager) Issue(role, staffID string) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		Role:    role,
		StaffID: staffID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a bearer token. Every failure mode (garbage,
// wrong algorithm, bad signature, expiry, missing identity) collapses into
// one Unauthorized error so callers cannot tell which check failed.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return nil, errUnauthorized()
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errUnauthorized()
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, errUnauthorized()
	}
	if claims.Role == "" || claims.StaffID == "" {
		return nil, errUnauthorized()
	}
	return &claims, nil
}

func errUnauthorized() error {
	return apperr.Unauthorized("invalid or expired token")
}
