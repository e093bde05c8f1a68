package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long an issued publisher token stays valid.
// There is no refresh flow; the administrator logs in again after expiry.
const TokenValidity = 7 * 24 * time.Hour

// Claims represents JWT claims structure
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret string
	now    func() time.Time // overridable in tests
}

// NewManager creates new JWT manager
func NewManager(secret string) *Manager {
	return &Manager{secret: secret, now: time.Now}
}

// GenerateAdminToken issues a signed token asserting the admin role,
// valid for TokenValidity from now.
func (m *Manager) GenerateAdminToken() (string, error) {
	issued := m.now()
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ValidateAdminToken validates the token and requires the admin role.
func (m *Manager) ValidateAdminToken(tokenString string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Role != "admin" {
		return nil, fmt.Errorf("invalid token role: expected admin, got %s", claims.Role)
	}

	return claims, nil
}

// IsValidAdminToken is the boolean form of ValidateAdminToken.
// It never returns an error; callers that need the reason use the
// Validate variants.
func (m *Manager) IsValidAdminToken(tokenString string) bool {
	_, err := m.ValidateAdminToken(tokenString)
	return err == nil
}
