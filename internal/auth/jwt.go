package auth

import (
	"comepouco/internal/entity/db"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every token that fails verification:
// bad signature, malformed, expired or carrying an unusable subject.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents JWT claims for authenticated requests. Role is not
// carried; it is loaded from the user record per request.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager encapsulates JWT generation and validation.
type Manager struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// NewManager creates a new JWT manager.
func NewManager(secret, issuer string, expiry time.Duration) (*Manager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if expiry <= 0 {
		expiry = 8 * time.Hour
	}
	if strings.TrimSpace(issuer) == "" {
		issuer = "come-pouco"
	}
	return &Manager{
		secret: []byte(trimmed),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// GenerateToken issues a signed JWT for the provided user.
func (m *Manager) GenerateToken(user *db.User) (string, time.Time, error) {
	if m == nil {
		return "", time.Time{}, errors.New("jwt manager is nil")
	}
	if user == nil || user.ID == 0 {
		return "", time.Time{}, errors.New("invalid user for token generation")
	}
	now := m.now().UTC()
	expiry := now.Add(m.expiry)

	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

// ParseToken validates the token and returns claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	if m == nil {
		return nil, errors.New("jwt manager is nil")
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifySubject validates the token and returns the user id carried in its
// subject. The subject must be a positive integer.
func (m *Manager) VerifySubject(tokenString string) (uint, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(claims.Subject), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: unusable subject %q", ErrInvalidToken, claims.Subject)
	}
	return uint(id), nil
}
