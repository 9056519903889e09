package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionTokenManager signs the session cookie. The cookie carries only the
// opaque session id; the session itself lives server-side in the sesiones
// table.
type SessionTokenManager struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

type SessionClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"rol"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) SessionID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

func (m SessionTokenManager) Issue(sessionID uuid.UUID, userID uint, role string) (string, error) {
	ttl := m.TTL
	if ttl == 0 {
		ttl = 30 * 24 * time.Hour
	}
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

func (m SessionTokenManager) Parse(tokenString string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, ErrInvalidSessionToken
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
