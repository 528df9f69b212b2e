package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/account-service/internal/domain"
)

// ErrInvalidToken covers malformed, tampered and expired tokens alike; the
// caller gets no finer distinction.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies signed bearer tokens. The secret is
// injected at construction, never read from ambient state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager for the given signing secret and TTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims is the JWT payload: the user id plus registered claims.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the user id, expiring after the configured TTL.
func (tm *TokenManager) Issue(userID int64) (string, domain.Token, error) {
	now := time.Now()
	meta := domain.Token{UserID: userID, IssuedAt: now, ExpiresAt: now.Add(tm.ttl)}

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(meta.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(meta.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", domain.Token{}, err
	}
	return signed, meta, nil
}

// Verify parses and validates a token, returning its claims. Any defect,
// bad signature, wrong method, malformed string, expiry, maps to
// ErrInvalidToken.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
