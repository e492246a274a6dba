package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// DefaultTTL is the lifetime of a session token.
const DefaultTTL = 7 * 24 * time.Hour

var errMissingUserID = errors.New("token has no user id")

// Claims represents session token claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"userId"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	clock     func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a token manager signing with secretKey. A non-positive ttl
// falls back to DefaultTTL.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, clock: time.Now}
}

// GenerateToken creates a signed token carrying userID.
func (j *JWT) GenerateToken(userID uuid.UUID) (string, error) {
	now := j.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates signature, algorithm and expiry and returns the user ID.
func (j *JWT) ParseToken(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.clock), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("token is invalid")
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, errMissingUserID
	}
	return claims.UserID, nil
}
