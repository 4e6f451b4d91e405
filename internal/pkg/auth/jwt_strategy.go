package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the session token payload.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTStrategy issues and verifies HS256 signed session tokens.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken signs a token carrying the user id and role.
func (s *JWTStrategy) IssueToken(identity model.Identity) (string, error) {
	now := s.now().UTC()
	claims := &Claims{
		UserID: identity.UserID,
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates the signature and expiry and returns the caller identity.
func (s *JWTStrategy) ParseToken(tokenStr string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	identity := model.Identity{UserID: claims.UserID, Role: model.Role(claims.Role)}
	if identity.UserID == "" || !identity.Role.Valid() {
		return model.Identity{}, ErrInvalidToken
	}
	return identity, nil
}

// TTL reports how long issued tokens stay valid.
func (s *JWTStrategy) TTL() time.Duration {
	return s.ttl
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
