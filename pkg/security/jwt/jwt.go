package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL applies when the generator is built without a lifetime.
const DefaultTTL = time.Hour

// Generator signs recruiter tokens. Sessions are issued by the external
// login service; this is what it and local tooling use to mint compatible tokens.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Claims: subject is the numeric recruiter id.
type Claims struct {
	jwt.RegisteredClaims
}

func (g *Generator) Generate(userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.New("user id must be positive")
	}
	if len(g.secret) == 0 {
		return "", errors.New("signing secret is empty")
	}
	now := g.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    g.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}
