package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/versionverse/backend/internal/common/clock"
	"github.com/versionverse/backend/internal/common/jwtverify"
	"github.com/versionverse/backend/internal/observability/metrics"
	userdomain "github.com/versionverse/backend/internal/user/domain"
)

// TokenIssuer signs stateless identity tokens. Expiry is first-class but
// disabled by default: a zero TTL issues tokens without an exp claim.
type TokenIssuer struct {
	jwtSecret []byte
	clock     clock.Clock
	tokenTTL  time.Duration
}

func NewTokenIssuer(jwtSecret string, tokenTTL time.Duration, clock clock.Clock) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret: []byte(jwtSecret),
		clock:     clock,
		tokenTTL:  tokenTTL,
	}
}

func (ti *TokenIssuer) Issue(user userdomain.User) (string, error) {
	now := ti.clock.Now()
	claims := jwt.MapClaims{
		"sub": string(user.ID),
		"usr": user.Username,
		"iat": now.Unix(),
	}
	if ti.tokenTTL > 0 {
		claims["exp"] = now.Add(ti.tokenTTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(ti.jwtSecret)
	if err != nil {
		return "", err
	}

	metrics.TokensIssued.Inc()
	return tokenString, nil
}

func (ti *TokenIssuer) Verify(tokenString string) (jwtverify.Claims, error) {
	return jwtverify.ParseToken(tokenString, ti.jwtSecret)
}
