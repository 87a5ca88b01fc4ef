package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cbmpe-api/internal/model"
)

// TokenCodec signs and verifies the stateless session tokens the API hands
// out on register/login. Tokens are HS256 JWTs carrying only the subject id
// and expiry; no server-side session record exists, so rotating the secret
// invalidates every outstanding token at once.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign issues a token for the given account id, valid for the configured TTL.
func (c *TokenCodec) Sign(subjectID string) (string, error) {
	now := c.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	})
	return token.SignedString(c.secret)
}

// Verify validates signature and expiry and returns the subject id. Expired
// tokens yield model.ErrTokenExpired; anything else that fails (bad
// signature, wrong algorithm, malformed structure, missing subject) yields
// model.ErrTokenInvalid. Claims beyond sub/iat/exp are ignored.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, model.ErrTokenInvalid
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", model.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", model.ErrTokenInvalid
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", model.ErrTokenInvalid
	}

	return subject, nil
}
