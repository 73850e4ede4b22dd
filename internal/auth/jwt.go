package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaticVerifier accepts HS256 tokens signed with a shared secret.
// Used when AUTH_MODE=static, so dev environments and tests don't need
// to talk to Firebase. The subject claim carries the uid.
type StaticVerifier struct {
	secret []byte
}

type staticClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func NewStaticVerifier(secret string) *StaticVerifier {
	return &StaticVerifier{secret: []byte(secret)}
}

func (v *StaticVerifier) Verify(_ context.Context, credential string) (Identity, error) {
	token, err := jwt.ParseWithClaims(credential, &staticClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Enforce HS256

		_, ok := t.Method.(*jwt.SigningMethodHMAC)

		if !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})

	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*staticClaims)

	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return Identity{}, errors.New("missing subject")
	}

	return Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Claims:    map[string]any{"email": claims.Email},
	}, nil
}

// Issue mints a token the verifier will accept. Dev tooling and tests only.
func (v *StaticVerifier) Issue(uid, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := staticClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   uid,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
