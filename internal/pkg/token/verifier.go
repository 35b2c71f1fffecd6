package token

import (
	"fmt"

	xerrors "crm-service/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates HS256 bearer tokens issued by the external auth
// collaborator. The only thing this service takes from a token is the
// subject, used as an opaque caller identity; authorization decisions
// happen upstream.
type Verifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewVerifier(secret, issuer, audience string) *Verifier {
	return &Verifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Verify parses and validates the token and returns its subject.
func (v *Verifier) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", xerrors.ErrUnauthorized, err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: token has no subject", xerrors.ErrUnauthorized)
	}

	return subject, nil
}
