package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

// Ensure Verifier implements TokenVerifier
var _ driven.TokenVerifier = (*Verifier)(nil)

// Verifier validates bearer tokens minted by the frontend identity provider.
// Tokens are HS256-signed and carry at least an email claim; name and picture
// are optional.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a new token verifier with the given signing secret
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token and extracts the principal.
// Any signature failure, wrong algorithm, or missing email claim maps to
// domain.ErrUnauthorized.
func (v *Verifier) Verify(tokenString string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token missing email claim", domain.ErrUnauthorized)
	}

	name, _ := claims["name"].(string)
	if name == "" {
		// Fall back to the mailbox name
		name = strings.SplitN(email, "@", 2)[0]
	}
	avatar, _ := claims["picture"].(string)

	return &domain.Principal{
		Email:  email,
		Name:   name,
		Avatar: avatar,
	}, nil
}
