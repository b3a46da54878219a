package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/Amadavid/alx-backend-user-data/internal/user"
)

// BasicAuth authenticates every request from an
// "Authorization: Basic base64(email:password)" header.
type BasicAuth struct {
	users UserFinder
}

func NewBasicAuth(users UserFinder) *BasicAuth {
	return &BasicAuth{users: users}
}

// ExtractBase64 returns the encoded part of a Basic authorization header.
func ExtractBase64(header string) string {
	encoded, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return ""
	}
	return encoded
}

// DecodeBase64 decodes the header payload, returning "" when it is not
// valid UTF-8 base64.
func DecodeBase64(encoded string) string {
	if encoded == "" {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !utf8.Valid(raw) {
		return ""
	}
	return string(raw)
}

// ExtractCredentials splits "email:password" on the first colon, so the
// password may itself contain colons.
func ExtractCredentials(decoded string) (email, password string, ok bool) {
	return strings.Cut(decoded, ":")
}

// UserFromCredentials returns the user with that email when the password
// matches, or nil.
func (b *BasicAuth) UserFromCredentials(ctx context.Context, email, password string) (*user.User, error) {
	if email == "" || password == "" || b.users == nil {
		return nil, nil
	}

	u, err := b.users.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}
	if !u.IsValidPassword(password) {
		return nil, nil
	}
	return u, nil
}

func (b *BasicAuth) CurrentUser(r *http.Request) (*user.User, error) {
	decoded := DecodeBase64(ExtractBase64(AuthorizationHeader(r)))
	email, password, ok := ExtractCredentials(decoded)
	if !ok {
		return nil, nil
	}
	return b.UserFromCredentials(r.Context(), email, password)
}

func (b *BasicAuth) CreateSession(context.Context, string) (string, error) {
	return "", ErrUnsupported
}

func (b *BasicAuth) DestroySession(*http.Request) (bool, error) {
	return false, nil
}
