package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no access token in session")
	ErrTokenExpired = errors.New("access token has expired")
)

// Profile carries the basic identity fields the upstream auth provider
// exposes alongside the token.
type Profile struct {
	Name  string   `json:"name"`
	Image string   `json:"image"`
	Roles []string `json:"roles"`
}

// Session is the boundary to the external auth provider. The console never
// issues or refreshes tokens itself.
type Session interface {
	AccessToken() string
	Profile() Profile
}

// Static is a fixed-token session, used by commands and tests.
type Static struct {
	Token string
	User  Profile
}

func (s *Static) AccessToken() string {
	return s.Token
}

func (s *Static) Profile() Profile {
	return s.User
}

// Check verifies a usable token is present before any HTTP round trip. Expiry
// is read from unverified claims; signature verification is the API server's
// job. Tokens that are not JWTs pass through untouched.
func Check(s Session) error {
	if s == nil {
		return ErrNoToken
	}
	token := s.AccessToken()
	if token == "" {
		return ErrNoToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	if time.Now().After(exp.Time) {
		return ErrTokenExpired
	}

	return nil
}
