package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestCheckEmptyToken(t *testing.T) {
	if err := Check(&Static{}); !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if err := Check(nil); !errors.Is(err, ErrNoToken) {
		t.Fatalf("nil session: err = %v, want ErrNoToken", err)
	}
}

func TestCheckOpaqueTokenPasses(t *testing.T) {
	// tokens that are not JWTs cannot be inspected, the server decides
	if err := Check(&Static{Token: "opaque-api-key"}); err != nil {
		t.Fatalf("opaque token rejected: %v", err)
	}
}

func TestCheckExpiredJWT(t *testing.T) {
	s := &Static{Token: signedToken(t, time.Now().Add(-time.Hour))}
	if err := Check(s); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestCheckLiveJWT(t *testing.T) {
	s := &Static{Token: signedToken(t, time.Now().Add(time.Hour))}
	if err := Check(s); err != nil {
		t.Fatalf("live token rejected: %v", err)
	}
}
