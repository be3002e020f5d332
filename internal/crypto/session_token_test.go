package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signClaims(t *testing.T, method jwt.SigningMethod, claims sessionClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := IssueSessionToken("session-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueSessionToken() unexpected error: %v", err)
	}

	id, err := SessionFromToken(token, "test-secret")
	if err != nil {
		t.Fatalf("SessionFromToken() unexpected error: %v", err)
	}
	if id != "session-1" {
		t.Errorf("SessionFromToken() = %q, want %q", id, "session-1")
	}
}

func TestIssueSessionTokenEmptyID(t *testing.T) {
	if _, err := IssueSessionToken("", "test-secret", time.Hour); err != ErrEmptySessionID {
		t.Errorf("IssueSessionToken(\"\") error = %v, want ErrEmptySessionID", err)
	}
}

func TestSessionFromTokenRejects(t *testing.T) {
	secret := "test-secret"
	valid := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	wrongIssuer := valid
	wrongIssuer.Issuer = "wrong-issuer"

	wrongAudience := valid
	wrongAudience.Audience = jwt.ClaimStrings{"wrong-audience"}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	hs256 := jwt.SigningMethodHS256
	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-valid-token"},
		{name: "wrong issuer", token: signClaims(t, hs256, sessionClaims{RegisteredClaims: wrongIssuer, SessionID: "s"}, secret)},
		{name: "wrong audience", token: signClaims(t, hs256, sessionClaims{RegisteredClaims: wrongAudience, SessionID: "s"}, secret)},
		{name: "expired", token: signClaims(t, hs256, sessionClaims{RegisteredClaims: expired, SessionID: "s"}, secret)},
		{name: "no expiry", token: signClaims(t, hs256, sessionClaims{RegisteredClaims: noExpiry, SessionID: "s"}, secret)},
		{name: "missing session id", token: signClaims(t, hs256, sessionClaims{RegisteredClaims: valid}, secret)},
		{name: "wrong secret", token: signClaims(t, hs256, sessionClaims{RegisteredClaims: valid, SessionID: "s"}, "other-secret")},
		{name: "other hmac method", token: signClaims(t, jwt.SigningMethodHS512, sessionClaims{RegisteredClaims: valid, SessionID: "s"}, secret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SessionFromToken(tt.token, secret); err != ErrInvalidToken {
				t.Errorf("SessionFromToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
