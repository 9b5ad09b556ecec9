package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

var issuedAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestTokenService(secret string, now time.Time) *TokenService {
	svc := NewTokenService(secret, time.Hour)
	svc.now = func() time.Time { return now }
	return svc
}

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := newTestTokenService("secret", issuedAt)
	identity := domain.Identity{Email: "alice@example.com", Name: "Alice"}

	token, err := svc.Issue(identity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Identity != identity {
		t.Fatalf("expected identity %+v, got %+v", identity, claims.Identity)
	}
	if !claims.IssuedAt.Equal(issuedAt) {
		t.Fatalf("unexpected iat: %v", claims.IssuedAt)
	}
	if !claims.ExpiresAt.Equal(issuedAt.Add(time.Hour)) {
		t.Fatalf("expected exp one hour after issuance, got %v", claims.ExpiresAt)
	}
}

func TestTokenService_Verify_Expiry(t *testing.T) {
	svc := newTestTokenService("secret", issuedAt)
	token, err := svc.Issue(domain.Identity{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected token valid just before expiry, got %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := newTestTokenService("secret", issuedAt)
	verifier := newTestTokenService("rotated", issuedAt)

	token, _ := issuer.Issue(domain.Identity{Email: "alice@example.com"})
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_Verify_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestTokenService("secret", issuedAt)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "mallory@example.com",
		"exp":   issuedAt.Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := newTestTokenService("secret", issuedAt)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_Verify_MissingClaims(t *testing.T) {
	svc := newTestTokenService("secret", issuedAt)

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@example.com",
	}).SignedString([]byte("secret"))
	if _, err := svc.Verify(noExp); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for missing exp, got %v", err)
	}

	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": issuedAt.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if _, err := svc.Verify(noEmail); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for missing email, got %v", err)
	}
}

func TestTokenService_Issue_SameInstantSameClaims(t *testing.T) {
	svc := newTestTokenService("secret", issuedAt)
	identity := domain.Identity{Email: "alice@example.com"}

	first, err := svc.Issue(identity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	second, err := svc.Issue(identity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	a, err := svc.Verify(first)
	if err != nil {
		t.Fatalf("verify first: %v", err)
	}
	b, err := svc.Verify(second)
	if err != nil {
		t.Fatalf("verify second: %v", err)
	}
	if a.Identity != b.Identity || !a.IssuedAt.Equal(b.IssuedAt) || !a.ExpiresAt.Equal(b.ExpiresAt) {
		t.Fatalf("expected identical claims, got %+v and %+v", a, b)
	}
}

func TestTokenService_Issue_RequiresEmail(t *testing.T) {
	svc := newTestTokenService("secret", issuedAt)
	if _, err := svc.Issue(domain.Identity{Name: "nobody"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
