package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/asadk/maktab/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "maktab.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 42, Username: "jdoe", Role: models.RoleFaculty}

	accessToken, refreshToken, expiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatalf("expected non-empty tokens")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Fatalf("expiresIn = %d, want %d", expiresIn, int(time.Hour.Seconds()))
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "jdoe" || claims.Role != "faculty" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)
	user := &models.User{ID: 1, Username: "jdoe", Role: models.RoleAdmin}

	accessToken, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 1, Username: "jdoe", Role: models.RoleAdmin}

	accessToken, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Fatalf("expected validation to fail with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("token = %q", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty header, got %v", err)
	}
	if _, err := ExtractBearerToken("Basic abc"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for non-bearer header, got %v", err)
	}
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	svc := testJWTService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
