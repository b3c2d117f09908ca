package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

func testUser() models.User {
	return models.User{
		ID:    "0192d6a4-7c1e-7000-8000-000000000001",
		Email: "alice@example.com",
		Name:  "Alice",
		Role:  models.RoleAdmin,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	user := testUser()

	token, err := GenerateJWTToken(issuer, user, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.String() != token.SignedString {
		t.Error("expected String() to return the signed string")
	}
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != user.ID {
		t.Errorf("expected subject %s, got %s", user.ID, token.Claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser(), time.Hour, "key"},
		{"zero duration", "iss", testUser(), 0, "key"},
		{"empty key", "iss", testUser(), time.Hour, ""},
		{"user without id", "iss", models.User{Email: "a@b.c"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"
	user := testUser()

	genToken, err := GenerateJWTToken(issuer, user, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != user.Role {
		t.Errorf("expected role %s, got %s", user.Role, claims.Role)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testUser(), time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Fatal("expected error due to signature mismatch, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("test-issuer", testUser(), -time.Second, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "test-issuer")
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", testUser(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("iss", testUser(), time.Hour, key)

	parts := strings.Split(genToken.SignedString, ".")
	forged, _ := GenerateJWTToken("iss", models.User{ID: "someone-else", Role: models.RoleAdmin}, time.Hour, "other-key")
	tampered := parts[0] + "." + strings.Split(forged.SignedString, ".")[1] + "." + parts[2]

	if _, err := ValidateAndParseJWTToken(tampered, key, "iss"); err == nil {
		t.Error("expected error for tampered payload, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := models.Claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(unsigned, "key", "iss"); err == nil {
		t.Error("expected error for alg=none token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  Bearer abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
