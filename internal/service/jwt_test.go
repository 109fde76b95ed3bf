package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	userID := uuid.New()
	token, err := GenerateJWT(userID, "alice")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	ident, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if ident.UserID != userID {
		t.Fatalf("user id = %s; want %s", ident.UserID, userID)
	}
	if ident.Username != "alice" {
		t.Fatalf("username = %s; want alice", ident.Username)
	}
}

func TestParseJWTRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT(uuid.New(), "alice")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	// flip the signature
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, err := ParseJWT(tampered); err == nil {
		t.Fatalf("tampered token accepted")
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	if _, err := ParseJWT("not-a-token"); err == nil {
		t.Fatalf("garbage token accepted")
	}
	if _, err := ParseJWT(""); err == nil {
		t.Fatalf("empty token accepted")
	}
}
