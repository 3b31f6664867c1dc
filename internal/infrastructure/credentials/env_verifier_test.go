package credentials

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestEnvVerifier(t *testing.T) {
	v := NewEnvVerifier("Iris:iris888,Tomy:tomy999", "boss-secret")

	t.Run("known manager with right password", func(t *testing.T) {
		if !v.Verify("Iris", "iris888") {
			t.Fatalf("expected Iris to verify")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if v.Verify("Iris", "wrong") {
			t.Fatalf("expected wrong password to fail")
		}
	})

	t.Run("unknown manager", func(t *testing.T) {
		if v.Verify("Mallory", "iris888") {
			t.Fatalf("expected unknown name to fail")
		}
	})

	t.Run("admin secret", func(t *testing.T) {
		if !v.VerifyAdmin("boss-secret") {
			t.Fatalf("expected admin secret to verify")
		}
		if v.VerifyAdmin("nope") {
			t.Fatalf("expected wrong admin secret to fail")
		}
	})

	t.Run("no admin secret configured", func(t *testing.T) {
		v := NewEnvVerifier("Iris:iris888", "")
		if v.VerifyAdmin("") || v.VerifyAdmin("anything") {
			t.Fatalf("expected admin verification to fail when unset")
		}
	})

	t.Run("bcrypt hashed secret", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("tomy999"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		v := NewEnvVerifier("Tomy:"+string(hash), "")
		if !v.Verify("Tomy", "tomy999") {
			t.Fatalf("expected bcrypt secret to verify")
		}
		if v.Verify("Tomy", "tomy998") {
			t.Fatalf("expected wrong bcrypt password to fail")
		}
	})

	t.Run("malformed entries skipped", func(t *testing.T) {
		v := NewEnvVerifier("garbage,Iris:iris888, :x", "")
		if !v.Verify("Iris", "iris888") {
			t.Fatalf("expected valid entry to survive malformed neighbors")
		}
		if v.Verify("garbage", "") {
			t.Fatalf("expected malformed entry to be dropped")
		}
	})
}
