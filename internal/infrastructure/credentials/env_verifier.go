// Package credentials implements the approver credential verifier.
//
// The legacy sheet kept a plaintext manager->password map in the page script.
// Here the approver set is injected as configuration and secrets may be
// bcrypt hashes; plaintext entries are still accepted for migration.
package credentials

import (
	"crypto/subtle"
	"log"
	"strings"

	"sheetfab/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

type EnvVerifier struct {
	secrets     map[string]string
	adminSecret string
}

var _ interfaces.ICredentialVerifier = (*EnvVerifier)(nil)

// NewEnvVerifier parses a comma-separated list of name:secret pairs
// (e.g. "Iris:iris888,Tomy:$2a$10$...") plus an optional admin secret.
func NewEnvVerifier(managers, adminSecret string) *EnvVerifier {
	secrets := map[string]string{}
	for _, pair := range strings.Split(managers, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, secret, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || secret == "" {
			log.Printf("[credentials] skipping malformed approver entry")
			continue
		}
		secrets[name] = secret
	}
	return &EnvVerifier{secrets: secrets, adminSecret: adminSecret}
}

func (v *EnvVerifier) Verify(name, secret string) bool {
	stored, ok := v.secrets[name]
	if !ok || secret == "" {
		return false
	}
	return matchSecret(stored, secret)
}

func (v *EnvVerifier) VerifyAdmin(secret string) bool {
	if v.adminSecret == "" || secret == "" {
		return false
	}
	return matchSecret(v.adminSecret, secret)
}

func matchSecret(stored, presented string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
