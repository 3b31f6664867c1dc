package interfaces

// ICredentialVerifier abstracts approver credential checks so the workflow
// engine never holds password material itself.
type ICredentialVerifier interface {
	// Verify reports whether the named approver presented a valid secret.
	Verify(name, secret string) bool
	// VerifyAdmin reports whether the shared administrative secret matches.
	// Admin scope also authorizes price-floor overrides.
	VerifyAdmin(secret string) bool
}
