// Package digest computes and verifies the password digests stored in place
// of plaintext passwords. Two implementations exist: the legacy salted
// checksum carried over from earlier installs, and a bcrypt digester that can
// replace it without changing the surrounding contract.
package digest

// Digester produces a storable digest for a password and verifies a password
// candidate against a stored digest.
type Digester interface {
	Digest(password string) (string, error)
	Verify(password, stored string) bool
}

// Algorithm names accepted by New.
const (
	AlgoLegacy = "legacy"
	AlgoBcrypt = "bcrypt"
)

// New returns the digester for the named algorithm, defaulting to the legacy
// checksum for unknown names so existing stores keep verifying.
func New(algo string) Digester {
	if algo == AlgoBcrypt {
		return &BcryptDigester{}
	}
	return &LegacyDigester{}
}
