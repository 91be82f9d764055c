package digest

import "golang.org/x/crypto/bcrypt"

// BcryptDigester is the cryptographic replacement for LegacyDigester. It
// satisfies the same Digest/Verify contract, so switching algorithms is a
// configuration change only.
type BcryptDigester struct {
	// Cost overrides bcrypt.DefaultCost when > 0.
	Cost int
}

func (d *BcryptDigester) Digest(password string) (string, error) {
	cost := d.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *BcryptDigester) Verify(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
