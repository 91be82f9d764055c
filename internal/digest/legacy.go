package digest

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"unicode/utf16"
)

const saltSeparator = "$"

// LegacyDigester implements the original non-cryptographic digest scheme:
// a 32-bit rolling checksum over the password's UTF-16 code units, rendered
// as "<salt>$<hexChecksum>".
//
// Note: Verify splits out the stored salt but does not mix it into the
// recomputed checksum, so the salt does not strengthen the digest at all.
// That matches the digests already on disk; new installs should prefer
// BcryptDigester.
type LegacyDigester struct{}

// Digest computes the salted checksum for password.
func (d *LegacyDigester) Digest(password string) (string, error) {
	return newSalt() + saltSeparator + checksum(password), nil
}

// Verify recomputes the checksum for password and compares it to the part of
// stored after the separator. A stored value without a separator never
// verifies.
func (d *LegacyDigester) Verify(password, stored string) bool {
	_, sum, ok := strings.Cut(stored, saltSeparator)
	if !ok {
		return false
	}
	return checksum(password) == sum
}

// checksum runs h = h*31 + codeUnit over the password's UTF-16 code units,
// wrapping at 32 bits, then renders the absolute value in hex.
func checksum(password string) string {
	var h int32
	for _, cu := range utf16.Encode([]rune(password)) {
		h = h*31 + int32(cu)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}

// newSalt returns a 10-character base-36 fragment.
func newSalt() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	s := strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
	for len(s) < 10 {
		s = "0" + s
	}
	return s[:10]
}
