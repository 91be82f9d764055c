// Package ident generates the string identifiers used for users and readings.
package ident

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// NewID produces a unique identifier built from the current timestamp in
// base 36 followed by a random base-36 fragment. Ids generated later carry a
// lexicographically larger timestamp prefix, but no global uniqueness or
// strict ordering is guaranteed beyond that.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return ts + randFragment()
}

// randFragment returns up to 13 base-36 characters of randomness.
func randFragment() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to the
		// clock so id generation itself stays error-free.
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
}
