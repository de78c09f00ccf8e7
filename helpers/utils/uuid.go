package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateUUID returns a random UUID-shaped identifier.
func GenerateUUID() string {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		// crypto/rand failing leaves b zeroed; still format it rather than panic.
		return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
	}

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

// GenerateShortID returns an 8-character hex identifier.
func GenerateShortID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}

// GenerateNumericID returns a numeric identifier.
func GenerateNumericID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return fmt.Sprintf("%d", binary.BigEndian.Uint64(b))
}
