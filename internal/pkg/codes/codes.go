// Package codes generates the short handoff codes exchanged at physical
// pickup and delivery to confirm the right parties are meeting.
//
// Codes are short random alphanumeric strings. They carry no global
// uniqueness guarantee: verification is always scoped to a single known job,
// so collisions across jobs are harmless.
package codes

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"dispatch/internal/pkg/errs"
)

// HandoffCodeLength is the length of generated pickup and delivery codes.
const HandoffCodeLength = 6

// handoffAlphabet is the uppercase base36 alphabet used for handoff codes.
const handoffAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewHandoffCode returns a fresh random handoff code. Each character is an
// unbiased draw from the alphabet.
func NewHandoffCode() (string, error) {
	alphabetSize := big.NewInt(int64(len(handoffAlphabet)))

	buf := make([]byte, HandoffCodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("handoff code",
				fmt.Errorf("reading random bytes: %w", err))
		}
		buf[i] = handoffAlphabet[n.Int64()]
	}
	return string(buf), nil
}
