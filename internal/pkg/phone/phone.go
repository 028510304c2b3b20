// Package phone implements the requester identity contract: a phone number
// reduced to its digits is the identity key for duplicate detection,
// concurrency permits and cancellation ownership.
package phone

import "strings"

const normalizedLength = 10

// Normalize strips every non-digit character.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether the normalized form is exactly ten digits.
func Valid(raw string) bool {
	return len(Normalize(raw)) == normalizedLength
}
