package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// GenerateResetToken returns a 32-byte random token, hex encoded.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// JoinSpecialties normalizes a specialty list into the comma-separated
// form stored on the technician record.
func JoinSpecialties(specialties []string) string {
	cleaned := make([]string, 0, len(specialties))
	for _, s := range specialties {
		s = strings.TrimSpace(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ",")
}

// SplitSpecialties is the inverse of JoinSpecialties.
func SplitSpecialties(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
