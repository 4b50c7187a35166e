package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash computes a SHA-256 hex hash of the joined parts for change detection.
func Hash(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}

// Bracket wraps unbracketed raws in [ ] and joins them, for log output.
func Bracket(raws []string) string {
	var b strings.Builder
	for _, r := range raws {
		b.WriteByte('[')
		b.WriteString(r)
		b.WriteByte(']')
	}
	return b.String()
}
