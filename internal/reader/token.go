package reader

import (
	"regexp"
	"strings"
)

// Token is one bracketed [KEY] or [KEY:V1:V2] occurrence on a line.
type Token struct {
	Key   string
	Value string
}

var tokenPattern = regexp.MustCompile(`\[([^\[\]:]+)(?::([^\[\]]*))?\]`)

// Scan returns the tokens on line in order. Text between brackets is
// commentary and is ignored.
func Scan(line string) []Token {
	matches := tokenPattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Token, 0, len(matches))
	for _, m := range matches {
		out = append(out, Token{Key: m[1], Value: m[2]})
	}
	return out
}

// Raw returns the token in KEY:VALUE form, or KEY alone when it has no value.
func (t Token) Raw() string {
	if t.Value == "" {
		return t.Key
	}
	return t.Key + ":" + t.Value
}

func splitRaw(raw string) (key, value string) {
	key, value, _ = strings.Cut(raw, ":")
	return key, value
}
