package interpolation

import (
	"regexp"
	"strconv"
)

// Missing records a placeholder whose index had no matching argument.
type Missing struct {
	Placeholder string
	Index       int
}

// argPattern matches a 1-indexed positional placeholder such as !ARG2.
var argPattern = regexp.MustCompile(`!ARG(\d+)`)

// Substitute replaces every !ARGn in text with args[n-1]. Placeholders
// without an argument are kept literally and reported.
func Substitute(text string, args []string) (string, []Missing) {
	var missing []Missing
	out := argPattern.ReplaceAllStringFunc(text, func(m string) string {
		n, err := strconv.Atoi(m[len("!ARG"):])
		if err != nil || n < 1 || n > len(args) {
			missing = append(missing, Missing{Placeholder: m, Index: n})
			return m
		}
		return args[n-1]
	})
	return out, missing
}

// Placeholders returns the argument indices referenced by text in order.
func Placeholders(text string) []int {
	var out []int
	for _, m := range argPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
