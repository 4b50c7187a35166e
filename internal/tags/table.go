package tags

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Entry binds a raw key to its canonical variant and decoding policy.
type Entry[K comparable] struct {
	Kind       K
	Policy     Policy
	Repeatable bool
}

// Table is a closed key to variant lookup for one object kind.
type Table[K comparable] struct {
	name    string
	entries map[string]Entry[K]
	keys    map[K]string
}

// NewTable builds a table. Each variant must be bound to exactly one key.
func NewTable[K comparable](name string, entries map[string]Entry[K]) *Table[K] {
	keys := make(map[K]string, len(entries))
	for key, e := range entries {
		keys[e.Kind] = key
	}
	return &Table[K]{name: name, entries: entries, keys: keys}
}

// Name returns the table's object kind name.
func (t *Table[K]) Name() string { return t.name }

// Has reports whether key belongs to this vocabulary.
func (t *Table[K]) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Key returns the raw key for a variant.
func (t *Table[K]) Key(kind K) string { return t.keys[kind] }

// Len returns the number of known keys.
func (t *Table[K]) Len() int { return len(t.entries) }

// Decode splits value on ':' and decodes it with the key's policy.
func (t *Table[K]) Decode(key, value string) (Token[K], bool) {
	return t.DecodeValues(key, Split(value))
}

// DecodeValues decodes pre-split sub-values. Unknown keys and malformed
// values yield false and a diagnostic.
func (t *Table[K]) DecodeValues(key string, values []string) (Token[K], bool) {
	e, ok := t.entries[key]
	if !ok {
		log.Debug().Str("table", t.name).Str("key", key).Msg("Unknown tag")
		return Token[K]{}, false
	}
	v, ok := e.Policy(key, values)
	if !ok {
		return Token[K]{}, false
	}
	return Token[K]{Kind: e.Kind, Key: key, Value: v, multi: e.Repeatable}, true
}

// Split breaks a raw value into sub-values. An empty value has none.
func Split(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ":")
}

// Token is one decoded tag.
type Token[K comparable] struct {
	Kind  K
	Key   string
	Value Value
	multi bool
}

// Repeatable reports whether several tokens of this kind may coexist.
func (t Token[K]) Repeatable() bool { return t.multi }

// IsFlag reports whether the token is nullary.
func (t Token[K]) IsFlag() bool {
	_, ok := t.Value.(FlagValue)
	return ok
}

// Raw returns the token as an unbracketed KEY:V1:V2 string.
func (t Token[K]) Raw() string {
	values := t.Value.Values()
	if len(values) == 0 {
		return t.Key
	}
	return t.Key + ":" + strings.Join(values, ":")
}

// Encode returns the token in its bracketed source form.
func (t Token[K]) Encode() string {
	return "[" + t.Raw() + "]"
}

func (t Token[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Encode())
}

// Get returns the payload of the first token of kind, asserted to V.
func Get[V Value, K comparable](l List[K], kind K) (V, bool) {
	var zero V
	tok, ok := l.Find(kind)
	if !ok {
		return zero, false
	}
	v, ok := tok.Value.(V)
	return v, ok
}
