package tags

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// Scalar is the set of field types a tag sub-value can be coerced to.
type Scalar interface {
	uint8 | uint32 | int32 | int64 | float64 | string
}

// Value is a decoded tag payload. The set of implementations is closed.
type Value interface {
	// Values re-encodes the payload as colon-separated sub-values.
	Values() []string
	// IsDefault reports whether every field holds its zero value.
	IsDefault() bool
	sealed()
}

// FlagValue is the payload of a nullary tag.
type FlagValue struct{}

func (FlagValue) Values() []string { return nil }
func (FlagValue) IsDefault() bool  { return true }
func (FlagValue) sealed()          {}

// SingleValue holds exactly one scalar.
type SingleValue[T Scalar] struct {
	V T
}

func (s SingleValue[T]) Values() []string { return []string{format(s.V)} }
func (s SingleValue[T]) IsDefault() bool {
	var zero T
	return s.V == zero
}
func (SingleValue[T]) sealed() {}

// ArrayValue holds a fixed number of positional scalars.
type ArrayValue[T Scalar] struct {
	V []T
}

func (a ArrayValue[T]) Values() []string { return formatAll(a.V) }
func (a ArrayValue[T]) IsDefault() bool  { return allZero(a.V) }
func (ArrayValue[T]) sealed()            {}

// VectorValue holds every sub-value in order.
type VectorValue[T Scalar] struct {
	V []T
}

func (v VectorValue[T]) Values() []string { return formatAll(v.V) }
func (v VectorValue[T]) IsDefault() bool  { return allZero(v.V) }
func (VectorValue[T]) sealed()            {}

// TailValue holds all but the last sub-value in V and the last one in Tail.
type TailValue[T Scalar, U Scalar] struct {
	V    []T
	Tail U
}

func (t TailValue[T, U]) Values() []string {
	return append(formatAll(t.V), format(t.Tail))
}

func (t TailValue[T, U]) IsDefault() bool {
	var zero U
	return allZero(t.V) && t.Tail == zero
}
func (TailValue[T, U]) sealed() {}

// LabeledValue binds the first sub-value to Label and the rest to V.
type LabeledValue[L Scalar, T Scalar] struct {
	Label L
	V     []T
}

func (l LabeledValue[L, T]) Values() []string {
	return append([]string{format(l.Label)}, formatAll(l.V)...)
}

func (l LabeledValue[L, T]) IsDefault() bool {
	var zero L
	return l.Label == zero && allZero(l.V)
}
func (LabeledValue[L, T]) sealed() {}

// parseScalar coerces s to T. Numeric parse failures fall back to the zero
// value and log. The literal NONE is the zero value for numeric fields and
// re-encodes as 0.
func parseScalar[T Scalar](key, s string) T {
	var out T
	if p, ok := any(&out).(*string); ok {
		*p = s
		return out
	}
	if s == "NONE" {
		return out
	}

	var err error
	switch p := any(&out).(type) {
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		log.Warn().Str("key", key).Str("value", s).Msg("Malformed numeric tag value, using default")
		var zero T
		return zero
	}
	return out
}

func parseAll[T Scalar](key string, values []string) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = parseScalar[T](key, v)
	}
	return out
}

func format[T Scalar](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

func formatAll[T Scalar](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = format(v)
	}
	return out
}

func allZero[T Scalar](vs []T) bool {
	var zero T
	for _, v := range vs {
		if v != zero {
			return false
		}
	}
	return true
}
