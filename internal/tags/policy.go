package tags

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Policy decodes the colon-separated sub-values of one tag. It reports false
// when the input is too malformed to produce a value; it never panics.
type Policy func(key string, values []string) (Value, bool)

// Flag decodes a nullary tag. Unexpected sub-values are logged and ignored.
func Flag() Policy {
	return func(key string, values []string) (Value, bool) {
		if len(values) > 0 {
			log.Warn().Str("key", key).Strs("values", values).Msg("Flag tag carries unexpected values")
		}
		return FlagValue{}, true
	}
}

// Single decodes exactly one sub-value. String fields keep embedded colons
// since the grammar has no escaping.
func Single[T Scalar]() Policy {
	return func(key string, values []string) (Value, bool) {
		if len(values) == 0 {
			log.Warn().Str("key", key).Msg("Tag is missing its value")
			return nil, false
		}
		var zero T
		if _, ok := any(zero).(string); ok {
			return SingleValue[T]{V: parseScalar[T](key, strings.Join(values, ":"))}, true
		}
		if len(values) > 1 {
			log.Warn().Str("key", key).Strs("values", values).Msg("Tag carries extra values, using the first")
		}
		return SingleValue[T]{V: parseScalar[T](key, values[0])}, true
	}
}

// Array decodes exactly n positional sub-values.
func Array[T Scalar](n int) Policy {
	return func(key string, values []string) (Value, bool) {
		if len(values) < n {
			log.Warn().Str("key", key).Int("want", n).Int("got", len(values)).Msg("Tag has too few values")
			return nil, false
		}
		if len(values) > n {
			log.Warn().Str("key", key).Int("want", n).Int("got", len(values)).Msg("Tag has extra values, truncating")
		}
		return ArrayValue[T]{V: parseAll[T](key, values[:n])}, true
	}
}

// Vector collects every sub-value into one list.
func Vector[T Scalar]() Policy {
	return func(key string, values []string) (Value, bool) {
		if len(values) == 0 {
			log.Warn().Str("key", key).Msg("Tag is missing its values")
			return nil, false
		}
		return VectorValue[T]{V: parseAll[T](key, values)}, true
	}
}

// VectorWithTail collects all but the last sub-value into a list and binds
// the last to a trailing scalar.
func VectorWithTail[T Scalar, U Scalar]() Policy {
	return func(key string, values []string) (Value, bool) {
		if len(values) < 2 {
			log.Warn().Str("key", key).Int("got", len(values)).Msg("Tag needs a list and a trailing value")
			return nil, false
		}
		last := len(values) - 1
		return TailValue[T, U]{
			V:    parseAll[T](key, values[:last]),
			Tail: parseScalar[U](key, values[last]),
		}, true
	}
}

// LabeledArray binds the first sub-value to a label and the next n positionally.
func LabeledArray[L Scalar, T Scalar](n int) Policy {
	return func(key string, values []string) (Value, bool) {
		if len(values) < n+1 {
			log.Warn().Str("key", key).Int("want", n+1).Int("got", len(values)).Msg("Labeled tag has too few values")
			return nil, false
		}
		if len(values) > n+1 {
			log.Warn().Str("key", key).Int("want", n+1).Int("got", len(values)).Msg("Labeled tag has extra values, truncating")
		}
		return LabeledValue[L, T]{
			Label: parseScalar[L](key, values[0]),
			V:     parseAll[T](key, values[1:n+1]),
		}, true
	}
}

// LabeledVector binds the first sub-value to a label and collects the rest.
func LabeledVector[L Scalar, T Scalar]() Policy {
	return func(key string, values []string) (Value, bool) {
		if len(values) == 0 {
			log.Warn().Str("key", key).Msg("Labeled tag is missing its label")
			return nil, false
		}
		return LabeledValue[L, T]{
			Label: parseScalar[L](key, values[0]),
			V:     parseAll[T](key, values[1:]),
		}, true
	}
}
