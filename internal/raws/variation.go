package raws

import (
	"strconv"
	"strings"

	"rawgraph/internal/tags"
	"rawgraph/internal/vocab"

	"github.com/rs/zerolog/log"
)

// RuleKind is the operation a variation rule performs.
type RuleKind int

const (
	RuleSelectCaste RuleKind = iota
	RuleAddTag
	RuleRemoveTag
	RuleConvertTag
)

func (k RuleKind) String() string {
	switch k {
	case RuleSelectCaste:
		return "select_caste"
	case RuleAddTag:
		return "add_tag"
	case RuleRemoveTag:
		return "remove_tag"
	case RuleConvertTag:
		return "convert_tag"
	}
	return "unknown"
}

func (k RuleKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Condition gates a rule on the value of one invocation argument.
type Condition struct {
	Arg   int    `json:"arg"`
	Value string `json:"value"`
}

// Rule is one step of a creature variation. String fields may hold !ARGn
// placeholders.
type Rule struct {
	Kind        RuleKind   `json:"kind"`
	Tag         string     `json:"tag,omitempty"`
	Value       string     `json:"value,omitempty"`
	Target      string     `json:"target,omitempty"`
	Replacement string     `json:"replacement,omitempty"`
	Condition   *Condition `json:"condition,omitempty"`
}

// CreatureVariation is a named, parameterized list of rules.
type CreatureVariation struct {
	Info
	Rules []Rule                         `json:"rules"`
	Tags  tags.List[vocab.VariationKind] `json:"-"`
}

func NewCreatureVariation(meta Metadata, identifier string) *CreatureVariation {
	return &CreatureVariation{Info: newInfo(meta, ObjectCreatureVariation, identifier)}
}

func (v *CreatureVariation) Kind() ObjectType { return ObjectCreatureVariation }
func (v *CreatureVariation) Tokens() []string { return v.Tags.Encode() }

// ApplyTag decodes one rule token and appends or completes a rule.
func (v *CreatureVariation) ApplyTag(key, value string) {
	tok, ok := vocab.Variation.Decode(key, value)
	if !ok {
		return
	}
	v.Tags.Put(tok)

	var values []string
	if vec, ok := tok.Value.(tags.VectorValue[string]); ok {
		values = vec.V
	}

	switch tok.Kind {
	case vocab.VariationNewTag, vocab.VariationAddTag:
		v.Rules = append(v.Rules, addRule(values, nil))
	case vocab.VariationRemoveTag:
		v.Rules = append(v.Rules, Rule{Kind: RuleRemoveTag, Tag: values[0], Value: strings.Join(values[1:], ":")})
	case vocab.VariationConvertTag:
		v.Rules = append(v.Rules, Rule{Kind: RuleConvertTag})
	case vocab.VariationConvertMaster, vocab.VariationConvertTarget, vocab.VariationConvertReplacement:
		v.completeConvert(tok.Kind, strings.Join(values, ":"))
	case vocab.VariationNewConditionalTag, vocab.VariationAddConditionalTag, vocab.VariationRemoveConditionalTag:
		cond, rest, ok := v.condition(key, values, 3)
		if !ok {
			return
		}
		if tok.Kind == vocab.VariationRemoveConditionalTag {
			v.Rules = append(v.Rules, Rule{Kind: RuleRemoveTag, Tag: rest[0], Value: strings.Join(rest[1:], ":"), Condition: cond})
			return
		}
		v.Rules = append(v.Rules, addRule(rest, cond))
	case vocab.VariationConvertConditionalTag:
		cond, _, ok := v.condition(key, values, 2)
		if !ok {
			return
		}
		v.Rules = append(v.Rules, Rule{Kind: RuleConvertTag, Condition: cond})
	}
}

func addRule(values []string, cond *Condition) Rule {
	tag, value := values[0], strings.Join(values[1:], ":")
	if tag == "CASTE" || tag == "SELECT_CASTE" {
		return Rule{Kind: RuleSelectCaste, Value: value, Condition: cond}
	}
	return Rule{Kind: RuleAddTag, Tag: tag, Value: value, Condition: cond}
}

// condition splits the leading argIndex:argValue pair off a conditional
// rule. want is the smallest valid number of values.
func (v *CreatureVariation) condition(key string, values []string, want int) (*Condition, []string, bool) {
	if len(values) < want {
		log.Warn().Str("variation", v.Identifier).Str("key", key).Strs("values", values).Msg("Conditional rule has too few values")
		return nil, nil, false
	}
	arg, err := strconv.Atoi(values[0])
	if err != nil {
		log.Warn().Str("variation", v.Identifier).Str("key", key).Str("arg", values[0]).Msg("Conditional rule has a non-numeric argument index")
		return nil, nil, false
	}
	return &Condition{Arg: arg, Value: values[1]}, values[2:], true
}

func (v *CreatureVariation) completeConvert(kind vocab.VariationKind, value string) {
	if len(v.Rules) == 0 || v.Rules[len(v.Rules)-1].Kind != RuleConvertTag {
		log.Warn().Str("variation", v.Identifier).Str("key", vocab.Variation.Key(kind)).Msg("Convert detail outside a convert rule")
		return
	}
	rule := &v.Rules[len(v.Rules)-1]
	switch kind {
	case vocab.VariationConvertMaster:
		rule.Tag = value
	case vocab.VariationConvertTarget:
		rule.Target = value
	case vocab.VariationConvertReplacement:
		rule.Replacement = value
	}
}
