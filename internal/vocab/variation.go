package vocab

import "rawgraph/internal/tags"

// VariationKind is a creature variation rule token.
type VariationKind int

const (
	VariationNewTag VariationKind = iota
	VariationAddTag
	VariationRemoveTag
	VariationConvertTag
	VariationConvertMaster
	VariationConvertTarget
	VariationConvertReplacement
	VariationNewConditionalTag
	VariationAddConditionalTag
	VariationRemoveConditionalTag
	VariationConvertConditionalTag
)

// Variation is the creature variation rule vocabulary.
var Variation = tags.NewTable("creature_variation", map[string]tags.Entry[VariationKind]{
	"CV_NEW_TAG":       {Kind: VariationNewTag, Policy: tags.Vector[string](), Repeatable: true},
	"CV_ADD_TAG":       {Kind: VariationAddTag, Policy: tags.Vector[string](), Repeatable: true},
	"CV_REMOVE_TAG":    {Kind: VariationRemoveTag, Policy: tags.Vector[string](), Repeatable: true},
	"CV_CONVERT_TAG":   {Kind: VariationConvertTag, Policy: tags.Flag(), Repeatable: true},
	"CVCT_MASTER":      {Kind: VariationConvertMaster, Policy: tags.Vector[string](), Repeatable: true},
	"CVCT_TARGET":      {Kind: VariationConvertTarget, Policy: tags.Vector[string](), Repeatable: true},
	"CVCT_REPLACEMENT": {Kind: VariationConvertReplacement, Policy: tags.Vector[string](), Repeatable: true},
	"CV_NEW_CTAG":      {Kind: VariationNewConditionalTag, Policy: tags.Vector[string](), Repeatable: true},
	"CV_ADD_CTAG":      {Kind: VariationAddConditionalTag, Policy: tags.Vector[string](), Repeatable: true},
	"CV_REMOVE_CTAG":   {Kind: VariationRemoveConditionalTag, Policy: tags.Vector[string](), Repeatable: true},
	"CV_CONVERT_CTAG":  {Kind: VariationConvertConditionalTag, Policy: tags.Vector[string](), Repeatable: true},
})
