package vocab

import "rawgraph/internal/tags"

// GraphicKind is a sprite or layer tag inside a graphics object.
type GraphicKind int

const (
	GraphicDefault GraphicKind = iota
	GraphicChild
	GraphicBaby
	GraphicAnimated
	GraphicCorpse
	GraphicListIcon
	GraphicRemains
	GraphicShrub
	GraphicPicked
	GraphicSeed
	GraphicCrop
	GraphicDead
	GraphicSapling
	GraphicLayerSet
	GraphicLayer
	GraphicLayerGroup
	GraphicEndLayerGroup
	GraphicConditionCaste
	GraphicConditionChild
	GraphicConditionBaby
)

// Graphic is the graphics vocabulary. Sprite tags carry the tile page id as
// their label followed by coordinates and options.
var Graphic = tags.NewTable("graphics", map[string]tags.Entry[GraphicKind]{
	"DEFAULT":         {Kind: GraphicDefault, Policy: tags.LabeledVector[string, string]()},
	"CHILD":           {Kind: GraphicChild, Policy: tags.LabeledVector[string, string]()},
	"BABY":            {Kind: GraphicBaby, Policy: tags.LabeledVector[string, string]()},
	"ANIMATED":        {Kind: GraphicAnimated, Policy: tags.LabeledVector[string, string]()},
	"CORPSE":          {Kind: GraphicCorpse, Policy: tags.LabeledVector[string, string]()},
	"LIST_ICON":       {Kind: GraphicListIcon, Policy: tags.LabeledVector[string, string]()},
	"REMAINS":         {Kind: GraphicRemains, Policy: tags.LabeledVector[string, string]()},
	"SHRUB":           {Kind: GraphicShrub, Policy: tags.LabeledVector[string, string]()},
	"PICKED":          {Kind: GraphicPicked, Policy: tags.LabeledVector[string, string]()},
	"SEED":            {Kind: GraphicSeed, Policy: tags.LabeledVector[string, string]()},
	"CROP":            {Kind: GraphicCrop, Policy: tags.LabeledVector[string, string]()},
	"DEAD":            {Kind: GraphicDead, Policy: tags.LabeledVector[string, string]()},
	"SAPLING":         {Kind: GraphicSapling, Policy: tags.LabeledVector[string, string]()},
	"LAYER_SET":       {Kind: GraphicLayerSet, Policy: tags.Single[string](), Repeatable: true},
	"LAYER":           {Kind: GraphicLayer, Policy: tags.LabeledVector[string, string](), Repeatable: true},
	"LAYER_GROUP":     {Kind: GraphicLayerGroup, Policy: tags.Flag(), Repeatable: true},
	"END_LAYER_GROUP": {Kind: GraphicEndLayerGroup, Policy: tags.Flag(), Repeatable: true},
	"CONDITION_CASTE": {Kind: GraphicConditionCaste, Policy: tags.Single[string](), Repeatable: true},
	"CONDITION_CHILD": {Kind: GraphicConditionChild, Policy: tags.Flag(), Repeatable: true},
	"CONDITION_BABY":  {Kind: GraphicConditionBaby, Policy: tags.Flag(), Repeatable: true},
})

// TilePageKind is a tile page tag.
type TilePageKind int

const (
	TilePageFile TilePageKind = iota
	TilePageTileDim
	TilePagePageDim
)

// TilePage is the tile page vocabulary.
var TilePage = tags.NewTable("tile_page", map[string]tags.Entry[TilePageKind]{
	"FILE":            {Kind: TilePageFile, Policy: tags.Single[string]()},
	"TILE_DIM":        {Kind: TilePageTileDim, Policy: tags.Array[uint32](2)},
	"PAGE_DIM_PIXELS": {Kind: TilePagePageDim, Policy: tags.Array[uint32](2)},
})
