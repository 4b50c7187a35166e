package vocab

import "rawgraph/internal/tags"

// MaterialKind is a material property shared by inorganics and templates.
type MaterialKind int

const (
	MaterialStateName MaterialKind = iota
	MaterialStateAdj
	MaterialStateNameAdj
	MaterialStateColor
	MaterialDisplayColor
	MaterialBuildColor
	MaterialTile
	MaterialItemSymbol
	MaterialValue
	MaterialSolidDensity
	MaterialLiquidDensity
	MaterialMolarMass
	MaterialSpecHeat
	MaterialIgnitePoint
	MaterialMeltingPoint
	MaterialBoilingPoint
	MaterialHeatdamPoint
	MaterialColddamPoint
	MaterialMaxEdge
	MaterialReactionClass
	MaterialUseMaterialTemplate
	MaterialIsMetal
	MaterialIsStone
	MaterialIsGem
	MaterialIsCeramic
	MaterialItemsMetal
	MaterialItemsHard
	MaterialItemsWeapon
	MaterialItemsArmor
	MaterialItemsSoft
	MaterialBone
	MaterialEdible
)

// Material is the material property vocabulary.
var Material = tags.NewTable("material", map[string]tags.Entry[MaterialKind]{
	"STATE_NAME":            {Kind: MaterialStateName, Policy: tags.Array[string](2), Repeatable: true},
	"STATE_ADJ":             {Kind: MaterialStateAdj, Policy: tags.Array[string](2), Repeatable: true},
	"STATE_NAME_ADJ":        {Kind: MaterialStateNameAdj, Policy: tags.Array[string](2), Repeatable: true},
	"STATE_COLOR":           {Kind: MaterialStateColor, Policy: tags.Array[string](2), Repeatable: true},
	"DISPLAY_COLOR":         {Kind: MaterialDisplayColor, Policy: tags.Array[uint8](3)},
	"BUILD_COLOR":           {Kind: MaterialBuildColor, Policy: tags.Array[uint8](3)},
	"TILE":                  {Kind: MaterialTile, Policy: tags.Single[string]()},
	"ITEM_SYMBOL":           {Kind: MaterialItemSymbol, Policy: tags.Single[string]()},
	"MATERIAL_VALUE":        {Kind: MaterialValue, Policy: tags.Single[uint32]()},
	"SOLID_DENSITY":         {Kind: MaterialSolidDensity, Policy: tags.Single[uint32]()},
	"LIQUID_DENSITY":        {Kind: MaterialLiquidDensity, Policy: tags.Single[uint32]()},
	"MOLAR_MASS":            {Kind: MaterialMolarMass, Policy: tags.Single[uint32]()},
	"SPEC_HEAT":             {Kind: MaterialSpecHeat, Policy: tags.Single[uint32]()},
	"IGNITE_POINT":          {Kind: MaterialIgnitePoint, Policy: tags.Single[uint32]()},
	"MELTING_POINT":         {Kind: MaterialMeltingPoint, Policy: tags.Single[uint32]()},
	"BOILING_POINT":         {Kind: MaterialBoilingPoint, Policy: tags.Single[uint32]()},
	"HEATDAM_POINT":         {Kind: MaterialHeatdamPoint, Policy: tags.Single[uint32]()},
	"COLDDAM_POINT":         {Kind: MaterialColddamPoint, Policy: tags.Single[uint32]()},
	"MAX_EDGE":              {Kind: MaterialMaxEdge, Policy: tags.Single[uint32]()},
	"REACTION_CLASS":        {Kind: MaterialReactionClass, Policy: tags.Single[string](), Repeatable: true},
	"USE_MATERIAL_TEMPLATE": {Kind: MaterialUseMaterialTemplate, Policy: tags.Single[string]()},
	"IS_METAL":              {Kind: MaterialIsMetal, Policy: tags.Flag()},
	"IS_STONE":              {Kind: MaterialIsStone, Policy: tags.Flag()},
	"IS_GEM":                {Kind: MaterialIsGem, Policy: tags.Flag()},
	"IS_CERAMIC":            {Kind: MaterialIsCeramic, Policy: tags.Flag()},
	"ITEMS_METAL":           {Kind: MaterialItemsMetal, Policy: tags.Flag()},
	"ITEMS_HARD":            {Kind: MaterialItemsHard, Policy: tags.Flag()},
	"ITEMS_WEAPON":          {Kind: MaterialItemsWeapon, Policy: tags.Flag()},
	"ITEMS_ARMOR":           {Kind: MaterialItemsArmor, Policy: tags.Flag()},
	"ITEMS_SOFT":            {Kind: MaterialItemsSoft, Policy: tags.Flag()},
	"BONE":                  {Kind: MaterialBone, Policy: tags.Flag()},
	"EDIBLE_COOKED":         {Kind: MaterialEdible, Policy: tags.Flag()},
})

// InorganicKind is a tag only inorganic objects carry.
type InorganicKind int

const (
	InorganicEnvironment InorganicKind = iota
	InorganicEnvironmentSpec
	InorganicMetalOre
	InorganicThreadMetal
	InorganicWafers
	InorganicAquifer
	InorganicLava
	InorganicSedimentary
	InorganicIgneousIntrusive
	InorganicIgneousExtrusive
	InorganicMetamorphic
	InorganicSoil
	InorganicSpecial
	InorganicDeepSpecial
)

// Inorganic is the inorganic-only vocabulary; material properties decode
// through Material.
var Inorganic = tags.NewTable("inorganic", map[string]tags.Entry[InorganicKind]{
	"ENVIRONMENT":       {Kind: InorganicEnvironment, Policy: tags.VectorWithTail[string, uint32](), Repeatable: true},
	"ENVIRONMENT_SPEC":  {Kind: InorganicEnvironmentSpec, Policy: tags.VectorWithTail[string, uint32](), Repeatable: true},
	"METAL_ORE":         {Kind: InorganicMetalOre, Policy: tags.LabeledArray[string, uint32](1), Repeatable: true},
	"THREAD_METAL":      {Kind: InorganicThreadMetal, Policy: tags.LabeledArray[string, uint32](1), Repeatable: true},
	"WAFERS":            {Kind: InorganicWafers, Policy: tags.Single[string]()},
	"AQUIFER":           {Kind: InorganicAquifer, Policy: tags.Flag()},
	"LAVA":              {Kind: InorganicLava, Policy: tags.Flag()},
	"SEDIMENTARY":       {Kind: InorganicSedimentary, Policy: tags.Flag()},
	"IGNEOUS_INTRUSIVE": {Kind: InorganicIgneousIntrusive, Policy: tags.Flag()},
	"IGNEOUS_EXTRUSIVE": {Kind: InorganicIgneousExtrusive, Policy: tags.Flag()},
	"METAMORPHIC":       {Kind: InorganicMetamorphic, Policy: tags.Flag()},
	"SOIL":              {Kind: InorganicSoil, Policy: tags.Flag()},
	"SPECIAL":           {Kind: InorganicSpecial, Policy: tags.Flag()},
	"DEEP_SPECIAL":      {Kind: InorganicDeepSpecial, Policy: tags.Flag()},
})
