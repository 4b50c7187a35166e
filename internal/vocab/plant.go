package vocab

import "rawgraph/internal/tags"

// PlantKind is a plant tag.
type PlantKind int

const (
	PlantName PlantKind = iota
	PlantNamePlural
	PlantAdj
	PlantAllNames
	PlantPrefString
	PlantBiome
	PlantFrequency
	PlantClusterSize
	PlantGrowDuration
	PlantValue
	PlantUndergroundDepth
	PlantUseMaterialTemplate
	PlantBasicMat
	PlantTree
	PlantGrass
	PlantWet
	PlantDry
	PlantSpring
	PlantSummer
	PlantAutumn
	PlantWinter
	PlantGood
	PlantEvil
	PlantSavage
)

// Plant is the plant vocabulary.
var Plant = tags.NewTable("plant", map[string]tags.Entry[PlantKind]{
	"NAME":                  {Kind: PlantName, Policy: tags.Single[string]()},
	"NAME_PLURAL":           {Kind: PlantNamePlural, Policy: tags.Single[string]()},
	"ADJ":                   {Kind: PlantAdj, Policy: tags.Single[string]()},
	"ALL_NAMES":             {Kind: PlantAllNames, Policy: tags.Single[string]()},
	"PREFSTRING":            {Kind: PlantPrefString, Policy: tags.Single[string](), Repeatable: true},
	"BIOME":                 {Kind: PlantBiome, Policy: tags.Single[string](), Repeatable: true},
	"FREQUENCY":             {Kind: PlantFrequency, Policy: tags.Single[uint32]()},
	"CLUSTERSIZE":           {Kind: PlantClusterSize, Policy: tags.Single[uint32]()},
	"GROWDUR":               {Kind: PlantGrowDuration, Policy: tags.Single[uint32]()},
	"VALUE":                 {Kind: PlantValue, Policy: tags.Single[uint32]()},
	"UNDERGROUND_DEPTH":     {Kind: PlantUndergroundDepth, Policy: tags.Array[uint32](2)},
	"USE_MATERIAL_TEMPLATE": {Kind: PlantUseMaterialTemplate, Policy: tags.Array[string](2), Repeatable: true},
	"BASIC_MAT":             {Kind: PlantBasicMat, Policy: tags.Vector[string]()},
	"TREE":                  {Kind: PlantTree, Policy: tags.Flag()},
	"GRASS":                 {Kind: PlantGrass, Policy: tags.Flag()},
	"WET":                   {Kind: PlantWet, Policy: tags.Flag()},
	"DRY":                   {Kind: PlantDry, Policy: tags.Flag()},
	"SPRING":                {Kind: PlantSpring, Policy: tags.Flag()},
	"SUMMER":                {Kind: PlantSummer, Policy: tags.Flag()},
	"AUTUMN":                {Kind: PlantAutumn, Policy: tags.Flag()},
	"WINTER":                {Kind: PlantWinter, Policy: tags.Flag()},
	"GOOD":                  {Kind: PlantGood, Policy: tags.Flag()},
	"EVIL":                  {Kind: PlantEvil, Policy: tags.Flag()},
	"SAVAGE":                {Kind: PlantSavage, Policy: tags.Flag()},
})
