// Package vocab holds the closed tag vocabularies for each raw object kind.
package vocab

import "rawgraph/internal/tags"

// CreatureKind is a creature-wide tag.
type CreatureKind int

const (
	CreatureName CreatureKind = iota
	CreatureGeneralBabyName
	CreatureGeneralChildName
	CreatureFrequency
	CreaturePopulationNumber
	CreatureClusterNumber
	CreatureUndergroundDepth
	CreatureBiome
	CreaturePrefString
	CreatureTile
	CreatureSoldierTile
	CreatureColor
	CreatureGlowColor
	CreatureChangeFrequencyPerc
	CreatureDoesNotExist
	CreatureEquipmentWagon
	CreatureGood
	CreatureEvil
	CreatureSavage
	CreatureLargeRoaming
	CreatureLooseClusters
	CreatureMundane
	CreatureUbiquitous
	CreatureVerminSoil
	CreatureVerminGrounder
	CreatureArtificialHiveable
	CreatureFanciful
	CreatureGenerated
)

// Creature is the creature-wide vocabulary.
var Creature = tags.NewTable("creature", map[string]tags.Entry[CreatureKind]{
	"NAME":                  {Kind: CreatureName, Policy: tags.Array[string](3)},
	"GENERAL_BABY_NAME":     {Kind: CreatureGeneralBabyName, Policy: tags.Array[string](2)},
	"GENERAL_CHILD_NAME":    {Kind: CreatureGeneralChildName, Policy: tags.Array[string](2)},
	"FREQUENCY":             {Kind: CreatureFrequency, Policy: tags.Single[uint32]()},
	"POPULATION_NUMBER":     {Kind: CreaturePopulationNumber, Policy: tags.Array[uint32](2)},
	"CLUSTER_NUMBER":        {Kind: CreatureClusterNumber, Policy: tags.Array[uint32](2)},
	"UNDERGROUND_DEPTH":     {Kind: CreatureUndergroundDepth, Policy: tags.Array[uint32](2)},
	"BIOME":                 {Kind: CreatureBiome, Policy: tags.Single[string](), Repeatable: true},
	"PREFSTRING":            {Kind: CreaturePrefString, Policy: tags.Single[string](), Repeatable: true},
	"CREATURE_TILE":         {Kind: CreatureTile, Policy: tags.Single[string]()},
	"CREATURE_SOLDIER_TILE": {Kind: CreatureSoldierTile, Policy: tags.Single[string]()},
	"COLOR":                 {Kind: CreatureColor, Policy: tags.Array[uint8](3)},
	"GLOWCOLOR":             {Kind: CreatureGlowColor, Policy: tags.Array[uint8](3)},
	"CHANGE_FREQUENCY_PERC": {Kind: CreatureChangeFrequencyPerc, Policy: tags.Single[uint32]()},
	"DOES_NOT_EXIST":        {Kind: CreatureDoesNotExist, Policy: tags.Flag()},
	"EQUIPMENT_WAGON":       {Kind: CreatureEquipmentWagon, Policy: tags.Flag()},
	"GOOD":                  {Kind: CreatureGood, Policy: tags.Flag()},
	"EVIL":                  {Kind: CreatureEvil, Policy: tags.Flag()},
	"SAVAGE":                {Kind: CreatureSavage, Policy: tags.Flag()},
	"LARGE_ROAMING":         {Kind: CreatureLargeRoaming, Policy: tags.Flag()},
	"LOOSE_CLUSTERS":        {Kind: CreatureLooseClusters, Policy: tags.Flag()},
	"MUNDANE":               {Kind: CreatureMundane, Policy: tags.Flag()},
	"UBIQUITOUS":            {Kind: CreatureUbiquitous, Policy: tags.Flag()},
	"VERMIN_SOIL":           {Kind: CreatureVerminSoil, Policy: tags.Flag()},
	"VERMIN_GROUNDER":       {Kind: CreatureVerminGrounder, Policy: tags.Flag()},
	"ARTIFICIAL_HIVEABLE":   {Kind: CreatureArtificialHiveable, Policy: tags.Flag()},
	"FANCIFUL":              {Kind: CreatureFanciful, Policy: tags.Flag()},
	"GENERATED":             {Kind: CreatureGenerated, Policy: tags.Flag()},
})

// CasteKind is a tag scoped to one caste.
type CasteKind int

const (
	CasteDescription CasteKind = iota
	CasteBabyName
	CasteChildName
	CasteName
	CasteBaby
	CasteChild
	CasteMaxAge
	CastePetValue
	CasteClutchSize
	CasteLitterSize
	CasteEggSize
	CasteDifficulty
	CasteGrassTrample
	CasteGrazer
	CasteLowLightVision
	CastePopRatio
	CasteChangeBodySizePerc
	CasteCreatureClass
	CasteBodySize
	CasteMilkable
	CasteTile
	CasteColor
	CasteGait
	CasteBody
	CasteBodyDetailPlan
	CastePhysAttRange
	CasteMentAttRange
	CasteAttack
	CastePersonality
	CasteNaturalSkill
	CasteSpeed
	CasteFemale
	CasteMale
	CastePet
	CastePetExotic
	CasteLargePredator
	CasteBenign
	CasteCarnivore
	CasteNoFear
	CasteNoSleep
	CasteLaysEggs
	CasteMegabeast
	CasteTrainable
	CasteFlier
	CasteAmphibious
	CasteAquatic
	CasteCanLearn
	CasteCanSpeak
	CasteNatural
	CasteExtravision
)

// Caste is the per-caste vocabulary.
var Caste = tags.NewTable("caste", map[string]tags.Entry[CasteKind]{
	"DESCRIPTION":           {Kind: CasteDescription, Policy: tags.Single[string]()},
	"BABYNAME":              {Kind: CasteBabyName, Policy: tags.Array[string](2)},
	"CHILDNAME":             {Kind: CasteChildName, Policy: tags.Array[string](2)},
	"CASTE_NAME":            {Kind: CasteName, Policy: tags.Array[string](3)},
	"BABY":                  {Kind: CasteBaby, Policy: tags.Single[uint32]()},
	"CHILD":                 {Kind: CasteChild, Policy: tags.Single[uint32]()},
	"MAX_AGE":               {Kind: CasteMaxAge, Policy: tags.Array[uint32](2)},
	"PET_VALUE":             {Kind: CastePetValue, Policy: tags.Single[uint32]()},
	"CLUTCH_SIZE":           {Kind: CasteClutchSize, Policy: tags.Array[uint32](2)},
	"LITTERSIZE":            {Kind: CasteLitterSize, Policy: tags.Array[uint32](2)},
	"EGG_SIZE":              {Kind: CasteEggSize, Policy: tags.Single[uint32]()},
	"DIFFICULTY":            {Kind: CasteDifficulty, Policy: tags.Single[uint32]()},
	"GRASSTRAMPLE":          {Kind: CasteGrassTrample, Policy: tags.Single[uint32]()},
	"GRAZER":                {Kind: CasteGrazer, Policy: tags.Single[uint32]()},
	"LOW_LIGHT_VISION":      {Kind: CasteLowLightVision, Policy: tags.Single[uint32]()},
	"POP_RATIO":             {Kind: CastePopRatio, Policy: tags.Single[uint32]()},
	"CHANGE_BODY_SIZE_PERC": {Kind: CasteChangeBodySizePerc, Policy: tags.Single[uint32]()},
	"CREATURE_CLASS":        {Kind: CasteCreatureClass, Policy: tags.Single[string](), Repeatable: true},
	"BODY_SIZE":             {Kind: CasteBodySize, Policy: tags.Array[uint32](3), Repeatable: true},
	"MILKABLE":              {Kind: CasteMilkable, Policy: tags.VectorWithTail[string, uint32]()},
	"CASTE_TILE":            {Kind: CasteTile, Policy: tags.Single[string]()},
	"CASTE_COLOR":           {Kind: CasteColor, Policy: tags.Array[uint8](3)},
	"GAIT":                  {Kind: CasteGait, Policy: tags.LabeledVector[string, string](), Repeatable: true},
	"BODY":                  {Kind: CasteBody, Policy: tags.Vector[string]()},
	"BODY_DETAIL_PLAN":      {Kind: CasteBodyDetailPlan, Policy: tags.LabeledVector[string, string](), Repeatable: true},
	"PHYS_ATT_RANGE":        {Kind: CastePhysAttRange, Policy: tags.LabeledArray[string, uint32](7), Repeatable: true},
	"MENT_ATT_RANGE":        {Kind: CasteMentAttRange, Policy: tags.LabeledArray[string, uint32](7), Repeatable: true},
	"ATTACK":                {Kind: CasteAttack, Policy: tags.LabeledVector[string, string](), Repeatable: true},
	"PERSONALITY":           {Kind: CastePersonality, Policy: tags.LabeledArray[string, uint32](3), Repeatable: true},
	"NATURAL_SKILL":         {Kind: CasteNaturalSkill, Policy: tags.LabeledArray[string, uint32](1), Repeatable: true},
	"SPEED":                 {Kind: CasteSpeed, Policy: tags.Single[uint32]()},
	"FEMALE":                {Kind: CasteFemale, Policy: tags.Flag()},
	"MALE":                  {Kind: CasteMale, Policy: tags.Flag()},
	"PET":                   {Kind: CastePet, Policy: tags.Flag()},
	"PET_EXOTIC":            {Kind: CastePetExotic, Policy: tags.Flag()},
	"LARGE_PREDATOR":        {Kind: CasteLargePredator, Policy: tags.Flag()},
	"BENIGN":                {Kind: CasteBenign, Policy: tags.Flag()},
	"CARNIVORE":             {Kind: CasteCarnivore, Policy: tags.Flag()},
	"NOFEAR":                {Kind: CasteNoFear, Policy: tags.Flag()},
	"NO_SLEEP":              {Kind: CasteNoSleep, Policy: tags.Flag()},
	"LAYS_EGGS":             {Kind: CasteLaysEggs, Policy: tags.Flag()},
	"MEGABEAST":             {Kind: CasteMegabeast, Policy: tags.Flag()},
	"TRAINABLE":             {Kind: CasteTrainable, Policy: tags.Flag()},
	"FLIER":                 {Kind: CasteFlier, Policy: tags.Flag()},
	"AMPHIBIOUS":            {Kind: CasteAmphibious, Policy: tags.Flag()},
	"AQUATIC":               {Kind: CasteAquatic, Policy: tags.Flag()},
	"CAN_LEARN":             {Kind: CasteCanLearn, Policy: tags.Flag()},
	"CAN_SPEAK":             {Kind: CasteCanSpeak, Policy: tags.Flag()},
	"NATURAL":               {Kind: CasteNatural, Policy: tags.Flag()},
	"EXTRAVISION":           {Kind: CasteExtravision, Policy: tags.Flag()},
})
