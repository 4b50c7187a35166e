package vocab

import "rawgraph/internal/tags"

// EntityKind is a civilization entity tag.
type EntityKind int

const (
	EntityCreature EntityKind = iota
	EntityCaste
	EntitySelectCaste
	EntityTranslation
	EntityBiomeSupport
	EntityMaxStartingCivNumber
	EntityMaxPopNumber
	EntityMaxSitePopNumber
	EntityEthic
	EntityValue
	EntitySelectSymbol
	EntityWeapon
	EntityCivControllable
	EntityIndivControllable
	EntityLayerLinked
	EntitySiteVariablePositions
	EntityAllMainPopsControllable
	EntityBabySnatcher
	EntityItemThief
	EntityAmbusher
)

// Entity is the entity vocabulary. CASTE and SELECT_CASTE are plain entity
// tags here rather than caste switches.
var Entity = tags.NewTable("entity", map[string]tags.Entry[EntityKind]{
	"CREATURE":                   {Kind: EntityCreature, Policy: tags.Single[string](), Repeatable: true},
	"CASTE":                      {Kind: EntityCaste, Policy: tags.Vector[string](), Repeatable: true},
	"SELECT_CASTE":               {Kind: EntitySelectCaste, Policy: tags.Vector[string](), Repeatable: true},
	"TRANSLATION":                {Kind: EntityTranslation, Policy: tags.Single[string]()},
	"BIOME_SUPPORT":              {Kind: EntityBiomeSupport, Policy: tags.LabeledArray[string, uint32](1), Repeatable: true},
	"MAX_STARTING_CIV_NUMBER":    {Kind: EntityMaxStartingCivNumber, Policy: tags.Single[uint32]()},
	"MAX_POP_NUMBER":             {Kind: EntityMaxPopNumber, Policy: tags.Single[uint32]()},
	"MAX_SITE_POP_NUMBER":        {Kind: EntityMaxSitePopNumber, Policy: tags.Single[uint32]()},
	"ETHIC":                      {Kind: EntityEthic, Policy: tags.LabeledArray[string, string](1), Repeatable: true},
	"VALUE":                      {Kind: EntityValue, Policy: tags.LabeledArray[string, int32](1), Repeatable: true},
	"SELECT_SYMBOL":              {Kind: EntitySelectSymbol, Policy: tags.Array[string](2), Repeatable: true},
	"WEAPON":                     {Kind: EntityWeapon, Policy: tags.Single[string](), Repeatable: true},
	"CIV_CONTROLLABLE":           {Kind: EntityCivControllable, Policy: tags.Flag()},
	"INDIV_CONTROLLABLE":         {Kind: EntityIndivControllable, Policy: tags.Flag()},
	"LAYER_LINKED":               {Kind: EntityLayerLinked, Policy: tags.Flag()},
	"SITE_VARIABLE_POSITIONS":    {Kind: EntitySiteVariablePositions, Policy: tags.Flag()},
	"ALL_MAIN_POPS_CONTROLLABLE": {Kind: EntityAllMainPopsControllable, Policy: tags.Flag()},
	"BABYSNATCHER":               {Kind: EntityBabySnatcher, Policy: tags.Flag()},
	"ITEM_THIEF":                 {Kind: EntityItemThief, Policy: tags.Flag()},
	"AMBUSHER":                   {Kind: EntityAmbusher, Policy: tags.Flag()},
})
