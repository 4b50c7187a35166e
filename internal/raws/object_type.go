// Package raws defines the decoded raw object model.
package raws

import "fmt"

// ObjectType is an OBJECT category, plus the synthetic kinds the pipeline
// produces.
type ObjectType int

const (
	ObjectUnknown ObjectType = iota
	ObjectCreature
	ObjectCreatureCaste
	ObjectSelectCreature
	ObjectInorganic
	ObjectPlant
	ObjectItem
	ObjectItemAmmo
	ObjectItemArmor
	ObjectItemFood
	ObjectItemGloves
	ObjectItemHelm
	ObjectItemInstrument
	ObjectItemPants
	ObjectItemShield
	ObjectItemShoes
	ObjectItemSiegeAmmo
	ObjectItemTool
	ObjectItemToy
	ObjectItemTrapComponent
	ObjectItemWeapon
	ObjectBuilding
	ObjectBuildingWorkshop
	ObjectBuildingFurnace
	ObjectReaction
	ObjectGraphics
	ObjectMaterialTemplate
	ObjectBodyDetailPlan
	ObjectBody
	ObjectEntity
	ObjectLanguage
	ObjectTranslation
	ObjectTissueTemplate
	ObjectCreatureVariation
	ObjectTextSet
	ObjectTilePage
	ObjectDescriptorColor
	ObjectDescriptorPattern
	ObjectDescriptorShape
	ObjectPalette
	ObjectMusic
	ObjectSound
	ObjectInteraction
)

var objectTokens = map[ObjectType]string{
	ObjectUnknown:           "UNKNOWN",
	ObjectCreature:          "CREATURE",
	ObjectCreatureCaste:     "CREATURE_CASTE",
	ObjectSelectCreature:    "SELECT_CREATURE",
	ObjectInorganic:         "INORGANIC",
	ObjectPlant:             "PLANT",
	ObjectItem:              "ITEM",
	ObjectItemAmmo:          "ITEM_AMMO",
	ObjectItemArmor:         "ITEM_ARMOR",
	ObjectItemFood:          "ITEM_FOOD",
	ObjectItemGloves:        "ITEM_GLOVES",
	ObjectItemHelm:          "ITEM_HELM",
	ObjectItemInstrument:    "ITEM_INSTRUMENT",
	ObjectItemPants:         "ITEM_PANTS",
	ObjectItemShield:        "ITEM_SHIELD",
	ObjectItemShoes:         "ITEM_SHOES",
	ObjectItemSiegeAmmo:     "ITEM_SIEGEAMMO",
	ObjectItemTool:          "ITEM_TOOL",
	ObjectItemToy:           "ITEM_TOY",
	ObjectItemTrapComponent: "ITEM_TRAPCOMP",
	ObjectItemWeapon:        "ITEM_WEAPON",
	ObjectBuilding:          "BUILDING",
	ObjectBuildingWorkshop:  "BUILDING_WORKSHOP",
	ObjectBuildingFurnace:   "BUILDING_FURNACE",
	ObjectReaction:          "REACTION",
	ObjectGraphics:          "GRAPHICS",
	ObjectMaterialTemplate:  "MATERIAL_TEMPLATE",
	ObjectBodyDetailPlan:    "BODY_DETAIL_PLAN",
	ObjectBody:              "BODY",
	ObjectEntity:            "ENTITY",
	ObjectLanguage:          "LANGUAGE",
	ObjectTranslation:       "TRANSLATION",
	ObjectTissueTemplate:    "TISSUE_TEMPLATE",
	ObjectCreatureVariation: "CREATURE_VARIATION",
	ObjectTextSet:           "TEXT_SET",
	ObjectTilePage:          "TILE_PAGE",
	ObjectDescriptorColor:   "DESCRIPTOR_COLOR",
	ObjectDescriptorPattern: "DESCRIPTOR_PATTERN",
	ObjectDescriptorShape:   "DESCRIPTOR_SHAPE",
	ObjectPalette:           "PALETTE",
	ObjectMusic:             "MUSIC",
	ObjectSound:             "SOUND",
	ObjectInteraction:       "INTERACTION",
}

var objectsByToken = func() map[string]ObjectType {
	m := make(map[string]ObjectType, len(objectTokens))
	for t, s := range objectTokens {
		m[s] = t
	}
	return m
}()

// String returns the OBJECT token for t.
func (t ObjectType) String() string {
	if s, ok := objectTokens[t]; ok {
		return s
	}
	return fmt.Sprintf("ObjectType(%d)", int(t))
}

// MarshalText encodes t as its OBJECT token.
func (t ObjectType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes an OBJECT token.
func (t *ObjectType) UnmarshalText(b []byte) error {
	v, ok := ParseObjectType(string(b))
	if !ok {
		return fmt.Errorf("unknown object type %q", b)
	}
	*t = v
	return nil
}

// ParseObjectType maps an OBJECT token to its category.
func ParseObjectType(s string) (ObjectType, bool) {
	t, ok := objectsByToken[s]
	if !ok || t == ObjectUnknown {
		return ObjectUnknown, false
	}
	return t, true
}

// Parsable lists the file categories the reader decodes.
var Parsable = []ObjectType{
	ObjectCreature,
	ObjectPlant,
	ObjectInorganic,
	ObjectGraphics,
	ObjectTilePage,
	ObjectEntity,
	ObjectMaterialTemplate,
	ObjectCreatureVariation,
}

// IsParsable reports whether files of category t are decoded.
func (t ObjectType) IsParsable() bool {
	for _, p := range Parsable {
		if p == t {
			return true
		}
	}
	return false
}
