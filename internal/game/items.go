package game

// EquipmentSlot names the position an item occupies on a player.
type EquipmentSlot string

const (
	SlotWeapon EquipmentSlot = "weapon"
	SlotShield EquipmentSlot = "shield"
	SlotHead   EquipmentSlot = "head"
	SlotChest  EquipmentSlot = "chest"
	SlotLegs   EquipmentSlot = "legs"
)

// Weapon is an equippable item contributing a flat damage bonus.
type Weapon struct {
	ItemName         string `json:"name"`
	Damage           int    `json:"damage"`
	LevelRequirement int    `json:"level_requirement"`
}

// ArmorPiece is an equippable item contributing a flat defense value in a
// specific slot.
type ArmorPiece struct {
	ItemName         string        `json:"name"`
	Defense          int           `json:"defense"`
	Slot             EquipmentSlot `json:"slot"`
	LevelRequirement int           `json:"level_requirement"`
}
