package content

// ItemDef is the base definition of an item.
type ItemDef struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Kind          ItemKind   `json:"kind"`
	Slot          Slot       `json:"slot,omitempty"`
	Attack        int        `json:"attack,omitempty"`
	Armor         int        `json:"armor,omitempty"`
	Defense       int        `json:"defense,omitempty"`
	SellPrice     int        `json:"sell_price"`
	BuyPrice      int        `json:"buy_price,omitempty"` // 0: not sold by NPCs
	RequiredLevel int        `json:"required_level,omitempty"`
	Vocations     []Vocation `json:"vocations,omitempty"` // empty: everyone
	ScalingSkill  Skill      `json:"scaling_skill,omitempty"`
	WeaponKind    WeaponKind `json:"weapon_kind,omitempty"`
	AmmoType      AmmoType   `json:"ammo_type,omitempty"`

	// Potions.
	RestoreHP   float64 `json:"restore_hp,omitempty"`
	RestoreMana float64 `json:"restore_mana,omitempty"`

	// Runes.
	Rune *RuneStats `json:"rune,omitempty"`
}

// RuneStats describes an offensive rune.
type RuneStats struct {
	MagicLevel  int     `json:"magic_level"`
	Base        float64 `json:"base"`
	LevelFactor float64 `json:"level_factor"`
	MagicFactor float64 `json:"magic_factor"`
}

// IsEquipment reports whether the item occupies an equipment slot and can
// therefore roll a rarity.
func (d ItemDef) IsEquipment() bool {
	switch d.Kind {
	case KindWeapon, KindArmor, KindShield, KindJewelry:
		return true
	}
	return false
}

// UsableBy reports whether the vocation may equip the item.
func (d ItemDef) UsableBy(v Vocation) bool {
	if len(d.Vocations) == 0 {
		return true
	}
	for _, allowed := range d.Vocations {
		if allowed == v {
			return true
		}
	}
	return false
}

// NeedsAmmo reports whether the weapon fires ammunition.
func (d ItemDef) NeedsAmmo() bool { return d.AmmoType != AmmoNone && d.Kind == KindWeapon }
