package character

import "strings"

// Field paths accepted by Setter and Value. Summon and inventory fields are
// addressed as "summons.<id>.<field>" and "inventory.<id>.quantity".
const (
	FieldHPCurrent   = "hp.current"
	FieldHPMax       = "hp.max"
	FieldNenCurrent  = "nen.current"
	FieldNenMax      = "nen.max"
	FieldXPCurrent   = "xp.current"
	FieldXPMax       = "xp.max"
	FieldArmorClass  = "armor_class"
	FieldHunterLevel = "hunter_level"
	FieldAge         = "age"

	attributePrefix = "attributes."
	summonPrefix    = "summons."
	inventoryPrefix = "inventory."
)

// UpdateFunc receives a new value for one numeric field.
type UpdateFunc func(value int)

// AttributeField returns the field path for attr.
func AttributeField(attr Attribute) string {
	return attributePrefix + string(attr)
}

// SummonField returns the field path for a summon's field.
func SummonField(summonID, field string) string {
	return summonPrefix + summonID + "." + field
}

// InventoryQuantityField returns the field path for an item's quantity.
func InventoryQuantityField(itemID string) string {
	return inventoryPrefix + itemID + ".quantity"
}

// Setter returns the update callback for field on c. The callback writes
// through to c; ok is false when field does not name a numeric field.
func Setter(c *Character, field string) (UpdateFunc, bool) {
	ref := c.resolve(field)
	if ref == nil {
		return nil, false
	}
	return func(value int) { *ref = value }, true
}

// Value returns the current value of field.
func Value(c Character, field string) (int, bool) {
	ref := c.resolve(field)
	if ref == nil {
		return 0, false
	}
	return *ref, true
}

func (c *Character) resolve(field string) *int {
	if c == nil {
		return nil
	}
	field = strings.TrimSpace(field)
	switch field {
	case FieldHPCurrent:
		return &c.HP.Current
	case FieldHPMax:
		return &c.HP.Max
	case FieldNenCurrent:
		return &c.Nen.Current
	case FieldNenMax:
		return &c.Nen.Max
	case FieldXPCurrent:
		return &c.XP.Current
	case FieldXPMax:
		return &c.XP.Max
	case FieldArmorClass:
		return &c.ArmorClass
	case FieldHunterLevel:
		return &c.HunterLevel
	case FieldAge:
		return &c.Age
	}
	switch {
	case strings.HasPrefix(field, attributePrefix):
		attr, ok := ParseAttribute(strings.TrimPrefix(field, attributePrefix))
		if !ok {
			return nil
		}
		return c.Attributes.field(attr)
	case strings.HasPrefix(field, summonPrefix):
		id, rest, ok := strings.Cut(strings.TrimPrefix(field, summonPrefix), ".")
		if !ok {
			return nil
		}
		summon := c.Summon(id)
		if summon == nil {
			return nil
		}
		return summon.resolve(rest)
	case strings.HasPrefix(field, inventoryPrefix):
		id, rest, ok := strings.Cut(strings.TrimPrefix(field, inventoryPrefix), ".")
		if !ok || rest != "quantity" {
			return nil
		}
		for i := range c.Inventory {
			if c.Inventory[i].ID == id {
				return &c.Inventory[i].Quantity
			}
		}
	}
	return nil
}

func (s *Summon) resolve(field string) *int {
	switch field {
	case FieldHPCurrent:
		return &s.HP.Current
	case FieldHPMax:
		return &s.HP.Max
	case FieldNenCurrent:
		return &s.Nen.Current
	case FieldNenMax:
		return &s.Nen.Max
	}
	if strings.HasPrefix(field, attributePrefix) {
		attr, ok := ParseAttribute(strings.TrimPrefix(field, attributePrefix))
		if !ok {
			return nil
		}
		return s.Attributes.field(attr)
	}
	return nil
}
