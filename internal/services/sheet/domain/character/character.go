// Package character defines the Hunter character sheet data shape and the
// field setters used by inline editing.
package character

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
)

var (
	// ErrIDRequired indicates a character without an identifier.
	ErrIDRequired = errors.New("character id is required")
	// ErrNameRequired indicates a character without a name.
	ErrNameRequired = errors.New("character name is required")
	// ErrInvalidNenType indicates an unknown active Nen type.
	ErrInvalidNenType = errors.New("nen type is invalid")
)

// Pool is a paired current/max resource such as HP or the Nen pool.
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// SkillCategory groups skills on the sheet.
type SkillCategory string

const (
	SkillHatsu  SkillCategory = "hatsu"
	SkillCombat SkillCategory = "combat"
	SkillWeapon SkillCategory = "weapon"
)

// SkillKind describes how a skill is used at the table.
type SkillKind string

const (
	SkillPassive  SkillKind = "passive"
	SkillActive   SkillKind = "active"
	SkillBonus    SkillKind = "bonus"
	SkillReaction SkillKind = "reaction"
)

// Skill is one ability, technique or weapon attack.
type Skill struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Kind        SkillKind     `json:"kind"`
	Cost        int           `json:"cost,omitempty"`
	Description string        `json:"description"`
	DamageDice  string        `json:"damage_dice,omitempty"`
	Scaling     Attribute     `json:"scaling,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
}

// InventoryItem is one carried item stack.
type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Summon is a mini character controlled by its owner.
type Summon struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	Type        string       `json:"type"`
	HP          Pool         `json:"hp"`
	Nen         Pool         `json:"nen"`
	Attributes  AttributeSet `json:"attributes"`
	Description string       `json:"description"`
	Skills      []Skill      `json:"skills"`
}

// Character is a full Hunter sheet.
type Character struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Nickname    string          `json:"nickname"`
	AvatarURL   string          `json:"avatar_url"`
	Age         int             `json:"age"`
	Nationality string          `json:"nationality"`
	Height      string          `json:"height"`
	Weight      string          `json:"weight"`
	Alignment   string          `json:"alignment"`
	Bio         string          `json:"bio"`
	HunterLevel int             `json:"hunter_level"`
	XP          Pool            `json:"xp"`
	NenType     nen.Type        `json:"nen_type"`
	HP          Pool            `json:"hp"`
	Nen         Pool            `json:"nen"`
	ArmorClass  int             `json:"armor_class"`
	Attributes  AttributeSet    `json:"attributes"`
	Skills      []Skill         `json:"skills"`
	Inventory   []InventoryItem `json:"inventory"`
	Summons     []Summon        `json:"summons"`
	Conditions  []string        `json:"conditions"`
}

// Validate checks the invariants the store relies on.
func (c Character) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrIDRequired
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if !c.NenType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidNenType, c.NenType)
	}
	return nil
}

// Skill returns the skill with id.
func (c Character) Skill(id string) (Skill, bool) {
	for _, skill := range c.Skills {
		if skill.ID == id {
			return skill, true
		}
	}
	return Skill{}, false
}

// Summon returns a pointer to the summon with id so setters can mutate it.
func (c *Character) Summon(id string) *Summon {
	for i := range c.Summons {
		if c.Summons[i].ID == id {
			return &c.Summons[i]
		}
	}
	return nil
}

// Clone returns a deep copy of c.
func (c Character) Clone() Character {
	out := c
	out.Skills = append([]Skill(nil), c.Skills...)
	out.Inventory = append([]InventoryItem(nil), c.Inventory...)
	out.Conditions = append([]string(nil), c.Conditions...)
	out.Summons = make([]Summon, len(c.Summons))
	for i, summon := range c.Summons {
		summon.Skills = append([]Skill(nil), summon.Skills...)
		out.Summons[i] = summon
	}
	if c.Summons == nil {
		out.Summons = nil
	}
	return out
}
