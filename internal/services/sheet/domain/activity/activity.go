// Package activity describes entries in a character's activity log.
package activity

import (
	"strings"
	"time"
)

// Kind classifies an entry for display.
type Kind string

const (
	KindInfo   Kind = "info"
	KindDamage Kind = "damage"
	KindHeal   Kind = "heal"
	KindCost   Kind = "cost"
)

// Entry codes. Codes are localization keys; Subject and Amount fill them in.
const (
	CodeFieldChanged  = "sheet.log.field_changed"
	CodeHPLost        = "sheet.log.hp_lost"
	CodeHPGained      = "sheet.log.hp_gained"
	CodeNenSpent      = "sheet.log.nen_spent"
	CodeNenRecovered  = "sheet.log.nen_recovered"
	CodeNenTypeChosen = "sheet.log.nen_type_chosen"
	CodeAttributeRoll = "sheet.log.attribute_roll"
	CodeSkillRoll     = "sheet.log.skill_roll"
)

// Entry is one line in the activity log.
type Entry struct {
	ID          string    `json:"id"`
	CharacterID string    `json:"character_id"`
	Kind        Kind      `json:"kind"`
	Code        string    `json:"code"`
	Subject     string    `json:"subject,omitempty"`
	Amount      int       `json:"amount"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FieldChange builds the entry for an edited numeric field. Drops and rises
// of the current HP and Nen pools get their own codes; everything else is
// an informational change.
func FieldChange(field string, before, after int) Entry {
	delta := after - before
	entry := Entry{Kind: KindInfo, Code: CodeFieldChanged, Subject: field, Amount: after}
	if !isPoolCurrent(field) || delta == 0 {
		return entry
	}

	switch {
	case isHP(field) && delta < 0:
		entry.Kind, entry.Code, entry.Amount = KindDamage, CodeHPLost, -delta
	case isHP(field):
		entry.Kind, entry.Code, entry.Amount = KindHeal, CodeHPGained, delta
	case delta < 0:
		entry.Kind, entry.Code, entry.Amount = KindCost, CodeNenSpent, -delta
	default:
		entry.Kind, entry.Code, entry.Amount = KindHeal, CodeNenRecovered, delta
	}
	return entry
}

func isPoolCurrent(field string) bool {
	return strings.HasSuffix(field, "hp.current") || strings.HasSuffix(field, "nen.current")
}

func isHP(field string) bool {
	return strings.HasSuffix(field, "hp.current")
}
