package templates

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/meter"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/routepath"
)

const (
	// HPColor fills the health bar.
	HPColor = "#e74c3c"
	// XPColor fills the experience bar.
	XPColor = "#f1c40f"
)

// NumberField is one inline-editable integer posted on change.
type NumberField struct {
	CharacterID string
	Field       string
	Label       string
	Value       int
	Mode        Mode
}

// NumberInput renders the edit form for one field. Input is free text; the
// server parses it leniently.
func NumberInput(f NumberField) templ.Component {
	return component(func(m *markup) {
		action := routepath.CharacterField(f.CharacterID, f.Field)
		m.open("form",
			"class", "field-form",
			"method", "post",
			"action", action,
			"hx-post", action,
			"hx-trigger", "change",
			"hx-target", "#"+routepath.SheetElementID,
			"hx-swap", "outerHTML",
		)
		m.void("input", "type", "hidden", "name", routepath.QueryMode, "value", string(f.Mode))
		m.void("input",
			"class", "field-input",
			"type", "text",
			"inputmode", "numeric",
			"name", routepath.FormValue,
			"value", itoa(f.Value),
			"aria-label", f.Label,
			"data-field", f.Field,
		)
		m.close("form")
	})
}

// EditableNumber renders an input in edit mode and a static label otherwise.
func EditableNumber(f NumberField) templ.Component {
	if f.Mode.Editing() {
		return NumberInput(f)
	}
	return component(func(m *markup) {
		m.element("span", itoa(f.Value), "class", "field-value", "data-field", f.Field)
	})
}

// StatBarParams describes one current/max resource bar.
type StatBarParams struct {
	CharacterID  string
	Label        string
	CurrentField string
	MaxField     string
	Pool         character.Pool
	Color        string
	Mode         Mode
}

// StatBar renders a resource bar. The current value is always editable; the
// max value only in edit mode.
func StatBar(p StatBarParams) templ.Component {
	return component(func(m *markup) {
		percent := meter.FillPercent(p.Pool.Current, p.Pool.Max)
		m.open("div", "class", "stat-bar", "data-field", p.CurrentField)
		m.open("div", "class", "stat-bar-header")
		m.element("span", p.Label, "class", "stat-bar-label")
		m.open("span", "class", "stat-bar-values")
		m.render(NumberInput(NumberField{
			CharacterID: p.CharacterID,
			Field:       p.CurrentField,
			Label:       p.Label,
			Value:       p.Pool.Current,
			Mode:        p.Mode,
		}))
		m.element("span", "/", "class", "stat-bar-separator")
		m.render(EditableNumber(NumberField{
			CharacterID: p.CharacterID,
			Field:       p.MaxField,
			Label:       p.Label,
			Value:       p.Pool.Max,
			Mode:        p.Mode,
		}))
		m.close("span")
		m.close("div")
		m.open("div", "class", "stat-bar-track")
		m.open("div",
			"class", "stat-bar-fill",
			"style", "width: "+meter.FormatWidth(percent)+"; background-color: "+p.Color,
		)
		m.close("div")
		m.close("div")
		m.close("div")
	})
}

// AttributeCardParams describes one attribute tile.
type AttributeCardParams struct {
	CharacterID string
	Attribute   character.Attribute
	// Field overrides the edit path, e.g. for summon attributes.
	Field string
	Value int
	Mode  Mode
	// Rollable adds the d20 roll action in view mode.
	Rollable bool
}

// AttributeCard renders a signed modifier, or an input in edit mode.
func AttributeCard(p AttributeCardParams, loc Localizer) templ.Component {
	return component(func(m *markup) {
		label := T(loc, "sheet.attribute."+string(p.Attribute))
		field := p.Field
		if field == "" {
			field = character.AttributeField(p.Attribute)
		}
		m.open("div", "class", "attribute-card", "data-attribute", string(p.Attribute))
		switch {
		case p.Mode.Editing():
			m.render(NumberInput(NumberField{
				CharacterID: p.CharacterID,
				Field:       field,
				Label:       label,
				Value:       p.Value,
				Mode:        p.Mode,
			}))
		case p.Rollable:
			action := routepath.CharacterAttributeRoll(p.CharacterID, string(p.Attribute))
			m.open("form", "class", "attribute-roll-form", "method", "post", "action", action)
			m.open("button",
				"class", "attribute-roll",
				"type", "submit",
				"title", T(loc, "sheet.attribute.roll"),
				"hx-post", action,
				"hx-target", "#"+routepath.ActivityLogElementID,
				"hx-swap", "outerHTML",
			)
			m.element("span", meter.FormatModifier(p.Value), "class", "attribute-value")
			m.close("button")
			m.close("form")
		default:
			m.element("span", meter.FormatModifier(p.Value), "class", "attribute-value")
		}
		m.element("span", label, "class", "attribute-label")
		m.close("div")
	})
}
