package templates

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/activity"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/routepath"
)

// SheetState is everything the sheet body renders.
type SheetState struct {
	Character character.Character
	Log       []activity.Entry
	Outcome   *RollOutcome
	Localizer Localizer
}

// Render draws the sheet body for state. mode picks static labels or inputs
// for editable fields; unknown modes render as view.
func Render(state SheetState, mode Mode) templ.Component {
	if mode != ModeEdit {
		mode = ModeView
	}
	return component(func(m *markup) {
		c := state.Character
		loc := state.Localizer
		color := c.NenType.Color()

		m.open("section",
			"id", routepath.SheetElementID,
			"class", "sheet sheet-"+string(mode),
			"data-character", c.ID,
			"data-mode", string(mode),
			"style", "--theme-color: "+color,
		)
		renderHeader(m, c, mode, loc)

		m.open("div", "class", "sheet-grid")

		m.open("div", "class", "sheet-column sheet-stats")
		renderResources(m, c, mode, loc)
		renderProfile(m, c, mode, loc)
		m.close("div")

		m.open("div", "class", "sheet-column sheet-charts")
		m.open("section", "class", "sheet-attributes")
		m.element("h2", T(loc, "sheet.section.attributes"))
		m.open("div", "class", "attribute-grid")
		for _, attr := range character.AllAttributes() {
			m.render(AttributeCard(AttributeCardParams{
				CharacterID: c.ID,
				Attribute:   attr,
				Value:       c.Attributes.Value(attr),
				Mode:        mode,
				Rollable:    true,
			}, loc))
		}
		m.close("div")
		m.close("section")

		m.open("section", "class", "sheet-radar")
		m.element("h2", T(loc, "sheet.section.radar"))
		m.render(RadarChart(c.Attributes, color, RadarSize, loc))
		m.close("section")

		m.open("section", "class", "sheet-affinity")
		m.element("h2", T(loc, "sheet.section.affinity"))
		m.render(NenTypeSelect(c.ID, c.NenType, mode, loc))
		m.render(NenHexagon(c.NenType, loc))
		m.close("section")
		m.close("div")

		m.open("div", "class", "sheet-column sheet-details")
		renderSkills(m, c.ID, c.Skills, mode, loc)
		renderInventory(m, c, mode, loc)
		renderSummons(m, c, mode, loc)
		if c.Bio != "" {
			m.open("section", "class", "sheet-bio")
			m.element("h2", T(loc, "sheet.section.bio"))
			m.element("p", c.Bio)
			m.close("section")
		}
		m.render(LogPanel(state.Log, state.Outcome, loc))
		m.close("div")

		m.close("div")
		m.close("section")
	})
}

func renderHeader(m *markup, c character.Character, mode Mode, loc Localizer) {
	m.open("header", "class", "sheet-header")
	if c.AvatarURL != "" {
		m.void("img", "class", "avatar", "src", string(templ.URL(c.AvatarURL)), "alt", c.Name)
	}
	m.open("div", "class", "sheet-identity")
	m.element("h1", c.Name, "class", "character-name")
	if c.Nickname != "" {
		m.element("span", c.Nickname, "class", "character-nickname")
	}
	if c.NenType.Valid() {
		m.element("span", T(loc, "sheet.nen."+string(c.NenType)), "class", "nen-badge")
	}
	m.close("div")

	toggle, label := routepath.CharacterEdit(c.ID), T(loc, "core.mode.edit")
	if mode.Editing() {
		toggle, label = routepath.Character(c.ID), T(loc, "core.mode.view")
	}
	m.element("a", label, "class", "mode-toggle", "href", toggle)
	m.close("header")
}

func renderResources(m *markup, c character.Character, mode Mode, loc Localizer) {
	m.open("section", "class", "sheet-resources")
	m.render(StatBar(StatBarParams{
		CharacterID:  c.ID,
		Label:        T(loc, "sheet.stat.hp"),
		CurrentField: character.FieldHPCurrent,
		MaxField:     character.FieldHPMax,
		Pool:         c.HP,
		Color:        HPColor,
		Mode:         mode,
	}))
	m.render(StatBar(StatBarParams{
		CharacterID:  c.ID,
		Label:        T(loc, "sheet.stat.nen"),
		CurrentField: character.FieldNenCurrent,
		MaxField:     character.FieldNenMax,
		Pool:         c.Nen,
		Color:        c.NenType.Color(),
		Mode:         mode,
	}))
	m.render(StatBar(StatBarParams{
		CharacterID:  c.ID,
		Label:        T(loc, "sheet.stat.xp"),
		CurrentField: character.FieldXPCurrent,
		MaxField:     character.FieldXPMax,
		Pool:         c.XP,
		Color:        XPColor,
		Mode:         mode,
	}))

	m.open("dl", "class", "sheet-numbers")
	renderNumberTerm(m, T(loc, "sheet.stat.armor_class"), NumberField{
		CharacterID: c.ID, Field: character.FieldArmorClass, Value: c.ArmorClass, Mode: mode,
	})
	renderNumberTerm(m, T(loc, "sheet.stat.hunter_level"), NumberField{
		CharacterID: c.ID, Field: character.FieldHunterLevel, Value: c.HunterLevel, Mode: mode,
	})
	m.close("dl")
	m.close("section")
}

func renderNumberTerm(m *markup, label string, field NumberField) {
	field.Label = label
	m.element("dt", label)
	m.open("dd")
	m.render(EditableNumber(field))
	m.close("dd")
}

func renderProfile(m *markup, c character.Character, mode Mode, loc Localizer) {
	m.open("dl", "class", "sheet-profile")
	renderNumberTerm(m, T(loc, "sheet.profile.age"), NumberField{
		CharacterID: c.ID, Field: character.FieldAge, Value: c.Age, Mode: mode,
	})
	for _, row := range []struct{ key, value string }{
		{"sheet.profile.nationality", c.Nationality},
		{"sheet.profile.height", c.Height},
		{"sheet.profile.weight", c.Weight},
		{"sheet.profile.alignment", c.Alignment},
	} {
		if row.value == "" {
			continue
		}
		m.element("dt", T(loc, row.key))
		m.element("dd", row.value)
	}
	m.close("dl")
}

// NenTypeSelect renders the active type picker in edit mode and nothing in
// view mode.
func NenTypeSelect(characterID string, active nen.Type, mode Mode, loc Localizer) templ.Component {
	return component(func(m *markup) {
		if !mode.Editing() {
			return
		}
		action := routepath.CharacterNenType(characterID)
		m.open("form",
			"class", "nen-type-form",
			"method", "post",
			"action", action,
			"hx-post", action,
			"hx-trigger", "change",
			"hx-target", "#"+routepath.SheetElementID,
			"hx-swap", "outerHTML",
		)
		m.void("input", "type", "hidden", "name", routepath.QueryMode, "value", string(mode))
		m.element("label", T(loc, "sheet.nen.choose"), "for", "nen-type-"+characterID)
		m.open("select", "id", "nen-type-"+characterID, "name", routepath.FormNenType)
		for _, t := range nen.Types() {
			selected := ""
			if t == active {
				selected = "selected"
			}
			m.element("option", T(loc, "sheet.nen."+string(t)), "value", string(t), "selected", selected)
		}
		m.close("select")
		m.close("form")
	})
}

func renderSkills(m *markup, characterID string, skills []character.Skill, mode Mode, loc Localizer) {
	m.open("section", "class", "sheet-skills")
	m.element("h2", T(loc, "sheet.section.skills"))
	if len(skills) == 0 {
		m.element("p", T(loc, "sheet.list.empty"), "class", "empty")
		m.close("section")
		return
	}
	m.open("ul", "class", "skill-list")
	for _, skill := range skills {
		m.render(SkillCard(characterID, skill, mode, loc))
	}
	m.close("ul")
	m.close("section")
}

// SkillCard renders one skill. Usable skills get a roll action in view mode.
func SkillCard(characterID string, skill character.Skill, mode Mode, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.open("li", "class", "skill-card skill-"+string(skill.Category), "data-skill", skill.ID)
		if skill.ImageURL != "" {
			m.void("img", "class", "skill-image", "src", string(templ.URL(skill.ImageURL)), "alt", skill.Name)
		}
		m.element("h3", skill.Name, "class", "skill-name")
		m.open("div", "class", "skill-tags")
		m.element("span", T(loc, "sheet.skill.category."+string(skill.Category)), "class", "skill-category")
		m.element("span", T(loc, "sheet.skill.kind."+string(skill.Kind)), "class", "skill-kind")
		if skill.Cost > 0 {
			m.element("span", T(loc, "sheet.skill.cost")+" "+itoa(skill.Cost), "class", "skill-cost")
		}
		if skill.DamageDice != "" {
			damage := T(loc, "sheet.skill.damage") + " " + skill.DamageDice
			if skill.Scaling != "" {
				damage += " + " + T(loc, "sheet.attribute."+string(skill.Scaling)+".short")
			}
			m.element("span", damage, "class", "skill-damage")
		}
		m.close("div")
		if skill.Description != "" {
			m.element("p", skill.Description, "class", "skill-description")
		}
		if !mode.Editing() && skill.Kind != character.SkillPassive && characterID != "" {
			action := routepath.CharacterSkillRoll(characterID, skill.ID)
			m.open("form", "class", "skill-roll-form", "method", "post", "action", action)
			m.element("button", T(loc, "sheet.skill.roll"),
				"class", "skill-roll",
				"type", "submit",
				"hx-post", action,
				"hx-target", "#"+routepath.SheetElementID,
				"hx-swap", "outerHTML",
			)
			m.close("form")
		}
		m.close("li")
	})
}

func renderInventory(m *markup, c character.Character, mode Mode, loc Localizer) {
	m.open("section", "class", "sheet-inventory")
	m.element("h2", T(loc, "sheet.section.inventory"))
	if len(c.Inventory) == 0 {
		m.element("p", T(loc, "sheet.list.empty"), "class", "empty")
		m.close("section")
		return
	}
	m.open("ul", "class", "inventory-list")
	for _, item := range c.Inventory {
		m.open("li", "class", "inventory-item", "data-item", item.ID)
		m.element("span", item.Name, "class", "item-name")
		m.render(EditableNumber(NumberField{
			CharacterID: c.ID,
			Field:       character.InventoryQuantityField(item.ID),
			Label:       T(loc, "sheet.inventory.quantity"),
			Value:       item.Quantity,
			Mode:        mode,
		}))
		m.close("li")
	}
	m.close("ul")
	m.close("section")
}

func renderSummons(m *markup, c character.Character, mode Mode, loc Localizer) {
	if len(c.Summons) == 0 {
		return
	}
	m.open("section", "class", "sheet-summons")
	m.element("h2", T(loc, "sheet.section.summons"))
	for _, summon := range c.Summons {
		m.render(SummonCard(c.ID, summon, mode, loc))
	}
	m.close("section")
}

// SummonCard renders a summon as a mini sheet with its own bars and radar.
func SummonCard(characterID string, summon character.Summon, mode Mode, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.open("article", "class", "summon-card", "data-summon", summon.ID)
		m.open("header", "class", "summon-header")
		if summon.AvatarURL != "" {
			m.void("img", "class", "avatar", "src", string(templ.URL(summon.AvatarURL)), "alt", summon.Name)
		}
		m.element("h3", summon.Name, "class", "summon-name")
		if summon.Type != "" {
			m.element("span", summon.Type, "class", "summon-type")
		}
		m.close("header")

		m.render(StatBar(StatBarParams{
			CharacterID:  characterID,
			Label:        T(loc, "sheet.stat.hp"),
			CurrentField: character.SummonField(summon.ID, character.FieldHPCurrent),
			MaxField:     character.SummonField(summon.ID, character.FieldHPMax),
			Pool:         summon.HP,
			Color:        HPColor,
			Mode:         mode,
		}))
		m.render(StatBar(StatBarParams{
			CharacterID:  characterID,
			Label:        T(loc, "sheet.stat.nen"),
			CurrentField: character.SummonField(summon.ID, character.FieldNenCurrent),
			MaxField:     character.SummonField(summon.ID, character.FieldNenMax),
			Pool:         summon.Nen,
			Color:        nen.FallbackColor,
			Mode:         mode,
		}))
		m.render(RadarChart(summon.Attributes, nen.FallbackColor, SummonRadarSize, loc))
		if mode.Editing() {
			m.open("div", "class", "attribute-grid")
			for _, attr := range character.AllAttributes() {
				m.render(AttributeCard(AttributeCardParams{
					CharacterID: characterID,
					Attribute:   attr,
					Field:       character.SummonField(summon.ID, character.AttributeField(attr)),
					Value:       summon.Attributes.Value(attr),
					Mode:        mode,
				}, loc))
			}
			m.close("div")
		}
		if summon.Description != "" {
			m.element("p", summon.Description, "class", "summon-description")
		}
		if len(summon.Skills) > 0 {
			m.open("ul", "class", "skill-list")
			for _, skill := range summon.Skills {
				// Summon skills are display-only; rolls resolve against the owner.
				m.render(SkillCard("", skill, mode, loc))
			}
			m.close("ul")
		}
		m.close("article")
	})
}
