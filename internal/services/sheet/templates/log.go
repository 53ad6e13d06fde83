package templates

import (
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/activity"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/dice"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/meter"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/routepath"
)

// RollOutcome is the highlighted result of the latest roll.
type RollOutcome struct {
	Title    string
	Total    int
	Detail   string
	Critical bool
	Fumble   bool
}

// AttributeRollOutcome summarizes a d20 attribute check.
func AttributeRollOutcome(attr character.Attribute, check dice.Check, loc Localizer) RollOutcome {
	return RollOutcome{
		Title:    T(loc, "sheet.attribute."+string(attr)),
		Total:    check.Total,
		Detail:   "d20 = " + itoa(check.Die) + " " + meter.FormatModifier(check.Modifier),
		Critical: check.Critical,
		Fumble:   check.Fumble,
	}
}

// SkillRollOutcome summarizes a skill use. Skills without damage dice show
// the Nen they cost.
func SkillRollOutcome(skill character.Skill, damage *dice.Damage, nenSpent int, loc Localizer) RollOutcome {
	outcome := RollOutcome{Title: skill.Name}
	if damage != nil {
		outcome.Total = damage.Total
		outcome.Detail = damage.Notation + " " + meter.FormatModifier(damage.Bonus)
	}
	if nenSpent > 0 {
		cost := T(loc, "sheet.skill.cost") + " " + itoa(nenSpent)
		if outcome.Detail == "" {
			outcome.Detail = cost
		} else {
			outcome.Detail += " · " + cost
		}
	}
	return outcome
}

// LogPanel renders the activity log, newest first, with an optional roll
// result on top.
func LogPanel(entries []activity.Entry, outcome *RollOutcome, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.open("section", "id", routepath.ActivityLogElementID, "class", "activity-log")
		m.element("h2", T(loc, "sheet.section.log"))
		if outcome != nil {
			renderOutcome(m, *outcome, loc)
		}
		if len(entries) == 0 {
			m.element("p", T(loc, "sheet.log.empty"), "class", "empty")
			m.close("section")
			return
		}
		m.open("ol", "class", "log-entries")
		for _, entry := range entries {
			renderLogEntry(m, entry, loc)
		}
		m.close("ol")
		m.close("section")
	})
}

func renderOutcome(m *markup, outcome RollOutcome, loc Localizer) {
	class := "roll-outcome"
	switch {
	case outcome.Critical:
		class += " roll-critical"
	case outcome.Fumble:
		class += " roll-fumble"
	}
	m.open("div", "class", class, "role", "status")
	m.element("span", outcome.Title, "class", "roll-title")
	m.element("strong", itoa(outcome.Total), "class", "roll-total")
	if outcome.Detail != "" {
		m.element("span", outcome.Detail, "class", "roll-detail")
	}
	if outcome.Critical {
		m.element("span", T(loc, "sheet.roll.critical"), "class", "roll-flag")
	}
	if outcome.Fumble {
		m.element("span", T(loc, "sheet.roll.fumble"), "class", "roll-flag")
	}
	m.close("div")
}

func renderLogEntry(m *markup, entry activity.Entry, loc Localizer) {
	m.open("li", "class", "log-entry log-"+string(entry.Kind), "data-code", entry.Code)
	if !entry.CreatedAt.IsZero() {
		m.element("time", entry.CreatedAt.Format("15:04"), "datetime", entry.CreatedAt.Format(time.RFC3339))
	}
	m.element("span", T(loc, entry.Code), "class", "log-text")
	if subject := logSubject(entry, loc); subject != "" {
		m.element("span", subject, "class", "log-subject")
	}
	if amount := logAmount(entry); amount != "" {
		m.element("span", amount, "class", "log-amount")
	}
	if entry.Detail != "" {
		m.element("span", entry.Detail, "class", "log-detail")
	}
	m.close("li")
}

func logSubject(entry activity.Entry, loc Localizer) string {
	switch entry.Code {
	case activity.CodeAttributeRoll:
		return T(loc, "sheet.attribute."+entry.Subject)
	case activity.CodeNenTypeChosen:
		return T(loc, "sheet.nen."+entry.Subject)
	default:
		return entry.Subject
	}
}

func logAmount(entry activity.Entry) string {
	switch entry.Code {
	case activity.CodeNenTypeChosen:
		return ""
	case activity.CodeHPLost, activity.CodeNenSpent:
		return "-" + itoa(entry.Amount)
	case activity.CodeHPGained, activity.CodeNenRecovered:
		return "+" + itoa(entry.Amount)
	case activity.CodeSkillRoll:
		if entry.Kind != activity.KindDamage {
			return ""
		}
	}
	return itoa(entry.Amount)
}
