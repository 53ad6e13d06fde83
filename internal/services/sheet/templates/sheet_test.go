package templates

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/activity"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/dice"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/routepath"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/storage"
)

func inputsByName(n *html.Node, name string) []*html.Node {
	return findAll(n, func(node *html.Node) bool {
		return node.Data == "input" && attr(node, "name") == name
	})
}

func TestStatBarViewModeOnlyEditsCurrent(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, StatBar(StatBarParams{
		CharacterID:  "c1",
		Label:        "HP",
		CurrentField: character.FieldHPCurrent,
		MaxField:     character.FieldHPMax,
		Pool:         character.Pool{Current: 5, Max: 20},
		Color:        HPColor,
		Mode:         ModeView,
	}))
	inputs := inputsByName(doc, routepath.FormValue)
	input := mustOne(t, inputs, "value inputs")
	if attr(input, "value") != "5" || attr(input, "data-field") != character.FieldHPCurrent {
		t.Fatalf("current input = %q/%q, want 5/%s", attr(input, "value"), attr(input, "data-field"), character.FieldHPCurrent)
	}
	maxLabel := mustOne(t, findAll(doc, byClass("field-value")), "static values")
	if textContent(maxLabel) != "20" {
		t.Fatalf("max label = %q, want 20", textContent(maxLabel))
	}
	fill := mustOne(t, findAll(doc, byClass("stat-bar-fill")), "fills")
	if style := attr(fill, "style"); !strings.Contains(style, "width: 25%") {
		t.Fatalf("fill style = %q, want width 25%%", style)
	}
	form := mustOne(t, findAll(doc, byTag("form")), "forms")
	if got := attr(form, "hx-post"); got != "/characters/c1/fields/hp.current" {
		t.Fatalf("hx-post = %q", got)
	}
	if got := attr(form, "hx-target"); got != "#sheet" {
		t.Fatalf("hx-target = %q", got)
	}
}

func TestStatBarEditModeEditsMax(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, StatBar(StatBarParams{
		CharacterID:  "c1",
		CurrentField: character.FieldNenCurrent,
		MaxField:     character.FieldNenMax,
		Pool:         character.Pool{Current: 10, Max: 0},
		Mode:         ModeEdit,
	}))
	if got := len(inputsByName(doc, routepath.FormValue)); got != 2 {
		t.Fatalf("value inputs = %d, want 2", got)
	}
	for _, hidden := range inputsByName(doc, routepath.QueryMode) {
		if attr(hidden, "value") != "edit" {
			t.Fatalf("mode input = %q, want edit", attr(hidden, "value"))
		}
	}
	fill := mustOne(t, findAll(doc, byClass("stat-bar-fill")), "fills")
	if style := attr(fill, "style"); !strings.Contains(style, "width: 0%") {
		t.Fatalf("fill style = %q, want width 0%%", style)
	}
}

func TestAttributeCard(t *testing.T) {
	t.Parallel()

	view := renderDoc(t, AttributeCard(AttributeCardParams{
		CharacterID: "c1",
		Attribute:   character.Intelligence,
		Value:       0,
		Mode:        ModeView,
		Rollable:    true,
	}, nil))
	value := mustOne(t, findAll(view, byClass("attribute-value")), "values")
	if textContent(value) != "+0" {
		t.Fatalf("view value = %q, want +0", textContent(value))
	}
	button := mustOne(t, findAll(view, byClass("attribute-roll")), "roll buttons")
	if got := attr(button, "hx-post"); got != "/characters/c1/rolls/intelligence" {
		t.Fatalf("roll hx-post = %q", got)
	}
	if got := attr(button, "hx-target"); got != "#activity-log" {
		t.Fatalf("roll hx-target = %q", got)
	}

	edit := renderDoc(t, AttributeCard(AttributeCardParams{
		CharacterID: "c1",
		Attribute:   character.Charisma,
		Value:       -3,
		Mode:        ModeEdit,
		Rollable:    true,
	}, nil))
	input := mustOne(t, inputsByName(edit, routepath.FormValue), "value inputs")
	if attr(input, "value") != "-3" || attr(input, "data-field") != "attributes.charisma" {
		t.Fatalf("edit input = %q/%q", attr(input, "value"), attr(input, "data-field"))
	}
	if buttons := findAll(edit, byClass("attribute-roll")); len(buttons) != 0 {
		t.Fatalf("edit mode roll buttons = %d, want 0", len(buttons))
	}
}

func TestRenderSheetModes(t *testing.T) {
	t.Parallel()

	state := SheetState{
		Character: character.Default(),
		Log: []activity.Entry{
			{Kind: activity.KindDamage, Code: activity.CodeHPLost, Subject: character.FieldHPCurrent, Amount: 5, CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)},
		},
	}

	view := renderDoc(t, Render(state, ModeView))
	sheet := mustOne(t, findAll(view, byAttr("id", routepath.SheetElementID)), "sheet roots")
	if attr(sheet, "data-mode") != "view" {
		t.Fatalf("data-mode = %q, want view", attr(sheet, "data-mode"))
	}
	if selects := findAll(view, byTag("select")); len(selects) != 0 {
		t.Fatalf("view mode selects = %d, want 0", len(selects))
	}
	// HP, Nen and XP current values for the owner and the summon's two bars.
	if got := len(inputsByName(view, routepath.FormValue)); got != 5 {
		t.Fatalf("view mode inputs = %d, want 5", got)
	}
	if got := len(findAll(view, byClass("radar-chart"))); got != 2 {
		t.Fatalf("radar charts = %d, want 2", got)
	}
	mustOne(t, findAll(view, byClass("nen-hexagon")), "hexagons")
	// Passive skills have no roll action.
	if got := len(findAll(view, byClass("skill-roll"))); got != 2 {
		t.Fatalf("skill roll buttons = %d, want 2", got)
	}
	amount := mustOne(t, findAll(view, byClass("log-amount")), "log amounts")
	if textContent(amount) != "-5" {
		t.Fatalf("log amount = %q, want -5", textContent(amount))
	}

	edit := renderDoc(t, Render(state, ModeEdit))
	sel := mustOne(t, findAll(edit, byTag("select")), "selects")
	if attr(sel, "name") != routepath.FormNenType {
		t.Fatalf("select name = %q", attr(sel, "name"))
	}
	selected := findAll(sel, func(n *html.Node) bool { return n.Data == "option" && hasAttr(n, "selected") })
	if len(selected) != 1 || attr(selected[0], "value") != "specialist" {
		t.Fatalf("selected options = %d, want specialist only", len(selected))
	}
	toggle := mustOne(t, findAll(edit, byClass("mode-toggle")), "mode toggles")
	if attr(toggle, "href") != "/characters/char_default" {
		t.Fatalf("edit toggle href = %q", attr(toggle, "href"))
	}
	if got := len(findAll(edit, byClass("skill-roll"))); got != 0 {
		t.Fatalf("edit mode skill rolls = %d, want 0", got)
	}
}

func TestRenderTreatsUnknownModeAsView(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, Render(SheetState{Character: character.Default()}, Mode("bogus")))
	sheet := mustOne(t, findAll(doc, byAttr("id", routepath.SheetElementID)), "sheet roots")
	if attr(sheet, "data-mode") != "view" {
		t.Fatalf("data-mode = %q, want view", attr(sheet, "data-mode"))
	}
}

func TestLogPanelOutcome(t *testing.T) {
	t.Parallel()

	outcome := AttributeRollOutcome(character.Strength, dice.Check{Die: 20, Modifier: -2, Total: 18, Critical: true}, nil)
	doc := renderDoc(t, LogPanel(nil, &outcome, nil))
	panel := mustOne(t, findAll(doc, byAttr("id", routepath.ActivityLogElementID)), "log panels")
	result := mustOne(t, findAll(panel, byClass("roll-critical")), "critical outcomes")
	if got := textContent(mustOne(t, findAll(result, byClass("roll-total")), "totals")); got != "18" {
		t.Fatalf("roll total = %q, want 18", got)
	}
	if got := textContent(mustOne(t, findAll(result, byClass("roll-detail")), "details")); got != "d20 = 20 -2" {
		t.Fatalf("roll detail = %q", got)
	}
	mustOne(t, findAll(panel, byClass("empty")), "empty notes")
}

func TestSkillRollOutcome(t *testing.T) {
	t.Parallel()

	skill := character.Skill{Name: "Força de Pulso", Cost: 2}
	got := SkillRollOutcome(skill, &dice.Damage{Notation: "1d8", Bonus: 3, Total: 9}, 2, fakeLocalizer{value: "Cost"})
	if got.Total != 9 || got.Detail != "1d8 +3 · Cost 2" {
		t.Fatalf("SkillRollOutcome() = %+v", got)
	}
	got = SkillRollOutcome(skill, nil, 0, nil)
	if got.Total != 0 || got.Detail != "" {
		t.Fatalf("SkillRollOutcome(no damage) = %+v", got)
	}
}

func TestCharacterList(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, CharacterList([]storage.CharacterSummary{
		{ID: "a b", Name: "Gon", NenType: "enhancer", HunterLevel: 1},
	}, nil))
	link := mustOne(t, findAll(doc, func(n *html.Node) bool { return n.Data == "a" }), "links")
	if attr(link, "href") != "/characters/a%20b" {
		t.Fatalf("link href = %q", attr(link, "href"))
	}

	empty := renderDoc(t, CharacterList(nil, nil))
	mustOne(t, findAll(empty, byClass("empty")), "empty notes")
}

func TestLayoutRendersChildren(t *testing.T) {
	t.Parallel()

	child := component(func(m *markup) { m.element("p", "body", "id", "child") })
	page := PageContext{
		Title: "Hades",
		Lang:  "pt-BR",
		Languages: []LanguageOption{
			{Tag: "en-US", Label: "English", URL: "/characters?lang=en-US"},
			{Tag: "pt-BR", Label: "Português", URL: "/characters?lang=pt-BR", Active: true},
		},
	}
	var b strings.Builder
	if err := Layout(page, nil).Render(templ.WithChildren(context.Background(), child), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	main := mustOne(t, findAll(doc, byTag("main")), "main elements")
	mustOne(t, findAll(main, byAttr("id", "child")), "children")
	active := mustOne(t, findAll(doc, byClass("active")), "active languages")
	if attr(active, "hreflang") != "pt-BR" {
		t.Fatalf("active language = %q", attr(active, "hreflang"))
	}
	title := mustOne(t, findAll(doc, byTag("title")), "titles")
	if got := textContent(title); got != "Hades | core.app.title" {
		t.Fatalf("title = %q", got)
	}
}
