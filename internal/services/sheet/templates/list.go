package templates

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/routepath"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/storage"
)

// CharacterList renders the stored sheets.
func CharacterList(characters []storage.CharacterSummary, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.open("section", "class", "character-list")
		m.element("h1", T(loc, "core.nav.characters"))
		if len(characters) == 0 {
			m.element("p", T(loc, "sheet.list.empty"), "class", "empty")
			m.close("section")
			return
		}
		m.open("ul")
		for _, summary := range characters {
			m.open("li", "class", "character-list-item", "style", "--theme-color: "+summary.NenType.Color())
			m.open("a", "href", routepath.Character(summary.ID))
			m.element("span", summary.Name, "class", "character-name")
			if summary.Nickname != "" {
				m.element("span", summary.Nickname, "class", "character-nickname")
			}
			m.close("a")
			if summary.NenType.Valid() {
				m.element("span", T(loc, "sheet.nen."+string(summary.NenType)), "class", "nen-badge")
			}
			m.element("span", T(loc, "sheet.stat.hunter_level")+" "+itoa(summary.HunterLevel), "class", "hunter-level")
			m.close("li")
		}
		m.close("ul")
		m.close("section")
	})
}
