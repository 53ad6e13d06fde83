package templates

import (
	"strings"

	"github.com/a-h/templ"

	sheeti18n "github.com/louisbranch/hunter-sheet/internal/services/sheet/platform/i18n"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/routepath"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// LanguageOption represents a supported language in the switcher.
type LanguageOption = sheeti18n.LanguageOption

// PageContext carries per-request layout data.
type PageContext struct {
	Title     string
	Lang      string
	Languages []LanguageOption
}

// ComposePageTitle appends the app name to title.
func ComposePageTitle(title string, loc Localizer) string {
	app := T(loc, "core.app.title")
	title = strings.TrimSpace(title)
	if title == "" || title == app {
		return app
	}
	return title + " | " + app
}

// Layout wraps the children in the full page shell.
func Layout(page PageContext, loc Localizer) templ.Component {
	return component(func(m *markup) {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", lang)
		m.open("head")
		m.void("meta", "charset", "utf-8")
		m.void("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
		m.element("title", ComposePageTitle(page.Title, loc))
		m.void("link", "rel", "stylesheet", "href", routepath.StaticSheetCSS)
		m.open("script", "src", htmxScript, "defer", "defer")
		m.close("script")
		m.close("head")
		m.open("body")
		m.open("header", "class", "app-header")
		m.open("a", "class", "app-title", "href", routepath.Characters)
		m.text(T(loc, "core.app.title"))
		m.close("a")
		m.open("nav", "class", "language-switcher")
		for _, option := range page.Languages {
			class := "language-option"
			if option.Active {
				class += " active"
			}
			m.element("a", option.Label, "class", class, "href", option.URL, "hreflang", option.Tag)
		}
		m.close("nav")
		m.close("header")
		m.open("main", "class", "app-main")
		m.render(templ.GetChildren(m.ctx))
		m.close("main")
		m.close("body")
		m.close("html")
	})
}
