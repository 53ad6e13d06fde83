package templates

import "github.com/a-h/templ"

// ErrorPanel renders a localized error message.
func ErrorPanel(status int, message string) templ.Component {
	return component(func(m *markup) {
		m.open("section", "class", "error-panel", "data-status", itoa(status))
		m.element("h1", itoa(status))
		m.element("p", message)
		m.close("section")
	})
}
