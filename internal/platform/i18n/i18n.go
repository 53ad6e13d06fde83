// Package i18n resolves the supported UI languages and looks up localized
// strings from the embedded catalogs.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/hunter-sheet/internal/platform/i18n/catalog"
)

var (
	supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
)

// SupportedTags returns the UI languages in display order.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// DefaultTag is used when nothing in the request matches.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag resolves value to a supported tag. Region-less values such as
// "pt" match their regional variant.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchTags picks the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// Localizer looks up catalog keys for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocalizer returns a Localizer for tag. The embedded catalogs are
// registered on first use of the catalog package.
func NewLocalizer(tag language.Tag) Localizer {
	_ = catalog.Default()
	return Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the localizer's language.
func (l Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for key, or key itself when it is not translated.
func (l Localizer) T(key string) string {
	if l.printer == nil {
		return key
	}
	return l.printer.Sprintf(key)
}

// Sprintf formats the message for key with args.
func (l Localizer) Sprintf(key message.Reference, args ...any) string {
	if l.printer == nil {
		if s, ok := key.(string); ok {
			return s
		}
		return ""
	}
	return l.printer.Sprintf(key, args...)
}
