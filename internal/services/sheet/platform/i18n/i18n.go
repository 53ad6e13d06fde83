// Package i18n resolves the request language for sheet pages.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	platformi18n "github.com/louisbranch/hunter-sheet/internal/platform/i18n"
)

const (
	// LangParam selects a language and persists it in a cookie.
	LangParam = "lang"
	// LangCookieName stores the chosen language.
	LangCookieName = "hs_lang"
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// ResolveTag picks the language for r: the lang query parameter, then the
// cookie, then Accept-Language. persist is true when the query parameter
// chose the language.
func ResolveTag(r *http.Request) (tag language.Tag, persist bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if tag, ok := platformi18n.ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie remembers tag for a year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Localizer resolves the request language, persisting it when chosen by
// query parameter.
func Localizer(w http.ResponseWriter, r *http.Request) platformi18n.Localizer {
	tag, persist := ResolveTag(r)
	if persist && w != nil {
		SetLanguageCookie(w, tag)
	}
	return platformi18n.NewLocalizer(tag)
}

// LanguageURL returns path with the lang parameter replaced.
func LanguageURL(path, rawQuery, tag string) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageOptions lists the supported languages for the switcher on r's
// page, labelled through loc.
func LanguageOptions(r *http.Request, loc platformi18n.Localizer) []LanguageOption {
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	path, rawQuery := "/", ""
	if r != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  loc.T("core.language." + tag.String()),
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == loc.Tag(),
		})
	}
	return options
}
