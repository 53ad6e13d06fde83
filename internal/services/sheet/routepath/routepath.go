package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Healthz = "/healthz"
)

const (
	StaticPrefix = "/static/"
)

const (
	Characters       = "/characters"
	CharactersPrefix = "/characters/"
)

// Mux patterns for the sheet routes.
const (
	PatternRoot          = "GET /{$}"
	PatternHealthz       = "GET " + Healthz
	PatternStatic        = "GET " + StaticPrefix
	PatternCharacters    = "GET " + Characters
	PatternCharacter     = "GET /characters/{characterID}"
	PatternField         = "POST /characters/{characterID}/fields/{field}"
	PatternNenType       = "POST /characters/{characterID}/nen-type"
	PatternAttributeRoll = "POST /characters/{characterID}/rolls/{attribute}"
	PatternSkillRoll     = "POST /characters/{characterID}/skills/{skillID}/roll"
	PatternRadar         = "GET /characters/{characterID}/radar.svg"
	PatternHexagon       = "GET /characters/{characterID}/hexagon.svg"
	PatternAffinity      = "GET /characters/{characterID}/affinity.json"
)

const (
	PathCharacterID = "characterID"
	PathField       = "field"
	PathAttribute   = "attribute"
	PathSkillID     = "skillID"
)

const (
	QueryMode      = "mode"
	FormValue      = "value"
	FormNenType    = "type"
	StaticSheetCSS = StaticPrefix + "sheet.css"
)

// Element ids targeted by htmx swaps.
const (
	SheetElementID       = "sheet"
	ActivityLogElementID = "activity-log"
)

func Character(characterID string) string {
	return Characters + "/" + escapeSegment(characterID)
}

// CharacterEdit links to the sheet in edit mode.
func CharacterEdit(characterID string) string {
	return Character(characterID) + "?" + QueryMode + "=edit"
}

func CharacterField(characterID, field string) string {
	return Character(characterID) + "/fields/" + escapeSegment(field)
}

func CharacterNenType(characterID string) string {
	return Character(characterID) + "/nen-type"
}

func CharacterAttributeRoll(characterID, attribute string) string {
	return Character(characterID) + "/rolls/" + escapeSegment(attribute)
}

func CharacterSkillRoll(characterID, skillID string) string {
	return Character(characterID) + "/skills/" + escapeSegment(skillID) + "/roll"
}

func CharacterRadar(characterID string) string {
	return Character(characterID) + "/radar.svg"
}

func CharacterHexagon(characterID string) string {
	return Character(characterID) + "/hexagon.svg"
}

func CharacterAffinity(characterID string) string {
	return Character(characterID) + "/affinity.json"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
