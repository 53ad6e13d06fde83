package sheet

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	platformi18n "github.com/louisbranch/hunter-sheet/internal/platform/i18n"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/app"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
	apperrors "github.com/louisbranch/hunter-sheet/internal/services/sheet/platform/errors"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/platform/httpx"
	sheeti18n "github.com/louisbranch/hunter-sheet/internal/services/sheet/platform/i18n"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/routepath"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/static"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/templates"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/transport/httpmux"
)

// Handler serves the sheet pages and edit endpoints.
type Handler struct {
	service *app.Service
}

// NewHandler returns the sheet routes backed by service.
func NewHandler(service *app.Service) http.Handler {
	h := &Handler{service: service}
	return h.routes()
}

func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	httpmux.MountStatic(mux, static.FS)
	mux.HandleFunc(routepath.PatternHealthz, h.handleHealthz)
	mux.HandleFunc(routepath.PatternRoot, h.handleRoot)
	mux.HandleFunc(routepath.PatternCharacters, h.handleCharacters)
	mux.HandleFunc(routepath.PatternCharacter, h.handleCharacter)
	mux.HandleFunc(routepath.PatternField, h.handleField)
	mux.HandleFunc(routepath.PatternNenType, h.handleNenType)
	mux.HandleFunc(routepath.PatternAttributeRoll, h.handleAttributeRoll)
	mux.HandleFunc(routepath.PatternSkillRoll, h.handleSkillRoll)
	mux.HandleFunc(routepath.PatternRadar, h.handleRadar)
	mux.HandleFunc(routepath.PatternHexagon, h.handleHexagon)
	mux.HandleFunc(routepath.PatternAffinity, h.handleAffinity)
	return mux
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	characters, err := h.service.Characters(httpx.RequestContext(r))
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	if len(characters) == 0 {
		http.Redirect(w, r, routepath.Characters, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, routepath.Character(characters[0].ID), http.StatusSeeOther)
}

func (h *Handler) handleCharacters(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	characters, err := h.service.Characters(httpx.RequestContext(r))
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	h.writePage(w, r, loc, http.StatusOK, loc.T("core.nav.characters"), templates.CharacterList(characters, loc))
}

func (h *Handler) handleCharacter(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	mode := templates.ParseMode(r.URL.Query().Get(routepath.QueryMode))
	state, err := h.sheetState(r, r.PathValue(routepath.PathCharacterID), loc)
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	h.writePage(w, r, loc, http.StatusOK, state.Character.Name, templates.Render(state, mode))
}

func (h *Handler) handleField(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	characterID := r.PathValue(routepath.PathCharacterID)
	field := r.PathValue(routepath.PathField)
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, loc, apperrors.Wrap(apperrors.KindInvalidInput, "core.error.invalid_input", err))
		return
	}
	if _, err := h.service.SetField(httpx.RequestContext(r), characterID, field, r.PostForm.Get(routepath.FormValue)); err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	h.writeSheetUpdate(w, r, loc, characterID, nil)
}

func (h *Handler) handleNenType(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	characterID := r.PathValue(routepath.PathCharacterID)
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, loc, apperrors.Wrap(apperrors.KindInvalidInput, "core.error.invalid_input", err))
		return
	}
	if _, err := h.service.SetNenType(httpx.RequestContext(r), characterID, r.PostForm.Get(routepath.FormNenType)); err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	h.writeSheetUpdate(w, r, loc, characterID, nil)
}

func (h *Handler) handleAttributeRoll(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	ctx := httpx.RequestContext(r)
	characterID := r.PathValue(routepath.PathCharacterID)
	roll, err := h.service.RollAttribute(ctx, characterID, r.PathValue(routepath.PathAttribute))
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.Character(characterID))
		return
	}
	entries, err := h.service.Log(ctx, characterID)
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	outcome := templates.AttributeRollOutcome(roll.Attribute, roll.Check, loc)
	h.writeFragment(w, r, http.StatusOK, templates.LogPanel(entries, &outcome, loc))
}

func (h *Handler) handleSkillRoll(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	characterID := r.PathValue(routepath.PathCharacterID)
	roll, err := h.service.RollSkill(httpx.RequestContext(r), characterID, r.PathValue(routepath.PathSkillID))
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	outcome := templates.SkillRollOutcome(roll.Skill, roll.Damage, roll.NenSpent, loc)
	h.writeSheetUpdate(w, r, loc, characterID, &outcome)
}

func (h *Handler) handleRadar(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	c, err := h.service.Character(httpx.RequestContext(r), r.PathValue(routepath.PathCharacterID))
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	h.writeSVG(w, r, templates.RadarChart(c.Attributes, c.NenType.Color(), templates.RadarSize, loc))
}

func (h *Handler) handleHexagon(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	c, err := h.service.Character(httpx.RequestContext(r), r.PathValue(routepath.PathCharacterID))
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	h.writeSVG(w, r, templates.NenHexagon(c.NenType, loc))
}

// affinityResponse is the affinity.json payload.
type affinityResponse struct {
	CharacterID string          `json:"character_id"`
	NenType     nen.Type        `json:"nen_type"`
	Affinities  []affinityEntry `json:"affinities"`
}

type affinityEntry struct {
	Type       nen.Type `json:"type"`
	Efficiency float64  `json:"efficiency"`
	Active     bool     `json:"active"`
	Color      string   `json:"color"`
}

func (h *Handler) handleAffinity(w http.ResponseWriter, r *http.Request) {
	loc := sheeti18n.Localizer(w, r)
	c, err := h.service.Character(httpx.RequestContext(r), r.PathValue(routepath.PathCharacterID))
	if err != nil {
		h.logFailure(r, err)
		_ = httpx.WriteJSONError(w, err, loc.T(apperrors.LocalizationKey(err)))
		return
	}
	resp := affinityResponse{CharacterID: c.ID, NenType: c.NenType}
	for _, affinity := range nen.Efficiencies(c.NenType) {
		resp.Affinities = append(resp.Affinities, affinityEntry{
			Type:       affinity.Type,
			Efficiency: affinity.Efficiency,
			Active:     affinity.Active,
			Color:      affinity.Type.Color(),
		})
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) sheetState(r *http.Request, characterID string, loc platformi18n.Localizer) (templates.SheetState, error) {
	ctx := httpx.RequestContext(r)
	c, err := h.service.Character(ctx, characterID)
	if err != nil {
		return templates.SheetState{}, err
	}
	entries, err := h.service.Log(ctx, c.ID)
	if err != nil {
		return templates.SheetState{}, err
	}
	return templates.SheetState{Character: c, Log: entries, Localizer: loc}, nil
}

// writeSheetUpdate answers an edit: htmx gets the re-rendered sheet body,
// plain form posts are redirected back to the sheet.
func (h *Handler) writeSheetUpdate(w http.ResponseWriter, r *http.Request, loc platformi18n.Localizer, characterID string, outcome *templates.RollOutcome) {
	mode := templates.ParseMode(r.FormValue(routepath.QueryMode))
	if !httpx.IsHTMXRequest(r) {
		location := routepath.Character(characterID)
		if mode.Editing() {
			location = routepath.CharacterEdit(characterID)
		}
		httpx.WriteRedirect(w, r, location)
		return
	}
	state, err := h.sheetState(r, characterID, loc)
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	state.Outcome = outcome
	h.writeFragment(w, r, http.StatusOK, templates.Render(state, mode))
}

func (h *Handler) pageContext(r *http.Request, loc platformi18n.Localizer, title string) templates.PageContext {
	return templates.PageContext{
		Title:     title,
		Lang:      loc.Tag().String(),
		Languages: sheeti18n.LanguageOptions(r, loc),
	}
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, loc platformi18n.Localizer, status int, title string, body templ.Component) {
	layout := templates.Layout(h.pageContext(r, loc, title), loc)
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	h.writeComponent(w, r.WithContext(ctx), status, "text/html; charset=utf-8", layout)
}

func (h *Handler) writeFragment(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component) {
	h.writeComponent(w, r, status, "text/html; charset=utf-8", fragment)
}

func (h *Handler) writeSVG(w http.ResponseWriter, r *http.Request, chart templ.Component) {
	h.writeComponent(w, r, http.StatusOK, "image/svg+xml", chart)
}

// writeComponent logs render failures and answers them with a 500.
func (h *Handler) writeComponent(w http.ResponseWriter, r *http.Request, status int, contentType string, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithContentType(contentType),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			log.Printf("render failed path=%s err=%v", r.URL.Path, err)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, loc platformi18n.Localizer, err error) {
	h.logFailure(r, err)
	status := apperrors.HTTPStatus(err)
	panel := templates.ErrorPanel(status, loc.T(apperrors.LocalizationKey(err)))
	if httpx.IsHTMXRequest(r) {
		h.writeFragment(w, r, status, panel)
		return
	}
	h.writePage(w, r, loc, status, http.StatusText(status), panel)
}

func (h *Handler) logFailure(r *http.Request, err error) {
	if apperrors.HTTPStatus(err) < http.StatusInternalServerError {
		return
	}
	log.Printf("sheet request failed method=%s path=%s request_id=%s err=%v",
		r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
}
