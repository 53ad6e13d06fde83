// Package app implements the sheet operations shared by the web handlers and
// the MCP tools.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/hunter-sheet/internal/platform/random"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/activity"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/dice"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/meter"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
	apperrors "github.com/louisbranch/hunter-sheet/internal/services/sheet/platform/errors"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/storage"
)

const (
	// LogLimit is how many activity entries a sheet shows.
	LogLimit = 20

	listPageSize = 50
)

// Service runs sheet operations against a store.
type Service struct {
	store storage.Store
	rand  random.Source
	clock func() time.Time
}

// NewService returns a Service backed by store.
func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		rand:  random.Seeded(),
		clock: time.Now,
	}
}

func (s *Service) ready() error {
	if s == nil || s.store == nil {
		return apperrors.EK(apperrors.KindUnavailable, "core.error.internal", "sheet store is not configured")
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// SeedDefault stores the example sheet when the store has no characters.
// It reports whether a sheet was created.
func (s *Service) SeedDefault(ctx context.Context) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	page, err := s.store.ListCharacters(ctx, 1, "")
	if err != nil {
		return false, mapStoreError(err)
	}
	if len(page.Characters) > 0 {
		return false, nil
	}
	err = s.store.CreateCharacter(ctx, character.Default())
	if errors.Is(err, storage.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, mapStoreError(err)
	}
	return true, nil
}

// Characters lists every stored sheet ordered by id.
func (s *Service) Characters(ctx context.Context) ([]storage.CharacterSummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var out []storage.CharacterSummary
	token := ""
	for {
		page, err := s.store.ListCharacters(ctx, listPageSize, token)
		if err != nil {
			return nil, mapStoreError(err)
		}
		out = append(out, page.Characters...)
		if page.NextPageToken == "" {
			return out, nil
		}
		token = page.NextPageToken
	}
}

// Character returns the sheet with id.
func (s *Service) Character(ctx context.Context, id string) (character.Character, error) {
	if err := s.ready(); err != nil {
		return character.Character{}, err
	}
	c, err := s.store.GetCharacter(ctx, strings.TrimSpace(id))
	if err != nil {
		return character.Character{}, mapStoreError(err)
	}
	return c, nil
}

// Log returns the most recent activity for id, newest first.
func (s *Service) Log(ctx context.Context, id string) ([]activity.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	entries, err := s.store.ListLogEntries(ctx, strings.TrimSpace(id), LogLimit)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entries, nil
}

// Affinity returns the Nen efficiencies for the sheet's active type.
func (s *Service) Affinity(ctx context.Context, id string) ([]nen.Affinity, error) {
	c, err := s.Character(ctx, id)
	if err != nil {
		return nil, err
	}
	return nen.Efficiencies(c.NenType), nil
}

// SetField parses raw leniently and writes it to field. Malformed input is
// stored as 0; unknown fields are rejected.
func (s *Service) SetField(ctx context.Context, id, field, raw string) (character.Character, error) {
	if err := s.ready(); err != nil {
		return character.Character{}, err
	}
	value := meter.ParseInt(raw)
	field = strings.TrimSpace(field)

	var before int
	updated, err := s.store.UpdateCharacter(ctx, strings.TrimSpace(id), func(c *character.Character) error {
		set, ok := character.Setter(c, field)
		if !ok {
			return apperrors.EK(apperrors.KindInvalidInput, "core.error.invalid_field", fmt.Sprintf("unknown field %q", field))
		}
		before, _ = character.Value(*c, field)
		set(value)
		return nil
	})
	if err != nil {
		return character.Character{}, mapStoreError(err)
	}

	s.appendLog(ctx, updated.ID, activity.FieldChange(field, before, value))
	return updated, nil
}

// SetNenType switches the sheet's active Nen type.
func (s *Service) SetNenType(ctx context.Context, id, raw string) (character.Character, error) {
	if err := s.ready(); err != nil {
		return character.Character{}, err
	}
	t, ok := nen.Parse(raw)
	if !ok {
		return character.Character{}, apperrors.EK(apperrors.KindInvalidInput, "core.error.invalid_input", fmt.Sprintf("unknown nen type %q", raw))
	}
	updated, err := s.store.UpdateCharacter(ctx, strings.TrimSpace(id), func(c *character.Character) error {
		c.NenType = t
		return nil
	})
	if err != nil {
		return character.Character{}, mapStoreError(err)
	}

	s.appendLog(ctx, updated.ID, activity.Entry{
		Kind:    activity.KindInfo,
		Code:    activity.CodeNenTypeChosen,
		Subject: string(t),
	})
	return updated, nil
}

// AttributeRoll is the outcome of a d20 attribute check.
type AttributeRoll struct {
	Attribute character.Attribute `json:"attribute"`
	Check     dice.Check          `json:"check"`
}

// RollAttribute rolls d20 plus the attribute score.
func (s *Service) RollAttribute(ctx context.Context, id, attribute string) (AttributeRoll, error) {
	attr, ok := character.ParseAttribute(strings.TrimSpace(attribute))
	if !ok {
		return AttributeRoll{}, apperrors.EK(apperrors.KindInvalidInput, "core.error.invalid_input", fmt.Sprintf("unknown attribute %q", attribute))
	}
	c, err := s.Character(ctx, id)
	if err != nil {
		return AttributeRoll{}, err
	}
	rng, err := s.rand()
	if err != nil {
		return AttributeRoll{}, apperrors.Wrap(apperrors.KindUnknown, "core.error.internal", err)
	}

	roll := AttributeRoll{Attribute: attr, Check: dice.RollCheck(rng, c.Attributes.Value(attr))}
	s.appendLog(ctx, c.ID, activity.Entry{
		Kind:    activity.KindInfo,
		Code:    activity.CodeAttributeRoll,
		Subject: string(attr),
		Amount:  roll.Check.Total,
		Detail:  fmt.Sprintf("d20=%d %s", roll.Check.Die, meter.FormatModifier(roll.Check.Modifier)),
	})
	return roll, nil
}

// SkillRoll is the outcome of using a skill.
type SkillRoll struct {
	Skill    character.Skill `json:"skill"`
	Damage   *dice.Damage    `json:"damage,omitempty"`
	NenSpent int             `json:"nen_spent"`
}

// RollSkill uses a skill: its Nen cost is deducted (never below zero) and
// its damage dice, if any, are rolled with the scaling attribute as bonus.
func (s *Service) RollSkill(ctx context.Context, id, skillID string) (SkillRoll, error) {
	if err := s.ready(); err != nil {
		return SkillRoll{}, err
	}
	rng, err := s.rand()
	if err != nil {
		return SkillRoll{}, apperrors.Wrap(apperrors.KindUnknown, "core.error.internal", err)
	}

	var result SkillRoll
	updated, err := s.store.UpdateCharacter(ctx, strings.TrimSpace(id), func(c *character.Character) error {
		skill, ok := c.Skill(strings.TrimSpace(skillID))
		if !ok {
			return apperrors.EK(apperrors.KindNotFound, "core.error.not_found", fmt.Sprintf("unknown skill %q", skillID))
		}
		result = SkillRoll{Skill: skill}
		if skill.DamageDice != "" {
			damage, err := dice.RollDamage(rng, skill.DamageDice, c.Attributes.Value(skill.Scaling))
			if err != nil {
				return apperrors.Wrap(apperrors.KindInvalidInput, "core.error.invalid_input", err)
			}
			result.Damage = &damage
		}
		result.NenSpent = min(max(skill.Cost, 0), max(c.Nen.Current, 0))
		c.Nen.Current -= result.NenSpent
		return nil
	})
	if err != nil {
		return SkillRoll{}, mapStoreError(err)
	}

	if result.NenSpent > 0 {
		s.appendLog(ctx, updated.ID, activity.Entry{
			Kind:    activity.KindCost,
			Code:    activity.CodeNenSpent,
			Subject: result.Skill.Name,
			Amount:  result.NenSpent,
		})
	}
	entry := activity.Entry{Kind: activity.KindInfo, Code: activity.CodeSkillRoll, Subject: result.Skill.Name}
	if result.Damage != nil {
		entry.Kind = activity.KindDamage
		entry.Amount = result.Damage.Total
		entry.Detail = fmt.Sprintf("%s %s", result.Damage.Notation, meter.FormatModifier(result.Damage.Bonus))
	}
	s.appendLog(ctx, updated.ID, entry)
	return result, nil
}

// appendLog records entry; failures are logged, not returned, since the
// sheet change itself already succeeded.
func (s *Service) appendLog(ctx context.Context, characterID string, entry activity.Entry) {
	entry.CharacterID = characterID
	entry.CreatedAt = s.now()
	if _, err := s.store.AppendLogEntry(ctx, entry); err != nil {
		log.Printf("append log entry failed character_id=%s code=%s err=%v", characterID, entry.Code, err)
	}
}

func mapStoreError(err error) error {
	var appErr apperrors.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, "core.error.not_found", err)
	case errors.Is(err, character.ErrIDRequired), errors.Is(err, character.ErrNameRequired), errors.Is(err, character.ErrInvalidNenType):
		return apperrors.Wrap(apperrors.KindInvalidInput, "core.error.invalid_input", err)
	default:
		return apperrors.Wrap(apperrors.KindUnknown, "core.error.internal", err)
	}
}
