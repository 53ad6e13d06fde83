package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   language.Tag
		wantOK bool
	}{
		{in: "pt-BR", want: language.BrazilianPortuguese, wantOK: true},
		{in: "pt", want: language.BrazilianPortuguese, wantOK: true},
		{in: "en-US", want: language.AmericanEnglish, wantOK: true},
		{in: "", want: language.AmericanEnglish},
		{in: "not a tag!", want: language.AmericanEnglish},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) = (%s, %t), want (%s, %t)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags([]language.Tag{language.Japanese}); got != DefaultTag() {
		t.Fatalf("MatchTags(ja) = %s, want %s", got, DefaultTag())
	}
	if got := MatchTags([]language.Tag{language.Japanese, language.Portuguese}); got != language.BrazilianPortuguese {
		t.Fatalf("MatchTags(ja, pt) = %s, want pt-BR", got)
	}
}

func TestLocalizer(t *testing.T) {
	t.Parallel()

	pt := NewLocalizer(language.BrazilianPortuguese)
	if got := pt.T("sheet.attribute.charisma.short"); got != "CAR" {
		t.Fatalf("pt-BR T() = %q, want CAR", got)
	}
	en := NewLocalizer(language.AmericanEnglish)
	if got := en.T("sheet.attribute.charisma.short"); got != "CHA" {
		t.Fatalf("en-US T() = %q, want CHA", got)
	}
	if got := en.T("sheet.unknown"); got != "sheet.unknown" {
		t.Fatalf("T(unknown) = %q, want key", got)
	}
	if got := (Localizer{}).T("core.mode.view"); got != "core.mode.view" {
		t.Fatalf("zero Localizer T() = %q", got)
	}
}

func TestLocalizerSprintf(t *testing.T) {
	t.Parallel()

	en := NewLocalizer(language.AmericanEnglish)
	if got := en.Sprintf("sheet.stat.hp"); got != "HP" {
		t.Fatalf("Sprintf() = %q, want HP", got)
	}
	if got := (Localizer{}).Sprintf("core.mode.edit"); got != "core.mode.edit" {
		t.Fatalf("zero Localizer Sprintf() = %q", got)
	}
}
