package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if Characters != "/characters" {
		t.Fatalf("Characters = %q", Characters)
	}
	if StaticSheetCSS != "/static/sheet.css" {
		t.Fatalf("StaticSheetCSS = %q", StaticSheetCSS)
	}
}

func TestCharacterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "character", got: Character("char_default"), want: "/characters/char_default"},
		{name: "edit", got: CharacterEdit("c1"), want: "/characters/c1?mode=edit"},
		{name: "field", got: CharacterField("c1", "hp.current"), want: "/characters/c1/fields/hp.current"},
		{name: "summon field", got: CharacterField("c1", "summons.s1.nen.max"), want: "/characters/c1/fields/summons.s1.nen.max"},
		{name: "nen type", got: CharacterNenType("c1"), want: "/characters/c1/nen-type"},
		{name: "attribute roll", got: CharacterAttributeRoll("c1", "strength"), want: "/characters/c1/rolls/strength"},
		{name: "skill roll", got: CharacterSkillRoll("c1", "s1_sk1"), want: "/characters/c1/skills/s1_sk1/roll"},
		{name: "radar", got: CharacterRadar("c1"), want: "/characters/c1/radar.svg"},
		{name: "hexagon", got: CharacterHexagon("c1"), want: "/characters/c1/hexagon.svg"},
		{name: "affinity", got: CharacterAffinity("c1"), want: "/characters/c1/affinity.json"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestCharacterRoutesEscapeSegments(t *testing.T) {
	t.Parallel()

	if got := Character(" a/b c "); got != "/characters/a%2Fb%20c" {
		t.Fatalf("Character() = %q", got)
	}
	if got := CharacterSkillRoll("c1", "x/y"); got != "/characters/c1/skills/x%2Fy/roll" {
		t.Fatalf("CharacterSkillRoll() = %q", got)
	}
}
