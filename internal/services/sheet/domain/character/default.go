package character

import "github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"

// DefaultID identifies the seeded example sheet.
const DefaultID = "char_default"

// Default returns the example sheet seeded into an empty store.
func Default() Character {
	return Character{
		ID:          DefaultID,
		Name:        "Cristian Martínez",
		Nickname:    "'Hades'",
		AvatarURL:   "https://i.pinimg.com/736x/8e/46/64/8e4664440076a084c7873994c657a827.jpg",
		Age:         18,
		Nationality: "Peruano",
		Height:      "1.72 m",
		Weight:      "64 kg",
		Alignment:   "Neutro-Neutro",
		Bio:         "Hades cresceu nas ruas de Meteor City, aprendendo desde cedo que apenas os fortes sobrevivem. Sua habilidade com a espada é uma extensão de sua vontade de proteger aqueles que considera seus. Após despertar seu Nen durante um incidente traumático, ele busca se tornar um Blacklist Hunter para caçar criminosos perigosos.",
		HunterLevel: 5,
		XP:          Pool{Current: 250, Max: 600},
		NenType:     nen.Specialist,
		HP:          Pool{Current: 34, Max: 34},
		Nen:         Pool{Current: 33, Max: 58},
		ArmorClass:  15,
		Attributes: AttributeSet{
			Strength:         -2,
			Constitution:     -2,
			Intelligence:     0,
			Charisma:         -3,
			Determination:    3,
			Prestidigitation: 5,
		},
		Skills: []Skill{
			{
				ID:          "1",
				Name:        "Força de Pulso",
				Category:    SkillWeapon,
				Kind:        SkillActive,
				Cost:        2,
				DamageDice:  "1d8",
				Scaling:     Determination,
				Description: "Hades golpeia o ar com sua espada, criando uma onda de choque em cone.",
				ImageURL:    "https://i.pinimg.com/564x/4d/2e/77/4d2e77987823e595df5057a151859c2c.jpg",
			},
			{
				ID:          "2",
				Name:        "Passo Sombrio",
				Category:    SkillCombat,
				Kind:        SkillBonus,
				DamageDice:  "2d6",
				Scaling:     Prestidigitation,
				Description: "Técnica de movimentação silenciosa. Próximo ataque tem vantagem e dobra o dano se não detectado.",
			},
			{
				ID:          "3",
				Name:        "Roubo Vital",
				Category:    SkillHatsu,
				Kind:        SkillPassive,
				Description: "Habilidade de Especialista que rouba metade do dano causado como Nen (arredondado para baixo).",
			},
		},
		Inventory: []InventoryItem{
			{ID: "i1", Name: "Espada Curta (Dano Cortante)", Quantity: 1},
			{ID: "i2", Name: "Poção de Cura Menor", Quantity: 2},
			{ID: "i3", Name: "Licença Hunter", Quantity: 1},
		},
		Summons: []Summon{
			{
				ID:        "s1",
				Name:      "Guardião Sombrio",
				AvatarURL: "https://i.pinimg.com/564x/0a/65/59/0a6559385b0451df6718d09794025171.jpg",
				Type:      "Besta de Nen",
				HP:        Pool{Current: 20, Max: 20},
				Nen:       Pool{Current: 10, Max: 10},
				Attributes: AttributeSet{
					Strength:         3,
					Constitution:     2,
					Intelligence:     -2,
					Charisma:         -3,
					Determination:    4,
					Prestidigitation: 2,
				},
				Description: "Um lobo feito de sombras que persegue alvos marcados.",
				Skills: []Skill{
					{
						ID:          "s1_sk1",
						Name:        "Mordida Espectral",
						Category:    SkillCombat,
						Kind:        SkillActive,
						Cost:        2,
						DamageDice:  "1d6",
						Description: "O lobo morde o alvo, ignorando armadura física.",
						ImageURL:    "https://i.pinimg.com/564x/58/2f/52/582f5255470d0554f653457224250266.jpg",
					},
				},
			},
		},
		Conditions: []string{},
	}
}
