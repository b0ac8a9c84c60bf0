package cards

import (
	"strings"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
)

func isFieldSpell(d game.CardData) bool {
	return d.FrameType == "spell" && d.SpellType == "Field"
}

func isToonCard(d game.CardData) bool {
	return strings.Contains(d.Name, "Toon") || strings.Contains(d.JaName, "トゥーン")
}

func registerTerraforming(reg *game.Registry) {
	reg.RegisterEffect(Terraforming, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry:  reg,
		CardID:    Terraforming,
		Condition: requireDeckMatch(reg, "field spell", isFieldSpell),
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{
				game.SearchByPredicateStep(reg, "Add 1 field spell from your deck to your hand", 1, 1, isFieldSpell),
			}
		},
	}})
}

func registerToonTableOfContents(reg *game.Registry) {
	reg.RegisterEffect(ToonTableOfContents, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry:  reg,
		CardID:    ToonTableOfContents,
		Condition: requireDeckMatch(reg, `"Toon" card`, isToonCard),
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{
				game.SearchByPredicateStep(reg, `Add 1 "Toon" card from your deck to your hand`, 1, 1, isToonCard),
			}
		},
	}})
}
