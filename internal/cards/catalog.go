// Package cards is the card catalogue: printed metadata plus the
// behaviors of every card the reduced ruleset supports, registered into
// a game.Registry.
package cards

import "github.com/okmethod/ygo-solitaire-sub001/internal/game"

// NewRegistry builds a registry holding the full catalogue. Callers
// that want isolation (tests, custom rulesets) construct their own
// registry and register only what they need.
func NewRegistry() *game.Registry {
	reg := game.NewRegistry()
	for _, d := range catalog {
		reg.RegisterCard(d)
	}
	registerPotOfGreed(reg)
	registerGracefulCharity(reg)
	registerUpstartGoblin(reg)
	registerOneDayOfPeace(reg)
	registerCardOfDemise(reg)
	registerMagicalMallet(reg)
	registerTerraforming(reg)
	registerToonTableOfContents(reg)
	registerToonWorld(reg)
	registerSpellEconomics(reg)
	registerChickenGame(reg)
	registerRoyalMagicalLibrary(reg)
	registerExodia(reg)
	return reg
}
