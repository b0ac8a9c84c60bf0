package game

import "fmt"

// CardData is the static printed description of a card, used for
// messages and for condition checks like name-substring filters.
type CardData struct {
	ID        CardID
	Name      string
	JaName    string
	FrameType string
	SpellType string
	Level     int
	Attribute string
	ATK       int
	DEF       int
}

// DisplayName prefers the Japanese printed name, falling back to the
// English one.
func (d CardData) DisplayName() string {
	if d.JaName != "" {
		return d.JaName
	}
	return d.Name
}

// Registry maps card ids to their behaviors and metadata. A registry
// is an explicit value constructed at startup and threaded through the
// command layer; tests get isolation by constructing a fresh one.
type Registry struct {
	effects  map[CardID][]ChainableAction
	rules    map[CardID][]AdditionalRule
	metadata map[CardID]CardData
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		effects:  make(map[CardID][]ChainableAction),
		rules:    make(map[CardID][]AdditionalRule),
		metadata: make(map[CardID]CardData),
	}
}

// RegisterEffect attaches a chainable action to a card id. A card may
// carry several (e.g. a field spell with an ignition effect).
func (r *Registry) RegisterEffect(id CardID, a ChainableAction) {
	r.effects[id] = append(r.effects[id], a)
}

// Effects returns all chainable actions registered for a card id. An
// unknown id yields an empty result, never a fault.
func (r *Registry) Effects(id CardID) []ChainableAction {
	return r.effects[id]
}

// CardActivation returns the action that governs activating the card
// itself (as opposed to an ignition effect of a card already on the
// field).
func (r *Registry) CardActivation(id CardID) (ChainableAction, bool) {
	for _, a := range r.effects[id] {
		if a.IsCardActivation() {
			return a, true
		}
	}
	return nil, false
}

// Ignition returns the named ignition effect of a card id.
func (r *Registry) Ignition(id CardID, effectID string) (*IgnitionEffect, bool) {
	for _, a := range r.effects[id] {
		if ig, ok := a.(*IgnitionEffect); ok && ig.EffectID == effectID {
			return ig, true
		}
	}
	return nil, false
}

// Ignitions returns every ignition effect of a card id.
func (r *Registry) Ignitions(id CardID) []*IgnitionEffect {
	var out []*IgnitionEffect
	for _, a := range r.effects[id] {
		if ig, ok := a.(*IgnitionEffect); ok {
			out = append(out, ig)
		}
	}
	return out
}

// RegisterRules attaches passive additional rules to a card id.
func (r *Registry) RegisterRules(id CardID, rules ...AdditionalRule) {
	r.rules[id] = append(r.rules[id], rules...)
}

// Rules returns the additional rules for a card id. Unknown ids yield
// an empty result.
func (r *Registry) Rules(id CardID) []AdditionalRule {
	return r.rules[id]
}

// RegisterCard records static card metadata.
func (r *Registry) RegisterCard(data CardData) {
	r.metadata[data.ID] = data
}

// Card returns the metadata for a card id.
func (r *Registry) Card(id CardID) (CardData, bool) {
	d, ok := r.metadata[id]
	return d, ok
}

// CardName returns a display name for messages, with a placeholder for
// unregistered ids.
func (r *Registry) CardName(id CardID) string {
	if d, ok := r.metadata[id]; ok {
		return d.DisplayName()
	}
	return fmt.Sprintf("card %d", id)
}
