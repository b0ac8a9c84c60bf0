package cards

import "github.com/okmethod/ygo-solitaire-sub001/internal/game"

// Printed card ids (passcodes).
const (
	PotOfGreed          game.CardID = 55144522
	GracefulCharity     game.CardID = 79571449
	UpstartGoblin       game.CardID = 70368879
	OneDayOfPeace       game.CardID = 33782437
	CardOfDemise        game.CardID = 59750328
	MagicalMallet       game.CardID = 85852291
	Terraforming        game.CardID = 73628505
	ToonTableOfContents game.CardID = 89997728
	ToonWorld           game.CardID = 15259703
	SpellEconomics      game.CardID = 86318356
	ChickenGame         game.CardID = 67616300
	RoyalMagicalLibrary game.CardID = 70791313
	ExodiaHead          game.CardID = 33396948
	ExodiaRightArm      game.CardID = 70903634
	ExodiaLeftArm       game.CardID = 7902349
	ExodiaRightLeg      game.CardID = 8124921
	ExodiaLeftLeg       game.CardID = 44519536
)

// ExodiaPieces lists the five cards whose assembly in hand wins the game.
var ExodiaPieces = []game.CardID{
	ExodiaHead, ExodiaRightArm, ExodiaLeftArm, ExodiaRightLeg, ExodiaLeftLeg,
}
