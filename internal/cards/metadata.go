package cards

import "github.com/okmethod/ygo-solitaire-sub001/internal/game"

var catalog = []game.CardData{
	{ID: PotOfGreed, Name: "Pot of Greed", JaName: "強欲な壺", FrameType: "spell", SpellType: "Normal"},
	{ID: GracefulCharity, Name: "Graceful Charity", JaName: "天使の施し", FrameType: "spell", SpellType: "Normal"},
	{ID: UpstartGoblin, Name: "Upstart Goblin", JaName: "成金ゴブリン", FrameType: "spell", SpellType: "Normal"},
	{ID: OneDayOfPeace, Name: "One Day of Peace", JaName: "一時休戦", FrameType: "spell", SpellType: "Normal"},
	{ID: CardOfDemise, Name: "Card of Demise", JaName: "命削りの宝札", FrameType: "spell", SpellType: "Normal"},
	{ID: MagicalMallet, Name: "Magical Mallet", JaName: "打ち出の小槌", FrameType: "spell", SpellType: "Normal"},
	{ID: Terraforming, Name: "Terraforming", JaName: "テラ・フォーミング", FrameType: "spell", SpellType: "Normal"},
	{ID: ToonTableOfContents, Name: "Toon Table of Contents", JaName: "トゥーンのもくじ", FrameType: "spell", SpellType: "Normal"},
	{ID: ToonWorld, Name: "Toon World", JaName: "トゥーン・ワールド", FrameType: "spell", SpellType: "Continuous"},
	{ID: SpellEconomics, Name: "Spell Economics", JaName: "スペル・エコノミクス", FrameType: "spell", SpellType: "Continuous"},
	{ID: ChickenGame, Name: "Chicken Game", JaName: "チキンレース", FrameType: "spell", SpellType: "Field"},
	{ID: RoyalMagicalLibrary, Name: "Royal Magical Library", JaName: "王立魔法図書館", FrameType: "monster", Level: 4, Attribute: "LIGHT", ATK: 0, DEF: 2000},
	{ID: ExodiaHead, Name: "Exodia the Forbidden One", JaName: "封印されしエクゾディア", FrameType: "monster", Level: 3, Attribute: "DARK", ATK: 1000, DEF: 1000},
	{ID: ExodiaRightArm, Name: "Right Arm of the Forbidden One", JaName: "封印されし者の右腕", FrameType: "monster", Level: 1, Attribute: "DARK", ATK: 200, DEF: 300},
	{ID: ExodiaLeftArm, Name: "Left Arm of the Forbidden One", JaName: "封印されし者の左腕", FrameType: "monster", Level: 1, Attribute: "DARK", ATK: 200, DEF: 300},
	{ID: ExodiaRightLeg, Name: "Right Leg of the Forbidden One", JaName: "封印されし者の右足", FrameType: "monster", Level: 1, Attribute: "DARK", ATK: 200, DEF: 300},
	{ID: ExodiaLeftLeg, Name: "Left Leg of the Forbidden One", JaName: "封印されし者の左足", FrameType: "monster", Level: 1, Attribute: "DARK", ATK: 200, DEF: 300},
}
