package deck

import "fmt"

// catalog 完整的 78 张塔罗牌目录，包初始化时构建，此后只读
var catalog = buildCatalog()

// majorArcana 大阿尔卡纳 22 张
var majorArcana = []Card{
	{ID: "0", Name: "The Fool", Suit: SuitMajor, Value: "0", Meaning: "New beginnings, optimism, trust in life.", Description: "A young man stands on the edge of a cliff, looking up at the sky with a small dog at his heels.", ImageSeed: "fool"},
	{ID: "1", Name: "The Magician", Suit: SuitMajor, Value: "1", Meaning: "Action, power, manifestation.", Description: "A figure with one hand pointing to the sky and the other to the earth, surrounded by the four symbols of the minor arcana.", ImageSeed: "magician"},
	{ID: "2", Name: "The High Priestess", Suit: SuitMajor, Value: "2", Meaning: "Intuition, mystery, subconscious mind.", Description: "A woman sitting between two pillars, one black and one white, holding a scroll.", ImageSeed: "priestess"},
	{ID: "3", Name: "The Empress", Suit: SuitMajor, Value: "3", Meaning: "Fertility, nature, abundance.", Description: "A regal woman sitting in a lush garden, wearing a crown of stars.", ImageSeed: "empress"},
	{ID: "4", Name: "The Emperor", Suit: SuitMajor, Value: "4", Meaning: "Authority, structure, solid foundation.", Description: "A stern man sitting on a stone throne decorated with ram heads.", ImageSeed: "emperor"},
	{ID: "5", Name: "The Hierophant", Suit: SuitMajor, Value: "5", Meaning: "Tradition, spiritual wisdom, conformity.", Description: "A religious figure sitting between two pillars, gesturing a blessing.", ImageSeed: "hierophant"},
	{ID: "6", Name: "The Lovers", Suit: SuitMajor, Value: "6", Meaning: "Love, harmony, relationships, choices.", Description: "A man and a woman standing beneath an angel in a garden.", ImageSeed: "lovers"},
	{ID: "7", Name: "The Chariot", Suit: SuitMajor, Value: "7", Meaning: "Control, willpower, victory, determination.", Description: "A warrior standing in a chariot pulled by two sphinxes.", ImageSeed: "chariot"},
	{ID: "8", Name: "Strength", Suit: SuitMajor, Value: "8", Meaning: "Courage, persuasion, influence, compassion.", Description: "A woman calmly closing the jaws of a lion.", ImageSeed: "strength"},
	{ID: "9", Name: "The Hermit", Suit: SuitMajor, Value: "9", Meaning: "Soul-searching, introspection, being alone, inner guidance.", Description: "An old man standing on a mountain peak, holding a lantern.", ImageSeed: "hermit"},
	{ID: "10", Name: "Wheel of Fortune", Suit: SuitMajor, Value: "10", Meaning: "Good luck, karma, life cycles, destiny, a turning point.", Description: "A large wheel inscribed with mysterious symbols, surrounded by four winged creatures.", ImageSeed: "wheel"},
	{ID: "11", Name: "Justice", Suit: SuitMajor, Value: "11", Meaning: "Justice, fairness, truth, cause and effect, law.", Description: "A figure sitting on a throne, holding scales in one hand and a sword in the other.", ImageSeed: "justice"},
	{ID: "12", Name: "The Hanged Man", Suit: SuitMajor, Value: "12", Meaning: "Pause, surrender, letting go, new perspectives.", Description: "A man hanging upside down from a tree by one foot, his face peaceful.", ImageSeed: "hangedman"},
	{ID: "13", Name: "Death", Suit: SuitMajor, Value: "13", Meaning: "Endings, change, transformation, transition.", Description: "A skeleton in black armor riding a white horse.", ImageSeed: "death"},
	{ID: "14", Name: "Temperance", Suit: SuitMajor, Value: "14", Meaning: "Balance, moderation, patience, purpose.", Description: "An angel pouring liquid between two cups.", ImageSeed: "temperance"},
	{ID: "15", Name: "The Devil", Suit: SuitMajor, Value: "15", Meaning: "Shadow self, attachment, addiction, restriction, sexuality.", Description: "A horned creature sitting on a pedestal, with two people chained to it.", ImageSeed: "devil"},
	{ID: "16", Name: "The Tower", Suit: SuitMajor, Value: "16", Meaning: "Sudden change, upheaval, chaos, revelation, awakening.", Description: "A tall tower struck by lightning, with people falling from it.", ImageSeed: "tower"},
	{ID: "17", Name: "The Star", Suit: SuitMajor, Value: "17", Meaning: "Hope, faith, purpose, renewal, spirituality.", Description: "A naked woman kneeling by a pool, pouring water from two jugs under a large star.", ImageSeed: "star"},
	{ID: "18", Name: "The Moon", Suit: SuitMajor, Value: "18", Meaning: "Illusion, fear, anxiety, subconscious, intuition.", Description: "A path winding between two towers under a full moon, with a dog, a wolf, and a crayfish.", ImageSeed: "moon"},
	{ID: "19", Name: "The Sun", Suit: SuitMajor, Value: "19", Meaning: "Positivity, fun, warmth, success, vitality.", Description: "A young child riding a white horse under a bright sun.", ImageSeed: "sun"},
	{ID: "20", Name: "Judgement", Suit: SuitMajor, Value: "20", Meaning: "Judgement, rebirth, inner calling, absolution.", Description: "An angel blowing a trumpet, as people rise from their graves.", ImageSeed: "judgement"},
	{ID: "21", Name: "The World", Suit: SuitMajor, Value: "21", Meaning: "Completion, integration, accomplishment, travel.", Description: "A figure dancing inside a wreath, surrounded by four creatures.", ImageSeed: "world"},
}

// minorSuit 生成小阿尔卡纳所需的数据表
type minorSuit struct {
	suit         Suit
	idPrefix     string
	seedPrefix   string
	theme        string   // 数字牌 meaning 的主题句
	numberWords  []string // 1-10 的含义关键词
	sceneWords   []string // 1-10 的画面描述
	itemPhrase   string   // 数字牌画面中的物品描述
	courts       [4]Card  // Page / Knight / Queen / King
}

var minorSuits = []minorSuit{
	{
		suit: SuitWands, idPrefix: "w", seedPrefix: "wands",
		theme:       "Wands represent action and inspiration.",
		numberWords: []string{"new growth", "planning", "waiting", "celebration", "competition", "victory", "defense", "speed", "resilience", "burden"},
		sceneWords:  []string{"burst of energy", "strategic position", "waiting stance", "festive setting", "chaotic struggle", "triumphant parade", "defensive wall", "swift flight", "weary but firm stand", "heavy load"},
		itemPhrase:  "wooden wands",
		courts: [4]Card{
			{ID: "w11", Name: "Page of Wands", Suit: SuitWands, Value: "Page", Meaning: "Inspiration, ideas, discovery, limitless potential.", Description: "A young person standing in a desert, looking at a sprouting wand.", ImageSeed: "wands-page"},
			{ID: "w12", Name: "Knight of Wands", Suit: SuitWands, Value: "Knight", Meaning: "Energy, passion, lust, action, adventure, impulsiveness.", Description: "A knight on a charging horse, wearing armor decorated with salamanders.", ImageSeed: "wands-knight"},
			{ID: "w13", Name: "Queen of Wands", Suit: SuitWands, Value: "Queen", Meaning: "Courage, confidence, independence, social butterfly, determination.", Description: "A queen sitting on a throne with lions, holding a sunflower and a wand.", ImageSeed: "wands-queen"},
			{ID: "w14", Name: "King of Wands", Suit: SuitWands, Value: "King", Meaning: "Natural-born leader, vision, entrepreneur, honor.", Description: "A king sitting on a throne, holding a flowering wand, with a small lizard at his feet.", ImageSeed: "wands-king"},
		},
	},
	{
		suit: SuitCups, idPrefix: "c", seedPrefix: "cups",
		theme:       "Cups represent emotions and relationships.",
		numberWords: []string{"overflowing love", "partnership", "celebration", "apathy", "loss", "nostalgia", "choices", "abandonment", "satisfaction", "happiness"},
		sceneWords:  []string{"divine hand", "shared toast", "dance of joy", "moment of boredom", "grieving state", "childhood garden", "cloud of dreams", "journey away", "feast of plenty", "family rainbow"},
		itemPhrase:  "golden cups",
		courts: [4]Card{
			{ID: "c11", Name: "Page of Cups", Suit: SuitCups, Value: "Page", Meaning: "Creative opportunities, intuitive messages, curiosity, possibility.", Description: "A young person holding a cup with a fish popping out of it.", ImageSeed: "cups-page"},
			{ID: "c12", Name: "Knight of Cups", Suit: SuitCups, Value: "Knight", Meaning: "Creativity, romance, charm, imagination, beauty.", Description: "A knight riding slowly on a white horse, holding out a cup as if in an offering.", ImageSeed: "cups-knight"},
			{ID: "c13", Name: "Queen of Cups", Suit: SuitCups, Value: "Queen", Meaning: "Compassionate, caring, emotionally stable, intuitive, in flow.", Description: "A queen sitting on a throne by the sea, looking at an ornate cup.", ImageSeed: "cups-queen"},
			{ID: "c14", Name: "King of Cups", Suit: SuitCups, Value: "King", Meaning: "Emotionally balanced, focused, compassionate.", Description: "A king sitting on a throne that floats on the ocean, holding a cup and a scepter.", ImageSeed: "cups-king"},
		},
	},
	{
		suit: SuitSwords, idPrefix: "s", seedPrefix: "swords",
		theme:       "Swords represent the mind and conflict.",
		numberWords: []string{"mental clarity", "indecision", "heartbreak", "rest", "betrayal", "transition", "deception", "imprisonment", "nightmares", "defeat"},
		sceneWords:  []string{"crowned hand", "cross of balance", "pierced heart", "quiet tomb", "stolen victory", "boat journey", "sneaky escape", "bound figure", "sleepless bed", "fallen warrior"},
		itemPhrase:  "sharp swords",
		courts: [4]Card{
			{ID: "s11", Name: "Page of Swords", Suit: SuitSwords, Value: "Page", Meaning: "New ideas, curiosity, thirst for knowledge, new ways of communicating.", Description: "A young person standing on a windy hill, holding a sword with both hands.", ImageSeed: "swords-page"},
			{ID: "s12", Name: "Knight of Swords", Suit: SuitSwords, Value: "Knight", Meaning: "Ambitious, action-oriented, driven to succeed, fast-thinking.", Description: "A knight on a charging horse, sword held high, riding into the wind.", ImageSeed: "swords-knight"},
			{ID: "s13", Name: "Queen of Swords", Suit: SuitSwords, Value: "Queen", Meaning: "Independent, unbiased judgement, clear communication, direct.", Description: "A queen sitting on a throne decorated with butterflies, holding a sword upright.", ImageSeed: "swords-queen"},
			{ID: "s14", Name: "King of Swords", Suit: SuitSwords, Value: "King", Meaning: "Mental clarity, intellectual power, authority, truth.", Description: "A king sitting on a throne, holding a sword, looking straight ahead with a stern expression.", ImageSeed: "swords-king"},
		},
	},
	{
		suit: SuitPentacles, idPrefix: "p", seedPrefix: "pentacles",
		theme:       "Pentacles represent the material world and finances.",
		numberWords: []string{"new opportunity", "balance", "teamwork", "frugality", "poverty", "generosity", "patience", "apprenticeship", "luxury", "legacy"},
		sceneWords:  []string{"garden hand", "juggling act", "cathedral build", "hoarding stance", "snowy street", "charitable gift", "growing vine", "busy workshop", "private estate", "family archway"},
		itemPhrase:  "golden pentacles",
		courts: [4]Card{
			{ID: "p11", Name: "Page of Pentacles", Suit: SuitPentacles, Value: "Page", Meaning: "Manifestation, financial opportunity, skill development.", Description: "A young person standing in a field, carefully holding a single pentacle.", ImageSeed: "pentacles-page"},
			{ID: "p12", Name: "Knight of Pentacles", Suit: SuitPentacles, Value: "Knight", Meaning: "Hard work, productivity, routine, conservatism.", Description: "A knight on a sturdy horse, looking at a pentacle, moving slowly and deliberately.", ImageSeed: "pentacles-knight"},
			{ID: "p13", Name: "Queen of Pentacles", Suit: SuitPentacles, Value: "Queen", Meaning: "Nurturing, practical, providing financially, a working parent.", Description: "A queen sitting on a throne in a lush garden, holding a pentacle in her lap.", ImageSeed: "pentacles-queen"},
			{ID: "p14", Name: "King of Pentacles", Suit: SuitPentacles, Value: "King", Meaning: "Wealth, business, leadership, security, discipline, abundance.", Description: "A king sitting on a throne decorated with bulls, surrounded by vines and flowers.", ImageSeed: "pentacles-king"},
		},
	},
}

// buildCatalog 构建完整目录：22 张大阿尔卡纳 + 4 花色 × (10 数字牌 + 4 宫廷牌)
func buildCatalog() []Card {
	cards := make([]Card, 0, Size)
	cards = append(cards, majorArcana...)

	for _, ms := range minorSuits {
		for i := 0; i < 10; i++ {
			n := i + 1
			name := fmt.Sprintf("%d of %s", n, ms.suit)
			if n == 1 {
				name = fmt.Sprintf("Ace of %s", ms.suit)
			}
			cards = append(cards, Card{
				ID:          fmt.Sprintf("%s%d", ms.idPrefix, n),
				Name:        name,
				Suit:        ms.suit,
				Value:       fmt.Sprintf("%d", n),
				Meaning:     fmt.Sprintf("%s The %d signifies %s.", ms.theme, n, ms.numberWords[i]),
				Description: fmt.Sprintf("A scene depicting %d %s in a %s.", n, ms.itemPhrase, ms.sceneWords[i]),
				ImageSeed:   fmt.Sprintf("%s-%d", ms.seedPrefix, n),
			})
		}
		cards = append(cards, ms.courts[:]...)
	}

	return cards
}
