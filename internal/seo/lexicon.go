package seo

// Lexicon holds the curated keyword lists the intent extractor and title
// scorer match against. Treated as immutable after construction; inject a
// custom Lexicon in tests or override lists via the config file.
type Lexicon struct {
	// Entities are subjects a video can be about (brands, products, games).
	Entities []string
	// Actions are things that happen in a video.
	Actions []string
	// Context are qualifier phrases that narrow the audience or format.
	Context []string
	// PowerWords are high-CTR emotional words used by the title scorer.
	PowerWords []string
}

// DefaultLexicon returns the built-in curated lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Entities: []string{
			"g wagon", "tesla", "cybertruck", "lamborghini", "iphone",
			"macbook", "airpods", "ps5", "xbox", "nintendo switch",
			"minecraft", "fortnite", "gta", "roblox", "elden ring",
			"photoshop", "premiere pro", "davinci resolve", "blender",
			"chatgpt", "drone", "gopro",
		},
		Actions: []string{
			"crash", "review", "unboxing", "tutorial", "challenge",
			"reaction", "gameplay", "restoration", "makeover", "prank",
			"experiment", "speedrun", "taste test", "tier list",
			"build", "repair", "race",
		},
		Context: []string{
			"for beginners", "step by step", "at home", "in 10 minutes",
			"no talking", "before and after", "full guide", "on a budget",
			"vs", "top 10",
		},
		PowerWords: []string{
			"insane", "ultimate", "secret", "shocking", "easy", "best",
			"free", "proven", "epic", "crazy", "amazing", "instantly",
			"guaranteed", "hidden", "powerful",
		},
	}
}

// stopwords are tokens too generic to carry intent. Deliberately small:
// title tokens are already filtered by length, and over-filtering drops
// legitimate signal like "new" or "how".
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "you": {}, "your": {},
	"this": {}, "that": {}, "from": {}, "have": {}, "has": {}, "was": {},
	"are": {}, "but": {}, "not": {}, "all": {}, "can": {}, "will": {},
	"its": {}, "our": {}, "out": {}, "get": {}, "got": {}, "just": {},
	"they": {}, "them": {}, "than": {}, "then": {}, "very": {}, "much": {},
	"more": {}, "some": {}, "into": {}, "over": {}, "when": {}, "what": {},
	"who": {}, "why": {}, "where": {}, "while": {}, "about": {},
}

func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
