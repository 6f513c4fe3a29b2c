package search

// Static Slovenian word lists driving query understanding. Kept sorted so a
// reader can scan them; the correctors themselves do not require order.
var (
	// countryWords signal a country-wide query ("gradovi v Sloveniji").
	// Location filtering is suppressed and no default location applies.
	countryWords = []string{"dežela", "deželi", "država", "slovenija"}

	// nearbyWords signal a query about the assistant's surroundings
	// ("znamenitosti v bližini"). Location filtering is suppressed but the
	// configured assistant location may still be applied as a default.
	nearbyWords = []string{"blizu", "bližini", "občini", "okolici", "okolišu"}

	// attractionWords are generic "sights" nouns. A query asking for
	// attractions wants everything, so no type filter is set.
	attractionWords = []string{"atrakcije", "zanimivosti", "znamenitosti"}

	// listWords explicitly ask for a list of results.
	listWords = []string{"seznam", "tabela"}

	// chatterWords are conversational filler stripped before name matching
	// ("povej mi kaj je na bledu").
	chatterWords = []string{
		"ali", "je", "kaj", "kako", "kje", "lahko", "mi",
		"morda", "pokaži", "povej", "poznaš", "prikaži", "tej", "veš",
	}

	// prepositionWords introduce a location span ("arhitektura na
	// gorenjskem"). The single-character ones (s, z, v) are why the
	// tokenizer must keep short tokens.
	prepositionWords = []string{"blizu", "bližini", "na", "ob", "pri", "s", "v", "z", "zraven"}
)

// Umbrella types some catalogue entries are filed under instead of their
// real type ("Ljubljanski grad" is typed "vredno ogleda", not "grad").
// Only the first word matters because filters match single terms.
const (
	typeWorthSeeing = "vredno"
	typeNatureGem   = "biseri"
)
