// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package taste

// FoodTokens is the food half of the taste vocabulary.
var FoodTokens = newTokenSet(
	"tacos", "sushi", "pizza", "burgers", "ramen", "thai", "indian", "italian",
	"mexican", "chinese", "korean", "bbq", "seafood", "steak", "vegan", "brunch",
	"coffee", "desserts", "craft_beer",
)

// VibeTokens is the vibe half of the taste vocabulary. It is disjoint from FoodTokens.
var VibeTokens = newTokenSet(
	"craft_cocktails", "speakeasy", "rooftop", "wine_bar", "dive_bar", "live_music",
	"dancing", "sports_bar", "outdoor_seating", "cozy", "late_night", "lively",
	"date_night",
)

// keywordRule maps a lowercase name substring to a taste token.
type keywordRule struct {
	pattern string
	token   string
}

// categoryTokens maps provider type tags to the taste tokens they imply.
var categoryTokens = map[string][]string{
	"cafe":       {"coffee", "cozy"},
	"bakery":     {"desserts"},
	"night_club": {"dancing", "late_night"},
	"bar":        {"lively"},
}

// nameKeywords is evaluated in order against the lowercase venue name.
// Every rule is checked; a token already inferred is not added twice.
var nameKeywords = []keywordRule{
	{"taco", "tacos"},
	{"taqueria", "tacos"},
	{"cantina", "mexican"},
	{"burrito", "mexican"},
	{"sushi", "sushi"},
	{"omakase", "sushi"},
	{"ramen", "ramen"},
	{"pizza", "pizza"},
	{"pizzeria", "pizza"},
	{"trattoria", "italian"},
	{"osteria", "italian"},
	{"pasta", "italian"},
	{"burger", "burgers"},
	{"thai", "thai"},
	{"curry", "indian"},
	{"tandoor", "indian"},
	{"masala", "indian"},
	{"dumpling", "chinese"},
	{"noodle", "chinese"},
	{"korean", "korean"},
	{"bbq", "bbq"},
	{"smokehouse", "bbq"},
	{"oyster", "seafood"},
	{"seafood", "seafood"},
	{"steak", "steak"},
	{"vegan", "vegan"},
	{"brunch", "brunch"},
	{"coffee", "coffee"},
	{"espresso", "coffee"},
	{"roaster", "coffee"},
	{"bakery", "desserts"},
	{"patisserie", "desserts"},
	{"dessert", "desserts"},
	{"gelato", "desserts"},
	{"ice cream", "desserts"},
	{"donut", "desserts"},
	{"brewery", "craft_beer"},
	{"brewing", "craft_beer"},
	{"taproom", "craft_beer"},
	{"cocktail", "craft_cocktails"},
	{"mixology", "craft_cocktails"},
	{"speakeasy", "speakeasy"},
	{"rooftop", "rooftop"},
	{"wine", "wine_bar"},
	{"vino", "wine_bar"},
	{"dive", "dive_bar"},
	{"jazz", "live_music"},
	{"live music", "live_music"},
	{"club", "dancing"},
	{"disco", "dancing"},
	{"sports", "sports_bar"},
	{"garden", "outdoor_seating"},
	{"patio", "outdoor_seating"},
	{"lounge", "cozy"},
}

// cuisineKeywords groups venue names into coarse cuisine categories used only
// to diversify stop selection.
var cuisineKeywords = []keywordRule{
	{"taco", "mexican"},
	{"taqueria", "mexican"},
	{"cantina", "mexican"},
	{"burrito", "mexican"},
	{"sushi", "japanese"},
	{"ramen", "japanese"},
	{"izakaya", "japanese"},
	{"omakase", "japanese"},
	{"pizza", "italian"},
	{"trattoria", "italian"},
	{"osteria", "italian"},
	{"pasta", "italian"},
	{"thai", "thai"},
	{"curry", "indian"},
	{"tandoor", "indian"},
	{"masala", "indian"},
	{"dumpling", "chinese"},
	{"noodle", "chinese"},
	{"wok", "chinese"},
	{"korean", "korean"},
	{"bbq", "bbq"},
	{"smokehouse", "bbq"},
	{"burger", "american"},
	{"diner", "american"},
	{"oyster", "seafood"},
	{"seafood", "seafood"},
	{"steak", "steakhouse"},
	{"coffee", "coffee"},
	{"espresso", "coffee"},
	{"roaster", "coffee"},
	{"bakery", "dessert"},
	{"patisserie", "dessert"},
	{"dessert", "dessert"},
	{"gelato", "dessert"},
	{"ice cream", "dessert"},
	{"donut", "dessert"},
	{"wine", "wine"},
	{"vino", "wine"},
	{"cocktail", "cocktails"},
	{"speakeasy", "cocktails"},
	{"lounge", "cocktails"},
	{"brewery", "beer"},
	{"taproom", "beer"},
	{"pub", "beer"},
	{"tavern", "beer"},
	{"club", "club"},
	{"disco", "club"},
}

// categoryPriority resolves a venue's primary category: first match wins.
var categoryPriority = []string{
	"night_club", "bar", "cafe", "bakery", "restaurant", "meal_takeaway", "meal_delivery",
}

// DefaultCategory is the primary category of a venue with no recognized type.
const DefaultCategory = "restaurant"

// tokenSet is a string set.
type tokenSet map[string]struct{}

func newTokenSet(tokens ...string) tokenSet {
	s := make(tokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s tokenSet) Has(t string) bool {
	_, ok := s[t]
	return ok
}
