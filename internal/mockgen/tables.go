package mockgen

import "github.com/pkordes/guidebook/internal/domain"

var prefixes = []string{
	"Golden", "Blue", "Urban", "Rustic", "Royal", "Hidden", "Sunny",
	"Silver", "Happy", "Grand", "Little", "Old Town", "Velvet", "Copper",
}

var suffixes = map[domain.Category][]string{
	domain.CategoryEat:   {"Bistro", "Kitchen", "Grill", "Diner", "Eatery", "Cafe", "Trattoria", "Noodle Bar"},
	domain.CategoryStay:  {"Inn", "Hotel", "Lodge", "Suites", "Resort", "Hostel", "Guesthouse"},
	domain.CategoryDrink: {"Tavern", "Pub", "Bar", "Lounge", "Brewery", "Taproom", "Wine Cellar"},
	domain.CategoryPlay:  {"Arcade", "Park", "Club", "Arena", "Studio", "Lanes", "Escape Room"},
}

var streets = []string{"Main", "Oak", "Maple", "Park", "Elm", "Washington", "Lake", "Hill", "Cedar", "Market"}

var streetTypes = []string{"Street", "Avenue", "Boulevard", "Lane", "Road", "Place"}

// images holds stock photo ids per category. Each record takes one to three.
var images = map[domain.Category][]string{
	domain.CategoryEat: {
		"1517248135467-4c7edcad34c4", "1555396273-367ea4eb4db5", "1414235077428-338989a2e8c0",
		"1552566626-52f8b828add9", "1559339352-11d035aa65de",
	},
	domain.CategoryStay: {
		"1566073771259-6a8506099945", "1551882547-ff40c63fe5fa", "1542314831-068cd1dbfeeb",
		"1520250497591-112f2f40a3f4", "1571896349842-33c89424de2d",
	},
	domain.CategoryDrink: {
		"1514933651103-005eec06c04b", "1470337458703-46ad1756a187", "1572116469696-31de0f17cc34",
		"1436076863939-06870fe779c2", "1543007630-9710e4a00a20",
	},
	domain.CategoryPlay: {
		"1511882150382-421056c89033", "1536440136628-849c177e76a1", "1542751371-adc38448a05e",
		"1513151233558-d860c5398176", "1566577739112-5180d4bf9390",
	},
}

// Presence probabilities for the optional fields.
const (
	pFacebook  = 0.5
	pInstagram = 0.6
	pTwitter   = 0.4
	pEmail     = 0.6
	pWebsite   = 0.7
	pMenuLink  = 0.5
)
