package taxonomy

// defaultRegions is the shipped location tree. Order matters: it is the
// display order of every selector and the tie-break order of the resolver.
// London appears under both Canada and the United Kingdom.
var defaultRegions = []Region{
	{
		Name: "North America",
		Countries: []Country{
			{Name: "United States", Cities: []string{
				"New York", "Los Angeles", "Chicago", "San Francisco", "Miami",
				"Austin", "Seattle", "New Orleans", "Las Vegas", "Boston",
				"Nashville", "Denver", "Portland", "San Diego", "Honolulu",
			}},
			{Name: "Canada", Cities: []string{
				"Toronto", "Vancouver", "Montreal", "Quebec City", "Calgary", "London",
			}},
			{Name: "Mexico", Cities: []string{
				"Mexico City", "Cancun", "Oaxaca", "Guadalajara", "Tulum",
			}},
		},
	},
	{
		Name: "Europe",
		Countries: []Country{
			{Name: "France", Cities: []string{"Paris", "Lyon", "Nice", "Marseille", "Bordeaux"}},
			{Name: "Italy", Cities: []string{"Rome", "Florence", "Venice", "Milan", "Naples"}},
			{Name: "Spain", Cities: []string{"Barcelona", "Madrid", "Seville", "Valencia"}},
			{Name: "United Kingdom", Cities: []string{"London", "Edinburgh", "Manchester", "Bath"}},
			{Name: "Portugal", Cities: []string{"Lisbon", "Porto"}},
		},
	},
	{
		Name: "Asia",
		Countries: []Country{
			{Name: "Japan", Cities: []string{"Tokyo", "Kyoto", "Osaka", "Sapporo"}},
			{Name: "Thailand", Cities: []string{"Bangkok", "Chiang Mai", "Phuket"}},
			{Name: "Vietnam", Cities: []string{"Hanoi", "Ho Chi Minh City", "Hoi An"}},
		},
	},
	{
		Name: "South America",
		Countries: []Country{
			{Name: "Brazil", Cities: []string{"Rio de Janeiro", "Sao Paulo", "Salvador"}},
			{Name: "Argentina", Cities: []string{"Buenos Aires", "Mendoza"}},
			{Name: "Peru", Cities: []string{"Lima", "Cusco"}},
		},
	},
	{
		Name: "Oceania",
		Countries: []Country{
			{Name: "Australia", Cities: []string{"Sydney", "Melbourne", "Brisbane", "Perth"}},
			{Name: "New Zealand", Cities: []string{"Auckland", "Queenstown", "Wellington"}},
		},
	},
}
