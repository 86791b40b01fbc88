package taxonomy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/taxonomy"
)

// smallTaxonomy is a hand-built tree with a duplicate city name across
// countries and overlapping substrings, so tie-break order is explicit.
func smallTaxonomy() *taxonomy.Taxonomy {
	return taxonomy.New([]taxonomy.Region{
		{Name: "North", Countries: []taxonomy.Country{
			{Name: "A", Cities: []string{"Springfield", "Riverton"}},
			{Name: "B", Cities: []string{"Rivers", "Springfield"}},
		}},
		{Name: "South", Countries: []taxonomy.Country{
			{Name: "C", Cities: []string{"River", "Oakdale"}},
		}},
	})
}

func TestDefault_CityNamesUniqueWithinCountry(t *testing.T) {
	for _, r := range taxonomy.Default().Regions() {
		for _, c := range r.Countries {
			seen := map[string]bool{}
			for _, city := range c.Cities {
				assert.False(t, seen[city], "duplicate city %q in %s", city, c.Name)
				seen[city] = true
			}
		}
	}
}

func TestTaxonomy_Lookups(t *testing.T) {
	tx := taxonomy.Default()

	assert.Equal(t, "North America", tx.RegionNames()[0])
	assert.Contains(t, tx.Countries("North America"), "United States")
	assert.Contains(t, tx.Cities("North America", "United States"), "New York")
	assert.Nil(t, tx.Countries("Atlantis"))
	assert.Nil(t, tx.Cities("Europe", "United States"))

	assert.True(t, tx.HasRegion("Europe"))
	assert.True(t, tx.HasCountry("Europe", "France"))
	assert.False(t, tx.HasCountry("Asia", "France"))
	assert.True(t, tx.HasCity("Europe", "France", "Paris"))
	assert.False(t, tx.HasCity("Europe", "Italy", "Paris"))
}

func TestTaxonomy_Flatten_KeepsDuplicatesInOrder(t *testing.T) {
	flat := smallTaxonomy().Flatten()

	require.Len(t, flat, 6)
	assert.Equal(t, taxonomy.Place{City: "Springfield", Country: "A", Region: "North"}, flat[0])
	assert.Equal(t, taxonomy.Place{City: "Springfield", Country: "B", Region: "North"}, flat[3])
	assert.Equal(t, "Oakdale", flat[5].City)
}

func TestResolve_ExactMatchCaseInsensitive(t *testing.T) {
	p, err := smallTaxonomy().Resolve("  oAKDALE ")

	require.NoError(t, err)
	assert.Equal(t, "Oakdale", p.City)
}

// "River" is a substring of "Riverton" and "Rivers", both earlier in the
// tree, but an exact match must win without falling through to substrings.
func TestResolve_ExactMatchBeatsEarlierSubstring(t *testing.T) {
	p, err := smallTaxonomy().Resolve("river")

	require.NoError(t, err)
	assert.Equal(t, taxonomy.Place{City: "River", Country: "C", Region: "South"}, p)
}

func TestResolve_UniqueSubstring(t *testing.T) {
	p, err := smallTaxonomy().Resolve("dal")

	require.NoError(t, err)
	assert.Equal(t, "Oakdale", p.City)
}

func TestResolve_AmbiguousSubstringTakesFirstInOrder(t *testing.T) {
	p, err := smallTaxonomy().Resolve("rive")

	require.NoError(t, err)
	assert.Equal(t, "Riverton", p.City)
}

func TestResolve_DuplicateCityTakesFirstCountry(t *testing.T) {
	p, err := smallTaxonomy().Resolve("Springfield")

	require.NoError(t, err)
	assert.Equal(t, "A", p.Country)
}

func TestResolve_NotFound(t *testing.T) {
	_, err := smallTaxonomy().Resolve("Gotham")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_BlankInput(t *testing.T) {
	_, err := smallTaxonomy().Resolve("   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Typing "Pari" when only "Paris" exists selects Paris.
func TestResolve_Default_PariResolvesToParis(t *testing.T) {
	p, err := taxonomy.Default().Resolve("Pari")

	require.NoError(t, err)
	assert.Equal(t, "Paris", p.City)
	assert.Equal(t, "France", p.Country)
}

func TestResolve_Default_EveryCityResolvesToItself(t *testing.T) {
	tx := taxonomy.Default()
	for _, place := range tx.Flatten() {
		got, err := tx.Resolve(strings.ToUpper(place.City))
		require.NoError(t, err)
		assert.Equal(t, place.City, got.City)
	}
}
