package taxonomy

import (
	"fmt"
	"strings"

	"github.com/pkordes/guidebook/internal/domain"
)

// Resolve maps free text typed into the city box to a known city.
//
// The input is trimmed and lower-cased, then matched against every city in
// taxonomy order: an exact case-insensitive match wins outright; failing
// that, the first city whose name contains the input wins. Ambiguous
// substrings resolve to the earliest hit with no ranking, and a city name
// that exists in several countries resolves to the first one.
//
// Returns domain.ErrValidation for blank input and domain.ErrNotFound when
// nothing matches.
func (t *Taxonomy) Resolve(input string) (Place, error) {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return Place{}, fmt.Errorf("%w: city search text is required", domain.ErrValidation)
	}

	for _, p := range t.flat {
		if strings.ToLower(p.City) == q {
			return p, nil
		}
	}
	for _, p := range t.flat {
		if strings.Contains(strings.ToLower(p.City), q) {
			return p, nil
		}
	}
	return Place{}, fmt.Errorf("taxonomy.Resolve %q: %w", input, domain.ErrNotFound)
}
