// Package mockgen synthesizes placeholder business listings for a chosen
// category and location. There is no real search behind it: every record is
// random, and duplicate names within a batch are expected.
package mockgen

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/selection"
)

// SupportedCountry is the only country searches are served for.
// It is a product rule, not a configuration knob.
const SupportedCountry = "United States"

// ErrUnsupportedCountry is wrapped, together with domain.ErrValidation, by
// Validate when the query names any country other than SupportedCountry.
var ErrUnsupportedCountry = errors.New("unsupported country")

// MaxCount bounds the batch size of a single Generate call. It is the same
// bound the selection flow puts on the result count.
const MaxCount = selection.MaxResultCount

// Query is a fully chosen selection plus the number of records wanted.
type Query struct {
	Category domain.Category
	Region   string
	Country  string
	City     string
	Count    int
}

// Generator produces mock records. It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	delay time.Duration
}

// New returns a Generator drawing from rng that waits delay before each batch.
// Pass a seeded rng in tests for reproducible output.
func New(rng *rand.Rand, delay time.Duration) *Generator {
	return &Generator{rng: rng, delay: delay}
}

// NewRandom returns a Generator seeded from the clock.
func NewRandom(delay time.Duration) *Generator {
	seed := uint64(time.Now().UnixNano())
	return New(rand.New(rand.NewPCG(seed, seed>>1|1)), delay)
}

// Validate checks q without generating anything.
// Every failure wraps domain.ErrValidation.
func Validate(q Query) error {
	var missing []string
	if q.Category == "" {
		missing = append(missing, "category")
	}
	if q.Region == "" {
		missing = append(missing, "region")
	}
	if q.Country == "" {
		missing = append(missing, "country")
	}
	if q.City == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: please choose a %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if !q.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, q.Category)
	}
	if q.Country != SupportedCountry {
		return fmt.Errorf("%w: %w %q: only %s is available right now", domain.ErrValidation, ErrUnsupportedCountry, q.Country, SupportedCountry)
	}
	if q.Count < 1 || q.Count > MaxCount {
		return fmt.Errorf("%w: result count must be between 1 and %d", domain.ErrValidation, MaxCount)
	}
	return nil
}

// Generate validates q, waits the configured delay, and returns exactly
// q.Count records. It returns ctx.Err() if ctx ends during the delay.
func (g *Generator) Generate(ctx context.Context, q Query) ([]domain.BusinessRecord, error) {
	if err := Validate(q); err != nil {
		return nil, err
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	records := make([]domain.BusinessRecord, q.Count)
	for i := range records {
		records[i] = g.record(q)
	}
	return records, nil
}

func (g *Generator) record(q Query) domain.BusinessRecord {
	name := pick(g.rng, prefixes) + " " + pick(g.rng, suffixes[q.Category])
	address := fmt.Sprintf("%d %s %s, %s, %s",
		1+g.rng.IntN(9999), pick(g.rng, streets), pick(g.rng, streetTypes), q.City, q.Country)
	slug := slugify(name)

	rec := domain.BusinessRecord{
		Name:         name,
		Category:     q.Category,
		Address:      address,
		MapReference: "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name+", "+address),
		Images:       g.images(q.Category),
		Rating:       g.rating(),
		ReviewCount:  10 + g.rng.IntN(1000),
		Source:       pick(g.rng, domain.ReviewSources),
	}

	phone := fmt.Sprintf("(%03d) %03d-%04d", 200+g.rng.IntN(800), g.rng.IntN(1000), g.rng.IntN(10000))
	rec.Contact.Phone = &phone
	rec.Social.Facebook = g.maybe(pFacebook, "https://facebook.com/"+slug)
	rec.Social.Instagram = g.maybe(pInstagram, "https://instagram.com/"+slug)
	rec.Social.Twitter = g.maybe(pTwitter, "https://twitter.com/"+slug)
	rec.Contact.Email = g.maybe(pEmail, "info@"+slug+".com")
	rec.Contact.Website = g.maybe(pWebsite, "https://www."+slug+".com")
	rec.Contact.MenuLink = g.maybe(pMenuLink, "https://www."+slug+".com/menu")
	return rec
}

// rating is uniform in [3.0, 5.0). The clamp guards the one float64 draw
// that would otherwise round up to exactly 5.
func (g *Generator) rating() float64 {
	r := 3 + g.rng.Float64()*2
	if r >= 5 {
		r = math.Nextafter(5, 0)
	}
	return r
}

func (g *Generator) images(c domain.Category) []string {
	pool := images[c]
	n := 1 + g.rng.IntN(3)
	out := make([]string, n)
	for i := range out {
		out[i] = "https://images.unsplash.com/photo-" + pick(g.rng, pool) + "?w=800"
	}
	return out
}

// maybe returns &v with probability p, otherwise nil.
func (g *Generator) maybe(p float64, v string) *string {
	if g.rng.Float64() >= p {
		return nil
	}
	return &v
}

func pick[T any](rng *rand.Rand, from []T) T {
	return from[rng.IntN(len(from))]
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}
