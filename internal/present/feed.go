// Package present turns a batch of mock records into what clients render
// and download: a feed with a promotional panel, and a CSV export.
package present

import "github.com/pkordes/guidebook/internal/domain"

// ItemKind distinguishes feed entries.
type ItemKind string

const (
	KindBusiness ItemKind = "business"
	KindPromo    ItemKind = "promo"
)

// Promo is the sign-up panel shown inside result lists.
type Promo struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	CTA   string `json:"cta"`
	Href  string `json:"href"`
}

// SignUpPromo is the panel injected into every multi-record feed.
var SignUpPromo = Promo{
	Title: "List your business",
	Body:  "Own a place people should know about? Create a free business profile and reach travellers planning their next trip.",
	CTA:   "Get started",
	Href:  "/business/signup",
}

// Item is one entry of a feed: either a record or the promo panel.
type Item struct {
	Kind   ItemKind               `json:"kind"`
	Record *domain.BusinessRecord `json:"record,omitempty"`
	Promo  *Promo                 `json:"promo,omitempty"`
}

// promoAfter is the number of records shown before the promo panel.
const promoAfter = 2

// Feed lays out records in order and inserts the sign-up panel after the
// second record whenever there is more than one record.
func Feed(records []domain.BusinessRecord) []Item {
	items := make([]Item, 0, len(records)+1)
	for i := range records {
		items = append(items, Item{Kind: KindBusiness, Record: &records[i]})
		if i == promoAfter-1 && len(records) > 1 {
			promo := SignUpPromo
			items = append(items, Item{Kind: KindPromo, Promo: &promo})
		}
	}
	return items
}
