package domain

// ReviewSource names the (fictional) review provider a mock record claims.
type ReviewSource string

const (
	SourceGoogle      ReviewSource = "Google Reviews"
	SourceYelp        ReviewSource = "Yelp"
	SourceTripAdvisor ReviewSource = "TripAdvisor"
)

// ReviewSources lists every source a generated record may carry.
var ReviewSources = []ReviewSource{SourceGoogle, SourceYelp, SourceTripAdvisor}

// BusinessRecord is a synthetic listing produced at search time.
// It lives only in the response (and the session's latest-results board)
// unless a user saves it, in which case its JSON is snapshotted.
//
// Optional contact and social fields are nil when the business simply does
// not have one; that is distinct from a present-but-empty value.
type BusinessRecord struct {
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Address      string       `json:"address"`
	MapReference string       `json:"map_reference"`
	Social       SocialLinks  `json:"social_links"`
	Contact      Contact      `json:"contact"`
	Images       []string     `json:"images"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"review_count"`
	Source       ReviewSource `json:"source"`
}

// SocialLinks holds the optional social profile URLs of a record.
type SocialLinks struct {
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
}

// Contact holds the optional contact points of a record.
type Contact struct {
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Website  *string `json:"website,omitempty"`
	MenuLink *string `json:"menu_link,omitempty"`
}
