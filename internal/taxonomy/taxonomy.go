// Package taxonomy holds the static region → country → city reference data
// that feeds the cascading location selectors, and the free-text city resolver.
package taxonomy

// Country is a named country with its cities in display order.
// City names are unique within one country but may repeat across countries.
type Country struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// Region is a named region with its countries in display order.
type Region struct {
	Name      string    `json:"name"`
	Countries []Country `json:"countries"`
}

// Place is one city together with the country and region it belongs to.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

// Taxonomy is an immutable, ordered location tree.
// All methods are safe for concurrent use because nothing mutates it after New.
type Taxonomy struct {
	regions []Region
	flat    []Place
}

// New builds a Taxonomy from regions. The slice is copied.
func New(regions []Region) *Taxonomy {
	t := &Taxonomy{regions: make([]Region, len(regions))}
	copy(t.regions, regions)
	for _, r := range t.regions {
		for _, c := range r.Countries {
			for _, city := range c.Cities {
				t.flat = append(t.flat, Place{City: city, Country: c.Name, Region: r.Name})
			}
		}
	}
	return t
}

// Default returns the taxonomy the application ships with.
func Default() *Taxonomy {
	return New(defaultRegions)
}

// Regions returns the full tree. Callers must not modify it.
func (t *Taxonomy) Regions() []Region {
	return t.regions
}

// RegionNames returns every region name in order.
func (t *Taxonomy) RegionNames() []string {
	names := make([]string, 0, len(t.regions))
	for _, r := range t.regions {
		names = append(names, r.Name)
	}
	return names
}

// Countries returns the country names of region, or nil if the region is unknown.
func (t *Taxonomy) Countries(region string) []string {
	r, ok := t.region(region)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(r.Countries))
	for _, c := range r.Countries {
		names = append(names, c.Name)
	}
	return names
}

// Cities returns the city names of country within region, or nil if either is unknown.
func (t *Taxonomy) Cities(region, country string) []string {
	c, ok := t.country(region, country)
	if !ok {
		return nil
	}
	out := make([]string, len(c.Cities))
	copy(out, c.Cities)
	return out
}

// Flatten returns every city in taxonomy order, duplicates across countries included.
func (t *Taxonomy) Flatten() []Place {
	out := make([]Place, len(t.flat))
	copy(out, t.flat)
	return out
}

// HasRegion reports whether region exists.
func (t *Taxonomy) HasRegion(region string) bool {
	_, ok := t.region(region)
	return ok
}

// HasCountry reports whether country exists within region.
func (t *Taxonomy) HasCountry(region, country string) bool {
	_, ok := t.country(region, country)
	return ok
}

// HasCity reports whether city exists within country and region.
func (t *Taxonomy) HasCity(region, country, city string) bool {
	c, ok := t.country(region, country)
	if !ok {
		return false
	}
	for _, name := range c.Cities {
		if name == city {
			return true
		}
	}
	return false
}

func (t *Taxonomy) region(name string) (Region, bool) {
	for _, r := range t.regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

func (t *Taxonomy) country(region, country string) (Country, bool) {
	r, ok := t.region(region)
	if !ok {
		return Country{}, false
	}
	for _, c := range r.Countries {
		if c.Name == country {
			return c, true
		}
	}
	return Country{}, false
}
