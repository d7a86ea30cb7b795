package series

import (
	"fmt"
	"strings"

	"github.com/eliasgr/API/consts"
	"github.com/eliasgr/API/geo"
	"github.com/eliasgr/API/schema"
)

var ErrLocationNotFound = fmt.Errorf("location not found")

// unresolvedName is how a location without country identity compares in
// name queries. Rows the resolver never recognized, cruise ships mostly,
// group under this literal.
const unresolvedName = "null"

// Query selects one location out of a collection. Construct it with
// ByName or ByID; both take an optional province to narrow the match.
type Query struct {
	name     string
	id       int
	byID     bool
	province string
}

// ByName queries by free country text: canonical name, ISO code or any
// spelling the resolver chain recognizes.
func ByName(name string, province ...string) Query {
	return Query{name: name}.withProvince(province)
}

// ByID queries by ISO 3166-1 numeric country id.
func ByID(id int, province ...string) Query {
	return Query{id: id, byID: true}.withProvince(province)
}

func (q Query) withProvince(province []string) Query {
	if len(province) > 0 {
		q.province = consts.StandardProvince(province[0])
	}
	return q
}

// FoundLocation is the answer of a lookup: the stored record without its
// countryInfo block.
type FoundLocation struct {
	Country  string          `json:"country"`
	Province *string         `json:"province"`
	Timeline schema.Timeline `json:"timeline"`
}

// Strip reduces a stored location to the lookup answer shape.
func Strip(loc schema.HistoricalLocation) FoundLocation {
	return FoundLocation{
		Country:  loc.Country,
		Province: loc.Province,
		Timeline: loc.Timeline,
	}
}

// Find returns the first location matching the query, in collection
// order. The collection itself is left untouched; the answer is a
// reduced copy, never a pointer into it.
func Find(collection []schema.HistoricalLocation, q Query) (*FoundLocation, error) {
	match := q.matcher()
	for i := range collection {
		if !match(&collection[i]) {
			continue
		}
		found := Strip(collection[i])
		return &found, nil
	}
	return nil, ErrLocationNotFound
}

func (q Query) matcher() func(*schema.HistoricalLocation) bool {
	identity := q.identityMatcher()
	if "" == q.province {
		return identity
	}
	return func(loc *schema.HistoricalLocation) bool {
		return identity(loc) && nil != loc.Province && *loc.Province == q.province
	}
}

// identityMatcher compiles the country part of the query into a
// per-location predicate. Name queries resolve once, through the same
// resolver chain the builder annotated with, so "Germany", "DE" and
// "DEU" all land on the same row. Text the resolver does not recognize
// compares as-is against the annotated country names, which read as
// "null" for rows without identity.
func (q Query) identityMatcher() func(*schema.HistoricalLocation) bool {
	if q.byID {
		return func(loc *schema.HistoricalLocation) bool {
			return 0 != q.id && loc.CountryInfo.ID == q.id
		}
	}

	name := strings.ToLower(strings.TrimSpace(q.name))
	var iso2, iso3 string
	if info, err := geo.ResolveCountry(q.name); nil == err && "" != info.Country {
		name = strings.ToLower(info.Country)
		iso2 = info.Iso2
		iso3 = info.Iso3
	}

	return func(loc *schema.HistoricalLocation) bool {
		locName := unresolvedName
		if "" != loc.CountryInfo.Country {
			locName = strings.ToLower(loc.CountryInfo.Country)
		}
		switch {
		case locName == name:
			return true
		case "" != iso2 && strings.EqualFold(loc.CountryInfo.Iso2, iso2):
			return true
		case "" != iso3 && strings.EqualFold(loc.CountryInfo.Iso3, iso3):
			return true
		}
		return false
	}
}
