package schema

const (
	// CacheCollection is the mongo collection holding serialized payloads,
	// one document per cache key.
	CacheCollection = "cache"

	// HistoricalCacheKey is the default cache key the merged JHU collection
	// is stored under. A run replaces the whole value.
	HistoricalCacheKey = "historical_v2"
)

// CountryInfo is the normalized identity of a country as listed in the
// countries table. The zero value marks a country the resolver does not
// recognize; valid ISO numeric ids start at 4, so an ID of 0 never
// collides with a real country.
type CountryInfo struct {
	ID      int     `json:"_id,omitempty"`
	Country string  `json:"country,omitempty"`
	Iso2    string  `json:"iso2,omitempty"`
	Iso3    string  `json:"iso3,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Long    float64 `json:"long,omitempty"`
	Flag    string  `json:"flag,omitempty"`
}

// Timeline groups the three cumulative series of one location. Cases and
// deaths carry every date of the source header; recovered is zero-filled
// when the upstream table misses the location.
type Timeline struct {
	Cases     TimeSeries `json:"cases"`
	Deaths    TimeSeries `json:"deaths"`
	Recovered TimeSeries `json:"recovered"`
}

// Tail windows every series of the timeline to its last n dates. A non
// positive n keeps all of them.
func (t Timeline) Tail(n int) Timeline {
	return Timeline{
		Cases:     t.Cases.Tail(n),
		Deaths:    t.Deaths.Tail(n),
		Recovered: t.Recovered.Tail(n),
	}
}

// HistoricalLocation is one row of the merged JHU dataset: a country, or a
// country/province pair, with its full timeline. Country keeps the raw
// upstream text when CountryInfo is unresolved. Province is nil for
// country-level rows.
type HistoricalLocation struct {
	Country     string      `json:"country"`
	CountryInfo CountryInfo `json:"countryInfo"`
	Province    *string     `json:"province"`
	Timeline    Timeline    `json:"timeline"`
}

// CacheDocument is the envelope a cache value is stored in. BuildID tags
// which run produced the value.
type CacheDocument struct {
	ID       string `bson:"_id"`
	Value    string `bson:"value"`
	BuildID  string `bson:"build_id"`
	UpdateTS int64  `bson:"update_ts"`
}
