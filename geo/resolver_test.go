package geo

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"googlemaps.github.io/maps"

	"github.com/eliasgr/API/schema"
)

type tableLookupTestCase struct {
	query           string
	expectedID      int
	expectedCountry string
}

func TestTableCountryResolverLookup(t *testing.T) {
	r := NewTableCountryResolver()

	cases := []tableLookupTestCase{
		{"China", 156, "China"},
		{"china", 156, "China"},
		{"CN", 156, "China"},
		{"chn", 156, "China"},
		{"US", 840, "USA"},
		{"USA", 840, "USA"},
		{"840", 840, "USA"},
		{"United States", 840, "USA"},
		{"380", 380, "Italy"},
		{"United Kingdom", 826, "UK"},
		{"Korea, South", 410, "S. Korea"},
		{"Taiwan*", 158, "Taiwan"},
		{"Burma", 104, "Myanmar"},
		{"Congo (Kinshasa)", 180, "DRC"},
		{"Congo (Brazzaville)", 178, "Congo"},
		{"Cote d'Ivoire", 384, "Côte d'Ivoire"},
		{"Holy See", 336, "Vatican City"},
		{"West Bank and Gaza", 275, "Palestine"},
	}

	for _, c := range cases {
		info, err := r.Lookup(c.query)
		assert.NoError(t, err, c.query)
		assert.Equal(t, c.expectedID, info.ID, c.query)
		assert.Equal(t, c.expectedCountry, info.Country, c.query)
	}
}

func TestTableCountryResolverNotFound(t *testing.T) {
	r := NewTableCountryResolver()

	for _, query := range []string{"Diamond Princess", "MS Zaandam", "Unknownland", ""} {
		info, err := r.Lookup(query)
		assert.Equal(t, ErrNoCountryFound, err, query)
		assert.Equal(t, schema.CountryInfo{}, info, query)
	}
}

type stubResolver struct {
	info schema.CountryInfo
	err  error
}

func (s stubResolver) Lookup(string) (schema.CountryInfo, error) {
	return s.info, s.err
}

func TestMultipleCountryResolverFirstMatchWins(t *testing.T) {
	r := NewMultipleCountryResolver(
		stubResolver{err: fmt.Errorf("miss")},
		stubResolver{info: schema.CountryInfo{ID: 840, Country: "USA"}},
		stubResolver{info: schema.CountryInfo{ID: 826, Country: "UK"}},
	)

	info, err := r.Lookup("anything")
	assert.NoError(t, err)
	assert.Equal(t, 840, info.ID)
}

func TestMultipleCountryResolverAllFail(t *testing.T) {
	r := NewMultipleCountryResolver(
		stubResolver{err: fmt.Errorf("first miss")},
		stubResolver{err: fmt.Errorf("second miss")},
	)

	info, err := r.Lookup("anything")
	assert.Equal(t, schema.CountryInfo{}, info)
	assert.EqualError(t, err, "#0: first miss\n#1: second miss")

	e, ok := err.(*MultipleResolverErrors)
	assert.True(t, ok)
	assert.Len(t, e.errors, 2)
}

func TestResolveCountryWithoutResolver(t *testing.T) {
	SetCountryResolver(nil)
	_, err := ResolveCountry("China")
	assert.Equal(t, ErrResolverNotInitialized, err)

	SetCountryResolver(NewTableCountryResolver())
	info, err := ResolveCountry("China")
	assert.NoError(t, err)
	assert.Equal(t, 156, info.ID)
}

type GeocodingResolverTestSuite struct {
	suite.Suite
	mapAPIKey string
	mapClient *maps.Client
}

func NewGeocodingResolverTestSuite(mapAPIKey string) *GeocodingResolverTestSuite {
	return &GeocodingResolverTestSuite{
		mapAPIKey: mapAPIKey,
	}
}

func (s *GeocodingResolverTestSuite) SetupSuite() {
	mapClient, err := maps.NewClient(maps.WithAPIKey(s.mapAPIKey))
	if err != nil {
		s.T().Fatalf("init google map client with error: %s", err.Error())
	}
	s.mapClient = mapClient
}

func (s *GeocodingResolverTestSuite) TestGeocodingCountryResolver() {
	r := NewGeocodingCountryResolver(s.mapClient)

	info, err := r.Lookup("Republic of Korea")
	s.NoError(err)
	s.Equal(410, info.ID)
	s.Equal("S. Korea", info.Country)

	info, err = r.Lookup("Ivory Coast")
	s.NoError(err)
	s.Equal(384, info.ID)
}

func (s *GeocodingResolverTestSuite) TestGeocodingCountryResolverNotFound() {
	r := NewGeocodingCountryResolver(s.mapClient)

	_, err := r.Lookup("")
	s.Equal(ErrNoCountryFound, err)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestGeocodingResolverTestSuite(t *testing.T) {
	mapKey := os.Getenv("MAP_APIKEY")
	if mapKey == "" {
		t.Skip("Skip geocoding resolver tests due to missing map api key")
	}
	suite.Run(t, NewGeocodingResolverTestSuite(mapKey))
}
