package series

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/eliasgr/API/external/jhu"
	"github.com/eliasgr/API/geo"
	"github.com/eliasgr/API/schema"
)

type stubSource struct {
	tables *jhu.TimeSeriesTables
	err    error
}

func (s *stubSource) FetchTimeSeries() (*jhu.TimeSeriesTables, error) {
	if nil != s.err {
		return nil, s.err
	}
	return s.tables, nil
}

func testLogger() log.FieldLogger {
	logger := log.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func testBuilder(tables *jhu.TimeSeriesTables) *Builder {
	return NewBuilder(&stubSource{tables: tables}, geo.NewTableCountryResolver(), testLogger())
}

func TestBuild(t *testing.T) {
	collection, err := testBuilder(exampleTables()).Build()
	assert.NoError(t, err)
	assert.Len(t, collection, 2)

	italy := collection[0]
	assert.Equal(t, "Italy", italy.Country)
	assert.Equal(t, 380, italy.CountryInfo.ID)
	assert.Equal(t, "IT", italy.CountryInfo.Iso2)
	assert.Equal(t, "ITA", italy.CountryInfo.Iso3)
	assert.Nil(t, italy.Province)
	assert.Equal(t, 3, italy.Timeline.Cases.Value("1/3"))

	hubei := collection[1]
	assert.Equal(t, "China", hubei.Country)
	assert.Equal(t, 156, hubei.CountryInfo.ID)
	if assert.NotNil(t, hubei.Province) {
		assert.Equal(t, "hubei", *hubei.Province)
	}
}

// Rows the resolver cannot place keep their raw upstream text and a zero
// identity record.
func TestBuildUnresolvedCountry(t *testing.T) {
	tables := exampleTables()
	tables.Cases = append(tables.Cases, []string{"", "Diamond Princess", "0", "0", "7", "8", "9"})

	collection, err := testBuilder(tables).Build()
	assert.NoError(t, err)
	assert.Len(t, collection, 3)

	ship := collection[2]
	assert.Equal(t, "Diamond Princess", ship.Country)
	assert.Equal(t, schema.CountryInfo{}, ship.CountryInfo)
	assert.Nil(t, ship.Province)
	assert.Equal(t, 9, ship.Timeline.Cases.Value("1/3"))
}

func TestBuildStandardizesProvince(t *testing.T) {
	tables := exampleTables()
	tables.Cases = append(tables.Cases, []string{"Fench Guiana", "France", "3.9339", "-53.1258", "1", "1", "1"})

	collection, err := testBuilder(tables).Build()
	assert.NoError(t, err)

	guiana := collection[2]
	assert.Equal(t, "France", guiana.Country)
	if assert.NotNil(t, guiana.Province) {
		assert.Equal(t, "french guiana", *guiana.Province)
	}
}

// The same input must always produce the same collection, byte for byte.
func TestBuildDeterministic(t *testing.T) {
	first, err := testBuilder(exampleTables()).Build()
	assert.NoError(t, err)
	second, err := testBuilder(exampleTables()).Build()
	assert.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	assert.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	assert.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestBuildFetchFailure(t *testing.T) {
	source := &stubSource{err: fmt.Errorf("upstream unreachable")}
	builder := NewBuilder(source, geo.NewTableCountryResolver(), testLogger())

	collection, err := builder.Build()
	assert.EqualError(t, err, "upstream unreachable")
	assert.Nil(t, collection)
}

func TestBuildEmptyDataset(t *testing.T) {
	collection, err := testBuilder(&jhu.TimeSeriesTables{}).Build()
	assert.Equal(t, ErrEmptyDataset, err)
	assert.Nil(t, collection)
}
