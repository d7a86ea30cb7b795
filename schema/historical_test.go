package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoricalLocationJSONShape(t *testing.T) {
	province := "hubei"
	loc := HistoricalLocation{
		Country: "China",
		CountryInfo: CountryInfo{
			ID:      156,
			Country: "China",
			Iso2:    "CN",
			Iso3:    "CHN",
			Lat:     35,
			Long:    105,
			Flag:    "https://disease.sh/assets/img/flags/cn.png",
		},
		Province: &province,
	}
	loc.Timeline.Cases.Set("1/22/20", 444)
	loc.Timeline.Deaths.Set("1/22/20", 17)
	loc.Timeline.Recovered.Set("1/22/20", 28)

	data, err := json.Marshal(loc)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"country": "China",
		"countryInfo": {
			"_id": 156,
			"country": "China",
			"iso2": "CN",
			"iso3": "CHN",
			"lat": 35,
			"long": 105,
			"flag": "https://disease.sh/assets/img/flags/cn.png"
		},
		"province": "hubei",
		"timeline": {
			"cases": {"1/22/20": 444},
			"deaths": {"1/22/20": 17},
			"recovered": {"1/22/20": 28}
		}
	}`, string(data))
}

func TestHistoricalLocationJSONNullFields(t *testing.T) {
	loc := HistoricalLocation{Country: "MS Zaandam"}
	loc.Timeline.Cases.Set("1/22/20", 0)
	loc.Timeline.Deaths.Set("1/22/20", 0)
	loc.Timeline.Recovered.Set("1/22/20", 0)

	data, err := json.Marshal(loc)
	assert.NoError(t, err)

	var decoded map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &decoded))

	// country-level row carries an explicit null province, an unresolved
	// country an empty countryInfo
	assert.Equal(t, "null", string(decoded["province"]))
	assert.Equal(t, "{}", string(decoded["countryInfo"]))
}

func TestHistoricalCollectionRoundTrip(t *testing.T) {
	var loc HistoricalLocation
	loc.Country = "Afghanistan"
	loc.CountryInfo = CountryInfo{ID: 4, Country: "Afghanistan", Iso2: "AF", Iso3: "AFG"}
	loc.Timeline.Cases.Set("1/22/20", 0)
	loc.Timeline.Cases.Set("1/23/20", 1)
	loc.Timeline.Deaths.Set("1/22/20", 0)
	loc.Timeline.Deaths.Set("1/23/20", 0)
	loc.Timeline.Recovered.Set("1/22/20", 0)
	loc.Timeline.Recovered.Set("1/23/20", 0)

	collection := []HistoricalLocation{loc}

	// the store keeps the whole collection as one serialized string
	value, err := json.Marshal(collection)
	assert.NoError(t, err)

	var decoded []HistoricalLocation
	assert.NoError(t, json.Unmarshal(value, &decoded))
	assert.Len(t, decoded, 1)
	assert.Equal(t, "Afghanistan", decoded[0].Country)
	assert.Nil(t, decoded[0].Province)
	assert.Equal(t, []string{"1/22/20", "1/23/20"}, decoded[0].Timeline.Cases.Keys())
	assert.Equal(t, 1, decoded[0].Timeline.Cases.Value("1/23/20"))
}
