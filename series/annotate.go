package series

import (
	"strings"

	"github.com/eliasgr/API/consts"
	"github.com/eliasgr/API/geo"
	"github.com/eliasgr/API/schema"
)

// annotateRow attaches the published identity to one merged row. The
// country field falls back to the raw upstream text when the resolver
// has no answer, and countryInfo stays the zero record then. Provinces
// are lower-cased and standardized; a blank cell turns into nil.
func annotateRow(row mergedRow, resolver geo.CountryResolver) schema.HistoricalLocation {
	loc := schema.HistoricalLocation{
		Country:  row.country,
		Timeline: row.timeline,
	}

	if info, err := resolver.Lookup(row.country); nil == err && "" != info.Country {
		loc.Country = info.Country
		loc.CountryInfo = info
	}

	if "" != strings.TrimSpace(row.province) {
		province := consts.StandardProvince(row.province)
		loc.Province = &province
	}

	return loc
}
