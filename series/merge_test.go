package series

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliasgr/API/external/jhu"
)

// exampleTables matches the upstream layout: identical headers, one row
// per location, recovered missing the Italy row entirely.
func exampleTables() *jhu.TimeSeriesTables {
	return &jhu.TimeSeriesTables{
		Cases: jhu.RawTable{
			{"Province/State", "Country/Region", "Lat", "Long", "1/1", "1/2", "1/3"},
			{"", "Italy", "41.8719", "12.5674", "1", "2", "3"},
			{"Hubei", "China", "30.9756", "112.2707", "4", "5", "6"},
		},
		Deaths: jhu.RawTable{
			{"Province/State", "Country/Region", "Lat", "Long", "1/1", "1/2", "1/3"},
			{"", "Italy", "41.8719", "12.5674", "0", "0", "1"},
			{"Hubei", "China", "30.9756", "112.2707", "1", "1", "2"},
		},
		Recovered: jhu.RawTable{
			{"Province/State", "Country/Region", "Lat", "Long", "1/1", "1/2", "1/3"},
			{"Hubei", "China", "30.9756", "112.2707", "0", "1", "2"},
		},
	}
}

func TestMergeTables(t *testing.T) {
	merged, dates, err := mergeTables(exampleTables())
	assert.NoError(t, err)
	assert.Equal(t, []string{"1/1", "1/2", "1/3"}, dates)
	assert.Len(t, merged, 2)

	italy := merged[0]
	assert.Equal(t, "Italy", italy.country)
	assert.Equal(t, "", italy.province)
	assert.Equal(t, []string{"1/1", "1/2", "1/3"}, italy.timeline.Cases.Keys())
	assert.Equal(t, 1, italy.timeline.Cases.Value("1/1"))
	assert.Equal(t, 3, italy.timeline.Cases.Value("1/3"))
	assert.Equal(t, 1, italy.timeline.Deaths.Value("1/3"))

	hubei := merged[1]
	assert.Equal(t, "China", hubei.country)
	assert.Equal(t, "Hubei", hubei.province)
	assert.Equal(t, 6, hubei.timeline.Cases.Value("1/3"))
	assert.Equal(t, 2, hubei.timeline.Recovered.Value("1/3"))
}

// A location absent from the recovered table still gets every date key,
// all zero.
func TestMergeTablesMissingRecoveredRow(t *testing.T) {
	merged, _, err := mergeTables(exampleTables())
	assert.NoError(t, err)

	recovered := merged[0].timeline.Recovered
	assert.Equal(t, []string{"1/1", "1/2", "1/3"}, recovered.Keys())
	for _, date := range recovered.Keys() {
		assert.Equal(t, 0, recovered.Value(date))
	}
}

// Reordering rows of the deaths and recovered tables must not change the
// merge: alignment is by location, not by row position.
func TestMergeTablesShuffledMetricRows(t *testing.T) {
	aligned, _, err := mergeTables(exampleTables())
	assert.NoError(t, err)

	shuffled := exampleTables()
	shuffled.Deaths = jhu.RawTable{
		shuffled.Deaths[0],
		shuffled.Deaths[2],
		shuffled.Deaths[1],
	}

	merged, _, err := mergeTables(shuffled)
	assert.NoError(t, err)
	assert.Equal(t, aligned, merged)
}

// Short rows and non-numeric cells degrade to zero counts, never to a
// merge failure.
func TestMergeTablesMalformedCells(t *testing.T) {
	tables := exampleTables()
	tables.Cases = append(tables.Cases, []string{"", "Testland", "0", "0", "7", "x"})

	merged, _, err := mergeTables(tables)
	assert.NoError(t, err)
	assert.Len(t, merged, 3)

	testland := merged[2].timeline.Cases
	assert.Equal(t, []string{"1/1", "1/2", "1/3"}, testland.Keys())
	assert.Equal(t, 7, testland.Value("1/1"))
	assert.Equal(t, 0, testland.Value("1/2"))
	assert.Equal(t, 0, testland.Value("1/3"))
}

func TestMergeTablesDuplicateLocationFirstWins(t *testing.T) {
	tables := exampleTables()
	tables.Deaths = append(tables.Deaths, []string{"Hubei", "China", "30.9756", "112.2707", "90", "90", "90"})

	merged, _, err := mergeTables(tables)
	assert.NoError(t, err)
	assert.Equal(t, 2, merged[1].timeline.Deaths.Value("1/3"))
}

func TestMergeTablesHeaderErrors(t *testing.T) {
	empty := &jhu.TimeSeriesTables{}
	_, _, err := mergeTables(empty)
	assert.Equal(t, ErrEmptyDataset, err)

	headerOnly := exampleTables()
	headerOnly.Cases = jhu.RawTable{{"Province/State", "Country/Region", "Lat", "Long"}}
	_, _, err = mergeTables(headerOnly)
	assert.Equal(t, ErrMalformedHeader, err)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 42, parseCount("42"))
	assert.Equal(t, 7, parseCount(" 7 "))
	assert.Equal(t, 0, parseCount(""))
	assert.Equal(t, 0, parseCount("n/a"))
	assert.Equal(t, 0, parseCount("3.5"))
	assert.Equal(t, 0, parseCount("-12"))
}
