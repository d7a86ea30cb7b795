package series

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eliasgr/API/external/jhu"
	"github.com/eliasgr/API/schema"
)

// Column layout shared by the three JHU tables. Cells 4 onward carry one
// cumulative count per date, in header order.
const (
	columnProvince  = 0
	columnCountry   = 1
	firstDateColumn = 4
)

var (
	ErrEmptyDataset    = fmt.Errorf("empty time series dataset")
	ErrMalformedHeader = fmt.Errorf("malformed time series header")
)

// mergedRow is one cases data row joined with its deaths and recovered
// counterparts, before identity annotation.
type mergedRow struct {
	province string
	country  string
	timeline schema.Timeline
}

// locationKey aligns rows of the same location across the three tables.
// The upstream files repeat province and country spellings verbatim, so
// a case-insensitive compare of cells 0 and 1 is enough.
func locationKey(row []string) string {
	return strings.ToLower(strings.TrimSpace(cell(row, columnProvince))) +
		"|" +
		strings.ToLower(strings.TrimSpace(cell(row, columnCountry)))
}

func cell(row []string, column int) string {
	if column < len(row) {
		return row[column]
	}
	return ""
}

// parseCount reads one cumulative count cell. Anything that is not a
// plain non-negative integer counts as zero.
func parseCount(s string) int {
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err || count < 0 {
		return 0
	}
	return count
}

// indexByLocation maps the data rows of one table by location key. The
// first row wins on duplicate keys.
func indexByLocation(table jhu.RawTable) map[string][]string {
	rows := make(map[string][]string, len(table))
	for i, row := range table {
		if 0 == i {
			continue
		}
		key := locationKey(row)
		if _, ok := rows[key]; !ok {
			rows[key] = row
		}
	}
	return rows
}

// mergeTables joins the three tables into one merged row per cases data
// row, in cases-table order. Deaths and recovered rows are looked up by
// location key rather than by position, so a table missing a location or
// listing it at another index still lines up. The cases date header is
// authoritative throughout; it is returned alongside the rows.
func mergeTables(tables *jhu.TimeSeriesTables) ([]mergedRow, []string, error) {
	if 0 == len(tables.Cases) {
		return nil, nil, ErrEmptyDataset
	}
	header := tables.Cases[0]
	if len(header) <= firstDateColumn {
		return nil, nil, ErrMalformedHeader
	}
	dates := header[firstDateColumn:]

	deathsRows := indexByLocation(tables.Deaths)
	recoveredRows := indexByLocation(tables.Recovered)

	merged := make([]mergedRow, 0, len(tables.Cases)-1)
	for _, row := range tables.Cases[1:] {
		key := locationKey(row)
		merged = append(merged, mergedRow{
			province: cell(row, columnProvince),
			country:  cell(row, columnCountry),
			timeline: mergeTimeline(dates, row, deathsRows[key], recoveredRows[key]),
		})
	}
	return merged, dates, nil
}

// mergeTimeline reads the three count sequences of one location. A nil
// or short metric row behaves like an all-zero one; length mismatches
// never fail the merge.
func mergeTimeline(dates []string, casesRow, deathsRow, recoveredRow []string) schema.Timeline {
	var timeline schema.Timeline
	for i, date := range dates {
		column := firstDateColumn + i
		timeline.Cases.Set(date, parseCount(cell(casesRow, column)))
		timeline.Deaths.Set(date, parseCount(cell(deathsRow, column)))
		timeline.Recovered.Set(date, parseCount(cell(recoveredRow, column)))
	}
	return timeline
}
