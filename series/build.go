package series

import (
	log "github.com/sirupsen/logrus"

	"github.com/eliasgr/API/external/jhu"
	"github.com/eliasgr/API/geo"
	"github.com/eliasgr/API/schema"
)

// Builder assembles the published historical collection out of one
// upstream fetch: merge the three tables, then annotate every row with
// its country identity. The resolver must not be nil.
type Builder struct {
	source   jhu.TimeSeriesSource
	resolver geo.CountryResolver
	log      log.FieldLogger
}

// NewBuilder returns a collection builder. A nil logger falls back to
// the process-wide logrus logger.
func NewBuilder(source jhu.TimeSeriesSource, resolver geo.CountryResolver, logger log.FieldLogger) *Builder {
	if nil == logger {
		logger = log.StandardLogger()
	}
	return &Builder{
		source:   source,
		resolver: resolver,
		log:      logger,
	}
}

// Build fetches the three time series tables and produces the full
// location collection in cases-table order. Any fetch or parse failure
// aborts the build with nothing produced; per-row anomalies never do.
func (b *Builder) Build() ([]schema.HistoricalLocation, error) {
	tables, err := b.source.FetchTimeSeries()
	if nil != err {
		b.log.WithError(err).Error("fetch time series tables")
		return nil, err
	}

	merged, dates, err := mergeTables(tables)
	if nil != err {
		b.log.WithError(err).Error("merge time series tables")
		return nil, err
	}

	collection := make([]schema.HistoricalLocation, 0, len(merged))
	unresolved := 0
	for _, row := range merged {
		loc := annotateRow(row, b.resolver)
		if 0 == loc.CountryInfo.ID {
			unresolved++
		}
		collection = append(collection, loc)
	}

	b.log.WithFields(log.Fields{
		"locations":  len(collection),
		"dates":      len(dates),
		"unresolved": unresolved,
	}).Info("historical collection built")

	return collection, nil
}
