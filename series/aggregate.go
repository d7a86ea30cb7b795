package series

import (
	"github.com/eliasgr/API/schema"
)

// AggregateSeries is the global view of the collection: cases and deaths
// summed across every location, date by date. It is derived on demand
// and never persisted.
type AggregateSeries struct {
	Cases  schema.TimeSeries `json:"cases"`
	Deaths schema.TimeSeries `json:"deaths"`
}

// Tail windows both series to their last n dates.
func (a AggregateSeries) Tail(n int) AggregateSeries {
	return AggregateSeries{
		Cases:  a.Cases.Tail(n),
		Deaths: a.Deaths.Tail(n),
	}
}

// Aggregate folds the collection into global per-date sums. Each series
// keeps the date order of the locations' own timelines; a date a
// location lacks simply contributes nothing. The input is not modified.
func Aggregate(collection []schema.HistoricalLocation) AggregateSeries {
	var agg AggregateSeries
	for i := range collection {
		timeline := &collection[i].Timeline
		for _, date := range timeline.Cases.Keys() {
			agg.Cases.Add(date, timeline.Cases.Value(date))
		}
		for _, date := range timeline.Deaths.Keys() {
			agg.Deaths.Add(date, timeline.Deaths.Value(date))
		}
	}
	return agg
}
