package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/eliasgr/API/external/jhu"
	"github.com/eliasgr/API/geo"
	"github.com/eliasgr/API/series"
	"github.com/eliasgr/API/store"
)

type historicalJob struct {
	mongoStore store.MongoStore
	source     jhu.TimeSeriesSource
	resolver   geo.CountryResolver
}

func (c historicalJob) Run() {
	builder := series.NewBuilder(c.source, c.resolver, log.StandardLogger())

	collection, err := builder.Build()
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("build historical collection")

		// the cached copy stays as it is when the upstream fails
		return
	}

	if err := c.mongoStore.ReplaceHistorical(collection); nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("cache historical collection")
	}
}

// newHistoricalCrawler - new cron job for the historical crawler
func newHistoricalCrawler(mongoStore store.MongoStore, source jhu.TimeSeriesSource, resolver geo.CountryResolver) Cron {
	return &historicalJob{
		mongoStore: mongoStore,
		source:     source,
		resolver:   resolver,
	}
}
