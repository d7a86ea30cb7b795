package store

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/eliasgr/API/schema"
)

// Historical - the merged JHU collection, serialized whole under one
// cache key
type Historical interface {
	ReplaceHistorical(collection []schema.HistoricalLocation) error
	GetHistorical() ([]schema.HistoricalLocation, error)
}

// historicalCacheKey - cache slot of the collection, configurable so a
// staging crawler can write aside the production value
func historicalCacheKey() string {
	if key := viper.GetString("cache.key.historical"); "" != key {
		return key
	}
	return schema.HistoricalCacheKey
}

// ReplaceHistorical - serialize the whole collection and replace the
// cached value in one write. Nothing is written on a marshal failure.
func (m *mongoDB) ReplaceHistorical(collection []schema.HistoricalLocation) error {
	value, err := json.Marshal(collection)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("marshal historical collection with error: %s", err)
		return err
	}

	if err := m.SetCache(historicalCacheKey(), string(value)); nil != err {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":    mongoLogPrefix,
		"locations": len(collection),
	}).Info("historical collection persisted")
	return nil
}

// GetHistorical - load and decode the cached collection; ErrCacheMiss
// until a build has persisted one
func (m *mongoDB) GetHistorical() ([]schema.HistoricalLocation, error) {
	value, err := m.GetCache(historicalCacheKey())
	if nil != err {
		return nil, err
	}

	var collection []schema.HistoricalLocation
	if err := json.Unmarshal([]byte(value), &collection); nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("unmarshal historical collection with error: %s", err)
		return nil, err
	}
	return collection, nil
}
