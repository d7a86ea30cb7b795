package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eliasgr/API/schema"
)

var (
	ErrCacheMiss = fmt.Errorf("cache value not found")
)

// Cacher - string payloads stored whole, one document per key
type Cacher interface {
	SetCache(key, value string) error
	GetCache(key string) (string, error)
}

// SetCache - replace the value of a key in one upsert. The build id
// tags which run wrote the document.
func (m *mongoDB) SetCache(key, value string) error {
	c := m.client.Database(m.database).Collection(schema.CacheCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": key}
	replacement := bson.M{
		"_id":       key,
		"value":     value,
		"build_id":  uuid.New().String(),
		"update_ts": time.Now().Unix(),
	}
	opts := options.Replace().SetUpsert(true)

	result, err := c.ReplaceOne(ctx, filter, replacement, opts)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("set cache %s with error: %s", key, err)
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"key":      key,
		"bytes":    len(value),
		"modified": result.ModifiedCount,
		"upserted": result.UpsertedCount,
	}).Debug("cache value replaced")
	return nil
}

// GetCache - read the value of a key; ErrCacheMiss when the key was
// never written
func (m *mongoDB) GetCache(key string) (string, error) {
	c := m.client.Database(m.database).Collection(schema.CacheCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var doc schema.CacheDocument
	err := c.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if nil != err {
		if err == mongo.ErrNoDocuments {
			return "", ErrCacheMiss
		}
		log.WithField("prefix", mongoLogPrefix).Errorf("get cache %s with error: %s", key, err)
		return "", err
	}
	return doc.Value, nil
}
