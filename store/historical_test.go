package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eliasgr/API/schema"
)

type HistoricalStoreTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewHistoricalStoreTestSuite(connURI, dbName string) *HistoricalStoreTestSuite {
	return &HistoricalStoreTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *HistoricalStoreTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
}

// CleanMongoDB drop the whole test mongodb
func (s *HistoricalStoreTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func newSeries(dates []string, counts []int) schema.TimeSeries {
	var ts schema.TimeSeries
	for i, date := range dates {
		ts.Set(date, counts[i])
	}
	return ts
}

func testCollection() []schema.HistoricalLocation {
	dates := []string{"1/22/20", "1/23/20", "1/24/20"}
	hubei := "hubei"
	return []schema.HistoricalLocation{
		{
			Country: "China",
			CountryInfo: schema.CountryInfo{
				ID:      156,
				Country: "China",
				Iso2:    "CN",
				Iso3:    "CHN",
				Lat:     35.8617,
				Long:    104.1954,
				Flag:    "https://disease.sh/assets/img/flags/cn.png",
			},
			Province: &hubei,
			Timeline: schema.Timeline{
				Cases:     newSeries(dates, []int{444, 444, 549}),
				Deaths:    newSeries(dates, []int{17, 17, 24}),
				Recovered: newSeries(dates, []int{28, 28, 31}),
			},
		},
		{
			Country: "MS Zaandam",
			Timeline: schema.Timeline{
				Cases:     newSeries(dates, []int{0, 0, 2}),
				Deaths:    newSeries(dates, []int{0, 0, 0}),
				Recovered: newSeries(dates, []int{0, 0, 0}),
			},
		},
	}
}

func (s *HistoricalStoreTestSuite) TestSetAndGetCache() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SetCache("greeting", "hello"))
	value, err := store.GetCache("greeting")
	s.NoError(err)
	s.Equal("hello", value)

	// a second write replaces, never duplicates
	s.NoError(store.SetCache("greeting", "goodbye"))
	value, err = store.GetCache("greeting")
	s.NoError(err)
	s.Equal("goodbye", value)

	count, err := s.testDatabase.Collection(schema.CacheCollection).CountDocuments(
		context.Background(), bson.M{"_id": "greeting"})
	s.NoError(err)
	s.Equal(int64(1), count)

	var doc schema.CacheDocument
	err = s.testDatabase.Collection(schema.CacheCollection).FindOne(
		context.Background(), bson.M{"_id": "greeting"}).Decode(&doc)
	s.NoError(err)
	s.NotEmpty(doc.BuildID)
	s.NotZero(doc.UpdateTS)
}

func (s *HistoricalStoreTestSuite) TestGetCacheMiss() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetCache("never-written")
	s.Equal(ErrCacheMiss, err)
}

func (s *HistoricalStoreTestSuite) TestReplaceAndGetHistorical() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	collection := testCollection()

	s.NoError(store.ReplaceHistorical(collection))

	loaded, err := store.GetHistorical()
	s.NoError(err)
	s.Equal(collection, loaded)
	s.Equal([]string{"1/22/20", "1/23/20", "1/24/20"}, loaded[0].Timeline.Cases.Keys())

	// the collection lives under its well-known cache key
	count, err := s.testDatabase.Collection(schema.CacheCollection).CountDocuments(
		context.Background(), bson.M{"_id": schema.HistoricalCacheKey})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *HistoricalStoreTestSuite) TestReplaceHistoricalOverwrites() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.ReplaceHistorical(testCollection()))
	s.NoError(store.ReplaceHistorical(testCollection()[:1]))

	loaded, err := store.GetHistorical()
	s.NoError(err)
	s.Len(loaded, 1)
	s.Equal("China", loaded[0].Country)
}

// In order for 'go test' to run this suite, the MONGO_CONN environment
// variable has to point at a running mongodb.
func TestHistoricalStoreTestSuite(t *testing.T) {
	connURI := os.Getenv("MONGO_CONN")
	if "" == connURI {
		t.Skip("Skip historical store tests due to missing MONGO_CONN")
	}
	suite.Run(t, NewHistoricalStoreTestSuite(connURI, "test-db"))
}
