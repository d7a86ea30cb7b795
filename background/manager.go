package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eliasgr/API/external/jhu"
	"github.com/eliasgr/API/geo"
	"github.com/eliasgr/API/store"
)

// BackgroundManager is a struct for corona background manager
type BackgroundManager struct {
	store store.MongoStore

	source jhu.TimeSeriesSource

	resolver geo.CountryResolver

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	j := jhu.NewClient(viper.GetString("jhu.base"), &http.Client{
		Timeout: 30 * time.Second,
	})

	return &BackgroundManager{
		store:      mongoStore,
		source:     j,
		resolver:   geo.NewDefaultCountryResolver(),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("corona-background", 5)
	return m.worker.Launch()
}
