package historical

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/eliasgr/API/background"
	"github.com/eliasgr/API/external/jhu"
	"github.com/eliasgr/API/geo"
	"github.com/eliasgr/API/store"
)

const TaskListName = "corona-historical-tasks"

type HistoricalUpdateWorker struct {
	background.Background
	domain   string
	mongo    store.MongoStore
	resolver geo.CountryResolver
}

func NewHistoricalUpdateWorker(domain string, mongo store.MongoStore) *HistoricalUpdateWorker {
	j := jhu.NewClient(viper.GetString("jhu.base"), &http.Client{
		Timeout: 30 * time.Second,
	})

	b := background.Background{j}
	return &HistoricalUpdateWorker{
		Background: b,
		domain:     domain,
		mongo:      mongo,
		resolver:   geo.NewDefaultCountryResolver(),
	}
}

func (h *HistoricalUpdateWorker) Register() {
	workflow.RegisterWithOptions(h.HistoricalUpdateWorkflow, workflow.RegisterOptions{Name: "HistoricalUpdateWorkflow"})

	activity.RegisterWithOptions(h.BuildHistoricalActivity, activity.RegisterOptions{Name: "BuildHistoricalActivity"})
}

func (h *HistoricalUpdateWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		h.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
