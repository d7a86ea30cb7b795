package historical

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/eliasgr/API/series"
)

// BuildHistoricalActivity rebuilds the historical collection from the
// latest upstream tables and replaces the cached copy. It returns the
// number of locations in the new collection.
func (h *HistoricalUpdateWorker) BuildHistoricalActivity(ctx context.Context) (int, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Start rebuilding the historical collection.")

	builder := series.NewBuilder(h.JHU, h.resolver, nil)
	collection, err := builder.Build()
	if err != nil {
		return 0, err
	}

	if err := h.mongo.ReplaceHistorical(collection); err != nil {
		return 0, err
	}

	logger.Info("Historical collection replaced.", zap.Int("locations", len(collection)))

	return len(collection), nil
}
