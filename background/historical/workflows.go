package historical

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

const HistoricalUpdateCheckInterval = time.Hour

// the upstream tables take a while to download, too long for the
// default one minute close timeout
var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    10 * time.Minute,
}

// HistoricalUpdateWorkflow rebuilds the cached historical collection
// once an hour. A refresh signal cancels the timer so the rebuild
// starts right away.
func (h *HistoricalUpdateWorker) HistoricalUpdateWorkflow(ctx workflow.Context) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "historicalRefreshSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, HistoricalUpdateCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically historical updates")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger historical updates by signal")
	})

	selector.Select(ctx)

	var locations int
	if err := workflow.ExecuteActivity(ctx, h.BuildHistoricalActivity).Get(ctx, &locations); err != nil {
		logger.Error("Fail to rebuild historical collection.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, h.HistoricalUpdateWorkflow)
	}

	logger.Info("Historical collection updated.", zap.Int("locations", locations))

	return workflow.NewContinueAsNewError(ctx, h.HistoricalUpdateWorkflow)
}
