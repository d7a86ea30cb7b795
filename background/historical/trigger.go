package historical

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/eliasgr/API/external/cadence"
)

const updateWorkflowID = "historical-update"

// TriggerHistoricalUpdate is a helper function to send a refresh signal
// to the historical update workflow. The workflow is started first in
// case it is not running yet.
func TriggerHistoricalUpdate(client cadence.CadenceClient, c context.Context) error {
	if _, err := client.SignalWithStartWorkflow(c,
		updateWorkflowID, "historicalRefreshSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:       updateWorkflowID,
			TaskList: TaskListName,
			// one full timer round plus the rebuild itself
			ExecutionStartToCloseTimeout: 2 * time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "HistoricalUpdateWorkflow"); err != nil {
		return err
	}
	return nil
}
