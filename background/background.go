package background

import (
	"github.com/eliasgr/API/external/jhu"
)

// Background is a struct to maintain common clients
// and functions for all background workers
type Background struct {
	JHU jhu.TimeSeriesSource
}
