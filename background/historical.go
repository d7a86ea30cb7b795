package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/eliasgr/API/series"
)

// RebuildHistorical is a background job to rebuild the historical
// collection from the latest upstream tables and replace the cached copy
func (m *BackgroundManager) RebuildHistorical() error {
	builder := series.NewBuilder(m.source, m.resolver, log.StandardLogger())

	collection, err := builder.Build()
	if nil != err {
		return err
	}

	return m.store.ReplaceHistorical(collection)
}
