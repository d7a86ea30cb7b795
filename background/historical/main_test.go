package historical

import (
	"os"
	"testing"

	"github.com/eliasgr/API/mocks"
)

var testWorker *HistoricalUpdateWorker
var mongoMock *mocks.MockMongoStore

func TestMain(m *testing.M) {
	testWorker = NewHistoricalUpdateWorker("test", mongoMock)
	testWorker.Register()
	os.Exit(m.Run())
}
