package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v4"
	"gopkg.in/yaml.v2"
)

func chronologicalFixture() TimeSeries {
	// 1/10/20 sorts before 1/2/20 alphabetically; a codec that reorders
	// keys fails these tests.
	var ts TimeSeries
	ts.Set("1/2/20", 5)
	ts.Set("1/10/20", 7)
	ts.Set("2/1/20", 11)
	return ts
}

func TestTimeSeriesSet(t *testing.T) {
	var ts TimeSeries
	ts.Set("1/22/20", 1)
	ts.Set("1/23/20", 2)
	ts.Set("1/22/20", 3)

	assert.Equal(t, 2, ts.Len())
	assert.Equal(t, []string{"1/22/20", "1/23/20"}, ts.Keys())
	assert.Equal(t, 3, ts.Value("1/22/20"))
}

func TestTimeSeriesAdd(t *testing.T) {
	var ts TimeSeries
	ts.Add("1/22/20", 2)
	ts.Add("1/22/20", 3)
	ts.Add("1/23/20", 4)

	assert.Equal(t, 5, ts.Value("1/22/20"))
	assert.Equal(t, 4, ts.Value("1/23/20"))

	count, ok := ts.Get("1/24/20")
	assert.False(t, ok)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, ts.Value("1/24/20"))
}

func TestTimeSeriesTail(t *testing.T) {
	ts := chronologicalFixture()

	tail := ts.Tail(2)
	assert.Equal(t, []string{"1/10/20", "2/1/20"}, tail.Keys())
	assert.Equal(t, 7, tail.Value("1/10/20"))

	assert.Equal(t, ts.Keys(), ts.Tail(0).Keys())
	assert.Equal(t, ts.Keys(), ts.Tail(-1).Keys())
	assert.Equal(t, ts.Keys(), ts.Tail(10).Keys())

	// the original series is untouched
	assert.Equal(t, 3, ts.Len())
}

func TestTimeSeriesMarshalJSONOrder(t *testing.T) {
	ts := chronologicalFixture()

	data, err := json.Marshal(ts)
	assert.NoError(t, err)
	assert.Equal(t, `{"1/2/20":5,"1/10/20":7,"2/1/20":11}`, string(data))

	// non-addressable value: method set must include MarshalJSON
	data, err = json.Marshal(chronologicalFixture())
	assert.NoError(t, err)
	assert.Equal(t, `{"1/2/20":5,"1/10/20":7,"2/1/20":11}`, string(data))
}

func TestTimeSeriesMarshalJSONEmpty(t *testing.T) {
	var ts TimeSeries
	data, err := json.Marshal(ts)
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestTimeSeriesJSONRoundTrip(t *testing.T) {
	ts := chronologicalFixture()

	data, err := json.Marshal(ts)
	assert.NoError(t, err)

	var decoded TimeSeries
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ts.Keys(), decoded.Keys())
	assert.Equal(t, ts.Value("1/10/20"), decoded.Value("1/10/20"))

	again, err := json.Marshal(decoded)
	assert.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestTimeSeriesUnmarshalJSONRejectsNonObject(t *testing.T) {
	var ts TimeSeries
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &ts))
}

func TestTimeSeriesMsgPackRoundTrip(t *testing.T) {
	ts := chronologicalFixture()

	data, err := msgpack.Marshal(ts)
	assert.NoError(t, err)

	var decoded TimeSeries
	assert.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.Equal(t, ts.Keys(), decoded.Keys())
	assert.Equal(t, 11, decoded.Value("2/1/20"))
}

func TestTimeSeriesYAMLRoundTrip(t *testing.T) {
	ts := chronologicalFixture()

	data, err := yaml.Marshal(ts)
	assert.NoError(t, err)

	var decoded TimeSeries
	assert.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, ts.Keys(), decoded.Keys())
	assert.Equal(t, 5, decoded.Value("1/2/20"))
}
