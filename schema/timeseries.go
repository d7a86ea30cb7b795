package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
	"gopkg.in/yaml.v2"
)

// TimeSeries maps date labels (M/D/YY, e.g. "1/22/20") to cumulative counts.
// JHU publishes dates as CSV columns in chronological order. A plain map
// scrambles that order once marshaled, so keys are tracked separately and
// every codec below writes them back in insertion order.
type TimeSeries struct {
	keys   []string
	values map[string]int
}

// Set records count for a date. A new date is appended after all
// previously recorded dates.
func (ts *TimeSeries) Set(date string, count int) {
	if ts.values == nil {
		ts.values = make(map[string]int)
	}
	if _, ok := ts.values[date]; !ok {
		ts.keys = append(ts.keys, date)
	}
	ts.values[date] = count
}

// Add accumulates count into a date.
func (ts *TimeSeries) Add(date string, count int) {
	ts.Set(date, ts.values[date]+count)
}

// Get returns the count of a date and whether the date is recorded.
func (ts TimeSeries) Get(date string) (int, bool) {
	count, ok := ts.values[date]
	return count, ok
}

// Value returns the count of a date, zero when the date is not recorded.
func (ts TimeSeries) Value(date string) int {
	return ts.values[date]
}

// Keys returns the recorded dates in insertion order.
func (ts TimeSeries) Keys() []string {
	return ts.keys
}

func (ts TimeSeries) Len() int {
	return len(ts.keys)
}

// Tail returns a copy holding only the last n dates. It returns a full
// copy when n is zero, negative or larger than the series.
func (ts TimeSeries) Tail(n int) TimeSeries {
	keys := ts.keys
	if n > 0 && n < len(keys) {
		keys = keys[len(keys)-n:]
	}

	var tail TimeSeries
	for _, date := range keys {
		tail.Set(date, ts.values[date])
	}
	return tail
}

// MarshalJSON writes the series as a JSON object with keys in insertion
// order. The receiver must stay a value receiver so the codec also
// applies to non-addressable values.
func (ts TimeSeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, date := range ts.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(date)
		if nil != err {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(ts.values[date]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (ts *TimeSeries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if nil != err {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("time series is not a JSON object")
	}

	ts.keys = nil
	ts.values = make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if nil != err {
			return err
		}
		date, ok := tok.(string)
		if !ok {
			return fmt.Errorf("time series key is not a string")
		}

		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		ts.Set(date, count)
	}

	_, err = dec.Token()
	return err
}

// EncodeMsgpack keeps date ordering across the msgpack data converter
// used by cadence workers.
func (ts TimeSeries) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(ts.keys)); err != nil {
		return err
	}
	for _, date := range ts.keys {
		if err := enc.EncodeString(date); err != nil {
			return err
		}
		if err := enc.EncodeInt(int64(ts.values[date])); err != nil {
			return err
		}
	}
	return nil
}

func (ts *TimeSeries) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if nil != err {
		return err
	}

	ts.keys = nil
	ts.values = make(map[string]int, n)

	for i := 0; i < n; i++ {
		date, err := dec.DecodeString()
		if nil != err {
			return err
		}
		count, err := dec.DecodeInt()
		if nil != err {
			return err
		}
		ts.Set(date, count)
	}
	return nil
}

func (ts TimeSeries) MarshalYAML() (interface{}, error) {
	items := make(yaml.MapSlice, 0, len(ts.keys))
	for _, date := range ts.keys {
		items = append(items, yaml.MapItem{Key: date, Value: ts.values[date]})
	}
	return items, nil
}

func (ts *TimeSeries) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var items yaml.MapSlice
	if err := unmarshal(&items); err != nil {
		return err
	}

	ts.keys = nil
	ts.values = make(map[string]int, len(items))

	for _, item := range items {
		date, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("time series key is not a string")
		}
		count, ok := item.Value.(int)
		if !ok {
			return fmt.Errorf("time series count of %s is not an integer", date)
		}
		ts.Set(date, count)
	}
	return nil
}
