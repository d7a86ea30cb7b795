package jhu

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "jhu"

	// DefaultBaseURL is the raw CSSE time series directory on github.
	DefaultBaseURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series"

	casesFile     = "time_series_covid19_confirmed_global.csv"
	deathsFile    = "time_series_covid19_deaths_global.csv"
	recoveredFile = "time_series_covid19_recovered_global.csv"
)

// RawTable is one parsed CSV table, header row included. Cells 0-3 of a
// row are province, country, lat, long; cells 4 onward are date columns.
type RawTable [][]string

// TimeSeriesTables bundles the three parallel tables of one fetch. The
// tables share the date header; the recovered table may miss rows.
type TimeSeriesTables struct {
	Cases     RawTable
	Deaths    RawTable
	Recovered RawTable
}

// TimeSeriesSource - interface to fetch the JHU global time series tables
type TimeSeriesSource interface {
	FetchTimeSeries() (*TimeSeriesTables, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient - new JHU CSSE crawler client
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchTimeSeries downloads and parses the three tables. Any failed
// download or parse fails the fetch as a whole.
func (c *Client) FetchTimeSeries() (*TimeSeriesTables, error) {
	cases, err := c.fetchTable(casesFile)
	if nil != err {
		return nil, err
	}

	deaths, err := c.fetchTable(deathsFile)
	if nil != err {
		return nil, err
	}

	recovered, err := c.fetchTable(recoveredFile)
	if nil != err {
		return nil, err
	}

	return &TimeSeriesTables{
		Cases:     cases,
		Deaths:    deaths,
		Recovered: recovered,
	}, nil
}

func (c *Client) fetchTable(file string) (RawTable, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, file)

	resp, err := c.httpClient.Get(url)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("get time series csv")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected response status %d for %s", resp.StatusCode, file)
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.StatusCode}).Error("get time series csv")
		return nil, err
	}

	reader := csv.NewReader(resp.Body)
	// metric row lengths vary when JHU appends columns mid-day
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("parse time series csv")
		return nil, err
	}

	return RawTable(rows), nil
}
