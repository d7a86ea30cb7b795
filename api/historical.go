package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eliasgr/API/schema"
	"github.com/eliasgr/API/series"
	"github.com/eliasgr/API/store"
)

// lastDays reads the optional lastdays query: a positive number of
// trailing dates to keep, or "all" for the whole timeline. Zero means
// no windowing.
func lastDays(c *gin.Context) int {
	raw := c.Query("lastdays")
	if "" == raw || "all" == raw {
		return 0
	}

	days, err := strconv.Atoi(raw)
	if nil != err || days < 0 {
		return 0
	}
	return days
}

// loadHistorical reads the built collection out of the cache. It
// responds for the caller on failure.
func (s *Server) loadHistorical(c *gin.Context) ([]schema.HistoricalLocation, bool) {
	collection, err := s.mongoStore.GetHistorical()
	if nil != err {
		if err == store.ErrCacheMiss {
			abortWithEncoding(c, http.StatusServiceUnavailable, errorHistoricalNotReady)
			return nil, false
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return nil, false
	}
	return collection, true
}

// listHistorical returns every location with its full identity block.
func (s *Server) listHistorical(c *gin.Context) {
	collection, ok := s.loadHistorical(c)
	if !ok {
		return
	}

	if days := lastDays(c); days > 0 {
		for i := range collection {
			collection[i].Timeline = collection[i].Timeline.Tail(days)
		}
	}

	c.JSON(http.StatusOK, collection)
}

// queryHistorical answers country-level lookups. The reserved word
// "all" returns the global aggregate instead.
func (s *Server) queryHistorical(c *gin.Context) {
	if "all" == c.Param("query") {
		s.globalHistorical(c)
		return
	}
	s.findHistorical(c, c.Param("query"))
}

func (s *Server) queryProvinceHistorical(c *gin.Context) {
	s.findHistorical(c, c.Param("query"), c.Param("province"))
}

// findHistorical runs the identity lookup. A numeric query is an ISO
// 3166-1 numeric id, anything else is country text.
func (s *Server) findHistorical(c *gin.Context, queryText string, province ...string) {
	collection, ok := s.loadHistorical(c)
	if !ok {
		return
	}

	query := series.ByName(queryText, province...)
	if id, err := strconv.Atoi(queryText); nil == err {
		query = series.ByID(id, province...)
	}

	found, err := series.Find(collection, query)
	if nil != err {
		abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		return
	}

	if days := lastDays(c); days > 0 {
		found.Timeline = found.Timeline.Tail(days)
	}

	c.JSON(http.StatusOK, found)
}

// globalHistorical returns cases and deaths summed over every location,
// date by date.
func (s *Server) globalHistorical(c *gin.Context) {
	collection, ok := s.loadHistorical(c)
	if !ok {
		return
	}

	aggregate := series.Aggregate(collection)
	if days := lastDays(c); days > 0 {
		aggregate = aggregate.Tail(days)
	}

	c.JSON(http.StatusOK, aggregate)
}
