package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// refreshHistorical is an internal only api to trigger a full rebuild
// of the cached historical collection
func (s *Server) refreshHistorical(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "rebuild_historical",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
