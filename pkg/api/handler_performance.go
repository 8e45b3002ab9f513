package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetAgentPerformance handles GET /api/v1/agents/:agentId/performance.
// from and to are RFC 3339 timestamps; to defaults to now and from to 24
// hours before to.
func (s *Server) GetAgentPerformance(c *gin.Context) {
	to := time.Now().UTC()
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC 3339"})
			return
		}
		to = parsed
	}
	from := to.Add(-24 * time.Hour)
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC 3339"})
			return
		}
		from = parsed
	}

	slots, err := s.performance.ListSlots(c.Request.Context(), c.Param("agentId"), from, to)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"agentId": c.Param("agentId"),
		"from":    from,
		"to":      to,
		"slots":   slots,
	})
}
