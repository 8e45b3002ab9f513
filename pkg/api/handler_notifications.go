package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListNotifications handles GET /api/v1/notifications with optional
// callId, status, and limit query parameters.
func (s *Server) ListNotifications(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	rows, err := s.notifications.List(c.Request.Context(), c.Query("callId"), c.Query("status"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": rows})
}

// ResendNotification handles POST /api/v1/notifications/:notificationId/resend.
// Pending rows and invalid-recipient rows are rejected with 400.
func (s *Server) ResendNotification(c *gin.Context) {
	row, err := s.dispatcher.ResendNotification(c.Request.Context(), c.Param("notificationId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
