package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/callsight/callsight/pkg/ingest"
	"github.com/gin-gonic/gin"
)

// IngestCall handles POST /api/v1/calls. The request is multipart form
// data: an "audio" file part plus the call metadata fields. The response
// is sent only after the CallReceived event is durably on the broker.
func (s *Server) IngestCall(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file part is required"})
		return
	}
	defer file.Close()

	startTime := time.Now().UTC()
	if v := c.PostForm("startTime"); v != "" {
		startTime, err = time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startTime must be RFC 3339"})
			return
		}
	}

	var duration *float64
	if v := c.PostForm("duration"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a non-negative number of seconds"})
			return
		}
		duration = &d
	}

	result, err := s.ingest.IngestCall(c.Request.Context(), ingest.IngestParams{
		CallID:        c.PostForm("callId"),
		CallerID:      c.PostForm("callerId"),
		AgentID:       c.PostForm("agentId"),
		Channel:       c.PostForm("channel"),
		FileFormat:    c.PostForm("fileFormat"),
		FileSizeBytes: header.Size,
		Duration:      duration,
		StartTime:     startTime,
		Audio:         file,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"call":    result.Call,
		"eventId": result.EventID,
	})
}

// ListCalls handles GET /api/v1/calls with optional agentId and limit
// query parameters.
func (s *Server) ListCalls(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	calls, err := s.calls.ListCalls(c.Request.Context(), c.Query("agentId"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calls": calls})
}

// GetDossier handles GET /api/v1/calls/:callId/dossier. The dossier is as
// complete as the pipeline has gotten: sections the stages have not
// produced yet are simply absent.
func (s *Server) GetDossier(c *gin.Context) {
	dossier, err := s.dossiers.GetDossier(c.Request.Context(), c.Param("callId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dossier)
}
