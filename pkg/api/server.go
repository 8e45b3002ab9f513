// Package api is the HTTP façade: call ingestion, read access to the
// projections, compliance rule management, and notification operations.
// All pipeline processing happens on the broker; the API only feeds it and
// reads what it produced.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/callsight/callsight/pkg/analytics"
	"github.com/callsight/callsight/pkg/audit"
	"github.com/callsight/callsight/pkg/database"
	"github.com/callsight/callsight/pkg/ingest"
	"github.com/callsight/callsight/pkg/notify"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the service handles the HTTP handlers delegate to.
type Server struct {
	db            *database.Client
	ingest        *ingest.Service
	calls         *projector.CallService
	dossiers      *projector.DossierService
	rules         *audit.RuleService
	notifications *notify.NotificationService
	dispatcher    *notify.Dispatcher
	performance   *analytics.PerformanceService
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	ingestSvc *ingest.Service,
	calls *projector.CallService,
	dossiers *projector.DossierService,
	rules *audit.RuleService,
	notifications *notify.NotificationService,
	dispatcher *notify.Dispatcher,
	performance *analytics.PerformanceService,
) *Server {
	return &Server{
		db:            db,
		ingest:        ingestSvc,
		calls:         calls,
		dossiers:      dossiers,
		rules:         rules,
		notifications: notifications,
		dispatcher:    dispatcher,
		performance:   performance,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/calls", s.IngestCall)
		v1.GET("/calls", s.ListCalls)
		v1.GET("/calls/:callId/dossier", s.GetDossier)

		v1.POST("/rules", s.CreateRule)
		v1.GET("/rules", s.ListRules)
		v1.GET("/rules/:ruleId", s.GetRule)
		v1.PATCH("/rules/:ruleId", s.UpdateRule)
		v1.DELETE("/rules/:ruleId", s.DeleteRule)

		v1.GET("/notifications", s.ListNotifications)
		v1.POST("/notifications/:notificationId/resend", s.ResendNotification)

		v1.GET("/agents/:agentId/performance", s.GetAgentPerformance)
	}
	return r
}

// Health reports process and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// abortWithServiceError maps service-layer errors to HTTP responses.
func abortWithServiceError(c *gin.Context, err error) {
	if projector.IsValidationError(err) || audit.IsRuleDefinitionError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, projector.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, projector.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}

	slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
