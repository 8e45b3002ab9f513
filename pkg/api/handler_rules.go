package api

import (
	"net/http"

	"github.com/callsight/callsight/pkg/audit"
	"github.com/gin-gonic/gin"
)

// CreateRuleRequest is the body for POST /api/v1/rules.
type CreateRuleRequest struct {
	Name       string                 `json:"name" binding:"required"`
	Category   string                 `json:"category"`
	Severity   string                 `json:"severity" binding:"required"`
	IsActive   *bool                  `json:"isActive"`
	Definition map[string]interface{} `json:"definition" binding:"required"`
}

// CreateRule handles POST /api/v1/rules. A duplicate name is 409; a
// malformed definition is 400.
func (s *Server) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := s.rules.CreateRule(c.Request.Context(), audit.CreateRuleParams{
		Name:       req.Name,
		Category:   req.Category,
		Severity:   req.Severity,
		IsActive:   req.IsActive,
		Definition: req.Definition,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// ListRules handles GET /api/v1/rules.
func (s *Server) ListRules(c *gin.Context) {
	rules, err := s.rules.ListRules(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GetRule handles GET /api/v1/rules/:ruleId.
func (s *Server) GetRule(c *gin.Context) {
	rule, err := s.rules.GetRule(c.Request.Context(), c.Param("ruleId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// UpdateRuleRequest is the body for PATCH /api/v1/rules/:ruleId; absent
// fields stay unchanged.
type UpdateRuleRequest struct {
	Category   *string                `json:"category"`
	Severity   *string                `json:"severity"`
	IsActive   *bool                  `json:"isActive"`
	Definition map[string]interface{} `json:"definition"`
}

// UpdateRule handles PATCH /api/v1/rules/:ruleId.
func (s *Server) UpdateRule(c *gin.Context) {
	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := s.rules.UpdateRule(c.Request.Context(), c.Param("ruleId"), audit.UpdateRuleParams{
		Category:   req.Category,
		Severity:   req.Severity,
		IsActive:   req.IsActive,
		Definition: req.Definition,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /api/v1/rules/:ruleId.
func (s *Server) DeleteRule(c *gin.Context) {
	if err := s.rules.DeleteRule(c.Request.Context(), c.Param("ruleId")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
