package http

import (
	"errors"
	"net/http"

	"fpdemo/internal/domain"
	"fpdemo/internal/infra/settings"
	"fpdemo/internal/presentation"
	"fpdemo/internal/usecase"

	"github.com/gin-gonic/gin"
)

type attemptResponse struct {
	State  string                   `json:"state"`
	Fields map[string]string        `json:"fields,omitempty"`
	Raw    string                   `json:"raw,omitempty"`
	Error  *domain.PresentableError `json:"error,omitempty"`
	Nudge  bool                     `json:"showSignUpNudge"`
}

type apiKeysRequest struct {
	PublicKey string        `json:"publicKey" binding:"required"`
	SecretKey string        `json:"secretKey" binding:"required"`
	Region    domain.Region `json:"region"`
	Enabled   bool          `json:"enabled"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Code: code, Message: message})
}

func (s *Server) handleFingerprint(c *gin.Context) {
	outcome, err := s.fingerprint.Execute(c.Request.Context())
	if errors.Is(err, domain.ErrAttemptInFlight) {
		writeErrorCode(c, http.StatusConflict, "ATTEMPT_IN_FLIGHT", "a fingerprint attempt is already executing")
		return
	}
	if err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	c.JSON(http.StatusOK, s.buildAttemptResponse(outcome))
}

func (s *Server) handleEvent(c *gin.Context) {
	outcome := s.fingerprint.LastOutcome()
	if outcome.State != usecase.StateCompleted && outcome.State != usecase.StateFailed {
		writeErrorCode(c, http.StatusNotFound, "NO_EVENT", "no fingerprint attempt has finished yet")
		return
	}
	c.JSON(http.StatusOK, s.buildAttemptResponse(outcome))
}

func (s *Server) buildAttemptResponse(outcome usecase.AttemptOutcome) attemptResponse {
	resp := attemptResponse{
		State: string(outcome.State),
		Error: outcome.Error,
		Nudge: s.fingerprint.ShowSignUpNudge(),
	}
	if outcome.Event != nil {
		view := presentation.NewEventView(*outcome.Event, s.cfg.LocationPermission)
		fields := make(map[string]string)
		for key, value := range view.Fields() {
			fields[string(key)] = value
		}
		resp.Fields = fields
		if raw, err := view.RawJSON(); err == nil {
			resp.Raw = raw
		}
	}
	return resp
}

func (s *Server) handleNudge(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"visible": s.fingerprint.ShowSignUpNudge()})
}

func (s *Server) handleHideNudge(c *gin.Context) {
	if err := s.fingerprint.HideSignUpNudge(c.Request.Context()); err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"visible": false})
}

func (s *Server) handleGetAPIKeys(c *gin.Context) {
	ctx := c.Request.Context()
	enabled, err := s.settings.APIKeysEnabled(ctx)
	if err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	cfg, err := s.settings.APIKeysConfig(ctx)
	if errors.Is(err, settings.ErrValueNotFound) {
		c.JSON(http.StatusOK, gin.H{"configured": false, "enabled": enabled})
		return
	}
	if err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	// The secret key never leaves the secure store.
	c.JSON(http.StatusOK, gin.H{
		"configured": true,
		"enabled":    enabled,
		"publicKey":  cfg.PublicKey,
		"region":     cfg.Region,
	})
}

func (s *Server) handlePutAPIKeys(c *gin.Context) {
	var req apiKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	if req.Region.Kind == "" {
		req.Region = domain.GlobalRegion()
	}
	ctx := c.Request.Context()
	cfg := domain.ApiKeysConfig{
		PublicKey: req.PublicKey,
		SecretKey: req.SecretKey,
		Region:    req.Region,
	}
	if err := s.settings.SetAPIKeysConfig(ctx, cfg); err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	if err := s.settings.SetAPIKeysEnabled(ctx, req.Enabled); err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": true, "enabled": req.Enabled})
}

func (s *Server) handleDeleteAPIKeys(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.settings.RemoveAPIKeysConfig(ctx); err != nil && !errors.Is(err, settings.ErrValueNotFound) {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	if err := s.settings.SetAPIKeysEnabled(ctx, false); err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": false, "enabled": false})
}
