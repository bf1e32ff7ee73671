package http

import (
	"fpdemo/internal/config"
	"fpdemo/internal/infra/settings"
	"fpdemo/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Server is the demo's HTTP surface, standing in for the mobile UI shell:
// it triggers fingerprint attempts, exposes the rendered event, and manages
// credentials and the sign-up nudge.
type Server struct {
	cfg         config.Config
	r           *gin.Engine
	fingerprint *usecase.DeviceFingerprint
	settings    *settings.Container
}

func NewServer(cfg config.Config, fingerprint *usecase.DeviceFingerprint, container *settings.Container) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:         cfg,
		r:           r,
		fingerprint: fingerprint,
		settings:    container,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.r.Group("/api")
	{
		api.POST("/fingerprint", s.handleFingerprint)
		api.GET("/event", s.handleEvent)

		api.GET("/nudge", s.handleNudge)
		api.POST("/nudge/hide", s.handleHideNudge)

		api.GET("/settings/keys", s.handleGetAPIKeys)
		api.PUT("/settings/keys", s.handlePutAPIKeys)
		api.DELETE("/settings/keys", s.handleDeleteAPIKeys)
	}
}

func (s *Server) Run() error {
	return s.r.Run(s.cfg.HTTPAddr)
}
