package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sessionlab/therapynotes/internal/config"
	"github.com/sessionlab/therapynotes/internal/core"
	"github.com/sessionlab/therapynotes/internal/core/extraction"
	"github.com/sessionlab/therapynotes/internal/core/merge"
	"github.com/sessionlab/therapynotes/internal/core/prompt"
	"github.com/sessionlab/therapynotes/internal/llm"
	"github.com/sessionlab/therapynotes/internal/store"
)

type Server struct {
	Processor *core.Processor
	Store     store.RecordStore
	log       zerolog.Logger
}

// New wires the pipeline from config: LLM client via the provider
// factory, SQLite record store, extractor, merge engine.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	st, err := store.OpenSQLite(cfg.Storage.Path, log)
	if err != nil {
		return nil, err
	}

	diag := extraction.NewDiagnostics(cfg.Extraction.DiagnosticsDir, log)
	ex := extraction.New(llmClient, diag, extraction.OptionsFromConfig(cfg.Extraction), log)
	merger := merge.New(diag, log)
	templates := prompt.DefaultSet().WithOverrides(cfg.Prompts)
	processor := core.NewProcessor(ex, merger, st, templates, log)

	return &Server{
		Processor: processor,
		Store:     st,
		log:       log,
	}, nil
}

func (s *Server) Close() error {
	if s.Store != nil {
		return s.Store.Close()
	}
	return nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/sessions", s.ProcessSession)
	r.GET("/sessions/:id", s.GetSession)
	r.GET("/sessions/:id/participants", s.GetParticipants)
	r.GET("/sessions/:id/dynamics", s.GetDynamics)

	return r
}

type ProcessRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

func (s *Server) ProcessSession(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := s.Processor.Process(c.Request.Context(), req.Transcript)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) GetSession(c *gin.Context) {
	row, err := s.Store.GetSession(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	c.JSON(http.StatusOK, row)
}

func (s *Server) GetParticipants(c *gin.Context) {
	participants, err := s.Store.ListParticipants(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load participants")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load participants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

func (s *Server) GetDynamics(c *gin.Context) {
	dynamics, err := s.Store.ListDynamics(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load group dynamics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load group dynamics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dynamics": dynamics})
}
