// Package server exposes the design pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/piwi3910/BoxCut/internal/engine"
	"github.com/piwi3910/BoxCut/internal/importer"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/piwi3910/BoxCut/internal/store"
)

// DesignRequest is the body of POST /api/designs. Parameter fields sit at
// the top level; a prompt is parsed first and explicit fields override it.
type DesignRequest struct {
	model.RawParams
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	Strict *bool  `json:"strict"`
	Save   bool   `json:"save"`
}

// DesignResponse wraps a generated design and its history ID when saved.
type DesignResponse struct {
	ID     string             `json:"id,omitempty"`
	Design model.DesignRecord `json:"design"`
}

// ScenarioResponse is one row of a comparison.
type ScenarioResponse struct {
	Name   string              `json:"name"`
	Design *model.DesignRecord `json:"design,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// Server holds the handlers' dependencies. History may be nil, which
// disables the history routes.
type Server struct {
	Generator *engine.Generator
	Catalog   model.Catalog
	History   *store.Store
	Logger    *slog.Logger
}

func New(gen *engine.Generator, catalog model.Catalog, history *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = NewLogger(nil, slog.LevelInfo)
	}
	return &Server{Generator: gen, Catalog: catalog, History: history, Logger: logger}
}

// Handler builds the gin router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.Logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/catalog", s.getCatalog)
		api.POST("/designs", s.createDesign)
		api.POST("/designs/compare", s.compareDesign)
		api.GET("/designs", s.listDesigns)
		api.GET("/designs/:id", s.getDesign)
	}
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("server_start", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Logger.Info("server_stop", "addr", addr)
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sheets":         s.Catalog.Sheets,
		"materials":      s.Catalog.Materials,
		"material_keys":  s.Catalog.MaterialKeys(),
		"fallback_price": s.Catalog.FallbackPrice,
		"waste_margin":   s.Catalog.WasteMargin,
		"styles":         engine.SupportedStyles(),
	})
}

// resolveParams merges the prompt (if any) under the explicit fields.
func resolveParams(req DesignRequest, catalog model.Catalog) (model.RawParams, error) {
	if req.Prompt == "" {
		return req.RawParams, nil
	}
	parsed, err := importer.ParsePrompt(req.Prompt, catalog)
	if err != nil {
		return model.RawParams{}, err
	}
	return req.RawParams.Merge(parsed), nil
}

func (s *Server) generatorFor(req DesignRequest) *engine.Generator {
	if req.Strict == nil {
		return s.Generator
	}
	return s.Generator.WithOptions(engine.EstimatorOptions{StrictFit: *req.Strict})
}

func (s *Server) createDesign(c *gin.Context) {
	var req DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := resolveParams(req, s.Catalog)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.generatorFor(req).Generate(raw)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	resp := DesignResponse{Design: record}
	status := http.StatusOK
	if req.Save {
		if s.History == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "design history is disabled"})
			return
		}
		entry, err := s.History.Save(c.Request.Context(), req.Name, record)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		resp.ID = entry.ID
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

func (s *Server) compareDesign(c *gin.Context) {
	var req DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := resolveParams(req, s.Catalog)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen := s.generatorFor(req)
	current, err := gen.Generate(raw)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	scenarios := engine.BuildDefaultScenarios(s.Catalog, current.Params, gen.Estimator.Options)
	results := engine.CompareScenarios(gen, current.Params.Raw(), scenarios)

	out := make([]ScenarioResponse, len(results))
	for i, r := range results {
		out[i] = ScenarioResponse{Name: r.Scenario.Name}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			continue
		}
		record := r.Record
		out[i].Design = &record
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}

func (s *Server) listDesigns(c *gin.Context) {
	if s.History == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "design history is disabled"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid limit %q", v)})
			return
		}
		limit = n
	}

	list, err := s.History.List(c.Request.Context(), limit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"designs": list})
}

func (s *Server) getDesign(c *gin.Context) {
	if s.History == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "design history is disabled"})
		return
	}

	entry, err := s.History.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// abortWithError maps pipeline and store errors to HTTP statuses. Only
// unexpected failures are 500s.
func (s *Server) abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	switch {
	case engine.IsInputError(err), errors.Is(err, store.ErrAmbiguous):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
