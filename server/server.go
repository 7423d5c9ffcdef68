/*
Package server exposes a trained classifier over HTTP.

Routes:
  - GET /healthz reports whether a tree is loaded
  - GET /tree returns the tree rendered as text
  - GET /tree.dot returns the tree as a graphviz DOT digraph
  - POST /classify classifies the rows in the JSON body
*/
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree/dot"
	"go.uber.org/zap"
)

// Server serves classifications of a Classifier
type Server struct {
	classifier *id3.Classifier
	logger     *zap.Logger
	apiKey     string
	engine     *gin.Engine
}

/*
New takes a classifier, a logger (nil disables logging) and an API key and
returns a Server. If the API key is not empty, POST /classify requests must
carry it in the X-API-Key header.
*/
func New(c *id3.Classifier, logger *zap.Logger, apiKey string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{classifier: c, logger: logger, apiKey: apiKey}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.logRequests)
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/tree", s.renderTree)
	s.engine.GET("/tree.dot", s.renderDOT)
	api := s.engine.Group("/")
	api.Use(s.checkAPIKey)
	api.POST("/classify", s.classify)
	return s
}

// Handler returns the http.Handler serving the routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

/*
Run listens on the given address and serves requests until the context is
done, then shuts the server down waiting up to shutdownTimeout for requests
in flight.
*/
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}
	errs := make(chan error, 1)
	go func() {
		s.logger.Info("serving classifications", zap.String("addr", addr))
		errs <- srv.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(sctx)
	if err != nil {
		return err
	}
	err = <-errs
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Info("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
	)
}

func (s *Server) checkAPIKey(c *gin.Context) {
	if s.apiKey == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-Key") != s.apiKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

func (s *Server) health(c *gin.Context) {
	_, err := s.classifier.Tree()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "trained": err == nil})
}

func (s *Server) renderTree(c *gin.Context) {
	text, err := s.classifier.Render()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

func (s *Server) renderDOT(c *gin.Context) {
	t, err := s.classifier.Tree()
	if err != nil {
		s.fail(c, err)
		return
	}
	out, err := dot.Render(t)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(out))
}

/*
classifyRequest holds rows to classify, either as value lists in feature
column order or as objects mapping feature names to values. Features
missing from an object are classified as unseen values.
*/
type classifyRequest struct {
	Rows    [][]string          `json:"rows"`
	Samples []map[string]string `json:"samples"`
}

type classifyResponse struct {
	Classes []string `json:"classes"`
}

func (s *Server) classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := s.classifier.Tree()
	if err != nil {
		s.fail(c, err)
		return
	}
	table := &dataset.Table{Rows: req.Rows}
	for _, f := range t.Index.Features()[:t.Index.ClassIndex()] {
		table.Header = append(table.Header, f.Name())
	}
	for _, sample := range req.Samples {
		row := make([]string, t.Index.ClassIndex())
		for i := range row {
			row[i] = sample[t.Index.Feature(i).Name()]
		}
		table.Rows = append(table.Rows, row)
	}
	classes, err := s.classifier.Classify(table)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, classifyResponse{Classes: classes})
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, id3.ErrModelNotTrained):
		status = http.StatusServiceUnavailable
	case errors.Is(err, dataset.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
