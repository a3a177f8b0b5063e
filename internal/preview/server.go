// Package preview serves the practice sandbox document over localhost HTTP.
// The learner's browser is the isolated rendering context: the server holds
// exactly one document, every edit replaces it, and an injected polling
// script reloads the page whenever the version changes.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const placeholderDoc = `<html>
  <head><style>body { font-family: sans-serif; background: #000; color: #71717a; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; text-transform: uppercase; letter-spacing: 2px; }</style></head>
  <body>Waiting for a practice unit</body>
</html>`

// Server hosts the live preview for one practice sandbox at a time.
// Safe for concurrent use: the UI goroutine writes, HTTP handlers read.
type Server struct {
	log *zap.Logger

	mu      sync.RWMutex
	doc     string
	version int64

	srv  *http.Server
	addr string
}

// NewServer creates a preview server with the placeholder document.
func NewServer(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log, doc: placeholderDoc}
}

// SetDocument replaces the served document and bumps the version so
// connected browsers reload. The previous document is discarded.
func (s *Server) SetDocument(doc string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.version++
	s.log.Debug("preview document replaced",
		zap.Int64("version", s.version),
		zap.Int("bytes", len(doc)))
}

// Version returns the current document version.
func (s *Server) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Handler returns the HTTP handler serving the preview routes.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/", s.servePreview)
	r.GET("/version", s.serveVersion)
	return r
}

// logRequests logs each request at debug level. The version poll fires
// twice a second, so anything louder would drown the log.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("preview request",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}

// Start begins listening on 127.0.0.1 at the given port (0 picks a free
// one) and serves in the background until Shutdown. URL is valid once
// Start returns.
func (s *Server) Start(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return fmt.Errorf("preview listen: %w", err)
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.srv = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	srv := s.srv
	s.mu.Unlock()

	s.log.Info("preview server listening", zap.String("url", s.URL()))

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("preview server stopped", zap.Error(err))
		}
	}()
	return nil
}

// URL returns the address to open in a browser, or "" before Start.
func (s *Server) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.addr == "" {
		return ""
	}
	return "http://" + s.addr
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	srv := s.srv
	s.mu.RUnlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// servePreview returns the current document with the reload script
// appended. Sent with no-store so the browser never shows a stale unit.
func (s *Server) servePreview(c *gin.Context) {
	s.mu.RLock()
	doc := s.doc
	version := s.version
	s.mu.RUnlock()

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc+reloadScript(version)))
}

// serveVersion is the polling endpoint for the reload script.
func (s *Server) serveVersion(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"version": s.Version()})
}
