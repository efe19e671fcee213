package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/tools"
)

const (
	maxCallBody     = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Router returns the HTTP handler: the streamable MCP endpoint at /mcp, a
// health check and a JSON API over the same dispatcher.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	r.Handle("/mcp", mcpHandler)
	r.Handle("/mcp/*", mcpHandler)

	r.Route("/api/tools", func(r chi.Router) {
		r.Get("/", s.handleListTools)
		r.Post("/{name}", s.handleCallTool)
	})

	return r
}

// RunHTTP serves Router on port until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("jobboss2-mcp server running", "addr", srv.Addr, "tools", s.dispatcher.Registry().Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.logger.Info("jobboss2-mcp server stopped")
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{
		"status": "ok",
		"tools":  s.dispatcher.Registry().Len(),
	}
	if s.tokens != nil {
		body["token"] = s.tokens.Status().String()
	}
	writeJSON(w, http.StatusOK, body)
}

// handleListTools lists the catalog. ?q= searches and ?category= filters.
func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var list []tools.Info
	if query == "" && category == "" {
		list = s.dispatcher.Registry().List()
	} else {
		list = s.dispatcher.Registry().Search(query, category)
	}
	if list == nil {
		list = []tools.Info{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": list, "total": len(list)})
}

// handleCallTool runs one tool with the request body as its arguments. An
// empty body means no arguments.
func (s *Server) handleCallTool(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCallBody))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	res := s.dispatcher.CallTool(r.Context(), chi.URLParam(r, "name"), body)
	writeJSON(w, callStatus(res), res)
}

// callStatus maps a result to an HTTP status. Upstream and transport
// failures are still 200: the call completed and the result says why it
// failed.
func callStatus(res *tools.Result) int {
	var notFound *tools.ToolNotFoundError
	switch {
	case !res.IsError:
		return http.StatusOK
	case errors.As(res.Err, &notFound):
		return http.StatusNotFound
	case res.IsInvalidArguments():
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
