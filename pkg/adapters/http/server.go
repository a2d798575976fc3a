package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/strcalc"
	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxBodyBytes bounds the size of a POST /api/add body.
const MaxBodyBytes = 1 << 20

// Calculator defines the interface for the calculation core.
type Calculator interface {
	Calculate(ctx context.Context, raw string) domain.Result
}

// Server holds the handlers of the REST API.
type Server struct {
	Calculator Calculator
	Logger     *slog.Logger
}

type options struct {
	logger    *slog.Logger
	metrics   http.Handler
	timeout   time.Duration
	rateRPS   float64
	rateBurst int
}

// Option configures NewHandler.
type Option func(*options)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics mounts h (typically promhttp) at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(o *options) {
		o.metrics = h
	}
}

// WithTimeout bounds every request with a context deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRateLimit enables a per-client token bucket.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rateRPS = rps
		o.rateBurst = burst
	}
}

// NewHandler creates a new HTTP handler for the calculator.
func NewHandler(calc Calculator, opts ...Option) http.Handler {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	server := &Server{Calculator: calc, Logger: o.logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(o.logger))
	r.Use(middleware.Recoverer)
	if o.timeout > 0 {
		r.Use(middleware.Timeout(o.timeout))
	}

	r.Get("/", server.GetRoot)
	r.Get("/info", server.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec())
	})
	if o.metrics != nil {
		r.Method(http.MethodGet, "/metrics", o.metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", server.GetHealth)
		r.Group(func(r chi.Router) {
			if o.rateRPS > 0 && o.rateBurst > 0 {
				r.Use(newRateLimiter(o.rateRPS, o.rateBurst).middleware)
			}
			r.Post("/add", server.Add)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Add handles the POST /api/add request.
func (s *Server) Add(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r.Header.Get("Content-Type")) {
		s.reject(w, "Content-Type must be application/json")
		return
	}

	var body AddRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.Logger.Warn("Add: Body too large", "limit", tooLarge.Limit)
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large", Kind: kindRequest})
			return
		}
		s.Logger.Warn("Add: Invalid request body", "error", err)
		s.reject(w, "Invalid JSON body")
		return
	}
	if body.Numbers == nil {
		s.reject(w, "Missing required field: numbers")
		return
	}

	res := s.Calculator.Calculate(r.Context(), *body.Numbers)
	switch {
	case res.Success:
		writeJSON(w, http.StatusOK, res)
	case res.Kind == domain.KindInternal:
		s.Logger.Error("Add failed", "error", res.Error)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Kind: domain.KindInternal})
	default:
		s.Logger.Warn("Add: Input rejected", "kind", res.Kind, "error", res.Error, "size", len(res.Input))
		writeJSON(w, http.StatusBadRequest, res)
	}
}

// GetHealth handles the GET /api/health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "String Calculator API",
		Version: strings.TrimSpace(strcalc.Version),
	})
}

// GetRoot handles the GET / request.
func (s *Server) GetRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "String Calculator API",
		Version: strings.TrimSpace(strcalc.Version),
		Endpoints: map[string]string{
			"POST /api/add":     "Add numbers with various delimiters",
			"GET /api/health":   "Health check",
			"GET /info":         "Build information",
			"GET /openapi.yaml": "OpenAPI description",
			"GET /":             "This information",
		},
		Examples: map[string]string{
			"basic":               `POST {"numbers": "1,2,3"} -> {"result": 6}`,
			"custom_delimiter":    `POST {"numbers": "//;\n1;2;3"} -> {"result": 6}`,
			"multi_char":          `POST {"numbers": "//[***]\n1***2***3"} -> {"result": 6}`,
			"multiple_delimiters": `POST {"numbers": "//[*][%]\n1*2%3"} -> {"result": 6}`,
		},
	})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	} else if err != nil {
		s.Logger.Error("Failed to load OpenAPI spec", "error", err)
	}

	writeJSON(w, http.StatusOK, InfoResponse{
		App:        "strcalc-http",
		Version:    strings.TrimSpace(strcalc.Version),
		APIVersion: apiVersion,
	})
}

func (s *Server) reject(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: msg, Kind: kindRequest})
}

// -- Helpers --

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
