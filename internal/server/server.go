// Package server provides the HTTP REST API for the career compass engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkaplan/careercompass/internal/catalog"
	"github.com/mkaplan/careercompass/internal/db"
	"github.com/mkaplan/careercompass/internal/enrichment"
	"github.com/mkaplan/careercompass/internal/scoring"
	"github.com/mkaplan/careercompass/internal/server/ratelimit"
	"github.com/mkaplan/careercompass/internal/skills"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	snapshot    *catalog.Snapshot
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	narrator    *enrichment.Narrator
	normalizer  *skills.Normalizer
	weights     scoring.Weights
	topN        int
	bucketSize  int
}

// Config holds server configuration
type Config struct {
	Port       int
	Careers    string // path to the career catalog JSON
	Cohort     string // path to the cohort statistics JSON, optional
	TopN       int
	BucketSize int
	Weights    scoring.Weights
	Synonyms   map[string]string

	// DatabaseURL enables catalog loading and plan persistence through
	// PostgreSQL. When empty the catalog is read from files and the
	// /plans endpoints return 503.
	DatabaseURL string

	// APIKey enables narrative enrichment via Gemini. Optional.
	APIKey string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	s := &Server{
		normalizer: skills.NewNormalizer(cfg.Synonyms),
		weights:    cfg.Weights.Normalized(),
		topN:       cfg.TopN,
		bucketSize: cfg.BucketSize,
	}

	// Load the catalog from the database when configured, files otherwise
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database

		snapshot, err := database.LoadSnapshot(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from database: %w", err)
		}
		s.snapshot = snapshot
	} else {
		snapshot, err := catalog.LoadSnapshot(cfg.Careers, cfg.Cohort)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		s.snapshot = snapshot
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Narrative enrichment is optional and failure-tolerant
	if cfg.APIKey != "" {
		client, err := enrichment.NewClient(context.Background(), enrichment.DefaultConfig(), cfg.APIKey)
		if err != nil {
			log.Printf("Narrative enrichment disabled: %v", err)
		} else {
			s.narrator = enrichment.NewNarrator(client)
		}
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /placement", s.handlePlacement)
	mux.HandleFunc("POST /roadmap", s.handleRoadmap)
	mux.HandleFunc("POST /analysis", s.handleAnalysis)
	mux.HandleFunc("GET /careers", s.handleListCareers)
	mux.HandleFunc("GET /careers/{id}", s.handleGetCareer)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Saved plan endpoints (require a database)
	mux.HandleFunc("POST /plans", s.handleCreatePlan)
	mux.HandleFunc("GET /plans", s.handleListPlans)
	mux.HandleFunc("GET /plans/{id}", s.handleGetPlan)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"careers": len(s.snapshot.Careers),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; the server runs without a trusted
// proxy, so X-Forwarded-For is not consulted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
