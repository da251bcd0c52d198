package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/service"
)

type Server struct {
	bodyFat *service.BodyFatService
	tracker *service.TrackerService
	mux     *http.ServeMux
	cors    *cors.Cors
	logger  *slog.Logger
}

func NewServer(bodyFat *service.BodyFatService, tracker *service.TrackerService, logger *slog.Logger) *Server {
	s := &Server{
		bodyFat: bodyFat,
		tracker: tracker,
		mux:     http.NewServeMux(),
		logger:  logger,
		cors: cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowedHeaders: []string{"*"},
		}),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /api/analyze-body-fat", s.handleAnalyzeBodyFat)

	s.mux.HandleFunc("GET /api/foods", s.handleListFoods)
	s.mux.HandleFunc("GET /api/exercises", s.handleListExercises)

	s.mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	s.mux.HandleFunc("POST /api/profile", s.handleSaveProfile)

	s.mux.HandleFunc("GET /api/food-entries", s.handleListFoodEntries)
	s.mux.HandleFunc("POST /api/food-entries", s.handleCreateFoodEntry)
	s.mux.HandleFunc("DELETE /api/food-entries/{id}", s.handleDeleteFoodEntry)

	s.mux.HandleFunc("GET /api/workout-entries", s.handleListWorkoutEntries)
	s.mux.HandleFunc("POST /api/workout-entries", s.handleCreateWorkoutEntry)
	s.mux.HandleFunc("DELETE /api/workout-entries/{id}", s.handleDeleteWorkoutEntry)

	s.mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.cors.Handler(s.mux))).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
