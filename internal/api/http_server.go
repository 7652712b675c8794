package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"roombook/internal/config"
	"roombook/internal/database"
	"roombook/internal/domain"
	"roombook/internal/metrics"
	"roombook/internal/service"

	"github.com/rs/zerolog"
)

// HTTPServer exposes the booking, building and room managers over JSON HTTP.
type HTTPServer struct {
	cfg       *config.Config
	bookings  domain.BookingService
	buildings domain.BuildingService
	rooms     domain.RoomService
	server    *http.Server
	auth      *HTTPAuth
	logger    *zerolog.Logger
}

func NewHTTPServer(
	cfg *config.Config,
	bookings domain.BookingService,
	buildings domain.BuildingService,
	rooms domain.RoomService,
	logger *zerolog.Logger,
) *HTTPServer {
	srv := &HTTPServer{
		cfg:       cfg,
		bookings:  bookings,
		buildings: buildings,
		rooms:     rooms,
		logger:    logger,
	}
	srv.auth = NewHTTPAuth(cfg.API)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/api/v1/bookings", srv.handleBookings)
	mux.HandleFunc("/api/v1/bookings/", srv.handleBookingByID)
	mux.HandleFunc("/api/v1/buildings", srv.handleBuildings)
	mux.HandleFunc("/api/v1/buildings/", srv.handleBuildingByID)
	mux.HandleFunc("/api/v1/rooms", srv.handleRooms)
	mux.HandleFunc("/api/v1/rooms/", srv.handleRoomByID)
	mux.HandleFunc("/api/v1/exports/bookings", srv.handleBookingsExport)

	handler := srv.loggingMiddleware(srv.auth.Wrap(mux))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.API.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return srv
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "OK", "timestamp": time.Now()})
}

// writeDomainError maps the error taxonomy onto HTTP statuses: NotFound 404,
// Conflict 409, ValidationError 400, everything else 500. Store failure
// detail is only exposed in the development environment.
func (s *HTTPServer) writeDomainError(w http.ResponseWriter, err error) {
	var conflict *service.ConflictError
	var validation *service.ValidationError

	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &conflict):
		metrics.IncConflict(conflict.Reason)
		writeError(w, http.StatusConflict, conflict.Reason)
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, database.ErrDuplicateID):
		writeError(w, http.StatusBadRequest, database.ErrDuplicateID.Error())
	default:
		s.logger.Error().Err(err).Msg("internal error")
		message := "Internal Server Error"
		if s.cfg.App.Environment == "development" {
			message = err.Error()
		}
		writeError(w, http.StatusInternalServerError, message)
	}
}

func (s *HTTPServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("dur", time.Since(start)).
			Msg("http")
	})
}

// pathID extracts the trailing id segments from an entity path, e.g.
// "/api/v1/rooms/r1/status" with prefix "/api/v1/rooms/" yields ["r1", "status"].
func pathSegments(path, prefix string) []string {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

func decodeJSON(r *http.Request, dst any, strict bool) error {
	decoder := json.NewDecoder(r.Body)
	if strict {
		decoder.DisallowUnknownFields()
	}
	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
