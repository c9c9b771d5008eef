package routes

import (
	"net/http"

	"github.com/aplusacademy/tutor-directory/backend/internal/api/handlers"
	"github.com/aplusacademy/tutor-directory/backend/internal/api/middleware"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	tutorHandler        *handlers.TutorHandler
	jobHandler          *handlers.JobHandler
	locationHandler     *handlers.LocationHandler
	registrationHandler *handlers.RegistrationHandler
	hireHandler         *handlers.HireHandler
	adminHandler        *handlers.AdminHandler

	adminAuth       func(http.Handler) http.Handler
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	tutorHandler *handlers.TutorHandler,
	jobHandler *handlers.JobHandler,
	locationHandler *handlers.LocationHandler,
	registrationHandler *handlers.RegistrationHandler,
	hireHandler *handlers.HireHandler,
	adminHandler *handlers.AdminHandler,
	adminAuth func(http.Handler) http.Handler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		tutorHandler:        tutorHandler,
		jobHandler:          jobHandler,
		locationHandler:     locationHandler,
		registrationHandler: registrationHandler,
		hireHandler:         hireHandler,
		adminHandler:        adminHandler,

		adminAuth:       adminAuth,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Tutor directory endpoints
	r.mux.HandleFunc("GET /api/tutors", r.tutorHandler.ListTutors)
	r.mux.HandleFunc("GET /api/tutors/search", r.tutorHandler.SearchTutors)
	r.mux.HandleFunc("GET /api/tutors/facets", r.tutorHandler.GetFacets)
	r.mux.HandleFunc("GET /api/tutors/{id}", r.tutorHandler.GetTutor)

	if r.registrationHandler != nil {
		r.mux.HandleFunc("POST /api/tutors/register", r.registrationHandler.Register)
	}

	// Job board endpoints
	r.mux.HandleFunc("GET /api/jobs", r.jobHandler.ListJobs)
	r.mux.HandleFunc("GET /api/jobs/fee-bounds", r.jobHandler.GetFeeBounds)

	// Location hierarchy endpoints
	r.mux.HandleFunc("GET /api/locations", r.locationHandler.GetTree)
	r.mux.HandleFunc("GET /api/locations/provinces", r.locationHandler.GetProvinces)
	r.mux.HandleFunc("GET /api/locations/districts", r.locationHandler.GetDistricts)
	r.mux.HandleFunc("GET /api/locations/tehsils", r.locationHandler.GetTehsils)
	r.mux.HandleFunc("GET /api/locations/areas", r.locationHandler.GetAreas)

	// Hire request endpoint
	r.mux.HandleFunc("POST /api/hire", r.hireHandler.RequestHire)

	// Admin endpoints. Login is open; the rest require a bearer token.
	if r.adminHandler != nil && r.adminAuth != nil {
		r.mux.HandleFunc("POST /api/admin/login", r.adminHandler.Login)
		r.mux.Handle("GET /api/admin/tutors", r.adminAuth(http.HandlerFunc(r.adminHandler.ListTutors)))
		r.mux.Handle("PUT /api/admin/tutors/{id}", r.adminAuth(http.HandlerFunc(r.adminHandler.UpdateTutor)))
		r.mux.Handle("PUT /api/admin/tutors/{id}/verify", r.adminAuth(http.HandlerFunc(r.adminHandler.VerifyTutor)))
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
