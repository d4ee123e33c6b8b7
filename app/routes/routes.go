package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"quickblog/app/config"
	"quickblog/app/controllers"
	"quickblog/app/middleware"
	"quickblog/app/repositories"
	"quickblog/app/services"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Config    *config.Config
	Store     repositories.Store
	ImageHost services.ImageHost
}

// SetupRouter registers every route on a gorilla/mux router.
func SetupRouter(deps Dependencies) *mux.Router {
	blogController := controllers.NewBlogController(
		services.NewBlogService(deps.Store.Blogs(), deps.ImageHost),
		deps.Config.MaxUploadBytes,
	)
	commentController := controllers.NewCommentController(services.NewCommentService(deps.Store.Comments()))
	healthController := controllers.NewHealthController(deps.Store)

	router := mux.NewRouter()
	router.Use(middleware.Metrics)
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("/healthz", healthController.Show).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	blogs := api.PathPrefix("/blog").Subrouter()
	blogs.HandleFunc("/add", blogController.Create).Methods("POST")
	blogs.HandleFunc("/all", blogController.Index).Methods("GET")
	blogs.HandleFunc("/delete", blogController.Delete).Methods("POST")
	blogs.HandleFunc("/toggle-publish", blogController.TogglePublish).Methods("POST")
	blogs.HandleFunc("/add-comment", commentController.Create).Methods("POST")
	blogs.HandleFunc("/comments", commentController.Index).Methods("POST")
	blogs.HandleFunc("/{blogId}", blogController.Show).Methods("GET")

	return router
}

// SetupRoutes wraps the router in the middleware that must also see
// unmatched requests and CORS preflights.
func SetupRoutes(deps Dependencies) http.Handler {
	var handler http.Handler = SetupRouter(deps)

	if limit := deps.Config.RateLimitPerMinute; limit > 0 {
		handler = httprate.LimitByIP(limit, time.Minute)(handler)
	}

	handler = cors.New(cors.Options{
		AllowedOrigins: deps.Config.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}).Handler(handler)

	handler = middleware.Recoverer(handler)
	handler = middleware.Logger(handler)
	return middleware.RequestID(handler)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
