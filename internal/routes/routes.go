package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"naradamuni/internal/controller"
)

// Route paths served by the bridge.
const (
	ListenPath  = "/naradamuni/listen"
	MetricsPath = "/metrics"
	HealthPath  = "/health"
)

// SetupRouter registers all application routes.
func SetupRouter(controller *controller.ReadingController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc(ListenPath, controller.HandleListen).Methods(http.MethodPost)
	router.HandleFunc(MetricsPath, controller.HandleMetrics).Methods(http.MethodGet)
	router.HandleFunc(HealthPath, controller.HandleHealth).Methods(http.MethodGet)

	return router
}

// NewHandler returns the router wrapped in a CORS policy that allows every origin.
// The ingest endpoint is open to any device or dashboard by design of the deployment.
func NewHandler(controller *controller.ReadingController) http.Handler {
	return cors.AllowAll().Handler(SetupRouter(controller))
}
