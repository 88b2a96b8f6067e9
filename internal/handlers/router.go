package handlers

import (
	"net/http"

	"github.com/Dias221467/Animal_Rescue/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Reports       *ReportHandler
	Notifications *NotificationHandler
	NGOs          *NGOHandler
	Applications  *ApplicationHandler
	Animals       *AnimalHandler
}

// NewRouter registers every route of the API. NGO routes other than register and login require a JWT.
func NewRouter(h Handlers, jwtSecret, uploadDir string) *mux.Router {
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/api/reports", h.Reports.SubmitReportHandler).Methods("POST")
	router.HandleFunc("/api/reports/nearby", h.Reports.NearbyReportsHandler).Methods("GET")
	router.HandleFunc("/api/adopt", h.Applications.SubmitAdoptionHandler).Methods("POST")
	router.HandleFunc("/api/volunteer", h.Applications.SubmitVolunteerHandler).Methods("POST")
	router.HandleFunc("/api/animals", h.Animals.ListAvailableHandler).Methods("GET")
	router.HandleFunc("/api/ngo/register", h.NGOs.RegisterNGOHandler).Methods("POST")
	router.HandleFunc("/api/ngo/login", h.NGOs.LoginNGOHandler).Methods("POST")

	// NGO routes
	ngoRoutes := router.PathPrefix("/api/ngo").Subrouter()
	ngoRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	ngoRoutes.HandleFunc("/settings", h.NGOs.GetSettingsHandler).Methods("GET")
	ngoRoutes.HandleFunc("/settings", h.NGOs.UpdateSettingsHandler).Methods("PUT")
	ngoRoutes.HandleFunc("/dashboard/reports", h.Reports.GetReportsHandler).Methods("GET")
	ngoRoutes.HandleFunc("/dashboard/adoptions", h.Applications.GetAdoptionsHandler).Methods("GET")
	ngoRoutes.HandleFunc("/dashboard/volunteers", h.Applications.GetVolunteersHandler).Methods("GET")
	ngoRoutes.HandleFunc("/adoptions/{id}", h.Applications.UpdateAdoptionStatusHandler).Methods("PUT")
	ngoRoutes.HandleFunc("/volunteers/{id}", h.Applications.UpdateVolunteerStatusHandler).Methods("PUT")
	ngoRoutes.HandleFunc("/animals", h.Animals.GetNGOAnimalsHandler).Methods("GET")
	ngoRoutes.HandleFunc("/animals", h.Animals.AddAnimalHandler).Methods("POST")
	ngoRoutes.HandleFunc("/animals/{id}", h.Animals.DeleteAnimalHandler).Methods("DELETE")
	ngoRoutes.HandleFunc("/reports/{id}", h.Reports.GetReportHandler).Methods("GET")
	ngoRoutes.HandleFunc("/reports/{id}", h.Reports.UpdateReportStatusHandler).Methods("PUT")
	ngoRoutes.HandleFunc("/notifications", h.Notifications.GetNotificationsHandler).Methods("GET")
	ngoRoutes.HandleFunc("/notifications/{id}/read", h.Notifications.MarkAsReadHandler).Methods("PUT")

	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	return router
}
