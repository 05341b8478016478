package http

import (
	"net/http"

	"lifelink/internal/delivery/http/handler"
	"lifelink/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	donorHandler     *handler.DonorHandler
	requestHandler   *handler.RequestHandler
	responseHandler  *handler.ResponseHandler
	campaignHandler  *handler.CampaignHandler
	volunteerHandler *handler.VolunteerHandler
	resourceHandler  *handler.ResourceHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	donorHandler *handler.DonorHandler,
	requestHandler *handler.RequestHandler,
	responseHandler *handler.ResponseHandler,
	campaignHandler *handler.CampaignHandler,
	volunteerHandler *handler.VolunteerHandler,
	resourceHandler *handler.ResourceHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		donorHandler:     donorHandler,
		requestHandler:   requestHandler,
		responseHandler:  responseHandler,
		campaignHandler:  campaignHandler,
		volunteerHandler: volunteerHandler,
		resourceHandler:  resourceHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/donor", r.authHandler.RegisterDonor).Methods(http.MethodPost)
	auth.HandleFunc("/register/hospital", r.authHandler.RegisterHospital).Methods(http.MethodPost)
	auth.HandleFunc("/register/volunteer", r.authHandler.RegisterVolunteer).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Donor self-service routes
	donors := api.PathPrefix("/donors").Subrouter()
	donors.Use(r.authMiddleware.Authenticate)
	donors.Use(middleware.RequireDonor)
	donors.HandleFunc("/me", r.donorHandler.GetProfile).Methods(http.MethodGet)
	donors.HandleFunc("/me", r.donorHandler.UpdateProfile).Methods(http.MethodPut)
	donors.HandleFunc("/me/history", r.donorHandler.GetHistory).Methods(http.MethodGet)

	// Blood request routes. Browsing is open to any authenticated user;
	// mutation is hospital only.
	requests := api.PathPrefix("/requests").Subrouter()
	requests.Use(r.authMiddleware.Authenticate)
	requests.HandleFunc("", r.requestHandler.List).Methods(http.MethodGet)
	requests.HandleFunc("/{id}", r.requestHandler.Get).Methods(http.MethodGet)

	hospitalRequests := api.PathPrefix("/requests").Subrouter()
	hospitalRequests.Use(r.authMiddleware.Authenticate)
	hospitalRequests.Use(middleware.RequireHospitalOrAdmin)
	hospitalRequests.HandleFunc("", r.requestHandler.Create).Methods(http.MethodPost)
	hospitalRequests.HandleFunc("/{id}", r.requestHandler.Update).Methods(http.MethodPut)
	hospitalRequests.HandleFunc("/{id}", r.requestHandler.Delete).Methods(http.MethodDelete)
	hospitalRequests.HandleFunc("/{id}/matches", r.requestHandler.FindMatches).Methods(http.MethodGet)
	hospitalRequests.HandleFunc("/{id}/responses", r.responseHandler.ListForRequest).Methods(http.MethodGet)

	// Donor responses to requests
	donorResponses := api.PathPrefix("/requests").Subrouter()
	donorResponses.Use(r.authMiddleware.Authenticate)
	donorResponses.Use(middleware.RequireDonor)
	donorResponses.HandleFunc("/{id}/respond", r.responseHandler.Respond).Methods(http.MethodPost)

	// Hospital-side donation workflow
	responses := api.PathPrefix("/responses").Subrouter()
	responses.Use(r.authMiddleware.Authenticate)
	responses.Use(middleware.RequireHospitalOrAdmin)
	responses.HandleFunc("/{id}/in-progress", r.responseHandler.MarkInProgress).Methods(http.MethodPatch)
	responses.HandleFunc("/{id}/confirm", r.responseHandler.Confirm).Methods(http.MethodPost)

	// Campaign browsing (any authenticated user)
	campaigns := api.PathPrefix("/campaigns").Subrouter()
	campaigns.Use(r.authMiddleware.Authenticate)
	campaigns.HandleFunc("", r.campaignHandler.List).Methods(http.MethodGet)
	campaigns.HandleFunc("/{id}", r.campaignHandler.Get).Methods(http.MethodGet)

	// Campaign management (admin)
	adminCampaigns := api.PathPrefix("/campaigns").Subrouter()
	adminCampaigns.Use(r.authMiddleware.Authenticate)
	adminCampaigns.Use(middleware.RequireAdmin)
	adminCampaigns.HandleFunc("", r.campaignHandler.Create).Methods(http.MethodPost)
	adminCampaigns.HandleFunc("/{id}", r.campaignHandler.Update).Methods(http.MethodPut)
	adminCampaigns.HandleFunc("/{id}", r.campaignHandler.Delete).Methods(http.MethodDelete)

	// Volunteer signups
	volunteerCampaigns := api.PathPrefix("/campaigns").Subrouter()
	volunteerCampaigns.Use(r.authMiddleware.Authenticate)
	volunteerCampaigns.Use(middleware.RequireVolunteer)
	volunteerCampaigns.HandleFunc("/{id}/signup", r.volunteerHandler.Signup).Methods(http.MethodPost)

	volunteers := api.PathPrefix("/volunteers").Subrouter()
	volunteers.Use(r.authMiddleware.Authenticate)
	volunteers.Use(middleware.RequireVolunteer)
	volunteers.HandleFunc("/me/signups", r.volunteerHandler.MySignups).Methods(http.MethodGet)

	// Educational resources. Reading is public; publishing is admin only.
	resources := api.PathPrefix("/resources").Subrouter()
	resources.HandleFunc("", r.resourceHandler.List).Methods(http.MethodGet)
	resources.HandleFunc("/{id}", r.resourceHandler.Get).Methods(http.MethodGet)

	adminResources := api.PathPrefix("/resources").Subrouter()
	adminResources.Use(r.authMiddleware.Authenticate)
	adminResources.Use(middleware.RequireAdmin)
	adminResources.HandleFunc("", r.resourceHandler.Create).Methods(http.MethodPost)
	adminResources.HandleFunc("/{id}", r.resourceHandler.Update).Methods(http.MethodPut)
	adminResources.HandleFunc("/{id}", r.resourceHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
