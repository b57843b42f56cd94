package http

import (
	"net/http"

	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/security"
	"fleetrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type RouterDeps struct {
	Auth      service.AuthService
	Users     service.UserService
	Stores    service.StoreService
	Vehicles  service.VehicleService
	Rentals   service.RentalService
	Transfers service.TransferService

	Tokens   security.TokenManager
	UserRepo repository.UserRepository
}

// NewRouter wires the route map. Type routes are registered before the
// vehicle {id} routes so /api/vehicles/types never matches as an id.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	authMW := NewAuthMiddleware(deps.Tokens, deps.UserRepo)

	authH := NewAuthHandler(deps.Auth, deps.Users)
	userH := NewUserHandler(deps.Users)
	storeH := NewStoreHandler(deps.Stores)
	vehicleH := NewVehicleHandler(deps.Vehicles)
	rentalH := NewRentalHandler(deps.Rentals)
	transferH := NewTransferHandler(deps.Transfers)

	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		ok(w, "healthy", nil)
	}).Methods(http.MethodGet)

	// Public auth endpoints.
	r.HandleFunc("/api/users/register", authH.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/users/login", authH.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/users/refresh", authH.Refresh).Methods(http.MethodPost)

	// Public catalog endpoints.
	r.HandleFunc("/api/stores", storeH.List).Methods(http.MethodGet)
	r.HandleFunc("/api/stores/{id:[0-9]+}", storeH.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/vehicles/types", vehicleH.ListTypes).Methods(http.MethodGet)
	r.HandleFunc("/api/vehicles/types/{id:[0-9]+}", vehicleH.GetType).Methods(http.MethodGet)

	// Everything below requires an access token.
	auth := r.NewRoute().Subrouter()
	auth.Use(authMW.Require)

	auth.HandleFunc("/api/users/profile", authH.GetProfile).Methods(http.MethodGet)
	auth.HandleFunc("/api/users/profile", authH.UpdateProfile).Methods(http.MethodPut)
	auth.HandleFunc("/api/users", userH.List).Methods(http.MethodGet)
	auth.HandleFunc("/api/users/{id:[0-9]+}", userH.Get).Methods(http.MethodGet)
	auth.HandleFunc("/api/users/{id:[0-9]+}/permissions", userH.UpdatePermissions).Methods(http.MethodPut)

	auth.HandleFunc("/api/stores", storeH.Create).Methods(http.MethodPost)
	auth.HandleFunc("/api/stores/{id:[0-9]+}", storeH.Update).Methods(http.MethodPut)
	auth.HandleFunc("/api/stores/{id:[0-9]+}", storeH.Delete).Methods(http.MethodDelete)
	auth.HandleFunc("/api/stores/{id:[0-9]+}/managers", storeH.ListManagers).Methods(http.MethodGet)

	auth.HandleFunc("/api/vehicles/types", vehicleH.CreateType).Methods(http.MethodPost)
	auth.HandleFunc("/api/vehicles/types/{id:[0-9]+}", vehicleH.UpdateType).Methods(http.MethodPut)
	auth.HandleFunc("/api/vehicles/types/{id:[0-9]+}", vehicleH.DeleteType).Methods(http.MethodDelete)
	auth.HandleFunc("/api/vehicles", vehicleH.List).Methods(http.MethodGet)
	auth.HandleFunc("/api/vehicles", vehicleH.Create).Methods(http.MethodPost)
	auth.HandleFunc("/api/vehicles/{id:[0-9]+}", vehicleH.Get).Methods(http.MethodGet)
	auth.HandleFunc("/api/vehicles/{id:[0-9]+}", vehicleH.Update).Methods(http.MethodPut)
	auth.HandleFunc("/api/vehicles/{id:[0-9]+}", vehicleH.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/api/rentals", rentalH.List).Methods(http.MethodGet)
	auth.HandleFunc("/api/rentals", rentalH.Create).Methods(http.MethodPost)
	auth.HandleFunc("/api/rentals/{id:[0-9]+}", rentalH.Get).Methods(http.MethodGet)
	auth.HandleFunc("/api/rentals/{id:[0-9]+}/approve", rentalH.Approve).Methods(http.MethodPut)
	auth.HandleFunc("/api/rentals/{id:[0-9]+}/return", rentalH.Return).Methods(http.MethodPut)
	auth.HandleFunc("/api/rentals/{id:[0-9]+}/extend", rentalH.RequestExtension).Methods(http.MethodPut)
	auth.HandleFunc("/api/rentals/{id:[0-9]+}/approve-extension", rentalH.ApproveExtension).Methods(http.MethodPut)
	auth.HandleFunc("/api/rentals/{id:[0-9]+}/reject-extension", rentalH.RejectExtension).Methods(http.MethodPut)
	auth.HandleFunc("/api/rentals/{id:[0-9]+}/cancel", rentalH.Cancel).Methods(http.MethodPut)

	auth.HandleFunc("/api/vehicle-transfers", transferH.List).Methods(http.MethodGet)
	auth.HandleFunc("/api/vehicle-transfers", transferH.Create).Methods(http.MethodPost)
	auth.HandleFunc("/api/vehicle-transfers/{id:[0-9]+}", transferH.Get).Methods(http.MethodGet)
	auth.HandleFunc("/api/vehicle-transfers/{id:[0-9]+}/approve", transferH.Approve).Methods(http.MethodPut)
	auth.HandleFunc("/api/vehicle-transfers/{id:[0-9]+}/complete", transferH.Complete).Methods(http.MethodPut)
	auth.HandleFunc("/api/vehicle-transfers/{id:[0-9]+}/cancel", transferH.Cancel).Methods(http.MethodPut)

	return r
}
