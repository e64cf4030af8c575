package http

import (
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/security"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router exposes.
type Services struct {
	Auth      service.AuthService
	User      service.UserService
	Role      service.RoleService
	Equipment service.EquipmentService
	Rental    service.RentalService
	Contract  service.ContractService
	Delivery  service.DeliveryService
	Lab       service.LabService
}

// NewRouter builds the full API surface. Everything under /api requires a
// bearer token except the login endpoint.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	root := mux.NewRouter()
	root.Use(RequestLogger)

	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.User)
	roleHandler := NewRoleHandler(svcs.Role)
	equipmentHandler := NewEquipmentHandler(svcs.Equipment)
	rentalHandler := NewRentalHandler(svcs.Rental)
	contractHandler := NewContractHandler(svcs.Contract)
	deliveryHandler := NewDeliveryHandler(svcs.Delivery)
	labHandler := NewLabHandler(svcs.Lab)

	root.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := root.PathPrefix("/api").Subrouter()
	api.Use(Authenticate(tokens))

	// Users and roles are admin territory.
	api.HandleFunc("/users", requireRoles(userHandler.Create, domain.RoleAdmin)).Methods(http.MethodPost)
	api.HandleFunc("/users", requireRoles(userHandler.List, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", requireRoles(userHandler.Get, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", requireRoles(userHandler.Update, domain.RoleAdmin)).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id}", requireRoles(userHandler.Delete, domain.RoleAdmin)).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/roles", requireRoles(userHandler.UpdateRoles, domain.RoleAdmin)).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id}/status", requireRoles(userHandler.ToggleStatus, domain.RoleAdmin)).Methods(http.MethodPatch)

	api.HandleFunc("/roles", requireRoles(roleHandler.Create, domain.RoleAdmin)).Methods(http.MethodPost)
	api.HandleFunc("/roles", requireRoles(roleHandler.List, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/roles/{id}", requireRoles(roleHandler.Get, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/roles/{id}", requireRoles(roleHandler.Update, domain.RoleAdmin)).Methods(http.MethodPatch)
	api.HandleFunc("/roles/{id}", requireRoles(roleHandler.Delete, domain.RoleAdmin)).Methods(http.MethodDelete)

	// Catalog reads are open to every authenticated user; writes are admin.
	api.HandleFunc("/equipments", equipmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/equipments", requireRoles(equipmentHandler.Create, domain.RoleAdmin)).Methods(http.MethodPost)
	api.HandleFunc("/equipments/{id}", equipmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipments/{id}", requireRoles(equipmentHandler.Update, domain.RoleAdmin)).Methods(http.MethodPatch)
	api.HandleFunc("/equipments/{id}", requireRoles(equipmentHandler.Delete, domain.RoleAdmin)).Methods(http.MethodDelete)
	api.HandleFunc("/equipments/{id}/stock", requireRoles(equipmentHandler.UpdateStock, domain.RoleAdmin)).Methods(http.MethodPatch)

	api.HandleFunc("/rentals", requireRoles(rentalHandler.Create, domain.RoleClient, domain.RoleAdmin)).Methods(http.MethodPost)
	api.HandleFunc("/rentals", requireRoles(rentalHandler.List, domain.RoleAdmin, domain.RoleSalesperson)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/mine", requireRoles(rentalHandler.ListMine, domain.RoleClient, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/metrics", requireRoles(rentalHandler.Metrics, domain.RoleAdmin, domain.RoleSalesperson)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/active-deliveries", requireRoles(rentalHandler.ActiveDeliveries, domain.RoleTechnician, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/status", requireRoles(rentalHandler.UpdateStatus, domain.RoleAdmin, domain.RoleSalesperson)).Methods(http.MethodPatch)

	// Contract detail enforces client ownership inside the service.
	api.HandleFunc("/contracts", requireRoles(contractHandler.List, domain.RoleAdmin, domain.RoleSalesperson)).Methods(http.MethodGet)
	api.HandleFunc("/contracts/mine", requireRoles(contractHandler.ListMine, domain.RoleClient)).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{contractId}", contractHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/deliveries", requireRoles(deliveryHandler.Create, domain.RoleTechnician, domain.RoleAdmin)).Methods(http.MethodPost)
	api.HandleFunc("/deliveries", requireRoles(deliveryHandler.List, domain.RoleTechnician, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/deliveries/{id}", requireRoles(deliveryHandler.Get, domain.RoleTechnician, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/deliveries/{id}", requireRoles(deliveryHandler.Update, domain.RoleTechnician, domain.RoleAdmin)).Methods(http.MethodPatch)
	api.HandleFunc("/deliveries/{id}", requireRoles(deliveryHandler.Delete, domain.RoleTechnician, domain.RoleAdmin)).Methods(http.MethodDelete)

	api.HandleFunc("/labs/report", requireRoles(labHandler.ReportBroken, domain.RoleClient)).Methods(http.MethodPost)
	api.HandleFunc("/labs", requireRoles(labHandler.Create, domain.RoleAdmin)).Methods(http.MethodPost)
	api.HandleFunc("/labs", requireRoles(labHandler.List, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/labs/{id}/repaired", requireRoles(labHandler.MarkRepaired, domain.RoleTechnician, domain.RoleLabTechnician)).Methods(http.MethodPatch)
	api.HandleFunc("/labs/{id}", requireRoles(labHandler.Get, domain.RoleAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/labs/{id}", requireRoles(labHandler.Update, domain.RoleAdmin)).Methods(http.MethodPatch)
	api.HandleFunc("/labs/{id}", requireRoles(labHandler.Delete, domain.RoleAdmin)).Methods(http.MethodDelete)

	return root
}
