package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"salon-booking-api/internal/auth"
	"salon-booking-api/internal/store"
)

type Handler struct {
	store         store.Store
	gate          *auth.Gate
	secret        string
	adminEmail    string
	adminPassword string
}

func New(st store.Store, secret, adminEmail, adminPassword string) *Handler {
	return &Handler{
		store:         st,
		gate:          auth.NewGate(st),
		secret:        secret,
		adminEmail:    strings.ToLower(adminEmail),
		adminPassword: adminPassword,
	}
}

func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", h.ForgotPassword).Methods(http.MethodPost)

	api.HandleFunc("/services", h.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services", h.CreateService).Methods(http.MethodPost)
	api.HandleFunc("/services/{id}", h.GetService).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", h.UpdateService).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", h.DeleteService).Methods(http.MethodDelete)

	api.HandleFunc("/appointments", h.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", h.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", h.UpdateAppointmentStatus).Methods(http.MethodPatch)

	api.HandleFunc("/admin/stats", h.AdminStats).Methods(http.MethodGet)

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
