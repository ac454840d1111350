package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

type servicePayload struct {
	AdminID     string  `json:"adminId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func (p *servicePayload) validate(w http.ResponseWriter) bool {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	if p.Name == "" || p.Category == "" || p.Description == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return false
	}
	if p.Price < 0 {
		writeMessage(w, http.StatusBadRequest, "Price must not be negative")
		return false
	}
	if p.Duration <= 0 {
		writeMessage(w, http.StatusBadRequest, "Duration must be a positive number of minutes")
		return false
	}
	return true
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.ServiceFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
	}
	if raw := q.Get("maxPrice"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "maxPrice must be a number")
			return
		}
		f.MaxPrice = &p
	}

	services, err := h.store.ListServices(r.Context(), f)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if services == nil {
		services = []model.Service{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": services})
}

func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.store.ServiceByID(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"service": svc})
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req servicePayload
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.validate(w) {
		return
	}
	if err := h.gate.RequireAdmin(r.Context(), req.AdminID); err != nil {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	svc := &model.Service{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.store.CreateService(r.Context(), svc); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Service added",
		"service": svc,
	})
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req servicePayload
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.validate(w) {
		return
	}
	if err := h.gate.RequireAdmin(r.Context(), req.AdminID); err != nil {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	svc := &model.Service{
		ID:          mux.Vars(r)["id"],
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		Description: req.Description,
	}
	err := h.store.UpdateService(r.Context(), svc)
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Service updated",
		"service": svc,
	})
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	// adminId may arrive in the body or as a query parameter
	var req struct {
		AdminID string `json:"adminId"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.AdminID == "" {
		req.AdminID = r.URL.Query().Get("adminId")
	}
	if err := h.gate.RequireAdmin(r.Context(), req.AdminID); err != nil {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	err := h.store.DeleteService(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, http.StatusOK, "Service deleted")
}
