package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string `json:"userId"`
		ServiceID string `json:"serviceId"`
		Date      string `json:"date"`
		Time      string `json:"time"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" || req.ServiceID == "" || req.Date == "" || req.Time == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.gate.RequireCustomer(r.Context(), req.UserID); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid customer")
		return
	}

	if _, err := h.store.ServiceByID(r.Context(), req.ServiceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Service not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	// advisory pre-check; the store's active-slot uniqueness closes the
	// race between concurrent creates for the same slot
	taken, err := h.store.SlotTaken(r.Context(), req.Date, req.Time)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if taken {
		writeMessage(w, http.StatusConflict, "Slot not available")
		return
	}

	a := &model.Appointment{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    model.StatusPending,
	}
	if err := h.store.CreateAppointment(r.Context(), a); err != nil {
		if errors.Is(err, store.ErrSlotTaken) {
			writeMessage(w, http.StatusConflict, "Slot not available")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Appointment booked",
		"appointment": a,
	})
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("userId")
	adminID := q.Get("adminId")

	owner := userID
	if adminID != "" {
		if err := h.gate.RequireAdmin(r.Context(), adminID); err != nil {
			writeMessage(w, http.StatusForbidden, "Unauthorized")
			return
		}
		owner = "" // admins see everything
	} else if userID == "" {
		writeMessage(w, http.StatusBadRequest, "userId or adminId is required")
		return
	}

	appointments, err := h.store.ListAppointments(r.Context(), owner)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if appointments == nil {
		appointments = []model.AppointmentDetail{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"appointments": appointments})
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status  string `json:"status"`
		UserID  string `json:"userId"`
		AdminID string `json:"adminId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Status is required")
		return
	}

	a, err := h.store.AppointmentByID(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Appointment not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	switch req.Status {
	case model.StatusCancelled:
		// only the owning customer cancels
		if req.UserID == "" || req.UserID != a.UserID {
			writeMessage(w, http.StatusForbidden, "Unauthorized")
			return
		}
	case model.StatusApproved, model.StatusRejected:
		if err := h.gate.RequireAdmin(r.Context(), req.AdminID); err != nil {
			writeMessage(w, http.StatusForbidden, "Unauthorized")
			return
		}
	default:
		// includes "pending": a booking never reverts to pending
		writeMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}

	// rejected and cancelled are terminal
	if model.Terminal(a.Status) {
		writeMessage(w, http.StatusConflict, "Appointment is already "+a.Status)
		return
	}

	updated, err := h.store.UpdateAppointmentStatus(r.Context(), a.ID, req.Status)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Appointment " + req.Status,
		"appointment": updated,
	})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	adminID := r.URL.Query().Get("adminId")
	if adminID == "" {
		writeMessage(w, http.StatusBadRequest, "adminId is required")
		return
	}
	if err := h.gate.RequireAdmin(r.Context(), adminID); err != nil {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	stats, err := h.store.Stats(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
