package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"obmenBack/internal/models"
	"obmenBack/internal/services"
)

type ProposalHandler struct {
	Service *services.ProposalService
}

func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AdID int `json:"ad_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	proposal, err := h.Service.CreateProposal(r.Context(), userIDFromContext(r), req.AdID)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProposal) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(proposal)
}

// GetProposals lists the caller's proposals. Repeated role/status query
// params narrow the result: a single role selects that side only, zero or
// both roles select everything the user participates in.
func (h *ProposalHandler) GetProposals(w http.ResponseWriter, r *http.Request) {
	roles := r.URL.Query()["role"]
	statuses := r.URL.Query()["status"]

	proposals, err := h.Service.ListProposals(r.Context(), userIDFromContext(r), roles, statuses)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ProposalListResponse{Proposals: proposals})
}

func (h *ProposalHandler) GetProposalByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid proposal ID", http.StatusBadRequest)
		return
	}

	proposal, err := h.Service.GetProposalByID(r.Context(), id, userIDFromContext(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProposalNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrUnauthorized):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(proposal)
}

func (h *ProposalHandler) UpdateProposalStatus(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid proposal ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	proposal, err := h.Service.UpdateStatus(r.Context(), id, req.Status, userIDFromContext(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProposalNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrUnknownStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrUnauthorized):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(proposal)
}
