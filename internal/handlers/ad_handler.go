package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"obmenBack/internal/models"
	"obmenBack/internal/policy"
	"obmenBack/internal/services"
	"obmenBack/utils"
)

type AdHandler struct {
	Service *services.AdService
}

// CreateAd accepts a multipart form (title, description, category_id,
// condition, optional image file) or a plain JSON body without an image.
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)

	var ad models.Ad
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		ad.Title = r.FormValue("title")
		ad.Description = r.FormValue("description")
		ad.Condition = r.FormValue("condition")
		ad.CategoryID, _ = strconv.Atoi(r.FormValue("category_id"))

		imageURL, err := h.uploadImage(r)
		if err != nil {
			http.Error(w, "Failed to upload image", http.StatusInternalServerError)
			return
		}
		ad.ImageURL = imageURL
	}

	if ad.Title == "" {
		http.Error(w, "Missing title", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateAd(r.Context(), ad, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *AdHandler) uploadImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	fileName := uuid.New().String() + filepath.Ext(header.Filename)
	return utils.UploadFileToS3(data, fileName, "ads")
}

// GetAds lists other users' ads, narrowed by categories/conditions query
// params ("1,2" / "new,used").
func (h *AdHandler) GetAds(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)

	filters := models.AdFilters{
		Categories: parseIntArray(r.URL.Query().Get("categories")),
		Conditions: parseStringArray(r.URL.Query().Get("conditions")),
	}

	ads, err := h.Service.ListAds(r.Context(), userID, filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AdListResponse{Ads: ads})
}

func (h *AdHandler) GetUserAds(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)

	ads, err := h.Service.ListOwnAds(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AdListResponse{Ads: ads})
}

func (h *AdHandler) SearchAds(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)

	query := r.URL.Query().Get("q")
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = services.ScopeOthers
	}

	ads, err := h.Service.SearchAds(r.Context(), userID, query, scope)
	if err != nil {
		if errors.Is(err, services.ErrUnknownScope) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AdListResponse{Ads: ads})
}

func (h *AdHandler) GetAdByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing ad ID", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ad ID", http.StatusBadRequest)
		return
	}

	ad, err := h.Service.GetAdByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// is_author only toggles edit/delete affordances in clients; mutation
	// endpoints enforce ownership on their own.
	resp := struct {
		models.Ad
		IsAuthor bool `json:"is_author"`
	}{Ad: ad, IsAuthor: policy.IsAuthor(ad, userIDFromContext(r))}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ad ID", http.StatusBadRequest)
		return
	}

	var ad models.Ad
	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	ad.ID = id

	updated, err := h.Service.UpdateAd(r.Context(), ad, userIDFromContext(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAdNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrUnauthorized):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ad ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteAd(r.Context(), id, userIDFromContext(r)); err != nil {
		switch {
		case errors.Is(err, models.ErrAdNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrUnauthorized):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
