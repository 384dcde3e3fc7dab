package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"obmenBack/internal/models"
	"obmenBack/internal/services"
)

var errStoreDown = errors.New("store down")

// failingAdStore fails every call, standing in for a broken database.
type failingAdStore struct{}

func (failingAdStore) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	return models.Ad{}, errStoreDown
}

func (failingAdStore) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	return models.Ad{}, errStoreDown
}

func (failingAdStore) UpdateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	return models.Ad{}, errStoreDown
}

func (failingAdStore) DeleteAd(ctx context.Context, id int) error {
	return errStoreDown
}

func (failingAdStore) ListAdsByOwner(ctx context.Context, userID int) ([]models.Ad, error) {
	return nil, errStoreDown
}

func (failingAdStore) ListAdsExcludingOwner(ctx context.Context, userID int) ([]models.Ad, error) {
	return nil, errStoreDown
}

func TestSearchAdsUnknownScopeIsClientError(t *testing.T) {
	h := &AdHandler{Service: &services.AdService{AdRepo: failingAdStore{}}}

	r := httptest.NewRequest(http.MethodGet, "/ad/search?q=x&scope=everything", nil)
	w := httptest.NewRecorder()
	h.SearchAds(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown scope must be a 400, got %d", w.Code)
	}
}

func TestSearchAdsStoreFailureIsServerError(t *testing.T) {
	h := &AdHandler{Service: &services.AdService{AdRepo: failingAdStore{}}}

	r := httptest.NewRequest(http.MethodGet, "/ad/search?q=x", nil)
	w := httptest.NewRecorder()
	h.SearchAds(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("store failure must be a 500, got %d", w.Code)
	}
}
