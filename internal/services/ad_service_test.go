package services

import (
	"context"
	"errors"
	"testing"

	"obmenBack/internal/models"
)

// fakeAdStore keeps ads in insertion order, standing in for the SQL store.
type fakeAdStore struct {
	ads    []models.Ad
	nextID int
}

func (f *fakeAdStore) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	f.nextID++
	ad.ID = f.nextID
	f.ads = append(f.ads, ad)
	return ad, nil
}

func (f *fakeAdStore) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	for _, ad := range f.ads {
		if ad.ID == id {
			return ad, nil
		}
	}
	return models.Ad{}, models.ErrAdNotFound
}

func (f *fakeAdStore) UpdateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	for i := range f.ads {
		if f.ads[i].ID == ad.ID {
			f.ads[i] = ad
			return ad, nil
		}
	}
	return models.Ad{}, models.ErrAdNotFound
}

func (f *fakeAdStore) DeleteAd(ctx context.Context, id int) error {
	for i := range f.ads {
		if f.ads[i].ID == id {
			f.ads = append(f.ads[:i], f.ads[i+1:]...)
			return nil
		}
	}
	return models.ErrAdNotFound
}

func (f *fakeAdStore) ListAdsByOwner(ctx context.Context, userID int) ([]models.Ad, error) {
	var out []models.Ad
	for _, ad := range f.ads {
		if ad.UserID == userID {
			out = append(out, ad)
		}
	}
	return out, nil
}

func (f *fakeAdStore) ListAdsExcludingOwner(ctx context.Context, userID int) ([]models.Ad, error) {
	var out []models.Ad
	for _, ad := range f.ads {
		if ad.UserID != userID {
			out = append(out, ad)
		}
	}
	return out, nil
}

func newAdService() (*AdService, *fakeAdStore) {
	store := &fakeAdStore{}
	return &AdService{AdRepo: store}, store
}

func TestListAdsPartitionsByOwnership(t *testing.T) {
	svc, _ := newAdService()
	ctx := context.Background()

	mine, _ := svc.CreateAd(ctx, models.Ad{Title: "mine"}, 1)
	other, _ := svc.CreateAd(ctx, models.Ad{Title: "other"}, 2)

	others, err := svc.ListAds(ctx, 1, models.AdFilters{})
	if err != nil {
		t.Fatalf("ListAds: %v", err)
	}
	if len(others) != 1 || others[0].ID != other.ID {
		t.Fatalf("others-mode must exclude own ads, got %#v", others)
	}

	own, err := svc.ListOwnAds(ctx, 1)
	if err != nil {
		t.Fatalf("ListOwnAds: %v", err)
	}
	if len(own) != 1 || own[0].ID != mine.ID {
		t.Fatalf("own-mode must include only own ads, got %#v", own)
	}
}

func TestListAdsFiltersIntersect(t *testing.T) {
	svc, _ := newAdService()
	ctx := context.Background()

	svc.CreateAd(ctx, models.Ad{Title: "a", CategoryID: 1, Condition: "new"}, 2)
	svc.CreateAd(ctx, models.Ad{Title: "b", CategoryID: 1, Condition: "used"}, 2)
	svc.CreateAd(ctx, models.Ad{Title: "c", CategoryID: 2, Condition: "new"}, 2)

	got, err := svc.ListAds(ctx, 1, models.AdFilters{
		Categories: []int{1},
		Conditions: []string{"new"},
	})
	if err != nil {
		t.Fatalf("ListAds: %v", err)
	}
	if len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("filters must intersect: ads matching only one filter must be dropped, got %#v", got)
	}
}

func TestListAdsEmptyFilterMeansNoConstraint(t *testing.T) {
	svc, _ := newAdService()
	ctx := context.Background()

	svc.CreateAd(ctx, models.Ad{Title: "a", CategoryID: 1, Condition: "new"}, 2)
	svc.CreateAd(ctx, models.Ad{Title: "b", CategoryID: 2, Condition: "used"}, 2)

	got, err := svc.ListAds(ctx, 1, models.AdFilters{Conditions: []string{"used"}})
	if err != nil {
		t.Fatalf("ListAds: %v", err)
	}
	if len(got) != 1 || got[0].Title != "b" {
		t.Fatalf("absent category filter must not constrain, got %#v", got)
	}
}

func TestSearchAdsSubstringSemantics(t *testing.T) {
	svc, _ := newAdService()
	ctx := context.Background()

	svc.CreateAd(ctx, models.Ad{Title: "Setup_Title"}, 2)
	svc.CreateAd(ctx, models.Ad{Title: "other", Description: "contains setup_title inside"}, 2)
	svc.CreateAd(ctx, models.Ad{Title: "unrelated"}, 2)

	got, err := svc.SearchAds(ctx, 1, "setup_title", ScopeOthers)
	if err != nil {
		t.Fatalf("SearchAds: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected case-insensitive matches in title or description, got %#v", got)
	}
}

func TestSearchAdsScopes(t *testing.T) {
	svc, _ := newAdService()
	ctx := context.Background()

	svc.CreateAd(ctx, models.Ad{Title: "title1"}, 1)
	svc.CreateAd(ctx, models.Ad{Title: "title2"}, 2)

	others, err := svc.SearchAds(ctx, 1, "title", ScopeOthers)
	if err != nil {
		t.Fatalf("SearchAds others: %v", err)
	}
	if len(others) != 1 || others[0].Title != "title2" {
		t.Fatalf("others scope must exclude requester's ads, got %#v", others)
	}

	own, err := svc.SearchAds(ctx, 1, "", ScopeOwn)
	if err != nil {
		t.Fatalf("SearchAds own: %v", err)
	}
	if len(own) != 1 || own[0].Title != "title1" {
		t.Fatalf("own scope with empty query must return all own ads, got %#v", own)
	}

	if _, err := svc.SearchAds(ctx, 1, "q", "everything"); !errors.Is(err, ErrUnknownScope) {
		t.Fatalf("unknown scope must be rejected with ErrUnknownScope, got %v", err)
	}
}

func TestEndToEndListAndSearch(t *testing.T) {
	svc, _ := newAdService()
	ctx := context.Background()

	svc.CreateAd(ctx, models.Ad{Title: "title1"}, 1)
	svc.CreateAd(ctx, models.Ad{Title: "title2"}, 2)

	listed, _ := svc.ListAds(ctx, 1, models.AdFilters{})
	if len(listed) != 1 || listed[0].Title != "title2" {
		t.Fatalf("user1 must see only title2, got %#v", listed)
	}

	found, _ := svc.SearchAds(ctx, 1, "title2", ScopeOthers)
	if len(found) != 1 || found[0].Title != "title2" {
		t.Fatalf("searching title2 must return it, got %#v", found)
	}

	empty, _ := svc.SearchAds(ctx, 1, "title1", ScopeOthers)
	if len(empty) != 0 {
		t.Fatalf("searching own title in others scope must be empty, got %#v", empty)
	}
}

func TestUpdateAdEnforcesOwnershipAndImmutability(t *testing.T) {
	svc, _ := newAdService()
	ctx := context.Background()

	ad, _ := svc.CreateAd(ctx, models.Ad{Title: "original"}, 1)

	if _, err := svc.UpdateAd(ctx, models.Ad{ID: ad.ID, Title: "hijack"}, 2); err != models.ErrUnauthorized {
		t.Fatalf("non-owner update must fail with ErrUnauthorized, got %v", err)
	}

	updated, err := svc.UpdateAd(ctx, models.Ad{ID: ad.ID, UserID: 99, Title: "renamed"}, 1)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.UserID != 1 {
		t.Fatalf("owner must be immutable, got user %d", updated.UserID)
	}
	if updated.Title != "renamed" {
		t.Fatalf("title must be updated, got %q", updated.Title)
	}
	if !updated.CreatedAt.Equal(ad.CreatedAt) {
		t.Fatal("created_at must be preserved on update")
	}
}

func TestDeleteAdEnforcesOwnership(t *testing.T) {
	svc, store := newAdService()
	ctx := context.Background()

	ad, _ := svc.CreateAd(ctx, models.Ad{Title: "keep"}, 1)

	if err := svc.DeleteAd(ctx, ad.ID, 2); err != models.ErrUnauthorized {
		t.Fatalf("non-owner delete must fail with ErrUnauthorized, got %v", err)
	}
	if err := svc.DeleteAd(ctx, ad.ID, 1); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(store.ads) != 0 {
		t.Fatal("ad must be removed from the store")
	}
}
