package services

import (
	"context"
	"errors"
	"time"

	"obmenBack/internal/filter"
	"obmenBack/internal/models"
	"obmenBack/internal/policy"
)

// Search scopes: other users' ads or the requester's own.
const (
	ScopeOthers = "others"
	ScopeOwn    = "own"
)

var ErrUnknownScope = errors.New("unknown search scope")

type AdStore interface {
	CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error)
	GetAdByID(ctx context.Context, id int) (models.Ad, error)
	UpdateAd(ctx context.Context, ad models.Ad) (models.Ad, error)
	DeleteAd(ctx context.Context, id int) error
	ListAdsByOwner(ctx context.Context, userID int) ([]models.Ad, error)
	ListAdsExcludingOwner(ctx context.Context, userID int) ([]models.Ad, error)
}

type AdService struct {
	AdRepo AdStore
}

func (s *AdService) CreateAd(ctx context.Context, ad models.Ad, requesterID int) (models.Ad, error) {
	ad.UserID = requesterID
	ad.CreatedAt = time.Now()
	ad.UpdatedAt = nil
	return s.AdRepo.CreateAd(ctx, ad)
}

func (s *AdService) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	return s.AdRepo.GetAdByID(ctx, id)
}

// UpdateAd rewrites the mutable fields of an ad. Only the owner may update;
// owner and creation time are preserved from the stored row.
func (s *AdService) UpdateAd(ctx context.Context, ad models.Ad, actorID int) (models.Ad, error) {
	existing, err := s.AdRepo.GetAdByID(ctx, ad.ID)
	if err != nil {
		return models.Ad{}, err
	}
	if !policy.IsAuthor(existing, actorID) {
		return models.Ad{}, models.ErrUnauthorized
	}
	ad.UserID = existing.UserID
	ad.CreatedAt = existing.CreatedAt
	return s.AdRepo.UpdateAd(ctx, ad)
}

func (s *AdService) DeleteAd(ctx context.Context, id int, actorID int) error {
	existing, err := s.AdRepo.GetAdByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.IsAuthor(existing, actorID) {
		return models.ErrUnauthorized
	}
	return s.AdRepo.DeleteAd(ctx, id)
}

// ListAds returns other users' ads narrowed by the given filters. Each
// non-empty filter is a membership test and the filters combine with AND.
func (s *AdService) ListAds(ctx context.Context, requesterID int, filters models.AdFilters) ([]models.Ad, error) {
	ads, err := s.AdRepo.ListAdsExcludingOwner(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	pred := filter.And(
		filter.CategoryIn(filters.Categories),
		filter.ConditionIn(filters.Conditions),
	)
	return filter.Apply(ads, pred), nil
}

func (s *AdService) ListOwnAds(ctx context.Context, requesterID int) ([]models.Ad, error) {
	return s.AdRepo.ListAdsByOwner(ctx, requesterID)
}

// SearchAds applies the ownership scope and then a case-insensitive substring
// match over title or description. An empty query matches everything.
func (s *AdService) SearchAds(ctx context.Context, requesterID int, query string, scope string) ([]models.Ad, error) {
	var (
		ads []models.Ad
		err error
	)
	switch scope {
	case ScopeOwn:
		ads, err = s.AdRepo.ListAdsByOwner(ctx, requesterID)
	case ScopeOthers:
		ads, err = s.AdRepo.ListAdsExcludingOwner(ctx, requesterID)
	default:
		return nil, ErrUnknownScope
	}
	if err != nil {
		return nil, err
	}
	return filter.Apply(ads, filter.Matches(query)), nil
}
