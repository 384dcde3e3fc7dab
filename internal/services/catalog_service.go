package services

import (
	"context"
	"log"
	"time"

	"obmenBack/internal/cache"
	"obmenBack/internal/models"
)

const (
	categoriesCacheKey = "catalog:categories"
	categoriesCacheTTL = 5 * time.Minute
)

type CategoryStore interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategoryByID(ctx context.Context, id int) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// CatalogService serves the reference value sets: categories from the store,
// conditions and statuses from configuration.
type CatalogService struct {
	CategoryRepo CategoryStore
	Cache        *cache.Cache
	Conditions   []string
	Statuses     []string
}

// ListCategories is cache-aside over Redis. Cache failures fall back to the
// store and are logged by the caller's middleware chain, never fatal here.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if s.Cache != nil {
		var cached []models.Category
		if ok, err := s.Cache.Get(ctx, categoriesCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	categories, err := s.CategoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, categoriesCacheKey, categories, categoriesCacheTTL); err != nil {
			log.Printf("failed to cache categories: %v", err)
		}
	}
	return categories, nil
}

func (s *CatalogService) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByID(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	created, err := s.CategoryRepo.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	s.invalidateCategories(ctx)
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	updated, err := s.CategoryRepo.UpdateCategory(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	s.invalidateCategories(ctx)
	return updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.CategoryRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

func (s *CatalogService) invalidateCategories(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, categoriesCacheKey); err != nil {
		log.Printf("failed to invalidate categories cache: %v", err)
	}
}

// ListConditions returns the configured ad condition codes.
func (s *CatalogService) ListConditions() []string {
	return s.Conditions
}

// ListStatuses returns the configured proposal status set.
func (s *CatalogService) ListStatuses() []string {
	return s.Statuses
}
