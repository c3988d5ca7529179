package service

import (
	"context"
	"fmt"
	"strings"

	"restaurant-search/internal/domain"
)

type CatalogService struct {
	repo  CatalogRepository
	cache ResultCache
}

func NewCatalogService(repo CatalogRepository, cache ResultCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) SearchDishes(ctx context.Context, name string, minPrice, maxPrice float64) ([]domain.DishResult, error) {
	key := searchKey(name, minPrice, maxPrice)
	if s.cache != nil {
		var cached []domain.DishResult
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	results, err := s.repo.SearchDishes(name, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, results)
	}
	return results, nil
}

func (s *CatalogService) ListRestaurants(city string) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(city)
}

func (s *CatalogService) Menu(restaurantID int) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(restaurantID)
}

func searchKey(name string, minPrice, maxPrice float64) string {
	return fmt.Sprintf("search:%s:%g:%g", strings.ToLower(name), minPrice, maxPrice)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
