package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"gorm.io/gorm"
)

// CategoryAll matches every cuisine in filter queries.
const CategoryAll = "All"

// Sort keys accepted by FilterAndSort. Anything else keeps the incoming
// order unchanged.
const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByRating = "rating"
)

// Service reads the product catalog.
type Service struct {
	repo ProductRepository
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

// List returns the full product set. Connectivity or backend failure
// surfaces as a store read error; callers render an empty list.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.StoreReadError("failed to load products", err)
	}
	return products, nil
}

// Featured returns the home-screen subset of the catalog.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	products, err := s.repo.ListLimit(ctx, limit)
	if err != nil {
		return nil, domain.StoreReadError("failed to load featured products", err)
	}
	return products, nil
}

// Get returns one product's detail.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError("product not found")
		}
		return nil, domain.StoreReadError("failed to load product", err)
	}
	return p, nil
}

// FilterAndSort applies the menu screen's category/search filter and sort
// order. Pure: the input slice is never modified and the result is
// deterministic. category "All" (or empty) matches everything; search
// matches case-insensitively as a substring of the title.
func FilterAndSort(products []domain.Product, category, search, sortKey string) []domain.Product {
	search = strings.ToLower(search)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Cuisine != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortKey {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Title < filtered[j].Title
		})
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}
	return filtered
}

// Categories returns the distinct cuisines present, prefixed with "All",
// in first-seen order.
func Categories(products []domain.Product) []string {
	seen := map[string]bool{}
	out := []string{CategoryAll}
	for _, p := range products {
		if p.Cuisine == "" || seen[p.Cuisine] {
			continue
		}
		seen[p.Cuisine] = true
		out = append(out, p.Cuisine)
	}
	return out
}
