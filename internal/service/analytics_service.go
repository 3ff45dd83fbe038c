package service

import (
	"context"
	"sort"

	"storecms/internal/model"
	"storecms/internal/repository"
)

const maxRecentBloggers = 5

// simulatedViews stands in for real traffic counters, which this backend does
// not collect. TODO: replace with per-product counters once view tracking
// lands in the data file.
const simulatedViews = 520

// Fallbacks served while the store is empty.
var (
	fallbackPopularProduct = PopularProduct{Name: "Dark Chocolate Bar", Views: simulatedViews}
	fallbackRecentBloggers = []string{"Admin", "John Doe"}
)

// PopularProduct is the most-viewed product summary in the analytics overview.
type PopularProduct struct {
	Name  string `json:"name"`
	Views int    `json:"views"`
}

// Overview is the admin dashboard snapshot.
type Overview struct {
	TotalProducts      int            `json:"totalProducts"`
	TotalBlogs         int            `json:"totalBlogs"`
	MostPopularProduct PopularProduct `json:"mostPopularProduct"`
	RecentBloggers     []string       `json:"recentBloggers"`
}

// AnalyticsService computes the admin dashboard overview.
type AnalyticsService interface {
	Overview(ctx context.Context) (*Overview, error)
}

type analyticsService struct {
	productRepo repository.ProductRepository
	blogRepo    repository.BlogRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(productRepo repository.ProductRepository, blogRepo repository.BlogRepository) AnalyticsService {
	return &analyticsService{
		productRepo: productRepo,
		blogRepo:    blogRepo,
	}
}

// Overview reports collection totals from the store. The popular product is
// the first featured one (falling back to the first listed), and recent
// bloggers are the distinct authors of the newest posts.
func (s *analyticsService) Overview(ctx context.Context) (*Overview, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalProducts:      len(products),
		TotalBlogs:         len(blogs),
		MostPopularProduct: popularProduct(products),
		RecentBloggers:     recentBloggers(blogs),
	}, nil
}

func popularProduct(products []model.Product) PopularProduct {
	if len(products) == 0 {
		return fallbackPopularProduct
	}
	pick := products[0]
	for _, p := range products {
		if p.Featured {
			pick = p
			break
		}
	}
	return PopularProduct{Name: pick.Name, Views: simulatedViews}
}

func recentBloggers(blogs []model.Blog) []string {
	if len(blogs) == 0 {
		return fallbackRecentBloggers
	}

	sorted := make([]model.Blog, len(blogs))
	copy(sorted, blogs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	seen := make(map[string]bool)
	authors := make([]string, 0, maxRecentBloggers)
	for _, b := range sorted {
		if b.Author == "" || seen[b.Author] {
			continue
		}
		seen[b.Author] = true
		authors = append(authors, b.Author)
		if len(authors) == maxRecentBloggers {
			break
		}
	}
	return authors
}
