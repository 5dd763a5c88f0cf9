package service

import (
	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
)

type DashboardService interface {
	GetStats() (*DashboardStats, error)
}

type DashboardStats struct {
	TotalProducts    int64                 `json:"total_products"`
	TotalCategories  int64                 `json:"total_categories"`
	PendingReviews   int64                 `json:"pending_reviews"`
	LowStockVariants []model.Variant       `json:"low_stock_variants"`
	RecentMovements  []model.StockMovement `json:"recent_movements"`
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	variantRepo  repository.VariantRepository
	movementRepo repository.StockMovementRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	reviewRepo repository.ReviewRepository,
	variantRepo repository.VariantRepository,
	movementRepo repository.StockMovementRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		variantRepo:  variantRepo,
		movementRepo: movementRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	products, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.Count()
	if err != nil {
		return nil, err
	}

	pending, err := s.reviewRepo.CountPending()
	if err != nil {
		return nil, err
	}

	lowStock, err := s.variantRepo.FindLowStock()
	if err != nil {
		return nil, err
	}

	movements, err := s.movementRepo.FindRecent(20)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:    products,
		TotalCategories:  categories,
		PendingReviews:   pending,
		LowStockVariants: lowStock,
		RecentMovements:  movements,
	}, nil
}
