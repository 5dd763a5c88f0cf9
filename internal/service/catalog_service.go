package service

import (
	"errors"

	"go-coffee-store/internal/catalog"
	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
	"go-coffee-store/pkg/logger"

	"gorm.io/gorm"
)

// CatalogService is the public, read-only storefront surface: listing with
// search/filter/sort/pagination and single-product lookups.
type CatalogService interface {
	ListProducts(spec catalog.SearchSpec) (*catalog.Page, error)
	GetProduct(id uint) (*ProductDetail, error)
	GetProductBySKU(sku string) (*ProductDetail, error)
	FeaturedProducts(count int) ([]catalog.Summary, error)
	ListCategories() ([]model.Category, error)
	HomepageCategories() ([]model.Category, error)
	GetCategoryBySlug(slug string) (*model.Category, error)
}

// ProductDetail is the full product view with the resolved pricing snapshot.
type ProductDetail struct {
	model.Product
	Pricing catalog.Pricing `json:"pricing"`
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	log          *logger.Logger
}

func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, log *logger.Logger) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		log:          log,
	}
}

func (s *catalogService) ListProducts(spec catalog.SearchSpec) (*catalog.Page, error) {
	products, err := s.productRepo.FindAllForListing()
	if err != nil {
		s.log.Error("failed to load products for listing", err)
		return nil, err
	}

	page := catalog.Search(products, spec)
	return &page, nil
}

func (s *catalogService) GetProduct(id uint) (*ProductDetail, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.detail(product), nil
}

func (s *catalogService) GetProductBySKU(sku string) (*ProductDetail, error) {
	product, err := s.productRepo.FindBySKU(sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.detail(product), nil
}

// detail hides inactive variants from the public view before resolving
// pricing, matching the listing path.
func (s *catalogService) detail(product *model.Product) *ProductDetail {
	active := make([]model.Variant, 0, len(product.Variants))
	for _, v := range product.Variants {
		if v.IsActive {
			active = append(active, v)
		}
	}
	product.Variants = active

	return &ProductDetail{
		Product: *product,
		Pricing: catalog.Resolve(product),
	}
}

func (s *catalogService) FeaturedProducts(count int) ([]catalog.Summary, error) {
	if count <= 0 || count > catalog.MaxPageSize {
		count = 8
	}

	page, err := s.ListProducts(catalog.SearchSpec{
		FeaturedOnly: true,
		PageSize:     count,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindActive()
}

func (s *catalogService) HomepageCategories() ([]model.Category, error) {
	return s.categoryRepo.FindHomepage()
}

func (s *catalogService) GetCategoryBySlug(slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}
