package service

import (
	"github.com/google/uuid"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
)

// Test stubs embed the repository interface and override only the methods a
// test exercises; calling anything else panics, which is what we want.

type stubProductRepo struct {
	repository.ProductRepository
	findByID           func(id uint) (*model.Product, error)
	skuExists          func(sku string, excludeID uint) (bool, error)
	create             func(product *model.Product) error
	deleteWithChildren func(id uint) error
	countByCategory    func(categoryID uint) (int64, error)
	findAllForListing  func() ([]model.Product, error)
}

func (s *stubProductRepo) FindByID(id uint) (*model.Product, error) { return s.findByID(id) }
func (s *stubProductRepo) SKUExists(sku string, excludeID uint) (bool, error) {
	return s.skuExists(sku, excludeID)
}
func (s *stubProductRepo) Create(product *model.Product) error { return s.create(product) }
func (s *stubProductRepo) DeleteWithChildren(id uint) error    { return s.deleteWithChildren(id) }
func (s *stubProductRepo) CountByCategory(categoryID uint) (int64, error) {
	return s.countByCategory(categoryID)
}
func (s *stubProductRepo) FindAllForListing() ([]model.Product, error) {
	return s.findAllForListing()
}

type stubVariantRepo struct {
	repository.VariantRepository
	findByID      func(id uint) (*model.Variant, error)
	findByProduct func(productID uint) ([]model.Variant, error)
	skuExists     func(sku string, excludeID uint) (bool, error)
	deleteFn      func(id uint) error
}

func (s *stubVariantRepo) FindByID(id uint) (*model.Variant, error) { return s.findByID(id) }
func (s *stubVariantRepo) FindByProduct(productID uint) ([]model.Variant, error) {
	return s.findByProduct(productID)
}
func (s *stubVariantRepo) SKUExists(sku string, excludeID uint) (bool, error) {
	return s.skuExists(sku, excludeID)
}
func (s *stubVariantRepo) Delete(id uint) error { return s.deleteFn(id) }

type stubCategoryRepo struct {
	repository.CategoryRepository
	findByID   func(id uint) (*model.Category, error)
	slugExists func(slug string, excludeID uint) (bool, error)
	create     func(category *model.Category) error
	deleteFn   func(id uint) error
}

func (s *stubCategoryRepo) FindByID(id uint) (*model.Category, error) { return s.findByID(id) }
func (s *stubCategoryRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	return s.slugExists(slug, excludeID)
}
func (s *stubCategoryRepo) Create(category *model.Category) error { return s.create(category) }
func (s *stubCategoryRepo) Delete(id uint) error                  { return s.deleteFn(id) }

type stubReviewRepo struct {
	repository.ReviewRepository
	create   func(review *model.Review) error
	findByID func(id uint) (*model.Review, error)
	update   func(review *model.Review) error
	deleteFn func(id uint) error
	exists   func(productID uint, email string) (bool, error)
}

func (s *stubReviewRepo) Create(review *model.Review) error       { return s.create(review) }
func (s *stubReviewRepo) FindByID(id uint) (*model.Review, error) { return s.findByID(id) }
func (s *stubReviewRepo) Update(review *model.Review) error       { return s.update(review) }
func (s *stubReviewRepo) Delete(id uint) error                    { return s.deleteFn(id) }
func (s *stubReviewRepo) ExistsForProductAndEmail(productID uint, email string) (bool, error) {
	return s.exists(productID, email)
}

type stubCartRepo struct {
	repository.CartRepository
	findByUser         func(userID uuid.UUID) (*model.Cart, error)
	findOrCreateByUser func(userID uuid.UUID) (*model.Cart, error)
	findItem           func(cartID, variantID uint) (*model.CartItem, error)
	findItemByID       func(cartID, itemID uint) (*model.CartItem, error)
	createItem         func(item *model.CartItem) error
	updateItem         func(item *model.CartItem) error
	deleteItem         func(cartID, itemID uint) error
}

func (s *stubCartRepo) FindByUser(userID uuid.UUID) (*model.Cart, error) {
	return s.findByUser(userID)
}
func (s *stubCartRepo) FindOrCreateByUser(userID uuid.UUID) (*model.Cart, error) {
	return s.findOrCreateByUser(userID)
}
func (s *stubCartRepo) FindItem(cartID, variantID uint) (*model.CartItem, error) {
	return s.findItem(cartID, variantID)
}
func (s *stubCartRepo) FindItemByID(cartID, itemID uint) (*model.CartItem, error) {
	return s.findItemByID(cartID, itemID)
}
func (s *stubCartRepo) CreateItem(item *model.CartItem) error { return s.createItem(item) }
func (s *stubCartRepo) UpdateItem(item *model.CartItem) error { return s.updateItem(item) }
func (s *stubCartRepo) DeleteItem(cartID, itemID uint) error  { return s.deleteItem(cartID, itemID) }
