package service

import (
	"errors"
	"fmt"
	"time"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
	"go-coffee-store/internal/ws"
	"go-coffee-store/pkg/logger"
	"go-coffee-store/pkg/validator"

	"gorm.io/gorm"
)

// ReviewService handles customer review submission and admin moderation.
// Submitted reviews start unapproved and only count toward a product's
// rating once approved.
type ReviewService interface {
	SubmitReview(productID uint, req *model.Review) error
	ApprovedReviews(productID uint, page, pageSize int) ([]model.Review, int64, error)
	PendingReviews() ([]model.Review, error)
	ApproveReview(id uint, moderatorID string) (*model.Review, error)
	RejectReview(id uint, notes string, moderatorID string) error
	ToggleFeatured(id uint) (*model.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
	log         *logger.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, hub *ws.Hub, log *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		wsHub:       hub,
		log:         log,
	}
}

func (s *reviewService) SubmitReview(productID uint, req *model.Review) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	dup, err := s.reviewRepo.ExistsForProductAndEmail(productID, req.CustomerEmail)
	if err != nil {
		return err
	}
	if dup {
		return fmt.Errorf("%w: this email has already reviewed the product", ErrConflict)
	}

	req.ProductID = productID
	req.IsApproved = false
	req.ApprovedBy = nil
	req.ApprovedAt = nil

	if err := s.reviewRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":       "review_submitted",
		"review_id":  req.ID,
		"product_id": productID,
		"product":    product.Name,
		"rating":     req.Rating,
	})

	return nil
}

func (s *reviewService) ApprovedReviews(productID uint, page, pageSize int) ([]model.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return s.reviewRepo.FindApprovedByProduct(productID, pageSize, (page-1)*pageSize)
}

func (s *reviewService) PendingReviews() ([]model.Review, error) {
	return s.reviewRepo.FindPending()
}

func (s *reviewService) ApproveReview(id uint, moderatorID string) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	review.IsApproved = true
	review.ApprovedBy = &moderatorID
	review.ApprovedAt = &now

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"review_id":    id,
		"moderator_id": moderatorID,
	}).Info("review approved")

	return review, nil
}

func (s *reviewService) RejectReview(id uint, notes string, moderatorID string) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"review_id":    id,
		"product_id":   review.ProductID,
		"moderator_id": moderatorID,
		"notes":        notes,
	}).Info("review rejected")

	return s.reviewRepo.Delete(id)
}

func (s *reviewService) ToggleFeatured(id uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review.IsFeatured = !review.IsFeatured
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}
