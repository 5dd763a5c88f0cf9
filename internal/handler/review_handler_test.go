package handler

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/service"
)

type stubReviewService struct {
	service.ReviewService
	submit func(productID uint, req *model.Review) error
}

func (s *stubReviewService) SubmitReview(productID uint, req *model.Review) error {
	return s.submit(productID, req)
}

func newReviewApp(svc service.ReviewService) *fiber.App {
	app := fiber.New()
	h := NewReviewHandler(svc)
	app.Post("/catalog/products/:id/reviews", h.SubmitReview)
	return app
}

func TestSubmitReviewAcceptsAnonymousCustomer(t *testing.T) {
	var gotProduct uint
	var gotReview *model.Review
	svc := &stubReviewService{
		submit: func(productID uint, req *model.Review) error {
			gotProduct = productID
			gotReview = req
			return nil
		},
	}

	app := newReviewApp(svc)

	body := `{"rating": 5, "customer_name": "Salim", "customer_email": "salim@example.com", "content": "Great beans"}`
	req := httptest.NewRequest("POST", "/catalog/products/9/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	require.NotNil(t, gotReview)
	assert.Equal(t, uint(9), gotProduct)
	assert.Equal(t, "Salim", gotReview.CustomerName)
	assert.Equal(t, "salim@example.com", gotReview.CustomerEmail)
}

func TestSubmitReviewDuplicateMapsToConflict(t *testing.T) {
	svc := &stubReviewService{
		submit: func(productID uint, req *model.Review) error {
			return fmt.Errorf("%w: this email has already reviewed the product", service.ErrConflict)
		},
	}

	app := newReviewApp(svc)

	body := `{"rating": 4, "customer_name": "Salim", "customer_email": "salim@example.com"}`
	req := httptest.NewRequest("POST", "/catalog/products/9/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestSubmitReviewRejectsBadProductID(t *testing.T) {
	app := newReviewApp(&stubReviewService{})

	req := httptest.NewRequest("POST", "/catalog/products/0/reviews", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
