package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
	"go-coffee-store/pkg/validator"
)

// ContentService manages the storefront's editorial content: hero
// slides, the FAQ page, and key/value settings.
type ContentService interface {
	ActiveSlides() ([]model.Slide, error)
	AllSlides() ([]model.Slide, error)
	CreateSlide(slide *model.Slide, editorID string) (*model.Slide, error)
	UpdateSlide(id uint, slide *model.Slide, editorID string) (*model.Slide, error)
	DeleteSlide(id uint) error

	ActiveFAQs() ([]model.FAQ, error)
	AllFAQs() ([]model.FAQ, error)
	FAQCategories() ([]model.FAQCategory, error)
	CreateFAQ(faq *model.FAQ, editorID string) (*model.FAQ, error)
	UpdateFAQ(id uint, faq *model.FAQ, editorID string) (*model.FAQ, error)
	DeleteFAQ(id uint) error
	CreateFAQCategory(category *model.FAQCategory) (*model.FAQCategory, error)

	PublicSettings() (map[string]string, error)
	AllSettings() ([]model.Setting, error)
	UpdateSetting(key, value string) (*model.Setting, error)
}

type contentService struct {
	slideRepo   repository.SlideRepository
	faqRepo     repository.FAQRepository
	settingRepo repository.SettingRepository
}

func NewContentService(slideRepo repository.SlideRepository, faqRepo repository.FAQRepository, settingRepo repository.SettingRepository) ContentService {
	return &contentService{
		slideRepo:   slideRepo,
		faqRepo:     faqRepo,
		settingRepo: settingRepo,
	}
}

func (s *contentService) ActiveSlides() ([]model.Slide, error) {
	return s.slideRepo.FindActive()
}

func (s *contentService) AllSlides() ([]model.Slide, error) {
	return s.slideRepo.FindAll()
}

func (s *contentService) CreateSlide(slide *model.Slide, editorID string) (*model.Slide, error) {
	if errs := validator.ValidateStruct(slide); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	if err := s.slideRepo.Create(slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *contentService) UpdateSlide(id uint, slide *model.Slide, editorID string) (*model.Slide, error) {
	if errs := validator.ValidateStruct(slide); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	existing, err := s.slideRepo.FindByID(id)
	if err != nil {
		return nil, s.notFound(err)
	}
	slide.ID = existing.ID
	slide.CreatedAt = existing.CreatedAt
	if err := s.slideRepo.Update(slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *contentService) DeleteSlide(id uint) error {
	if _, err := s.slideRepo.FindByID(id); err != nil {
		return s.notFound(err)
	}
	return s.slideRepo.Delete(id)
}

func (s *contentService) ActiveFAQs() ([]model.FAQ, error) {
	return s.faqRepo.FindActive()
}

func (s *contentService) AllFAQs() ([]model.FAQ, error) {
	return s.faqRepo.FindAll()
}

func (s *contentService) FAQCategories() ([]model.FAQCategory, error) {
	return s.faqRepo.FindCategories()
}

func (s *contentService) CreateFAQ(faq *model.FAQ, editorID string) (*model.FAQ, error) {
	if errs := validator.ValidateStruct(faq); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	if faq.CategoryID != nil {
		if _, err := s.faqRepo.FindCategoryByID(*faq.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: faq category %d does not exist", ErrInvalidInput, *faq.CategoryID)
		}
	}
	if err := s.faqRepo.Create(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *contentService) UpdateFAQ(id uint, faq *model.FAQ, editorID string) (*model.FAQ, error) {
	if errs := validator.ValidateStruct(faq); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	existing, err := s.faqRepo.FindByID(id)
	if err != nil {
		return nil, s.notFound(err)
	}
	if faq.CategoryID != nil {
		if _, err := s.faqRepo.FindCategoryByID(*faq.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: faq category %d does not exist", ErrInvalidInput, *faq.CategoryID)
		}
	}
	faq.ID = existing.ID
	faq.CreatedAt = existing.CreatedAt
	if err := s.faqRepo.Update(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *contentService) DeleteFAQ(id uint) error {
	if _, err := s.faqRepo.FindByID(id); err != nil {
		return s.notFound(err)
	}
	return s.faqRepo.Delete(id)
}

func (s *contentService) CreateFAQCategory(category *model.FAQCategory) (*model.FAQCategory, error) {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	if err := s.faqRepo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// PublicSettings flattens public entries into a key/value map for the
// storefront to consume in one request.
func (s *contentService) PublicSettings() (map[string]string, error) {
	settings, err := s.settingRepo.FindPublic()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}

func (s *contentService) AllSettings() ([]model.Setting, error) {
	return s.settingRepo.FindAll()
}

// UpdateSetting only changes the value of a known key. Unknown keys are
// rejected so typos don't silently create orphan entries.
func (s *contentService) UpdateSetting(key, value string) (*model.Setting, error) {
	setting, err := s.settingRepo.FindByKey(key)
	if err != nil {
		return nil, s.notFound(err)
	}
	setting.Value = value
	if err := s.settingRepo.Upsert(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *contentService) notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
