package repository

import (
	"go-coffee-store/internal/model"

	"gorm.io/gorm"
)

type SettingRepository interface {
	FindAll() ([]model.Setting, error)
	FindPublic() ([]model.Setting, error)
	FindByKey(key string) (*model.Setting, error)
	Upsert(setting *model.Setting) error
	SeedDefaults() error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db}
}

func (r *settingRepo) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	err := r.db.Order("category ASC, key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepo) FindPublic() ([]model.Setting, error) {
	var settings []model.Setting
	err := r.db.Where("is_public = ?", true).Order("category ASC, key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepo) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.First(&setting, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepo) Upsert(setting *model.Setting) error {
	var existing model.Setting
	err := r.db.First(&existing, "key = ?", setting.Key).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(setting).Error
	}
	if err != nil {
		return err
	}
	existing.Value = setting.Value
	existing.Description = setting.Description
	existing.DescriptionAr = setting.DescriptionAr
	existing.Category = setting.Category
	existing.DataType = setting.DataType
	existing.IsPublic = setting.IsPublic
	*setting = existing
	return r.db.Save(&existing).Error
}

// SeedDefaults creates default settings if they don't exist
func (r *settingRepo) SeedDefaults() error {
	for _, s := range model.DefaultSettings {
		var existing model.Setting
		if err := r.db.Where("key = ?", s.Key).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&s).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
