package repository

import (
	"errors"

	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/database"
	"gorm.io/gorm"
)

// templateRepository 实现
type templateRepository struct {
	h *database.Handle
}

// NewTemplateRepository 创建 Repository 实例
func NewTemplateRepository(h *database.Handle) TemplateRepository {
	return &templateRepository{h: h}
}

// Create 创建模板
func (r *templateRepository) Create(template *model.Template) error {
	return r.h.DB().Create(template).Error
}

// Get 根据 ID 获取模板
func (r *templateRepository) Get(id string) (*model.Template, error) {
	var template model.Template
	result := r.h.DB().Where("id = ?", id).First(&template)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &template, nil
}

// List 获取所有模板
func (r *templateRepository) List() ([]model.Template, error) {
	var templates []model.Template
	result := r.h.DB().Order("name ASC, id ASC").Find(&templates)
	return templates, result.Error
}

// Delete 删除模板
func (r *templateRepository) Delete(id string) error {
	result := r.h.DB().Where("id = ?", id).Delete(&model.Template{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
