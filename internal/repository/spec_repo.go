package repository

import (
	"errors"
	"time"

	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/database"
	"gorm.io/gorm"
)

type specificationRepository struct {
	h *database.Handle
}

func NewSpecificationRepository(h *database.Handle) SpecificationRepository {
	return &specificationRepository{h: h}
}

func (r *specificationRepository) Create(spec *model.Specification) error {
	return r.h.DB().Create(spec).Error
}

func (r *specificationRepository) Get(id string) (*model.Specification, error) {
	var spec model.Specification
	result := r.h.DB().Where("id = ?", id).First(&spec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &spec, nil
}

func (r *specificationRepository) List() ([]model.Specification, error) {
	var specs []model.Specification
	result := r.h.DB().Order("name ASC, id ASC").Find(&specs)
	return specs, result.Error
}

// UpdateStructure 原地覆盖结构，不触碰关键词字段
func (r *specificationRepository) UpdateStructure(id string, structure model.SectionTree) error {
	return r.h.DB().Model(&model.Specification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"structure":  structure,
			"updated_at": time.Now(),
		}).Error
}

// UpdateKeywords 原地覆盖关键词，不触碰结构字段
func (r *specificationRepository) UpdateKeywords(id string, keywords model.KeywordList) error {
	return r.h.DB().Model(&model.Specification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"keywords":   keywords,
			"updated_at": time.Now(),
		}).Error
}

func (r *specificationRepository) Delete(id string) error {
	result := r.h.DB().Where("id = ?", id).Delete(&model.Specification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByTemplate 统计引用指定模板的文档数。
// 模板删除前的引用检查就是这里的一次线性扫描，和文档创建之间没有事务保护。
func (r *specificationRepository) CountByTemplate(templateID string) (int64, error) {
	var count int64
	result := r.h.DB().Model(&model.Specification{}).
		Where("template_id = ?", templateID).
		Count(&count)
	return count, result.Error
}
