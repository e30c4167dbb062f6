package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/identifier"
	"github.com/srscatalog/backend/internal/repository"
	"k8s.io/klog/v2"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateInUse    = errors.New("template is referenced by existing specifications")
	ErrInvalidStructure = errors.New("invalid section structure")
)

// TemplateSummaryDTO 模板列表条目
type TemplateSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateTemplateRequest 创建模板请求
type CreateTemplateRequest struct {
	Name      string            `json:"name" binding:"required"`
	Structure model.SectionTree `json:"structure" binding:"required"`
}

// TemplateService 模板服务接口。模板创建后不可修改，只能删除。
type TemplateService interface {
	Create(ctx context.Context, req CreateTemplateRequest) (*model.Template, error)
	Get(ctx context.Context, id string) (*model.Template, error)
	List(ctx context.Context) ([]TemplateSummaryDTO, error)
	Delete(ctx context.Context, id string) error
}

// templateService 实现
type templateService struct {
	templateRepo repository.TemplateRepository
	specRepo     repository.SpecificationRepository
	validator    *StructureValidator
}

// NewTemplateService 创建服务实例
func NewTemplateService(
	templateRepo repository.TemplateRepository,
	specRepo repository.SpecificationRepository,
	validator *StructureValidator,
) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		specRepo:     specRepo,
		validator:    validator,
	}
}

// Create 创建模板。结构不合规时拒绝，不产生半写入。
func (s *templateService) Create(ctx context.Context, req CreateTemplateRequest) (*model.Template, error) {
	if !s.validator.Validate(ctx, req.Structure) {
		return nil, ErrInvalidStructure
	}

	template := &model.Template{
		Name:      req.Name,
		Structure: req.Structure,
	}
	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	klog.V(6).Infof("模板已创建: id=%s, name=%s", template.ID, template.Name)
	return template, nil
}

// Get 获取模板。非法 token 对调用方一律表现为未找到。
func (s *templateService) Get(ctx context.Context, id string) (*model.Template, error) {
	decoded, err := identifier.Parse(id)
	if err != nil {
		return nil, errors.Join(ErrTemplateNotFound, err)
	}

	template, err := s.templateRepo.Get(decoded)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return template, nil
}

// List 获取模板列表（不含结构）
func (s *templateService) List(ctx context.Context) ([]TemplateSummaryDTO, error) {
	templates, err := s.templateRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	result := make([]TemplateSummaryDTO, len(templates))
	for i, t := range templates {
		result[i] = TemplateSummaryDTO{ID: t.ID, Name: t.Name}
	}
	return result, nil
}

// Delete 删除模板。仍被文档引用的模板拒绝删除，原样保留。
// 引用检查是对文档表的一次线性扫描，和并发的文档创建之间没有事务保护。
func (s *templateService) Delete(ctx context.Context, id string) error {
	decoded, err := identifier.Parse(id)
	if err != nil {
		return errors.Join(ErrTemplateNotFound, err)
	}

	if _, err := s.templateRepo.Get(decoded); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}

	refs, err := s.specRepo.CountByTemplate(decoded)
	if err != nil {
		return fmt.Errorf("failed to count template references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: %d specifications", ErrTemplateInUse, refs)
	}

	if err := s.templateRepo.Delete(decoded); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}

	klog.V(6).Infof("模板已删除: id=%s", decoded)
	return nil
}
