package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/srscatalog/backend/internal/eventbus"
	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/identifier"
	"github.com/srscatalog/backend/internal/pkg/srsparser"
	"github.com/srscatalog/backend/internal/repository"
	"k8s.io/klog/v2"
)

var (
	ErrSpecificationNotFound = errors.New("specification not found")
	ErrTemplateMissing       = errors.New("referenced template does not exist")
	ErrEmptyUpdate           = errors.New("update contains neither structure nor keywords")
	ErrConflictingUpdate     = errors.New("update must contain exactly one of structure or keywords")
)

// SpecificationSummaryDTO 文档列表条目
type SpecificationSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateSpecificationRequest 创建文档请求
type CreateSpecificationRequest struct {
	Name       string            `json:"name" binding:"required"`
	TemplateID string            `json:"template_id" binding:"required"`
	Structure  model.SectionTree `json:"structure" binding:"required"`
}

// UpdateSpecificationRequest 部分更新请求。
// structure 和 keywords 必须恰好给出一个，互不影响对方字段。
type UpdateSpecificationRequest struct {
	Structure *model.SectionTree `json:"structure"`
	Keywords  *model.KeywordList `json:"keywords"`
}

// DocumentService 文档服务
type DocumentService struct {
	specRepo     repository.SpecificationRepository
	templateRepo repository.TemplateRepository
	validator    *StructureValidator
	parser       srsparser.API
	bus          *eventbus.SpecEventBus
}

func NewDocumentService(
	specRepo repository.SpecificationRepository,
	templateRepo repository.TemplateRepository,
	validator *StructureValidator,
	parser srsparser.API,
	bus *eventbus.SpecEventBus,
) *DocumentService {
	return &DocumentService{
		specRepo:     specRepo,
		templateRepo: templateRepo,
		validator:    validator,
		parser:       parser,
		bus:          bus,
	}
}

// Create 创建文档。检查顺序：模板标识解码、模板存在性、结构合规性，
// 全部通过后才落库，关键词初始为空列表。
func (s *DocumentService) Create(ctx context.Context, req CreateSpecificationRequest) (*model.Specification, error) {
	templateID, err := identifier.Parse(req.TemplateID)
	if err != nil {
		return nil, errors.Join(ErrTemplateMissing, err)
	}

	if _, err := s.templateRepo.Get(templateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateMissing
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if !s.validator.Validate(ctx, req.Structure) {
		return nil, ErrInvalidStructure
	}

	spec := &model.Specification{
		Name:       req.Name,
		TemplateID: templateID,
		Structure:  req.Structure,
		Keywords:   model.KeywordList{},
	}
	if err := s.specRepo.Create(spec); err != nil {
		return nil, fmt.Errorf("failed to create specification: %w", err)
	}

	s.publish(ctx, eventbus.SpecEventCreated, spec)
	return spec, nil
}

// Get 获取单个文档
func (s *DocumentService) Get(ctx context.Context, id string) (*model.Specification, error) {
	decoded, err := identifier.Parse(id)
	if err != nil {
		return nil, errors.Join(ErrSpecificationNotFound, err)
	}

	spec, err := s.specRepo.Get(decoded)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpecificationNotFound
		}
		return nil, fmt.Errorf("failed to get specification: %w", err)
	}
	return spec, nil
}

// ListSummaries 获取文档列表（不含结构和关键词）
func (s *DocumentService) ListSummaries(ctx context.Context) ([]SpecificationSummaryDTO, error) {
	specs, err := s.specRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list specifications: %w", err)
	}

	result := make([]SpecificationSummaryDTO, len(specs))
	for i, sp := range specs {
		result[i] = SpecificationSummaryDTO{ID: sp.ID, Name: sp.Name}
	}
	return result, nil
}

// ListFull 获取文档列表（完整实体）
func (s *DocumentService) ListFull(ctx context.Context) ([]model.Specification, error) {
	specs, err := s.specRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list specifications: %w", err)
	}
	return specs, nil
}

// Update 部分更新。结构更新不会重新对照模板校验，两类更新互不干扰，
// 并发写入按后写覆盖处理，没有乐观锁。
func (s *DocumentService) Update(ctx context.Context, id string, req UpdateSpecificationRequest) error {
	if req.Structure == nil && req.Keywords == nil {
		return ErrEmptyUpdate
	}
	if req.Structure != nil && req.Keywords != nil {
		return ErrConflictingUpdate
	}

	spec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if req.Structure != nil {
		if err := s.specRepo.UpdateStructure(spec.ID, *req.Structure); err != nil {
			return fmt.Errorf("failed to update structure: %w", err)
		}
		s.publish(ctx, eventbus.SpecEventStructureUpdated, spec)
		return nil
	}

	if err := s.specRepo.UpdateKeywords(spec.ID, *req.Keywords); err != nil {
		return fmt.Errorf("failed to update keywords: %w", err)
	}
	s.publish(ctx, eventbus.SpecEventKeywordsUpdated, spec)
	return nil
}

// Delete 删除文档
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	spec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.specRepo.Delete(spec.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSpecificationNotFound
		}
		return fmt.Errorf("failed to delete specification: %w", err)
	}

	s.publish(ctx, eventbus.SpecEventDeleted, spec)
	return nil
}

// Keywords 获取文档当前存储的关键词
func (s *DocumentService) Keywords(ctx context.Context, id string) (model.KeywordList, error) {
	spec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if spec.Keywords == nil {
		return model.KeywordList{}, nil
	}
	return spec.Keywords, nil
}

// SectionNames 返回文档结构的全部章节名
func (s *DocumentService) SectionNames(ctx context.Context, id string) ([]string, error) {
	spec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return spec.Structure.SectionNames(), nil
}

// ExportDocx 通过解析服务把文档渲染回 .docx
func (s *DocumentService) ExportDocx(ctx context.Context, id string) (string, []byte, error) {
	spec, err := s.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}

	data, err := s.parser.RenderDocx(ctx, spec.Name, spec.Structure)
	if err != nil {
		return "", nil, fmt.Errorf("failed to render document: %w", err)
	}
	return spec.Name + ".docx", data, nil
}

func (s *DocumentService) publish(ctx context.Context, eventType eventbus.SpecEventType, spec *model.Specification) {
	if s.bus == nil {
		return
	}
	event := eventbus.SpecEvent{
		Type:       eventType,
		SpecID:     spec.ID,
		Name:       spec.Name,
		TemplateID: spec.TemplateID,
	}
	if err := s.bus.Publish(ctx, eventType, event); err != nil {
		klog.V(6).Infof("事件分发失败: type=%s, spec=%s, err=%v", eventType, spec.ID, err)
	}
}
