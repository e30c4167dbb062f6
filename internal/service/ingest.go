package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/srscatalog/backend/config"
	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/identifier"
	"github.com/srscatalog/backend/internal/pkg/srsparser"
	"github.com/srscatalog/backend/internal/repository"
	"k8s.io/klog/v2"
)

// IngestService 上传文档的接入服务：
// 暂存上传内容、按模板结构调用解析服务、把解析结果作为新文档入库。
// 解析产出的章节树不再二次校验，直接信任解析服务。
type IngestService struct {
	cfg          *config.Config
	specRepo     repository.SpecificationRepository
	templateRepo repository.TemplateRepository
	parser       srsparser.API
}

func NewIngestService(
	cfg *config.Config,
	specRepo repository.SpecificationRepository,
	templateRepo repository.TemplateRepository,
	parser srsparser.API,
) *IngestService {
	return &IngestService{
		cfg:          cfg,
		specRepo:     specRepo,
		templateRepo: templateRepo,
		parser:       parser,
	}
}

// Ingest 解析上传文件并入库。
// 暂存文件在所有退出路径上都会被清理，解析失败也不例外。
func (s *IngestService) Ingest(ctx context.Context, templateID, filename string, file io.Reader) (*model.Specification, error) {
	decoded, err := identifier.Parse(templateID)
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

	staged, err := s.stage(filename, file)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			klog.Errorf("清理暂存文件失败: path=%s, err=%v", staged, err)
		}
	}()

	content, err := os.ReadFile(staged)
	if err != nil {
		return nil, fmt.Errorf("read staged file: %w", err)
	}

	tree, err := s.parser.ParseDocx(ctx, template.Structure, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	spec := &model.Specification{
		Name:       filename,
		TemplateID: template.ID,
		Structure:  tree,
		Keywords:   model.KeywordList{},
	}
	if err := s.specRepo.Create(spec); err != nil {
		return nil, fmt.Errorf("failed to create specification: %w", err)
	}

	klog.V(6).Infof("上传文档已入库: id=%s, name=%s, template=%s", spec.ID, spec.Name, template.ID)
	return spec, nil
}

// stage 把上传内容落到暂存目录，文件名加随机前缀避免并发上传互相覆盖
func (s *IngestService) stage(filename string, file io.Reader) (string, error) {
	if err := os.MkdirAll(s.cfg.Data.Dir, 0755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	staged := filepath.Join(s.cfg.Data.Dir, uuid.NewString()+"_"+filepath.Base(filename))
	f, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}

	if _, err := io.Copy(f, file); err != nil {
		f.Close()
		os.Remove(staged)
		return "", fmt.Errorf("write staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(staged)
		return "", fmt.Errorf("close staged file: %w", err)
	}
	return staged, nil
}
