package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/identifier"
	"github.com/srscatalog/backend/internal/pkg/srsparser"
	"github.com/srscatalog/backend/internal/repository"
	"k8s.io/klog/v2"
)

// Mode 关键词提取模式，固定三种，彼此互斥
type Mode string

const (
	ModeTfIdf    Mode = "tf_idf"
	ModePullenti Mode = "pullenti"
	ModeCombine  Mode = "combine"
)

var ErrUnsupportedMode = errors.New("unsupported keyword extraction mode")

// KeywordService 关键词提取分发器。
// 每次调用相互独立、无状态，语料为当前已入库的全部文档。
type KeywordService struct {
	specRepo repository.SpecificationRepository
	parser   srsparser.API
}

func NewKeywordService(specRepo repository.SpecificationRepository, parser srsparser.API) *KeywordService {
	return &KeywordService{specRepo: specRepo, parser: parser}
}

// Generate 对指定文档按 mode 提取关键词。
// sectionName 非空时把提取范围限定到对应子树，否则覆盖整个文档。
// tf_idf/combine 的结果按评分降序；pullenti 保持引擎排序，不做二次排序。
func (s *KeywordService) Generate(ctx context.Context, id string, mode Mode, sectionName string) (model.KeywordList, error) {
	decoded, err := identifier.Parse(id)
	if err != nil {
		return nil, errors.Join(ErrSpecificationNotFound, err)
	}

	target, err := s.specRepo.Get(decoded)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpecificationNotFound
		}
		return nil, fmt.Errorf("failed to get specification: %w", err)
	}

	specs, err := s.specRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load specification corpus: %w", err)
	}

	corpus := make([]srsparser.CorpusDocument, len(specs))
	for i, sp := range specs {
		corpus[i] = srsparser.CorpusDocument{Name: sp.Name, Structure: sp.Structure}
	}

	klog.V(6).Infof("关键词提取: spec=%s, mode=%s, section=%q, corpus=%d", target.ID, mode, sectionName, len(corpus))

	switch mode {
	case ModeTfIdf:
		return s.parser.TfIdfPairs(ctx, corpus, target.Name, sectionName)
	case ModePullenti:
		return s.parser.PullentiKeywords(ctx, corpus, target.Name, sectionName)
	case ModeCombine:
		return s.parser.CombinedKeywords(ctx, corpus, target.Name, sectionName)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
}
