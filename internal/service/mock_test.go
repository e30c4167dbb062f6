package service

import (
	"context"
	"testing"

	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/database"
	"github.com/srscatalog/backend/internal/pkg/srsparser"
	"github.com/srscatalog/backend/internal/repository"
)

// mockParser 解析服务打桩。未设置的入口按"结构合规、其余返回零值"处理。
type mockParser struct {
	ParseDocxFunc        func(ctx context.Context, template model.SectionTree, name string, content []byte) (model.SectionTree, error)
	ValidateTreeFunc     func(ctx context.Context, tree model.SectionTree) (bool, error)
	TfIdfPairsFunc       func(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error)
	PullentiKeywordsFunc func(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error)
	CombinedKeywordsFunc func(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error)
	RenderDocxFunc       func(ctx context.Context, name string, tree model.SectionTree) ([]byte, error)
}

func (m *mockParser) ParseDocx(ctx context.Context, template model.SectionTree, name string, content []byte) (model.SectionTree, error) {
	if m.ParseDocxFunc != nil {
		return m.ParseDocxFunc(ctx, template, name, content)
	}
	return model.SectionTree{}, nil
}

func (m *mockParser) ValidateTree(ctx context.Context, tree model.SectionTree) (bool, error) {
	if m.ValidateTreeFunc != nil {
		return m.ValidateTreeFunc(ctx, tree)
	}
	return true, nil
}

func (m *mockParser) TfIdfPairs(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
	if m.TfIdfPairsFunc != nil {
		return m.TfIdfPairsFunc(ctx, documents, documentName, sectionName)
	}
	return nil, nil
}

func (m *mockParser) PullentiKeywords(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
	if m.PullentiKeywordsFunc != nil {
		return m.PullentiKeywordsFunc(ctx, documents, documentName, sectionName)
	}
	return nil, nil
}

func (m *mockParser) CombinedKeywords(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
	if m.CombinedKeywordsFunc != nil {
		return m.CombinedKeywordsFunc(ctx, documents, documentName, sectionName)
	}
	return nil, nil
}

func (m *mockParser) RenderDocx(ctx context.Context, name string, tree model.SectionTree) ([]byte, error) {
	if m.RenderDocxFunc != nil {
		return m.RenderDocxFunc(ctx, name, tree)
	}
	return nil, nil
}

type testEnv struct {
	templateRepo repository.TemplateRepository
	specRepo     repository.SpecificationRepository
	parser       *mockParser
	validator    *StructureValidator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	h, err := database.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	parser := &mockParser{}
	return &testEnv{
		templateRepo: repository.NewTemplateRepository(h),
		specRepo:     repository.NewSpecificationRepository(h),
		parser:       parser,
		validator:    NewStructureValidator(parser),
	}
}

func testTree(sections ...string) model.SectionTree {
	children := make([]model.SectionNode, len(sections))
	for i, name := range sections {
		children[i] = model.SectionNode{Name: name, Content: "..."}
	}
	return model.SectionTree{
		Root: model.SectionNode{Name: "Техническое задание", Children: children},
	}
}

func createTestTemplate(t *testing.T, env *testEnv, name string) *model.Template {
	t.Helper()
	template := &model.Template{Name: name, Structure: testTree("Введение", "Требования")}
	if err := env.templateRepo.Create(template); err != nil {
		t.Fatalf("create template error: %v", err)
	}
	return template
}
