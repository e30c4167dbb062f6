package service

import (
	"context"
	"errors"
	"testing"

	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/identifier"
	"github.com/srscatalog/backend/internal/pkg/srsparser"
)

func seedSpecs(t *testing.T, env *testEnv, names ...string) []*model.Specification {
	t.Helper()
	template := createTestTemplate(t, env, "T")
	docSvc := NewDocumentService(env.specRepo, env.templateRepo, env.validator, env.parser, nil)

	specs := make([]*model.Specification, len(names))
	for i, name := range names {
		spec, err := docSvc.Create(context.Background(), CreateSpecificationRequest{
			Name:       name,
			TemplateID: template.ID,
			Structure:  testTree("Введение", "Требования"),
		})
		if err != nil {
			t.Fatalf("create specification %s error: %v", name, err)
		}
		specs[i] = spec
	}
	return specs
}

func TestKeywordServiceDispatchTfIdf(t *testing.T) {
	env := newTestEnv(t)
	specs := seedSpecs(t, env, "alpha", "beta")

	expected := model.KeywordList{
		{Term: "система", Score: 0.9},
		{Term: "требование", Score: 0.4},
	}
	var gotCorpus int
	var gotName, gotSection string
	env.parser.TfIdfPairsFunc = func(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
		gotCorpus = len(documents)
		gotName = documentName
		gotSection = sectionName
		return expected, nil
	}

	svc := NewKeywordService(env.specRepo, env.parser)
	keywords, err := svc.Generate(context.Background(), specs[1].ID, ModeTfIdf, "")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(keywords) != 2 || keywords[0].Term != "система" {
		t.Fatalf("unexpected keywords: %+v", keywords)
	}
	// 语料是全部已入库文档，目标按名称定位
	if gotCorpus != 2 {
		t.Fatalf("expected corpus of 2, got %d", gotCorpus)
	}
	if gotName != "beta" {
		t.Fatalf("expected target beta, got %s", gotName)
	}
	if gotSection != "" {
		t.Fatalf("expected whole-document scope, got %q", gotSection)
	}
}

func TestKeywordServiceDispatchPullentiWithSection(t *testing.T) {
	env := newTestEnv(t)
	specs := seedSpecs(t, env, "alpha")

	var gotSection string
	env.parser.PullentiKeywordsFunc = func(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
		gotSection = sectionName
		// 引擎给出的顺序原样返回，不做二次排序
		return model.KeywordList{{Term: "АСУ"}, {Term: "ГОСТ"}}, nil
	}

	svc := NewKeywordService(env.specRepo, env.parser)
	keywords, err := svc.Generate(context.Background(), specs[0].ID, ModePullenti, "Требования")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if gotSection != "Требования" {
		t.Fatalf("section scope not forwarded, got %q", gotSection)
	}
	if len(keywords) != 2 || keywords[0].Term != "АСУ" {
		t.Fatalf("unexpected keywords: %+v", keywords)
	}
}

func TestKeywordServiceDispatchCombine(t *testing.T) {
	env := newTestEnv(t)
	specs := seedSpecs(t, env, "alpha")

	called := false
	env.parser.CombinedKeywordsFunc = func(ctx context.Context, documents []srsparser.CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
		called = true
		return model.KeywordList{{Term: "система", Score: 0.7}}, nil
	}

	svc := NewKeywordService(env.specRepo, env.parser)
	if _, err := svc.Generate(context.Background(), specs[0].ID, ModeCombine, ""); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !called {
		t.Fatalf("combine mode must dispatch to the combined scorer")
	}
}

func TestKeywordServiceUnsupportedMode(t *testing.T) {
	env := newTestEnv(t)
	specs := seedSpecs(t, env, "alpha")

	svc := NewKeywordService(env.specRepo, env.parser)
	_, err := svc.Generate(context.Background(), specs[0].ID, Mode("unknown"), "")
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Fatalf("expected ErrUnsupportedMode, got %v", err)
	}
}

func TestKeywordServiceTargetNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewKeywordService(env.specRepo, env.parser)

	_, err := svc.Generate(context.Background(), "9b2d1e44-0c1a-4e0d-9a63-8d1f2a3b4c5d", ModeTfIdf, "")
	if !errors.Is(err, ErrSpecificationNotFound) {
		t.Fatalf("expected ErrSpecificationNotFound, got %v", err)
	}

	_, err = svc.Generate(context.Background(), "###", ModeTfIdf, "")
	if !errors.Is(err, ErrSpecificationNotFound) {
		t.Fatalf("expected ErrSpecificationNotFound for malformed id, got %v", err)
	}
	if !errors.Is(err, identifier.ErrMalformed) {
		t.Fatalf("expected malformed marker preserved, got %v", err)
	}
}
