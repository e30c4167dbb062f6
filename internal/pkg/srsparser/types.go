package srsparser

import (
	"context"

	"github.com/srscatalog/backend/internal/model"
)

// CorpusDocument 传给语言处理服务的语料条目
type CorpusDocument struct {
	Name      string            `json:"name"`
	Structure model.SectionTree `json:"structure"`
}

// API 解析/语言处理服务的调用契约。
// 协议细节归对端所有，这里只约定本服务依赖的入口。
type API interface {
	// ParseDocx 按模板结构解析 .docx 原始内容，返回填充后的章节树
	ParseDocx(ctx context.Context, template model.SectionTree, name string, content []byte) (model.SectionTree, error)
	// ValidateTree 检查章节树语法是否合规
	ValidateTree(ctx context.Context, tree model.SectionTree) (bool, error)
	// TfIdfPairs 返回按 TF-IDF 评分降序的词条
	TfIdfPairs(ctx context.Context, documents []CorpusDocument, documentName, sectionName string) (model.KeywordList, error)
	// PullentiKeywords 返回实体引擎给出的关键词，保持引擎自身的排序
	PullentiKeywords(ctx context.Context, documents []CorpusDocument, documentName, sectionName string) (model.KeywordList, error)
	// CombinedKeywords 返回按比例混合两种信号后的词条，降序
	CombinedKeywords(ctx context.Context, documents []CorpusDocument, documentName, sectionName string) (model.KeywordList, error)
	// RenderDocx 把章节树渲染回 .docx
	RenderDocx(ctx context.Context, name string, tree model.SectionTree) ([]byte, error)
}

type parseRequest struct {
	Template model.SectionTree `json:"template"`
	Name     string            `json:"name"`
	Content  []byte            `json:"content"`
}

type parseResponse struct {
	Structure model.SectionTree `json:"structure"`
}

type validateRequest struct {
	Structure model.SectionTree `json:"structure"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

type keywordsRequest struct {
	Documents    []CorpusDocument `json:"documents"`
	DocumentName string           `json:"document_name"`
	SectionName  string           `json:"section_name,omitempty"`
}

type keywordsResponse struct {
	Keywords model.KeywordList `json:"keywords"`
}

type renderRequest struct {
	Name      string            `json:"name"`
	Structure model.SectionTree `json:"structure"`
}

type errorResponse struct {
	Error string `json:"error"`
}
