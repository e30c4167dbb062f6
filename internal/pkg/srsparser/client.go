// Package srsparser 是外部解析/语言处理服务的 HTTP 客户端。
// 文档解析、结构语法检查和三种关键词评分算法都在对端实现。
package srsparser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/srscatalog/backend/config"
	"github.com/srscatalog/backend/internal/model"
	"k8s.io/klog/v2"
)

// Client 解析服务客户端
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient 创建新的解析服务客户端
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Parser.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		BaseURL: cfg.Parser.APIURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// ParseDocx 按模板结构解析 .docx 内容
func (c *Client) ParseDocx(ctx context.Context, template model.SectionTree, name string, content []byte) (model.SectionTree, error) {
	klog.V(6).Infof("ParseDocx 请求: name=%s, size=%d", name, len(content))
	var resp parseResponse
	err := c.postJSON(ctx, "/api/v1/parse", parseRequest{
		Template: template,
		Name:     name,
		Content:  content,
	}, &resp)
	if err != nil {
		return model.SectionTree{}, err
	}
	return resp.Structure, nil
}

// ValidateTree 检查章节树语法
func (c *Client) ValidateTree(ctx context.Context, tree model.SectionTree) (bool, error) {
	var resp validateResponse
	err := c.postJSON(ctx, "/api/v1/validate", validateRequest{Structure: tree}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Valid, nil
}

// TfIdfPairs TF-IDF 词频评分
func (c *Client) TfIdfPairs(ctx context.Context, documents []CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
	return c.keywords(ctx, "/api/v1/keywords/tf-idf", documents, documentName, sectionName)
}

// PullentiKeywords 实体引擎关键词提取
func (c *Client) PullentiKeywords(ctx context.Context, documents []CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
	return c.keywords(ctx, "/api/v1/keywords/pullenti", documents, documentName, sectionName)
}

// CombinedKeywords 混合信号评分
func (c *Client) CombinedKeywords(ctx context.Context, documents []CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
	return c.keywords(ctx, "/api/v1/keywords/combined", documents, documentName, sectionName)
}

func (c *Client) keywords(ctx context.Context, path string, documents []CorpusDocument, documentName, sectionName string) (model.KeywordList, error) {
	klog.V(6).Infof("keywords 请求: path=%s, corpus=%d, document=%s, section=%q", path, len(documents), documentName, sectionName)
	var resp keywordsResponse
	err := c.postJSON(ctx, path, keywordsRequest{
		Documents:    documents,
		DocumentName: documentName,
		SectionName:  sectionName,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Keywords, nil
}

// RenderDocx 渲染章节树为 .docx 字节流
func (c *Client) RenderDocx(ctx context.Context, name string, tree model.SectionTree) ([]byte, error) {
	body, err := json.Marshal(renderRequest{Name: name, Structure: tree})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/v1/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.serviceError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) postJSON(ctx context.Context, path string, in interface{}, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("parser service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.serviceError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode parser service response: %w", err)
	}
	return nil
}

func (c *Client) serviceError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var errResp errorResponse
	if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
		return fmt.Errorf("parser service error: status=%d, %s", resp.StatusCode, errResp.Error)
	}
	return fmt.Errorf("parser service error: status=%d", resp.StatusCode)
}
