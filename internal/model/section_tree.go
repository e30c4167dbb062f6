package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SectionNode 章节树节点。叶子节点可以携带抽取出的正文内容。
// 树总是自顶向下构建，同级节点名称唯一由外部解析服务保证。
type SectionNode struct {
	Name     string        `json:"name"`
	Content  string        `json:"content,omitempty"`
	Children []SectionNode `json:"children,omitempty"`
}

// SectionTree 章节树（根节点），以 JSON 文本列的形式落库
type SectionTree struct {
	Root SectionNode `json:"root"`
}

// Value 实现 driver.Valuer
func (t SectionTree) Value() (driver.Value, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner
func (t *SectionTree) Scan(value interface{}) error {
	if value == nil {
		*t = SectionTree{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported section tree column type %T", value)
	}
}

// SectionNames 先序遍历返回全部章节名
func (t SectionTree) SectionNames() []string {
	var names []string
	var walk func(n SectionNode)
	walk = func(n SectionNode) {
		names = append(names, n.Name)
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(t.Root)
	return names
}

// FindSection 按章节名查找子树，返回第一个匹配的节点
func (t SectionTree) FindSection(name string) (*SectionNode, bool) {
	var find func(n *SectionNode) (*SectionNode, bool)
	find = func(n *SectionNode) (*SectionNode, bool) {
		if n.Name == name {
			return n, true
		}
		for i := range n.Children {
			if found, ok := find(&n.Children[i]); ok {
				return found, true
			}
		}
		return nil, false
	}
	return find(&t.Root)
}

// Keyword 提取出的关键词条目。tf_idf/combine 模式带评分，pullenti 模式只有词条。
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score,omitempty"`
}

// KeywordList 关键词列表，以 JSON 文本列的形式落库
type KeywordList []Keyword

func (l KeywordList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *KeywordList) Scan(value interface{}) error {
	if value == nil {
		*l = KeywordList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported keyword column type %T", value)
	}
}
