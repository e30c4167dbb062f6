package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Specification 需求规格说明书：按模板章节树组织的文档
type Specification struct {
	ID         string      `json:"id" gorm:"primaryKey;size:36"`
	Name       string      `json:"name" gorm:"size:255;not null"`
	TemplateID string      `json:"template_id" gorm:"size:36;index;not null"`
	Structure  SectionTree `json:"structure" gorm:"type:json"`
	Keywords   KeywordList `json:"keywords" gorm:"type:json"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (Specification) TableName() string {
	return "specifications"
}

// BeforeCreate 主键由存储侧生成，创建后不可变
func (s *Specification) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Template 章节树模板：文档创建时引用的结构骨架
type Template struct {
	ID        string      `json:"id" gorm:"primaryKey;size:36"`
	Name      string      `json:"name" gorm:"size:255;not null"`
	Structure SectionTree `json:"structure" gorm:"type:json"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Template) TableName() string {
	return "templates"
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
