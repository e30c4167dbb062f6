package repository

import (
	"errors"

	"github.com/srscatalog/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type TemplateRepository interface {
	Create(template *model.Template) error
	Get(id string) (*model.Template, error)
	List() ([]model.Template, error)
	Delete(id string) error
}

type SpecificationRepository interface {
	Create(spec *model.Specification) error
	Get(id string) (*model.Specification, error)
	List() ([]model.Specification, error)
	UpdateStructure(id string, structure model.SectionTree) error
	UpdateKeywords(id string, keywords model.KeywordList) error
	Delete(id string) error
	CountByTemplate(templateID string) (int64, error)
}
