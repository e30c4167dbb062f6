package service

import (
	"context"

	"github.com/srscatalog/backend/internal/model"
	"github.com/srscatalog/backend/internal/pkg/srsparser"
	"k8s.io/klog/v2"
)

// StructureValidator 章节结构校验器。
// 语法规则归外部解析服务所有，这里只负责把结果收敛成单一的通过/不通过。
type StructureValidator struct {
	parser srsparser.API
}

func NewStructureValidator(parser srsparser.API) *StructureValidator {
	return &StructureValidator{parser: parser}
}

// Validate 校验章节树是否合规。
// 对解析服务的任何调用失败一律按不合规处理，不向上传播。
func (v *StructureValidator) Validate(ctx context.Context, tree model.SectionTree) bool {
	valid, err := v.parser.ValidateTree(ctx, tree)
	if err != nil {
		klog.V(6).Infof("结构校验调用失败，按不合规处理: %v", err)
		return false
	}
	return valid
}
