package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srscatalog/backend/internal/service"
)

// writeServiceError 把服务层的类型化结果映射为状态码。
// 非法标识符和真正的未找到在这里统一表现为 404；
// 校验类拒绝（模板缺失、结构不合规、非法模式、非法更新）为 422；
// 仍被引用的模板删除为 409；其余一律 500。
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSpecificationNotFound),
		errors.Is(err, service.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTemplateMissing),
		errors.Is(err, service.ErrInvalidStructure),
		errors.Is(err, service.ErrUnsupportedMode),
		errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, service.ErrConflictingUpdate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTemplateInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
