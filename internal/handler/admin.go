package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srscatalog/backend/internal/pkg/database"
	"k8s.io/klog/v2"
)

// AdminHandler 运维 Handler
type AdminHandler struct {
	handle *database.Handle
}

func NewAdminHandler(handle *database.Handle) *AdminHandler {
	return &AdminHandler{handle: handle}
}

// ReconnectDatabase 切换数据库连接。
// 新连接建立并完成迁移后才会替换，失败时旧连接继续服务。
func (h *AdminHandler) ReconnectDatabase(c *gin.Context) {
	dsn := c.Query("uri")
	if dsn == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "uri is required"})
		return
	}
	dbType := c.DefaultQuery("type", "sqlite")

	if err := h.handle.Reconnect(dbType, dsn); err != nil {
		klog.Errorf("数据库重连失败: type=%s, err=%v", dbType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	klog.V(6).Infof("数据库已切换: type=%s", dbType)
	c.JSON(http.StatusOK, gin.H{"data": "OK"})
}
