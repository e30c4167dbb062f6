package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srscatalog/backend/internal/service"
)

// DocumentHandler 文档 Handler
type DocumentHandler struct {
	docService     *service.DocumentService
	keywordService *service.KeywordService
}

// NewDocumentHandler 创建文档处理器
func NewDocumentHandler(docService *service.DocumentService, keywordService *service.KeywordService) *DocumentHandler {
	return &DocumentHandler{
		docService:     docService,
		keywordService: keywordService,
	}
}

// Create 创建文档
func (h *DocumentHandler) Create(c *gin.Context) {
	var req service.CreateSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	spec, err := h.docService.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": spec})
}

// List 获取文档列表。short=true（默认）只返回 id 和名称。
func (h *DocumentHandler) List(c *gin.Context) {
	if c.DefaultQuery("short", "true") == "true" {
		specs, err := h.docService.ListSummaries(c.Request.Context())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": specs})
		return
	}

	specs, err := h.docService.ListFull(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": specs})
}

// Get 获取单个文档详情
func (h *DocumentHandler) Get(c *gin.Context) {
	spec, err := h.docService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": spec})
}

// Update 部分更新：structure 和 keywords 恰好二选一
func (h *DocumentHandler) Update(c *gin.Context) {
	var req service.UpdateSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.docService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "OK"})
}

// Delete 删除文档
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.docService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "OK"})
}

// Keywords 获取文档当前存储的关键词
func (h *DocumentHandler) Keywords(c *gin.Context) {
	keywords, err := h.docService.Keywords(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": keywords})
}

// GenerateKeywords 按指定模式提取关键词
func (h *DocumentHandler) GenerateKeywords(c *gin.Context) {
	mode := service.Mode(c.Query("mode"))
	sectionName := c.Query("section_name")

	keywords, err := h.keywordService.Generate(c.Request.Context(), c.Param("id"), mode, sectionName)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": keywords})
}

// Sections 获取文档结构的章节名列表
func (h *DocumentHandler) Sections(c *gin.Context) {
	names, err := h.docService.SectionNames(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": names})
}

// Download 导出文档为 .docx
func (h *DocumentHandler) Download(c *gin.Context) {
	filename, data, err := h.docService.ExportDocx(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
}
