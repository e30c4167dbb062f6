package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srscatalog/backend/internal/service"
)

// FileHandler 文件上传 Handler
type FileHandler struct {
	ingestService *service.IngestService
}

func NewFileHandler(ingestService *service.IngestService) *FileHandler {
	return &FileHandler{ingestService: ingestService}
}

// Upload 接收上传的 .docx 和目标模板，解析后入库
func (h *FileHandler) Upload(c *gin.Context) {
	templateID := c.PostForm("template_id")
	if templateID == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "template_id is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	spec, err := h.ingestService.Ingest(c.Request.Context(), templateID, fileHeader.Filename, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": spec})
}
