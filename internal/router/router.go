package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/srscatalog/backend/config"
	"github.com/srscatalog/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	docHandler *handler.DocumentHandler,
	templateHandler *handler.TemplateHandler,
	fileHandler *handler.FileHandler,
	adminHandler *handler.AdminHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		docs := api.Group("/documents")
		{
			docs.POST("", docHandler.Create)
			docs.GET("", docHandler.List)
			docs.GET("/:id", docHandler.Get)
			docs.PATCH("/:id", docHandler.Update)
			docs.DELETE("/:id", docHandler.Delete)
			docs.GET("/:id/keywords", docHandler.Keywords)
			docs.GET("/:id/keywords/generation", docHandler.GenerateKeywords)
			docs.GET("/:id/sections", docHandler.Sections)
			docs.GET("/:id/download", docHandler.Download)
		}

		templates := api.Group("/templates")
		{
			templates.POST("", templateHandler.Create)
			templates.GET("", templateHandler.List)
			templates.GET("/:id", templateHandler.Get)
			templates.DELETE("/:id", templateHandler.Delete)
		}

		api.POST("/files", fileHandler.Upload)
		api.PUT("/db", adminHandler.ReconnectDatabase)
	}

	return r
}
