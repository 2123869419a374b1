package router

import (
	"github.com/ashwinyue/filechat/internal/handler"
	"github.com/ashwinyue/filechat/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 存活探针
	r.GET("/", h.System.Root)

	// API
	api := r.Group("/api")
	{
		files := api.Group("/files")
		{
			files.POST("/upload", h.File.UploadFile)
			files.POST("/chat", h.File.ChatWithFile)
			files.GET("/list", h.File.ListFiles)
		}
	}

	return r
}
