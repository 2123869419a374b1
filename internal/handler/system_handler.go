package handler

import (
	"github.com/gin-gonic/gin"
)

// SystemHandler 系统处理器
type SystemHandler struct{}

// NewSystemHandler 创建系统处理器
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Root 存活探针
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	OK(c, gin.H{"message": "File Chat API is running"})
}
