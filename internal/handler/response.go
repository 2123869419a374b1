package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/filechat/internal/service/files"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK 成功响应 (200)
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
}

// InternalServerError 500 错误响应
func InternalServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

// Error 根据错误类型返回相应的错误响应
// 归属校验失败映射为 404，其余一律 500
func Error(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, files.ErrFileNotFound) {
		NotFound(c, err.Error())
		return
	}
	InternalServerError(c, err.Error())
}
