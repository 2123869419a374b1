package handler

import (
	"github.com/ashwinyue/filechat/internal/service/files"
)

// Handlers 处理器集合
type Handlers struct {
	File   *FileHandler
	System *SystemHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(fileSvc *files.Service) *Handlers {
	return &Handlers{
		File:   NewFileHandler(fileSvc),
		System: NewSystemHandler(),
	}
}
