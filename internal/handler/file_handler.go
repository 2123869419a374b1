package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/filechat/internal/model"
	"github.com/ashwinyue/filechat/internal/service/files"
)

// FileHandler 文件处理器
type FileHandler struct {
	fileSvc *files.Service
}

// NewFileHandler 创建文件处理器
func NewFileHandler(fileSvc *files.Service) *FileHandler {
	return &FileHandler{
		fileSvc: fileSvc,
	}
}

// UploadFile 上传文件到 LLM 服务商
// POST /api/files/upload
func (h *FileHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required: "+err.Error())
		return
	}

	sessionID := c.PostForm("session_id")

	// 打开文件
	f, err := fileHeader.Open()
	if err != nil {
		Error(c, err)
		return
	}
	defer f.Close()

	resp, err := h.fileSvc.Upload(c.Request.Context(), &files.UploadRequest{
		SessionID: sessionID,
		Filename:  fileHeader.Filename,
		Reader:    f,
	})
	if err != nil {
		Error(c, err)
		return
	}

	OK(c, resp)
}

// ChatRequest 文件对话请求体
type ChatRequest struct {
	SessionID string              `json:"session_id" binding:"required"`
	FileID    string              `json:"file_id" binding:"required"`
	Messages  []model.ChatMessage `json:"messages" binding:"required"`
}

// ChatResponse 文件对话响应体
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatWithFile 基于已上传文件对话
// POST /api/files/chat
func (h *FileHandler) ChatWithFile(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	response, err := h.fileSvc.Chat(c.Request.Context(), &files.ChatRequest{
		SessionID: req.SessionID,
		FileID:    req.FileID,
		Messages:  req.Messages,
	})
	if err != nil {
		Error(c, err)
		return
	}

	OK(c, ChatResponse{Response: response})
}

// ListFiles 列出会话的所有文件
// GET /api/files/list?session_id=...
func (h *FileHandler) ListFiles(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		BadRequest(c, "session_id is required")
		return
	}

	infos, err := h.fileSvc.List(c.Request.Context(), sessionID)
	if err != nil {
		Error(c, err)
		return
	}

	OK(c, infos)
}
