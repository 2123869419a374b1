// Package files 实现文件上传、文件对话与文件列表编排流程
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ashwinyue/filechat/internal/llm"
	"github.com/ashwinyue/filechat/internal/model"
	"github.com/ashwinyue/filechat/internal/repository"
)

// ErrFileNotFound 文件不存在或不属于该会话
var ErrFileNotFound = errors.New("file not found or access denied")

// uploadPurpose 服务商侧的文件用途标记
const uploadPurpose = "assistant"

// Service 文件服务
type Service struct {
	files         repository.FileStore
	conversations repository.ConversationStore
	llm           llm.FileClient
}

// NewService 创建文件服务
func NewService(files repository.FileStore, conversations repository.ConversationStore, client llm.FileClient) *Service {
	return &Service{
		files:         files,
		conversations: conversations,
		llm:           client,
	}
}

// UploadRequest 上传请求
type UploadRequest struct {
	SessionID string // 为空时生成新会话
	Filename  string
	Reader    io.Reader
}

// UploadResponse 上传成功响应
type UploadResponse struct {
	FileID    string    `json:"file_id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	MimeType  string    `json:"mime_type,omitempty"`
	SessionID string    `json:"session_id"`
}

// Upload 接收文件流，暂存后上传到服务商并持久化元数据
// 暂存文件在所有退出路径上都会被删除
func (s *Service) Upload(ctx context.Context, req *UploadRequest) (*UploadResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
		log.Debug().Str("session_id", sessionID).Msg("generated new session id")
	}

	// 暂存到独立命名的临时文件
	tmp, err := os.CreateTemp("", "filechat-*"+filepath.Ext(req.Filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Warn().Err(err).Str("path", tmpPath).Msg("failed to delete temp file")
		}
	}()

	written, err := io.Copy(tmp, req.Reader)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stage file: %w", err)
	}

	// 上传到服务商
	result, err := s.llm.UploadFile(ctx, tmpPath, uploadPurpose)
	if err != nil {
		return nil, err
	}
	if result.FileID == "" {
		return nil, &llm.ResponseShapeError{Field: "id"}
	}

	mimeType := mimeTypeByFilename(req.Filename)

	// 服务商未报告字节数时回退到本地观测值
	size := result.ByteSize
	if size <= 0 {
		size = written
	}

	record := &model.FileUpload{
		SessionID: sessionID,
		FileID:    result.FileID,
		Filename:  req.Filename,
		Size:      size,
		MimeType:  mimeType,
	}
	if err := s.files.Create(record); err != nil {
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	log.Info().
		Str("session_id", sessionID).
		Str("file_id", record.FileID).
		Int64("size", record.Size).
		Msg("file uploaded")

	return &UploadResponse{
		FileID:    record.FileID,
		Filename:  record.Filename,
		Size:      record.Size,
		CreatedAt: record.CreatedAt,
		MimeType:  record.MimeType,
		SessionID: record.SessionID,
	}, nil
}

// ChatRequest 文件对话请求
type ChatRequest struct {
	SessionID string
	FileID    string
	Messages  []model.ChatMessage
}

// Chat 校验文件归属后转发消息序列，并持久化对话轮次
func (s *Service) Chat(ctx context.Context, req *ChatRequest) (string, error) {
	// 归属校验：文件必须属于该会话
	if _, err := s.files.GetBySessionAndFileID(req.SessionID, req.FileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("failed to look up file: %w", err)
	}

	messages := make([]llm.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = llm.Message{Role: m.Role, Content: m.Content}
	}

	response, err := s.llm.ChatWithFile(ctx, messages, req.FileID)
	if err != nil {
		return "", err
	}

	fileID := req.FileID
	conv := &model.Conversation{
		SessionID: req.SessionID,
		FileID:    &fileID,
		Messages:  req.Messages,
		Response:  response,
	}
	if err := s.conversations.Create(conv); err != nil {
		return "", fmt.Errorf("failed to save conversation: %w", err)
	}

	return response, nil
}

// FileInfo 文件列表项
type FileInfo struct {
	FileID    string `json:"file_id"`
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mime_type,omitempty"`
	CreatedAt string `json:"created_at"`
}

// List 列出会话的所有文件，按创建时间倒序
func (s *Service) List(ctx context.Context, sessionID string) ([]FileInfo, error) {
	records, err := s.files.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	infos := make([]FileInfo, 0, len(records))
	for _, f := range records {
		infos = append(infos, FileInfo{
			FileID:    f.FileID,
			Filename:  f.Filename,
			Size:      f.Size,
			MimeType:  f.MimeType,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		})
	}
	return infos, nil
}

// mimeTypeByFilename 按扩展名推断 MIME 类型，去掉参数部分；无法推断时返回空串
func mimeTypeByFilename(filename string) string {
	mt := mime.TypeByExtension(filepath.Ext(filename))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
