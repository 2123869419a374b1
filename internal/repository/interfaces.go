// Package repository 定义数据访问接口
// 接口抽象使依赖注入和单元测试成为可能
package repository

import "github.com/ashwinyue/filechat/internal/model"

// FileStore 文件记录数据访问接口
// 接口定义使 Service 层可以轻松 mock 进行单元测试
type FileStore interface {
	Create(file *model.FileUpload) error
	GetBySessionAndFileID(sessionID, fileID string) (*model.FileUpload, error)
	ListBySession(sessionID string) ([]*model.FileUpload, error)
}

// ConversationStore 对话记录数据访问接口
type ConversationStore interface {
	Create(conv *model.Conversation) error
	ListBySession(sessionID string) ([]*model.Conversation, error)
}

// 确保实现满足接口
var (
	_ FileStore         = (*FileRepository)(nil)
	_ ConversationStore = (*ConversationRepository)(nil)
)
