package repository

import (
	"github.com/ashwinyue/filechat/internal/model"
	"gorm.io/gorm"
)

// ConversationRepository 对话记录仓库
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository 创建对话记录仓库
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create 创建对话记录
func (r *ConversationRepository) Create(conv *model.Conversation) error {
	return r.db.Create(conv).Error
}

// ListBySession 列出会话的所有对话记录，按创建时间倒序
func (r *ConversationRepository) ListBySession(sessionID string) ([]*model.Conversation, error) {
	var convs []*model.Conversation
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&convs).Error
	return convs, err
}
