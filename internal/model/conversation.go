package model

import "time"

// ChatMessage 角色标注的文本消息
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation 一次对话轮次记录
// messages 保存调用方提交的完整请求消息序列，response 保存服务商返回的文本
type Conversation struct {
	ID        uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID string        `json:"session_id" gorm:"index;size:36;not null"`
	FileID    *string       `json:"file_id" gorm:"size:255"` // 可为空，对话不一定引用文件
	Messages  []ChatMessage `json:"messages" gorm:"type:json;serializer:json;not null"`
	Response  string        `json:"response" gorm:"type:text;not null"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Conversation) TableName() string {
	return "conversations"
}
