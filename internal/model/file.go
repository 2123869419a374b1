package model

import (
	"time"
)

// FileUpload 上传到 LLM 服务商的文件记录
// file_id 由服务商分配，全局唯一；记录在上传完成时创建一次，之后不再修改
type FileUpload struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID string    `json:"session_id" gorm:"index;size:36;not null"`
	FileID    string    `json:"file_id" gorm:"uniqueIndex;size:255;not null"`
	Filename  string    `json:"filename" gorm:"size:255;not null"`
	Size      int64     `json:"size" gorm:"not null"`
	MimeType  string    `json:"mime_type,omitempty" gorm:"size:100"` // 无法从文件名推断时为空
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName 指定表名
func (FileUpload) TableName() string {
	return "file_uploads"
}
