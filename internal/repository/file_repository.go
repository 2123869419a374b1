package repository

import (
	"github.com/ashwinyue/filechat/internal/model"
	"gorm.io/gorm"
)

// FileRepository 文件记录仓库
type FileRepository struct {
	db *gorm.DB
}

// NewFileRepository 创建文件记录仓库
func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create 创建文件记录
func (r *FileRepository) Create(file *model.FileUpload) error {
	return r.db.Create(file).Error
}

// GetBySessionAndFileID 按会话与服务商文件ID查找文件记录
// 未找到时返回 gorm.ErrRecordNotFound
func (r *FileRepository) GetBySessionAndFileID(sessionID, fileID string) (*model.FileUpload, error) {
	var file model.FileUpload
	err := r.db.Where("session_id = ? AND file_id = ?", sessionID, fileID).First(&file).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// ListBySession 列出会话的所有文件记录，按创建时间倒序
func (r *FileRepository) ListBySession(sessionID string) ([]*model.FileUpload, error) {
	var files []*model.FileUpload
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}
