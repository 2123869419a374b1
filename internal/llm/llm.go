// Package llm 提供 LLM 服务商适配器
// 适配器边界屏蔽各服务商请求/响应格式差异，编排层不感知服务商身份
package llm

import "context"

// Message 角色标注的文本消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UploadResult 文件上传结果
type UploadResult struct {
	FileID   string // 服务商分配的文件ID
	ByteSize int64  // 服务商报告的字节数，0 表示未报告
	Filename string
	MimeType string
}

// Client 所有适配器的基础能力
type Client interface {
	// Generate 发送 prompt 并返回模型生成的文本
	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error)
}

// FileClient 支持文件上传与文件对话的适配器（主服务商）
type FileClient interface {
	Client

	// UploadFile 上传本地文件到服务商存储
	UploadFile(ctx context.Context, filePath, purpose string) (*UploadResult, error)

	// ChatWithFile 在消息序列最后一条用户消息上附加文件引用后提交，
	// 返回服务商回复的第一个文本段
	ChatWithFile(ctx context.Context, messages []Message, fileID string, opts ...GenerateOption) (string, error)
}

// GenerateOptions 生成参数
type GenerateOptions struct {
	MaxTokens   int
	Temperature float32
}

// GenerateOption 生成参数选项
type GenerateOption func(*GenerateOptions)

// WithMaxTokens 设置最大生成 token 数
func WithMaxTokens(n int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = n
	}
}

// WithTemperature 设置采样温度
func WithTemperature(t float32) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = t
	}
}

// applyOptions 应用选项到默认参数
func applyOptions(defaults GenerateOptions, opts []GenerateOption) GenerateOptions {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
