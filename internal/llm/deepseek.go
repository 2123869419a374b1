package llm

import (
	"context"
	"fmt"

	ecomodel "github.com/cloudwego/eino/components/model"

	"github.com/ashwinyue/filechat/internal/config"
)

const (
	deepseekDefaultBaseURL = "https://api.deepseek.com/v1"
	deepseekDefaultModel   = "deepseek-chat"
)

// DeepSeekAdapter DeepSeek 纯生成适配器，复用 openai 兼容接口
type DeepSeekAdapter struct {
	chatModel ecomodel.ChatModel
	defaults  GenerateOptions
}

// NewDeepSeekAdapter 创建 DeepSeek 适配器
func NewDeepSeekAdapter(ctx context.Context, cfg *config.AIConfig) (*DeepSeekAdapter, error) {
	cm, defaults, err := newEinoChatModel(ctx, cfg, deepseekDefaultBaseURL, deepseekDefaultModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create deepseek chat model: %w", err)
	}
	return &DeepSeekAdapter{chatModel: cm, defaults: defaults}, nil
}

// Generate 发送 prompt 并返回生成的文本
func (a *DeepSeekAdapter) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	return einoGenerate(ctx, a.chatModel, "deepseek", prompt, applyOptions(a.defaults, opts))
}
