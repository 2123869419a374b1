package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashwinyue/filechat/internal/config"
)

// New 根据服务商名称创建适配器，名称不区分大小写
// 凭证校验由各适配器构造函数完成
func New(ctx context.Context, provider string, cfg *config.AIConfig) (Client, error) {
	switch strings.ToLower(provider) {
	case "anthropic":
		return NewAnthropicClient(cfg)
	case "openai":
		return NewOpenAIAdapter(ctx, cfg)
	case "deepseek":
		return NewDeepSeekAdapter(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

// 确保适配器满足接口
var (
	_ FileClient = (*AnthropicClient)(nil)
	_ Client     = (*OpenAIAdapter)(nil)
	_ Client     = (*DeepSeekAdapter)(nil)
)
