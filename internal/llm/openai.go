package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudwego/eino-ext/components/model/openai"
	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/ashwinyue/filechat/internal/config"
)

const (
	openaiDefaultBaseURL = "https://api.openai.com/v1"
	openaiDefaultModel   = "gpt-4o-mini"
)

// OpenAIAdapter 基于 eino openai ChatModel 的纯生成适配器
type OpenAIAdapter struct {
	chatModel ecomodel.ChatModel
	defaults  GenerateOptions
}

// NewOpenAIAdapter 创建 OpenAI 适配器
func NewOpenAIAdapter(ctx context.Context, cfg *config.AIConfig) (*OpenAIAdapter, error) {
	cm, defaults, err := newEinoChatModel(ctx, cfg, openaiDefaultBaseURL, openaiDefaultModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai chat model: %w", err)
	}
	return &OpenAIAdapter{chatModel: cm, defaults: defaults}, nil
}

// Generate 发送 prompt 并返回生成的文本
func (a *OpenAIAdapter) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	return einoGenerate(ctx, a.chatModel, "openai", prompt, applyOptions(a.defaults, opts))
}

// newEinoChatModel 构造 openai 兼容的 eino ChatModel，用于纯生成适配器
func newEinoChatModel(ctx context.Context, cfg *config.AIConfig, defaultBaseURL, defaultModel string) (ecomodel.ChatModel, GenerateOptions, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("LLM_API_KEY")
	}
	if apiKey == "" {
		return nil, GenerateOptions{}, ErrMissingAPIKey
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = os.Getenv("LLM_MODEL_NAME")
	}
	if modelName == "" {
		modelName = defaultModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	defaults := GenerateOptions{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	if defaults.MaxTokens <= 0 {
		defaults.MaxTokens = 1024
	}
	if defaults.Temperature == 0 {
		defaults.Temperature = 0.7
	}

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   modelName,
	})
	if err != nil {
		return nil, GenerateOptions{}, err
	}
	return cm, defaults, nil
}

// einoGenerate 通过 eino ChatModel 执行单轮生成
func einoGenerate(ctx context.Context, cm ecomodel.ChatModel, provider, prompt string, o GenerateOptions) (string, error) {
	callOpts := []ecomodel.Option{
		ecomodel.WithMaxTokens(o.MaxTokens),
		ecomodel.WithTemperature(o.Temperature),
	}

	resp, err := cm.Generate(ctx, []*schema.Message{
		{Role: schema.User, Content: prompt},
	}, callOpts...)
	if err != nil {
		return "", &ProviderError{Provider: provider, Err: err}
	}
	return resp.Content, nil
}
