package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey API Key 未提供（配置与 LLM_API_KEY 环境变量均为空）
	ErrMissingAPIKey = errors.New("llm: api key must be provided via config or LLM_API_KEY env var")

	// ErrUnsupportedProvider 不支持的服务商名称
	ErrUnsupportedProvider = errors.New("llm: unsupported provider")
)

// ProviderError 服务商调用失败：网络错误、非 2xx 状态或响应体无法解析
type ProviderError struct {
	Provider   string
	StatusCode int // 0 表示传输层失败
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm: %s request failed with status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm: %s request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ResponseShapeError 服务商响应缺少预期字段
type ResponseShapeError struct {
	Provider string
	Field    string
}

func (e *ResponseShapeError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("llm: response missing expected field %q", e.Field)
	}
	return fmt.Sprintf("llm: %s response missing expected field %q", e.Provider, e.Field)
}
