package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ashwinyue/filechat/internal/config"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com/v1"
	anthropicDefaultModel   = "claude-3-opus-20240229"
	anthropicVersion        = "2023-06-01"
	anthropicFilesBeta      = "files-api-2025-04-14"
)

// AnthropicClient Anthropic 适配器，主服务商，支持文件上传与文件对话
type AnthropicClient struct {
	apiKey     string
	model      string
	baseURL    string
	defaults   GenerateOptions
	httpClient *http.Client
}

// AnthropicOption AnthropicClient 构造选项
type AnthropicOption func(*AnthropicClient)

// WithHTTPClient 使用自定义 HTTP 客户端（测试时重定向到 mock 服务器）
func WithHTTPClient(hc *http.Client) AnthropicOption {
	return func(c *AnthropicClient) {
		c.httpClient = hc
	}
}

// NewAnthropicClient 创建 Anthropic 适配器
// API Key 从配置解析，为空时回退到 LLM_API_KEY 环境变量；均为空时返回 ErrMissingAPIKey
func NewAnthropicClient(cfg *config.AIConfig, opts ...AnthropicOption) (*AnthropicClient, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("LLM_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = os.Getenv("LLM_MODEL_NAME")
	}
	if model == "" {
		model = anthropicDefaultModel
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = anthropicDefaultBaseURL
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	c := &AnthropicClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		defaults: GenerateOptions{
			MaxTokens:   maxTokens,
			Temperature: temperature,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ========== 请求/响应结构 ==========

type anthropicFileSource struct {
	Type   string `json:"type"`
	FileID string `json:"file_id"`
}

type anthropicContentBlock struct {
	Type   string               `json:"type"`
	Text   string               `json:"text,omitempty"`
	Source *anthropicFileSource `json:"source,omitempty"`
}

type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

type anthropicChatRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float32            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicChatResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

type anthropicUploadResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	// 不同版本的响应用过两个字段名，都可能缺失
	Bytes     int64 `json:"bytes"`
	SizeBytes int64 `json:"size_bytes"`
}

// ========== FileClient 实现 ==========

// UploadFile 上传文件到服务商存储
func (c *AnthropicClient) UploadFile(ctx context.Context, filePath, purpose string) (*UploadResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if err := w.WriteField("purpose", purpose); err != nil {
		return nil, fmt.Errorf("failed to write purpose field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setHeaders(req, true)

	var out anthropicUploadResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}

	size := out.SizeBytes
	if size <= 0 {
		size = out.Bytes
	}
	return &UploadResult{
		FileID:   out.ID,
		ByteSize: size,
		Filename: out.Filename,
		MimeType: out.MimeType,
	}, nil
}

// ChatWithFile 在最后一条用户消息上附加文件引用后提交完整消息序列
func (c *AnthropicClient) ChatWithFile(ctx context.Context, messages []Message, fileID string, opts ...GenerateOption) (string, error) {
	o := applyOptions(c.defaults, opts)

	converted := make([]anthropicMessage, len(messages))
	for i, m := range messages {
		converted[i] = anthropicMessage{
			Role:    m.Role,
			Content: []anthropicContentBlock{{Type: "text", Text: m.Content}},
		}
	}

	// 文件引用附加到最后一条用户消息
	if n := len(converted); n > 0 && converted[n-1].Role == "user" {
		converted[n-1].Content = append(converted[n-1].Content, anthropicContentBlock{
			Type: "document",
			Source: &anthropicFileSource{
				Type:   "file",
				FileID: fileID,
			},
		})
	}

	return c.chat(ctx, converted, o)
}

// Generate 发送 prompt 并返回生成的文本
func (c *AnthropicClient) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	o := applyOptions(c.defaults, opts)

	messages := []anthropicMessage{
		{
			Role:    "user",
			Content: []anthropicContentBlock{{Type: "text", Text: prompt}},
		},
	}

	text, err := c.chat(ctx, messages, o)
	if err != nil {
		var shapeErr *ResponseShapeError
		if errors.As(err, &shapeErr) {
			// generate 契约只区分 ProviderError
			return "", &ProviderError{
				Provider: "anthropic",
				Message:  shapeErr.Error(),
				Err:      shapeErr,
			}
		}
		return "", err
	}
	return text, nil
}

// chat 提交消息序列并返回回复的第一个文本段
func (c *AnthropicClient) chat(ctx context.Context, messages []anthropicMessage, o GenerateOptions) (string, error) {
	payload := anthropicChatRequest{
		Model:       c.model,
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
		Messages:    messages,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req, true)

	var out anthropicChatResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}

	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", &ResponseShapeError{Provider: "anthropic", Field: "content[].text"}
}

// setHeaders 设置认证与版本头
func (c *AnthropicClient) setHeaders(req *http.Request, filesBeta bool) {
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	if filesBeta {
		req.Header.Set("anthropic-beta", anthropicFilesBeta)
	}
}

// do 执行请求并解析响应体，失败时返回 ProviderError
func (c *AnthropicClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderError{Provider: "anthropic", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Provider: "anthropic", StatusCode: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{
			Provider:   "anthropic",
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderError{Provider: "anthropic", StatusCode: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	return nil
}
