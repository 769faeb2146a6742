// Package gemini 封装与 Gemini 文本生成 API 的交互
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"luna/pkg/logger"
	"luna/pkg/reading"
)

// DefaultBaseURL Gemini API 默认地址
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiService 实现 reading.Interpreter
// 一次解读只发起一次请求，失败由会话降级处理，不在此做业务级重试
type GeminiService struct {
	client  *resty.Client
	apiKey  string
	baseURL string
	model   string
}

// NewGeminiService 创建新的 Gemini 服务实例
// 配置不完整时返回 nil
func NewGeminiService(config *Config) *GeminiService {
	if config == nil || config.APIKey == "" || config.Model == "" {
		return nil
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetTimeout(config.Timeout).
		SetRetryCount(config.MaxRetries).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)

	return &GeminiService{
		client:  client,
		apiKey:  config.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   config.Model,
	}
}

// Interpret 根据问题和卡牌生成解读文本，实现 reading.Interpreter
func (s *GeminiService) Interpret(ctx context.Context, question string, cards []reading.DrawnCard) (string, error) {
	start := time.Now()

	prompt := reading.BuildPrompt(question, cards)
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", s.apiKey).
		SetBody(reqBody).
		Post(fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model))

	if err != nil {
		return "", fmt.Errorf("failed to call gemini api: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("gemini api returned non-200 status: %d, body: %s",
			resp.StatusCode(), resp.String())
	}

	var genResp generateResponse
	if err := json.Unmarshal(resp.Body(), &genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal gemini response: %w", err)
	}

	if genResp.Error != nil {
		return "", fmt.Errorf("gemini api error: %s (%s)", genResp.Error.Message, genResp.Error.Status)
	}

	text := extractText(genResp)
	if text == "" {
		return "", errors.New("gemini returned empty content")
	}

	logger.InfoString("Gemini", "Success", fmt.Sprintf(
		"解读生成成功 模型:%s 耗时:%v 结果长度:%d",
		s.model, time.Since(start), len(text)))

	return text, nil
}

// HealthCheck 检查 Gemini 服务可达性
// 请求模型元数据接口，不产生生成费用
func (s *GeminiService) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		Get(fmt.Sprintf("%s/v1beta/models/%s", s.baseURL, s.model))

	if err != nil {
		return fmt.Errorf("gemini health check failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("gemini health check returned status %d", resp.StatusCode())
	}
	return nil
}

// extractText 取出第一个候选的全部文本
func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
