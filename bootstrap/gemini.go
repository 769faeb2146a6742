package bootstrap

import (
	"fmt"
	"time"

	"luna/pkg/config"
	"luna/pkg/gemini"
	"luna/pkg/logger"
)

// SetupGemini 初始化 Gemini 服务
func SetupGemini() *gemini.GeminiService {
	logger.InfoString("Gemini", "Setup", "正在初始化 Gemini 服务...")

	// 获取配置
	apiKey := config.GetString("gemini.api_key")
	model := config.GetString("gemini.model")

	// 检查配置完整性
	if apiKey == "" {
		logger.ErrorString("Gemini", "Config", "缺少必要的配置: GEMINI_API_KEY 未设置，解读将使用兜底文案")
		return nil
	}

	// 创建服务实例
	service := gemini.NewGeminiService(&gemini.Config{
		APIKey:     apiKey,
		BaseURL:    config.GetString("gemini.base_url"),
		Model:      model,
		Timeout:    time.Duration(config.GetInt("gemini.timeout")) * time.Second,
		MaxRetries: config.GetInt("gemini.max_retries"),
	})

	if service == nil {
		logger.ErrorString("Gemini", "Setup", "Gemini 服务初始化失败")
		return nil
	}

	logger.InfoString("Gemini", "Setup", fmt.Sprintf("Gemini 服务初始化成功 [Model: %s]", model))
	return service
}
