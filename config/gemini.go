package config

import "luna/pkg/config"

func init() {
	config.Add("gemini", func() map[string]interface{} {
		return map[string]interface{}{
			"api_key":     config.Env("GEMINI_API_KEY", ""),
			"base_url":    config.Env("GEMINI_BASE_URL", ""),
			"model":       config.Env("GEMINI_MODEL", "gemini-3-flash-preview"),
			"timeout":     config.Env("GEMINI_TIMEOUT", 90),
			"max_retries": config.Env("GEMINI_MAX_RETRIES", 3),
		}
	})
}
