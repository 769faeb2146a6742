package config

import "luna/pkg/config"

func init() {
	config.Add("reading", func() map[string]interface{} {
		return map[string]interface{}{

			// 洗牌动画时长（毫秒）
			"shuffle_delay_ms": config.Env("READING_SHUFFLE_DELAY_MS", 2500),

			// 第三张牌抽出后到发起解读的间隔（毫秒）
			"post_draw_delay_ms": config.Env("READING_POST_DRAW_DELAY_MS", 3000),

			// 打字指示持续时长（毫秒）
			"typing_delay_ms": config.Env("READING_TYPING_DELAY_MS", 1500),

			// 逆位概率
			"reversed_chance": config.Env("READING_REVERSED_CHANCE", 0.3),

			// 会话闲置回收时间（秒）
			"session_ttl": config.Env("READING_SESSION_TTL", 1800),

			// 解读请求超时（秒）
			"interpret_timeout": config.Env("READING_INTERPRET_TIMEOUT", 90),
		}
	})
}
