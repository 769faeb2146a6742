package routes

import (
	"luna/app/http/controllers/api/v1/tarot"
	"luna/app/http/middlewares"

	"github.com/gin-gonic/gin"
)

// 路由限流配置
const (
	// 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 创建会话限流：每小时每IP 100 请求
	CreateSessionLimit = "100-H"
	// 会话操作限流：每分钟每IP 300 请求
	SessionActionLimit = "300-M"
)

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	// 塔罗牌解读会话相关路由
	tarotRoutes := v1.Group("/tarot")
	{
		sc := tarot.NewSessionController()

		// 创建解读会话
		// POST /v1/tarot/sessions
		tarotRoutes.POST("/sessions",
			middlewares.LimitIP(CreateSessionLimit),
			sc.Store,
		)

		// 获取会话快照
		// GET /v1/tarot/sessions/:id
		tarotRoutes.GET("/sessions/:id",
			middlewares.LimitPerRoute(SessionActionLimit),
			sc.Show,
		)

		// 开始解读（记录问题并洗牌）
		// POST /v1/tarot/sessions/:id/begin
		tarotRoutes.POST("/sessions/:id/begin",
			middlewares.LimitPerRoute(SessionActionLimit),
			sc.Begin,
		)

		// 抽牌
		// POST /v1/tarot/sessions/:id/draw
		tarotRoutes.POST("/sessions/:id/draw",
			middlewares.LimitPerRoute(SessionActionLimit),
			sc.Draw,
		)

		// 重置会话
		// POST /v1/tarot/sessions/:id/reset
		tarotRoutes.POST("/sessions/:id/reset",
			middlewares.LimitPerRoute(SessionActionLimit),
			sc.Reset,
		)

		// 完整卡牌目录
		// GET /v1/tarot/cards
		tarotRoutes.GET("/cards", sc.Cards)

		// 健康检查
		// GET /v1/tarot/health
		tarotRoutes.GET("/health", sc.HealthCheck)
	}
}
