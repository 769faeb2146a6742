// Package tarot 塔罗牌解读会话相关接口
package tarot

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"luna/app/repositories"
	"luna/app/requests"
	"luna/pkg/config"
	"luna/pkg/deck"
	"luna/pkg/gemini"
	"luna/pkg/reading"
	"luna/pkg/response"
)

// SessionController 解读会话控制器
type SessionController struct {
	repo          *repositories.SessionRepository
	geminiService *gemini.GeminiService
}

// NewSessionController 创建控制器实例
func NewSessionController() *SessionController {
	return &SessionController{
		repo:          repositories.NewSessionRepository(),
		geminiService: newGeminiFromConfig(),
	}
}

// newGeminiFromConfig 从配置构建 Gemini 服务，配置缺失时返回 nil
func newGeminiFromConfig() *gemini.GeminiService {
	return gemini.NewGeminiService(&gemini.Config{
		APIKey:     config.GetString("gemini.api_key"),
		BaseURL:    config.GetString("gemini.base_url"),
		Model:      config.GetString("gemini.model"),
		Timeout:    time.Duration(config.GetInt("gemini.timeout", 90)) * time.Second,
		MaxRetries: config.GetInt("gemini.max_retries", 3),
	})
}

// sessionOptions 从配置读取会话参数
func sessionOptions() reading.Options {
	return reading.Options{
		ShuffleDelay:     time.Duration(config.GetInt("reading.shuffle_delay_ms", 2500)) * time.Millisecond,
		PostDrawDelay:    time.Duration(config.GetInt("reading.post_draw_delay_ms", 3000)) * time.Millisecond,
		TypingDelay:      time.Duration(config.GetInt("reading.typing_delay_ms", 1500)) * time.Millisecond,
		ReversedChance:   config.GetFloat64("reading.reversed_chance", 0.3),
		InterpretTimeout: time.Duration(config.GetInt("reading.interpret_timeout", 90)) * time.Second,
	}
}

// unavailableInterpreter Gemini 未配置时的兜底实现
// 永远返回错误，由会话降级为固定兜底文案
type unavailableInterpreter struct{}

func (unavailableInterpreter) Interpret(_ context.Context, _ string, _ []reading.DrawnCard) (string, error) {
	return "", errors.New("narrative generator is not configured")
}

// interpreter 返回可用的解读服务
func (sc *SessionController) interpreter() reading.Interpreter {
	if sc.geminiService == nil {
		return unavailableInterpreter{}
	}
	return sc.geminiService
}

// Store 创建新的解读会话
func (sc *SessionController) Store(c *gin.Context) {
	id, session := sc.repo.Create(sc.interpreter(), sessionOptions())

	response.Created(c, gin.H{
		"session_id": id,
		"session":    session.Snapshot(),
	}, "会话创建成功")
}

// Show 获取会话快照
func (sc *SessionController) Show(c *gin.Context) {
	session := sc.findSession(c)
	if session == nil {
		return
	}
	response.Data(c, session.Snapshot())
}

// Begin 开始解读：记录问题并洗牌
func (sc *SessionController) Begin(c *gin.Context) {
	session := sc.findSession(c)
	if session == nil {
		return
	}

	request, err := requests.ValidateBeginReading(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	accepted := session.Begin(request.Question)
	response.Data(c, gin.H{
		"accepted": accepted,
		"session":  session.Snapshot(),
	})
}

// Draw 抽取指定位置的卡牌
// 乱序或超量的抽牌请求不报错，accepted 为 false、会话保持不变
func (sc *SessionController) Draw(c *gin.Context) {
	session := sc.findSession(c)
	if session == nil {
		return
	}

	request, err := requests.ValidateDrawCard(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	card, accepted := session.Draw(request.Position)
	result := gin.H{
		"accepted": accepted,
		"session":  session.Snapshot(),
	}
	if accepted {
		result["card"] = card
	}
	response.Data(c, result)
}

// Reset 重置会话，仅在 Finished 状态下有效
func (sc *SessionController) Reset(c *gin.Context) {
	session := sc.findSession(c)
	if session == nil {
		return
	}

	accepted := session.Reset()
	response.Data(c, gin.H{
		"accepted": accepted,
		"session":  session.Snapshot(),
	})
}

// Cards 返回完整的 78 张卡牌目录
func (sc *SessionController) Cards(c *gin.Context) {
	response.Data(c, gin.H{
		"cards": deck.Catalog(),
	})
}

// HealthCheck 健康检查端点
func (sc *SessionController) HealthCheck(c *gin.Context) {
	narrative := "ok"
	if sc.geminiService == nil {
		narrative = "unconfigured"
	} else if err := sc.geminiService.HealthCheck(c.Request.Context()); err != nil {
		narrative = "unavailable"
	}

	response.Data(c, gin.H{
		"status":    "ok",
		"narrative": narrative,
		"sessions":  sc.repo.Count(),
		"time":      time.Now().Unix(),
	})
}

// findSession 根据路由参数查找会话，不存在时响应 404 并返回 nil
func (sc *SessionController) findSession(c *gin.Context) *reading.Session {
	id := c.Param("id")
	if id == "" {
		response.Abort400(c, "缺少会话 ID")
		return nil
	}

	session := sc.repo.Get(id)
	if session == nil {
		response.Abort404(c, "会话不存在")
		return nil
	}
	return session
}
