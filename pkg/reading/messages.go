package reading

import "fmt"

// Luna 助手在各个阶段的固定话术
const (
	// MsgWelcome 会话创建后的欢迎语
	MsgWelcome = "Welcome, seeker. The stars have whispered of your arrival. What weighs upon your soul today?"

	// MsgShuffling 开始洗牌时
	MsgShuffling = "I am mixing the energies of the cosmos... focus on your question."

	// MsgDeckReady 洗牌完成、等待抽牌时
	MsgDeckReady = "The deck is ready. Draw three cards: one for your Past, one for your Present, and one for your Future."

	// MsgInterpreting 发起解读请求前
	MsgInterpreting = "Let me peer deeper into the tapestry of your fate..."

	// MsgFinished 解读成功后
	MsgFinished = "The spirits have spoken. Behold your destiny!"

	// MsgReset 重置会话后
	MsgReset = "The cards are cleared. Shall we peek behind the veil once more?"

	// FallbackInterpretation 解读失败时的兜底解读文案
	// 只作为解读正文使用，不作为助手消息
	FallbackInterpretation = "The mists of time are thick today, but know that your path is your own to forge."
)

// drawTemplates 按抽牌顺序排列的话术模板
var drawTemplates = [drawCount]string{
	"Ah, the %s in your Past. %s",
	"The %s reveals your Present. %s",
	"And finally, the %s lights the way to your Future. %s",
}

// DrawMessage 渲染第 index 次抽牌（0 起）的助手话术
func DrawMessage(index int, card DrawnCard) string {
	return fmt.Sprintf(drawTemplates[index], card.Name, card.Meaning)
}
