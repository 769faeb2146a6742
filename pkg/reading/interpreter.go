package reading

import "context"

// Interpreter 解读生成服务的抽象
// 外部文本生成服务（以及测试中的 mock）通过注入实现替换，
// 会话本身不持有任何全局客户端
type Interpreter interface {
	// Interpret 根据问题和三张已抽取的卡牌生成解读文本
	// 失败时返回 error，由会话降级为固定兜底文案
	Interpret(ctx context.Context, question string, cards []DrawnCard) (string, error)
}
