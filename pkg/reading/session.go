// Package reading 塔罗牌解读会话的状态机与抽牌流程
package reading

import (
	"context"
	"strings"
	"sync"
	"time"

	"luna/pkg/deck"
	"luna/pkg/logger"
)

// State 会话状态
// 状态只能按 Welcome → Shuffling → Drawing → Interpreting → Finished 推进，
// 唯一的回退路径是 Finished 状态下的显式重置
type State string

const (
	StateWelcome      State = "welcome"
	StateShuffling    State = "shuffling"
	StateDrawing      State = "drawing"
	StateInterpreting State = "interpreting"
	StateFinished     State = "finished"
)

// Position 抽牌位置，按抽牌顺序依次分配
type Position string

const (
	PositionPast    Position = "Past"
	PositionPresent Position = "Present"
	PositionFuture  Position = "Future"
)

// drawCount 一次完整解读抽取的卡牌数
const drawCount = 3

// positions 固定的位置序列
var positions = [drawCount]Position{PositionPast, PositionPresent, PositionFuture}

// DrawnCard 已抽取的卡牌，抽取时决定正逆位和位置，此后不可变
type DrawnCard struct {
	deck.Card
	IsReversed bool     `json:"is_reversed"`
	Position   Position `json:"position"`
}

// 默认的时间与概率常量，可通过 Options 调整
const (
	DefaultShuffleDelay     = 2500 * time.Millisecond // 洗牌动画时长
	DefaultPostDrawDelay    = 3000 * time.Millisecond // 第三张牌抽出后到发起解读的间隔
	DefaultTypingDelay      = 1500 * time.Millisecond // 打字指示持续时长
	DefaultReversedChance   = 0.3                     // 逆位概率
	DefaultInterpretTimeout = 90 * time.Second        // 解读请求超时
)

// Options 会话可调参数
type Options struct {
	ShuffleDelay     time.Duration
	PostDrawDelay    time.Duration
	TypingDelay      time.Duration
	ReversedChance   float64
	InterpretTimeout time.Duration

	// RNG 随机数来源，缺省使用 math/rand
	RNG deck.RNG

	// After 单次定时器的调度函数，缺省使用 time.AfterFunc
	// 测试中可替换为同步触发的实现
	After func(d time.Duration, f func())
}

// fillDefaults 填充未设置的参数
func (o *Options) fillDefaults() {
	if o.ShuffleDelay <= 0 {
		o.ShuffleDelay = DefaultShuffleDelay
	}
	if o.PostDrawDelay <= 0 {
		o.PostDrawDelay = DefaultPostDrawDelay
	}
	if o.TypingDelay <= 0 {
		o.TypingDelay = DefaultTypingDelay
	}
	if o.ReversedChance <= 0 {
		o.ReversedChance = DefaultReversedChance
	}
	if o.InterpretTimeout <= 0 {
		o.InterpretTimeout = DefaultInterpretTimeout
	}
	if o.RNG == nil {
		o.RNG = deck.NewRNG()
	}
	if o.After == nil {
		o.After = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
}

// Session 一次解读会话
// 会话独占工作牌堆、已抽卡牌和解读结果，所有变更都经过状态机校验，
// 外部只通过方法和 Snapshot 访问
type Session struct {
	mu sync.Mutex

	state          State
	question       string
	workingDeck    []deck.Card
	drawn          []DrawnCard
	message        string
	typing         bool
	interpretation string

	// generation 会话代数，重置时递增
	// 定时器回调捕获调度时的代数，不一致时放弃执行，
	// 避免重置前遗留的定时器污染新一轮会话
	generation uint64
	typingSeq  uint64

	lastActive time.Time

	interp Interpreter
	opts   Options
}

// NewSession 创建一个新的解读会话，初始状态为 Welcome
func NewSession(interp Interpreter, opts Options) *Session {
	opts.fillDefaults()
	return &Session{
		state:       StateWelcome,
		workingDeck: deck.Catalog(),
		message:     MsgWelcome,
		lastActive:  time.Now(),
		interp:      interp,
		opts:        opts,
	}
}

// Begin 开始解读：记录问题、洗牌并进入 Shuffling 状态
// 仅在 Welcome 状态下有效，其余状态返回 false 且不产生任何变更
func (s *Session) Begin(question string) bool {
	s.mu.Lock()
	if s.state != StateWelcome {
		s.mu.Unlock()
		return false
	}

	s.state = StateShuffling
	s.question = question
	s.workingDeck = deck.Shuffle(s.workingDeck, s.opts.RNG)
	s.drawn = nil
	s.lastActive = time.Now()
	fireTyping := s.speakLocked(MsgShuffling)
	gen := s.generation
	s.mu.Unlock()

	fireTyping()
	s.opts.After(s.opts.ShuffleDelay, func() { s.finishShuffle(gen) })
	return true
}

// finishShuffle 洗牌定时器到期，Shuffling → Drawing
func (s *Session) finishShuffle(gen uint64) {
	s.mu.Lock()
	if s.generation != gen || s.state != StateShuffling {
		s.mu.Unlock()
		return
	}
	s.state = StateDrawing
	fireTyping := s.speakLocked(MsgDeckReady)
	s.mu.Unlock()

	fireTyping()
}

// Draw 抽取指定位置的卡牌
// 只接受「下一个待填充位置」的抽牌请求：position 必须等于已抽卡牌数，
// 乱序或超量的请求是静默 no-op，返回 ok=false 且会话不变
func (s *Session) Draw(position int) (DrawnCard, bool) {
	s.mu.Lock()
	if s.state != StateDrawing || position != len(s.drawn) || len(s.drawn) >= drawCount {
		s.mu.Unlock()
		return DrawnCard{}, false
	}

	// 牌堆头部已经过洗牌随机化，抽牌本身不再引入额外的随机选择
	card := s.workingDeck[0]
	s.workingDeck = s.workingDeck[1:]

	drawn := DrawnCard{
		Card:       card,
		IsReversed: s.opts.RNG.Float64() < s.opts.ReversedChance,
		Position:   positions[len(s.drawn)],
	}
	s.drawn = append(s.drawn, drawn)
	s.lastActive = time.Now()

	fireTyping := s.speakLocked(DrawMessage(len(s.drawn)-1, drawn))

	var fireInterpret func()
	if len(s.drawn) == drawCount {
		gen := s.generation
		fireInterpret = func() {
			s.opts.After(s.opts.PostDrawDelay, func() { s.beginInterpreting(gen) })
		}
	}
	s.mu.Unlock()

	fireTyping()
	if fireInterpret != nil {
		fireInterpret()
	}
	return drawn, true
}

// beginInterpreting 第三张牌的延迟到期，Drawing → Interpreting
// 解读调用在定时器自己的 goroutine 中同步等待完成，
// 期间状态机不接受任何其它推进
func (s *Session) beginInterpreting(gen uint64) {
	s.mu.Lock()
	if s.generation != gen || s.state != StateDrawing || len(s.drawn) != drawCount {
		s.mu.Unlock()
		return
	}
	s.state = StateInterpreting
	fireTyping := s.speakLocked(MsgInterpreting)
	question := s.question
	cards := make([]DrawnCard, len(s.drawn))
	copy(cards, s.drawn)
	s.mu.Unlock()

	fireTyping()

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.InterpretTimeout)
	defer cancel()
	text, err := s.interp.Interpret(ctx, question, cards)

	s.mu.Lock()
	if s.generation != gen || s.state != StateInterpreting {
		s.mu.Unlock()
		return
	}

	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			logger.ErrorString("Reading", "Interpret", err.Error())
		} else {
			logger.WarnString("Reading", "Interpret", "解读服务返回空内容，使用兜底文案")
		}
		// 失败不阻断流程：记录兜底解读并照常完成，助手消息保持不变
		s.interpretation = FallbackInterpretation
		s.state = StateFinished
		s.lastActive = time.Now()
		s.mu.Unlock()
		return
	}

	s.interpretation = text
	s.state = StateFinished
	s.lastActive = time.Now()
	fireTyping = s.speakLocked(MsgFinished)
	s.mu.Unlock()

	fireTyping()
}

// Reset 重置会话：恢复完整目录、清空问题与解读，回到 Welcome 状态
// 仅在 Finished 状态下有效；代数递增使所有未触发的定时器失效
func (s *Session) Reset() bool {
	s.mu.Lock()
	if s.state != StateFinished {
		s.mu.Unlock()
		return false
	}

	s.generation++
	s.state = StateWelcome
	s.question = ""
	s.workingDeck = deck.Catalog()
	s.drawn = nil
	s.interpretation = ""
	s.lastActive = time.Now()
	fireTyping := s.speakLocked(MsgReset)
	s.mu.Unlock()

	fireTyping()
	return true
}

// speakLocked 更新助手消息并点亮打字指示
// 必须在持锁状态下调用；返回的函数在解锁后执行，负责调度打字指示的清除，
// 保证同步触发的定时器实现不会在锁内重入
func (s *Session) speakLocked(msg string) func() {
	s.message = msg
	s.typing = true
	s.typingSeq++
	gen, seq := s.generation, s.typingSeq
	return func() {
		s.opts.After(s.opts.TypingDelay, func() { s.clearTyping(gen, seq) })
	}
}

// clearTyping 打字指示定时器到期
// 只有代数和序号都未变化时才清除，后发的消息不受先前定时器影响
func (s *Session) clearTyping(gen, seq uint64) {
	s.mu.Lock()
	if s.generation == gen && s.typingSeq == seq {
		s.typing = false
	}
	s.mu.Unlock()
}

// Snapshot 会话的只读快照
type Snapshot struct {
	State          State       `json:"state"`
	Message        string      `json:"message"`
	Typing         bool        `json:"typing"`
	Question       string      `json:"question"`
	DeckSize       int         `json:"deck_size"`
	Drawn          []DrawnCard `json:"drawn_cards"`
	Interpretation string      `json:"interpretation"`
}

// Snapshot 返回会话当前状态的副本
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	drawn := make([]DrawnCard, len(s.drawn))
	copy(drawn, s.drawn)

	return Snapshot{
		State:          s.state,
		Message:        s.message,
		Typing:         s.typing,
		Question:       s.question,
		DeckSize:       len(s.workingDeck),
		Drawn:          drawn,
		Interpretation: s.interpretation,
	}
}

// State 当前状态
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Message 当前助手消息
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// IsTyping 打字指示是否点亮
func (s *Session) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// Interpretation 解读文本，生成前为空字符串
func (s *Session) Interpretation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interpretation
}

// DrawnCards 已抽取的卡牌副本
func (s *Session) DrawnCards() []DrawnCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	drawn := make([]DrawnCard, len(s.drawn))
	copy(drawn, s.drawn)
	return drawn
}

// DeckSize 工作牌堆剩余张数
func (s *Session) DeckSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workingDeck)
}

// LastActive 最近一次操作时间，供会话仓库做闲置回收
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
