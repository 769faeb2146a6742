package reading_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"luna/pkg/deck"
	"luna/pkg/logger"
	"luna/pkg/reading"
)

func TestMain(m *testing.M) {
	// 会话在解读失败时会写日志，测试中使用空实现
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// fakeScheduler 手动触发的定时器，回调入队等待 fire
type fakeScheduler struct {
	mu      sync.Mutex
	pending []func()
}

func (f *fakeScheduler) After(d time.Duration, fn func()) {
	f.mu.Lock()
	f.pending = append(f.pending, fn)
	f.mu.Unlock()
}

// fireNext 触发最早入队的一个回调
func (f *fakeScheduler) fireNext() bool {
	f.mu.Lock()
	if len(f.pending) == 0 {
		f.mu.Unlock()
		return false
	}
	fn := f.pending[0]
	f.pending = f.pending[1:]
	f.mu.Unlock()

	fn()
	return true
}

// fireAll 依次触发所有回调，包括触发过程中新入队的
func (f *fakeScheduler) fireAll() {
	for f.fireNext() {
	}
}

// stubRNG 确定性随机源：Intn 恒为 0，Float64 按序列返回
type stubRNG struct {
	floats []float64
	idx    int
}

func (s *stubRNG) Intn(n int) int { return 0 }

func (s *stubRNG) Float64() float64 {
	if s.idx >= len(s.floats) {
		return 1
	}
	v := s.floats[s.idx]
	s.idx++
	return v
}

// stubInterpreter 记录调用参数并返回预设结果
type stubInterpreter struct {
	text string
	err  error

	called   bool
	question string
	cards    []reading.DrawnCard
}

func (s *stubInterpreter) Interpret(ctx context.Context, question string, cards []reading.DrawnCard) (string, error) {
	s.called = true
	s.question = question
	s.cards = cards
	return s.text, s.err
}

// newTestSession 构造一个由 fakeScheduler 驱动的会话
func newTestSession(interp reading.Interpreter, rng deck.RNG) (*reading.Session, *fakeScheduler) {
	sched := &fakeScheduler{}
	if rng == nil {
		rng = &stubRNG{}
	}
	sess := reading.NewSession(interp, reading.Options{
		RNG:   rng,
		After: sched.After,
	})
	return sess, sched
}

// checkConservation 工作牌堆与已抽卡牌之和恒为整副牌
func checkConservation(t *testing.T, sess *reading.Session) {
	t.Helper()
	if total := sess.DeckSize() + len(sess.DrawnCards()); total != deck.Size {
		t.Fatalf("deck conservation broken: %d cards accounted for, want %d", total, deck.Size)
	}
}

func TestNewSession_InitialState(t *testing.T) {
	sess, _ := newTestSession(&stubInterpreter{}, nil)

	if sess.State() != reading.StateWelcome {
		t.Errorf("expected state %s, got %s", reading.StateWelcome, sess.State())
	}
	if sess.Message() != reading.MsgWelcome {
		t.Errorf("unexpected welcome message: %q", sess.Message())
	}
	if sess.DeckSize() != deck.Size {
		t.Errorf("expected %d cards in deck, got %d", deck.Size, sess.DeckSize())
	}
	if sess.Interpretation() != "" {
		t.Error("interpretation should be empty before a reading")
	}
}

func TestBegin_TransitionsToShufflingThenDrawing(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{}, nil)

	if !sess.Begin("Will I find my lost cat?") {
		t.Fatal("Begin should succeed from Welcome")
	}
	if sess.State() != reading.StateShuffling {
		t.Fatalf("expected state %s, got %s", reading.StateShuffling, sess.State())
	}
	if sess.Message() != reading.MsgShuffling {
		t.Errorf("unexpected shuffling message: %q", sess.Message())
	}
	if !sess.IsTyping() {
		t.Error("typing indicator should be on right after Begin")
	}
	checkConservation(t, sess)

	sched.fireAll()

	if sess.State() != reading.StateDrawing {
		t.Fatalf("expected state %s after shuffle delay, got %s", reading.StateDrawing, sess.State())
	}
	if sess.Message() != reading.MsgDeckReady {
		t.Errorf("unexpected deck-ready message: %q", sess.Message())
	}
	if sess.IsTyping() {
		t.Error("typing indicator should be off once all timers fired")
	}
}

func TestBegin_RejectedOutsideWelcome(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{}, nil)

	sess.Begin("first")
	if sess.Begin("second") {
		t.Fatal("Begin should be a no-op while shuffling")
	}
	sched.fireAll()
	if sess.Begin("third") {
		t.Fatal("Begin should be a no-op while drawing")
	}
	if sess.Snapshot().Question != "first" {
		t.Errorf("question overwritten by rejected Begin: %q", sess.Snapshot().Question)
	}
}

func TestDraw_FirstCardMessage(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{}, nil)
	sess.Begin("")
	sched.fireAll()

	card, ok := sess.Draw(0)
	if !ok {
		t.Fatal("Draw(0) should succeed in Drawing state")
	}
	if card.Position != reading.PositionPast {
		t.Errorf("expected position %s, got %s", reading.PositionPast, card.Position)
	}

	want := fmt.Sprintf("Ah, the %s in your Past. %s", card.Name, card.Meaning)
	if sess.Message() != want {
		t.Errorf("draw message mismatch:\n got %q\nwant %q", sess.Message(), want)
	}
	if sess.DeckSize() != deck.Size-1 {
		t.Errorf("expected %d cards left, got %d", deck.Size-1, sess.DeckSize())
	}
	checkConservation(t, sess)
}

func TestDraw_PositionOrderEnforced(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{}, nil)
	sess.Begin("")
	sched.fireAll()

	// 未抽任何牌时只接受位置 0
	for _, pos := range []int{1, 2, -1, 3} {
		if _, ok := sess.Draw(pos); ok {
			t.Fatalf("Draw(%d) should be rejected before position 0", pos)
		}
	}

	if _, ok := sess.Draw(0); !ok {
		t.Fatal("Draw(0) should succeed")
	}
	// 重复抽同一位置无效
	if _, ok := sess.Draw(0); ok {
		t.Fatal("Draw(0) should be rejected once filled")
	}
	if _, ok := sess.Draw(2); ok {
		t.Fatal("Draw(2) should be rejected before position 1")
	}

	if _, ok := sess.Draw(1); !ok {
		t.Fatal("Draw(1) should succeed")
	}
	if _, ok := sess.Draw(2); !ok {
		t.Fatal("Draw(2) should succeed")
	}

	drawn := sess.DrawnCards()
	if len(drawn) != 3 {
		t.Fatalf("expected 3 drawn cards, got %d", len(drawn))
	}
	wantPositions := []reading.Position{reading.PositionPast, reading.PositionPresent, reading.PositionFuture}
	for i, d := range drawn {
		if d.Position != wantPositions[i] {
			t.Errorf("card %d: expected position %s, got %s", i, wantPositions[i], d.Position)
		}
	}
	checkConservation(t, sess)
}

func TestDraw_RejectedOutsideDrawingState(t *testing.T) {
	sess, _ := newTestSession(&stubInterpreter{}, nil)

	if _, ok := sess.Draw(0); ok {
		t.Fatal("Draw should be rejected in Welcome state")
	}
	sess.Begin("")
	if _, ok := sess.Draw(0); ok {
		t.Fatal("Draw should be rejected while shuffling")
	}
}

func TestThirdDraw_RunsInterpretation(t *testing.T) {
	interp := &stubInterpreter{text: "The cards smile upon you."}
	sess, sched := newTestSession(interp, nil)
	sess.Begin("Will it rain?")
	sched.fireAll()

	sess.Draw(0)
	sess.Draw(1)
	sess.Draw(2)
	if sess.State() != reading.StateDrawing {
		t.Fatalf("interpretation should wait for the post-draw delay, state is %s", sess.State())
	}

	sched.fireAll()

	if !interp.called {
		t.Fatal("interpreter was never called")
	}
	if interp.question != "Will it rain?" {
		t.Errorf("interpreter got question %q", interp.question)
	}
	if len(interp.cards) != 3 {
		t.Errorf("interpreter got %d cards, want 3", len(interp.cards))
	}
	if sess.State() != reading.StateFinished {
		t.Fatalf("expected state %s, got %s", reading.StateFinished, sess.State())
	}
	if sess.Interpretation() != "The cards smile upon you." {
		t.Errorf("unexpected interpretation: %q", sess.Interpretation())
	}
	if sess.Message() != reading.MsgFinished {
		t.Errorf("unexpected finished message: %q", sess.Message())
	}
}

func TestInterpretation_FallbackOnError(t *testing.T) {
	interp := &stubInterpreter{err: errors.New("upstream unavailable")}
	sess, sched := newTestSession(interp, nil)
	sess.Begin("")
	sched.fireAll()
	sess.Draw(0)
	sess.Draw(1)
	sess.Draw(2)
	sched.fireAll()

	if sess.State() != reading.StateFinished {
		t.Fatalf("session should still finish on interpreter error, state is %s", sess.State())
	}
	if sess.Interpretation() != reading.FallbackInterpretation {
		t.Errorf("expected fallback interpretation, got %q", sess.Interpretation())
	}
	// 失败时不宣告「spirits have spoken」
	if sess.Message() == reading.MsgFinished {
		t.Error("finished message should not be shown when interpretation fell back")
	}
}

func TestInterpretation_FallbackOnEmptyText(t *testing.T) {
	interp := &stubInterpreter{text: "   \n"}
	sess, sched := newTestSession(interp, nil)
	sess.Begin("")
	sched.fireAll()
	sess.Draw(0)
	sess.Draw(1)
	sess.Draw(2)
	sched.fireAll()

	if sess.Interpretation() != reading.FallbackInterpretation {
		t.Errorf("blank interpreter output should fall back, got %q", sess.Interpretation())
	}
	if sess.State() != reading.StateFinished {
		t.Errorf("expected state %s, got %s", reading.StateFinished, sess.State())
	}
}

func TestDraw_RejectedAfterFinished(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{text: "ok"}, nil)
	sess.Begin("")
	sched.fireAll()
	sess.Draw(0)
	sess.Draw(1)
	sess.Draw(2)
	sched.fireAll()

	if _, ok := sess.Draw(0); ok {
		t.Fatal("Draw should be rejected after the reading finished")
	}
	if len(sess.DrawnCards()) != 3 {
		t.Errorf("drawn cards changed after rejected draw: %d", len(sess.DrawnCards()))
	}
}

func TestReset_RestoresWelcome(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{text: "ok"}, nil)

	if sess.Reset() {
		t.Fatal("Reset should be rejected before the reading finished")
	}

	sess.Begin("my question")
	sched.fireAll()
	sess.Draw(0)
	sess.Draw(1)
	sess.Draw(2)
	sched.fireAll()

	if !sess.Reset() {
		t.Fatal("Reset should succeed from Finished")
	}

	snap := sess.Snapshot()
	if snap.State != reading.StateWelcome {
		t.Errorf("expected state %s, got %s", reading.StateWelcome, snap.State)
	}
	if snap.DeckSize != deck.Size {
		t.Errorf("expected full deck after reset, got %d", snap.DeckSize)
	}
	if len(snap.Drawn) != 0 {
		t.Errorf("drawn cards should be cleared, got %d", len(snap.Drawn))
	}
	if snap.Question != "" || snap.Interpretation != "" {
		t.Errorf("question/interpretation should be cleared, got %q / %q", snap.Question, snap.Interpretation)
	}
	if snap.Message != reading.MsgReset {
		t.Errorf("unexpected reset message: %q", snap.Message)
	}

	// 重置后可以完整地再来一轮
	if !sess.Begin("again") {
		t.Fatal("Begin should succeed after reset")
	}
	sched.fireAll()
	if _, ok := sess.Draw(0); !ok {
		t.Fatal("Draw should succeed in the second round")
	}
}

func TestReset_InvalidatesPendingTimers(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{text: "ok"}, nil)
	sess.Begin("")
	sched.fireAll()
	sess.Draw(0)
	sess.Draw(1)
	sess.Draw(2)

	// 触发三次抽牌的打字定时器和延迟解读，
	// 让解读阶段产生的打字定时器留在队列里
	for i := 0; i < 4; i++ {
		sched.fireNext()
	}
	if sess.State() != reading.StateFinished {
		t.Fatalf("expected state %s before reset, got %s", reading.StateFinished, sess.State())
	}

	sess.Reset()
	if !sess.IsTyping() {
		t.Fatal("typing indicator should be on right after reset")
	}

	// 旧一轮的定时器先触发，不得清除新消息的打字指示
	sched.fireNext()
	sched.fireNext()
	if !sess.IsTyping() {
		t.Fatal("stale typing timer cleared the indicator of the new round")
	}
	if sess.State() != reading.StateWelcome {
		t.Errorf("stale timer disturbed the session, state is %s", sess.State())
	}
	if sess.Message() != reading.MsgReset {
		t.Errorf("stale timer changed the message: %q", sess.Message())
	}

	// 新一轮自己的定时器正常生效
	sched.fireAll()
	if sess.IsTyping() {
		t.Error("typing indicator should clear once the reset timer fires")
	}
}

func TestDraw_ReversalChance(t *testing.T) {
	// Float64 序列直接决定正逆位：低于阈值为逆位
	rng := &stubRNG{floats: []float64{0.05, 0.95, 0.29}}
	sess, sched := newTestSession(&stubInterpreter{}, rng)
	sess.Begin("")
	sched.fireAll()

	c0, _ := sess.Draw(0)
	c1, _ := sess.Draw(1)
	c2, _ := sess.Draw(2)

	if !c0.IsReversed {
		t.Error("card 0 should be reversed (0.05 < 0.3)")
	}
	if c1.IsReversed {
		t.Error("card 1 should be upright (0.95 >= 0.3)")
	}
	if !c2.IsReversed {
		t.Error("card 2 should be reversed (0.29 < 0.3)")
	}
}

func TestDraw_ReversalRate(t *testing.T) {
	const rounds = 3000
	rng := deck.NewRNG()
	reversed := 0

	for i := 0; i < rounds; i++ {
		sess, sched := newTestSession(&stubInterpreter{text: "ok"}, rng)
		sess.Begin("")
		sched.fireAll()
		for pos := 0; pos < 3; pos++ {
			card, ok := sess.Draw(pos)
			if !ok {
				t.Fatalf("round %d: Draw(%d) failed", i, pos)
			}
			if card.IsReversed {
				reversed++
			}
		}
	}

	rate := float64(reversed) / float64(rounds*3)
	if rate < 0.26 || rate > 0.34 {
		t.Errorf("reversal rate %.3f outside expected band around 0.30", rate)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	sess, sched := newTestSession(&stubInterpreter{}, nil)
	sess.Begin("")
	sched.fireAll()
	sess.Draw(0)

	snap := sess.Snapshot()
	snap.Drawn[0].Name = "Tampered"

	if sess.DrawnCards()[0].Name == "Tampered" {
		t.Fatal("snapshot shares state with the session")
	}
}
