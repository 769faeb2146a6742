// Package repositories 会话存取
package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"luna/pkg/config"
	"luna/pkg/logger"
	"luna/pkg/reading"
)

// DefaultSweepInterval 闲置会话清理周期
const DefaultSweepInterval = time.Minute

// SessionRepository 解读会话仓库
// 会话只存活在内存中，闲置超过 TTL 后被回收，不做任何持久化
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*reading.Session
	ttl      time.Duration
}

var (
	once     sync.Once
	instance *SessionRepository
)

// NewSessionRepository 获取会话仓库（进程内共享一个实例）
func NewSessionRepository() *SessionRepository {
	once.Do(func() {
		instance = &SessionRepository{
			sessions: make(map[string]*reading.Session),
			ttl:      time.Duration(config.GetInt("reading.session_ttl", 1800)) * time.Second,
		}
		go instance.sweepLoop(DefaultSweepInterval)
	})
	return instance
}

// Create 创建并登记一个新会话，返回会话 ID
func (r *SessionRepository) Create(interp reading.Interpreter, opts reading.Options) (string, *reading.Session) {
	id := uuid.New().String()
	session := reading.NewSession(interp, opts)

	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()

	return id, session
}

// Get 根据 ID 查找会话，不存在时返回 nil
func (r *SessionRepository) Get(id string) *reading.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Delete 移除会话
func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Count 当前存活的会话数
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// sweepLoop 周期性回收闲置超过 TTL 的会话
func (r *SessionRepository) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		removed := r.sweep(time.Now())
		if removed > 0 {
			logger.InfoString("Session", "Sweep", "已回收闲置会话")
		}
	}
}

// sweep 执行一次回收，返回回收数量
func (r *SessionRepository) sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if now.Sub(session.LastActive()) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
