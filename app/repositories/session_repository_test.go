package repositories

import (
	"testing"
	"time"

	"luna/pkg/reading"
)

// newTestRepository 绕过单例，构造独立的仓库实例
func newTestRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*reading.Session),
		ttl:      ttl,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepository(30 * time.Minute)

	id, session := repo.Create(nil, reading.Options{})
	if id == "" {
		t.Fatal("Create returned an empty session ID")
	}
	if session == nil {
		t.Fatal("Create returned a nil session")
	}

	if got := repo.Get(id); got != session {
		t.Error("Get did not return the created session")
	}
	if repo.Count() != 1 {
		t.Errorf("expected 1 session, got %d", repo.Count())
	}
}

func TestGet_UnknownID(t *testing.T) {
	repo := newTestRepository(30 * time.Minute)

	if got := repo.Get("no-such-session"); got != nil {
		t.Error("Get should return nil for an unknown ID")
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(30 * time.Minute)

	id, _ := repo.Create(nil, reading.Options{})
	repo.Delete(id)

	if repo.Get(id) != nil {
		t.Error("session still reachable after Delete")
	}
	if repo.Count() != 0 {
		t.Errorf("expected 0 sessions, got %d", repo.Count())
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	repo := newTestRepository(30 * time.Minute)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, _ := repo.Create(nil, reading.Options{})
		if seen[id] {
			t.Fatalf("duplicate session ID: %s", id)
		}
		seen[id] = true
	}
}

func TestSweep_RemovesIdleSessions(t *testing.T) {
	repo := newTestRepository(30 * time.Minute)

	first, _ := repo.Create(nil, reading.Options{})
	second, _ := repo.Create(nil, reading.Options{})

	// 会话的 LastActive 停留在创建时刻，
	// 把扫描时间推到 TTL 之后即可触发回收
	removed := repo.sweep(time.Now().Add(31 * time.Minute))
	if removed != 2 {
		t.Fatalf("expected 2 sessions removed, got %d", removed)
	}
	if repo.Get(first) != nil || repo.Get(second) != nil {
		t.Error("idle sessions should have been removed")
	}
}

func TestSweep_KeepsActiveSessions(t *testing.T) {
	repo := newTestRepository(30 * time.Minute)

	id, _ := repo.Create(nil, reading.Options{})

	removed := repo.sweep(time.Now().Add(10 * time.Minute))
	if removed != 0 {
		t.Errorf("expected no sessions removed, got %d", removed)
	}
	if repo.Get(id) == nil {
		t.Error("session inside the TTL window should survive the sweep")
	}
}
