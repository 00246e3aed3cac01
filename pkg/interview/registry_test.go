package interview

import (
	"fmt"
	"testing"
	"time"

	"ai-interview-be/internal/pkg/logger"
)

func newTestRegistry(maxSessions int, ttl time.Duration) *Registry {
	return NewRegistry(maxSessions, ttl, 5, 20, logger.NopLogger{})
}

func TestRegistryCreateAndGet(t *testing.T) {
	reg := newTestRegistry(10, time.Hour)

	created := reg.CreateSession("abc")
	got, ok := reg.GetSession("abc")
	if !ok {
		t.Fatal("session not found after create")
	}
	if got != created {
		t.Error("GetSession returned a different state instance")
	}
	if _, ok := reg.GetSession("missing"); ok {
		t.Error("GetSession found a session that was never created")
	}
}

func TestRegistryCapacityEvictsOldest(t *testing.T) {
	reg := newTestRegistry(3, time.Hour)

	// Stagger creation times so eviction order is deterministic
	base := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		s := reg.CreateSession(fmt.Sprintf("session-%d", i))
		s.StartedAt = base.Add(time.Duration(i) * time.Second)
	}

	if reg.Count() != 3 {
		t.Fatalf("live sessions = %d, want 3", reg.Count())
	}
	for _, id := range []string{"session-0", "session-1"} {
		if _, ok := reg.GetSession(id); ok {
			t.Errorf("oldest session %s survived eviction", id)
		}
	}
	for _, id := range []string{"session-2", "session-3", "session-4"} {
		if _, ok := reg.GetSession(id); !ok {
			t.Errorf("recent session %s was evicted", id)
		}
	}
}

func TestRegistryTTLEvictsOnAccess(t *testing.T) {
	ttl := 30 * time.Minute
	reg := newTestRegistry(10, ttl)

	s := reg.CreateSession("stale")
	s.StartedAt = time.Now().Add(-2 * ttl)
	reg.CreateSession("fresh")

	if _, ok := reg.GetSession("stale"); ok {
		t.Error("expired session returned from GetSession")
	}
	if _, ok := reg.GetSession("fresh"); !ok {
		t.Error("fresh session evicted")
	}
	if reg.Count() != 1 {
		t.Errorf("live sessions = %d, want 1", reg.Count())
	}
}

func TestRegistryTTLIgnoresActivity(t *testing.T) {
	ttl := 30 * time.Minute
	reg := newTestRegistry(10, ttl)

	// A busy session still has a hard lifetime from its start time.
	s := reg.CreateSession("busy")
	s.StartedAt = time.Now().Add(-2 * ttl)
	s.Touch()

	if _, ok := reg.GetSession("busy"); ok {
		t.Error("session older than the TTL survived despite recent activity")
	}
}

func TestRegistryCreateSweepsExpired(t *testing.T) {
	ttl := 30 * time.Minute
	reg := newTestRegistry(10, ttl)

	s := reg.CreateSession("stale")
	s.StartedAt = time.Now().Add(-2 * ttl)

	reg.CreateSession("new")
	if reg.Count() != 1 {
		t.Errorf("live sessions after sweep = %d, want 1", reg.Count())
	}
}

func TestRegistryRemoveSessionIdempotent(t *testing.T) {
	reg := newTestRegistry(10, time.Hour)

	reg.CreateSession("abc")
	reg.RemoveSession("abc")
	reg.RemoveSession("abc")
	reg.RemoveSession("never-existed")

	if reg.Count() != 0 {
		t.Errorf("live sessions = %d, want 0", reg.Count())
	}
}
