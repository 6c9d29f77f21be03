package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/mockapi"
	"github.com/edusphere/admin-client/session"
)

// memoryCache is an in-process Cache for tests, with hit/miss counters.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, found := m.entries[key]
	if !found {
		return errors.New("cache miss")
	}
	m.hits++
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	m.sets++
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func testService(t *testing.T, cache Cache) *Service {
	t.Helper()

	server := mockapi.NewServer("refdata-token")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() {
		_ = server.Listen(ln)
	}()
	t.Cleanup(func() { _ = server.Shutdown() })

	api := client.NewClient(client.Config{
		BaseURL: "http://" + ln.Addr().String() + "/api/v1",
		Session: &session.Static{Token: "refdata-token"},
		Timeout: 10 * time.Second,
	})
	return New(api, cache, time.Minute)
}

func TestSecondReadComesFromCache(t *testing.T) {
	cache := newMemoryCache()
	s := testService(t, cache)
	ctx := context.Background()

	first, err := s.Branches(ctx)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("no branches returned")
	}
	if cache.sets != 1 {
		t.Fatalf("first read stored %d entries, want 1", cache.sets)
	}

	second, err := s.Branches(ctx)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("second read had %d cache hits, want 1", cache.hits)
	}
	if len(second) != len(first) {
		t.Fatalf("cache round trip changed the collection: %d vs %d", len(second), len(first))
	}
}

func TestNilCacheIsPassThrough(t *testing.T) {
	s := testService(t, nil)

	branches, err := s.Branches(context.Background())
	if err != nil {
		t.Fatalf("read without cache: %v", err)
	}
	if len(branches) == 0 {
		t.Fatal("no branches returned")
	}
	s.InvalidateAll(context.Background()) // must not panic with a nil cache
}

func TestTeachersAreScopedPerBranch(t *testing.T) {
	cache := newMemoryCache()
	s := testService(t, cache)
	ctx := context.Background()

	branch1, err := s.TeachersByBranch(ctx, 1)
	if err != nil {
		t.Fatalf("branch 1: %v", err)
	}
	branch2, err := s.TeachersByBranch(ctx, 2)
	if err != nil {
		t.Fatalf("branch 2: %v", err)
	}
	if len(branch1) != 2 || len(branch2) != 1 {
		t.Fatalf("teacher scoping wrong: branch1=%d branch2=%d", len(branch1), len(branch2))
	}
	for _, teacher := range branch1 {
		if teacher.BranchID != 1 {
			t.Fatalf("teacher %d leaked across branches", teacher.ID)
		}
	}

	s.InvalidateBranchTeachers(ctx, 1)
	if _, found := cache.entries["refdata:teachers:1"]; found {
		t.Fatal("invalidation left the key behind")
	}
	if _, found := cache.entries["refdata:teachers:2"]; !found {
		t.Fatal("invalidation dropped the wrong branch")
	}
}

func TestWarmPrefetchesSharedCollections(t *testing.T) {
	cache := newMemoryCache()
	s := testService(t, cache)

	if err := s.Warm(context.Background()); err != nil {
		t.Fatalf("warm: %v", err)
	}
	for _, key := range []string{"refdata:branches", "refdata:categories", "refdata:joins"} {
		if _, found := cache.entries[key]; !found {
			t.Fatalf("warm did not populate %s", key)
		}
	}
}

func TestFeaturesKeyedByKind(t *testing.T) {
	cache := newMemoryCache()
	s := testService(t, cache)
	ctx := context.Background()

	facilities, err := s.Features(ctx, "facility")
	if err != nil {
		t.Fatalf("facility features: %v", err)
	}
	tools, err := s.Features(ctx, "tool")
	if err != nil {
		t.Fatalf("tool features: %v", err)
	}
	if len(facilities) != 2 || len(tools) != 1 {
		t.Fatalf("kind filter wrong: facility=%d tool=%d", len(facilities), len(tools))
	}
}
