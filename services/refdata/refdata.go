// Package refdata serves the slow-moving reference collections every picker
// in the panel needs (branches, categories, per-branch teachers, course
// features, eligibility tags). Reads go through an optional shared cache;
// after any mutation the affected keys are invalidated and the next read
// re-fetches from the API, local state is never patched in place.
package refdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/model"
)

// Cache is the subset of cache operations the service needs. The redis cache
// satisfies it; tests use an in-memory map.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// DefaultTTL bounds staleness when the refresher is not running.
const DefaultTTL = 15 * time.Minute

// Service fetches reference collections through the cache.
type Service struct {
	client *client.Client
	cache  Cache // nil disables caching, every read hits the API
	ttl    time.Duration
}

// New creates the service. A nil cache is allowed and turns the service into
// a plain pass-through.
func New(c *client.Client, cache Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		client: c,
		cache:  cache,
		ttl:    ttl,
	}
}

// Branches returns all branches.
func (s *Service) Branches(ctx context.Context) ([]model.Branch, error) {
	return through(ctx, s, "refdata:branches", func() ([]model.Branch, error) {
		return s.client.ListBranches(ctx)
	})
}

// Categories returns all course categories.
func (s *Service) Categories(ctx context.Context) ([]model.Category, error) {
	return through(ctx, s, "refdata:categories", func() ([]model.Category, error) {
		return s.client.ListCategories(ctx)
	})
}

// TeachersByBranch returns the instructors of one branch. This is the loader
// behind the branch-scoped teacher select.
func (s *Service) TeachersByBranch(ctx context.Context, branchID uint) ([]model.Teacher, error) {
	key := fmt.Sprintf("refdata:teachers:%d", branchID)
	return through(ctx, s, key, func() ([]model.Teacher, error) {
		return s.client.ListBranchTeachers(ctx, branchID)
	})
}

// Features returns the selectable course features of one kind.
func (s *Service) Features(ctx context.Context, kind string) ([]model.CourseFeature, error) {
	return through(ctx, s, "refdata:features:"+kind, func() ([]model.CourseFeature, error) {
		return s.client.ListCourseFeatures(ctx, kind)
	})
}

// JoinRequirements returns the selectable eligibility tags.
func (s *Service) JoinRequirements(ctx context.Context) ([]model.JoinRequirement, error) {
	return through(ctx, s, "refdata:joins", func() ([]model.JoinRequirement, error) {
		return s.client.ListJoinRequirements(ctx)
	})
}

// InvalidateBranchTeachers drops the cached teacher list of one branch, for
// callers that just mutated branch staffing.
func (s *Service) InvalidateBranchTeachers(ctx context.Context, branchID uint) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, fmt.Sprintf("refdata:teachers:%d", branchID))
}

// InvalidateAll drops the branch, category and tag collections.
func (s *Service) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx,
		"refdata:branches",
		"refdata:categories",
		"refdata:joins",
	)
}

// Warm prefetches the parent-independent collections in parallel and waits
// for all of them, the way a wizard step entry joins its initial fetches.
func (s *Service) Warm(ctx context.Context) error {
	fetches := []func() error{
		func() error { _, err := s.Branches(ctx); return err },
		func() error { _, err := s.Categories(ctx); return err },
		func() error { _, err := s.JoinRequirements(ctx); return err },
	}

	var wg sync.WaitGroup
	errs := make([]error, len(fetches))
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func() error) {
			defer wg.Done()
			errs[i] = fetch()
		}(i, fetch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// through reads the key from the cache, falling back to the fetch and caching
// its result. Cache failures degrade to a direct fetch, never to an error.
func through[T any](ctx context.Context, s *Service, key string, fetch func() (T, error)) (T, error) {
	var cached T
	if s.cache != nil {
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, value, s.ttl)
	}

	return value, nil
}
