package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/attrd/internal/platform/health"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) Name() string {
	return m.Called().String(0)
}

func (m *mockChecker) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newChecker(t *testing.T, name string, err error) *mockChecker {
	t.Helper()

	c := &mockChecker{}
	c.On("Name").Return(name)
	c.On("HealthCheck", mock.Anything).Return(err)
	return c
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
	if !health.Healthy(results) {
		t.Error("Healthy(empty) = false, want true")
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	zoneErr := errors.New("no time zone configured")

	r := health.New()
	r.Register(newChecker(t, "record-store", nil))
	r.Register(newChecker(t, "time-zone", zoneErr))

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["record-store"] != nil {
		t.Errorf("record-store check = %v, want nil", results["record-store"])
	}
	if !errors.Is(results["time-zone"], zoneErr) {
		t.Errorf("time-zone check = %v, want %v", results["time-zone"], zoneErr)
	}
	if health.Healthy(results) {
		t.Error("Healthy() = true, want false")
	}
}

func TestRegister_ReplacesSameName(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(newChecker(t, "time-zone", errors.New("missing")))
	r.Register(newChecker(t, "time-zone", nil))

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results["time-zone"] != nil {
		t.Errorf("time-zone check = %v, want nil from the replacement", results["time-zone"])
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &mockChecker{}
	c.On("Name").Return("record-store")
	c.On("HealthCheck", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	results := r.CheckAll(ctx)

	if !errors.Is(results["record-store"], context.Canceled) {
		t.Errorf("record-store check = %v, want context.Canceled", results["record-store"])
	}
	c.AssertExpectations(t)
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	t.Parallel()

	c := &mockChecker{}
	c.On("Name").Return("record-store")
	c.On("HealthCheck", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(c)

	if err := r.CheckAll(context.Background())["record-store"]; err != nil {
		t.Errorf("record-store check = %v, want nil", err)
	}
	c.AssertExpectations(t)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				r.Register(newChecker(t, "checker", nil))
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
