package janitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
)

type fakeEvicter struct {
	calls   atomic.Int32
	evicted int
	err     error
}

func (f *fakeEvicter) Execute(_ context.Context) (*session.EvictExpiredSessionsOutput, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &session.EvictExpiredSessionsOutput{Evicted: f.evicted}, nil
}

func TestJanitor_SweepNow(t *testing.T) {
	tests := []struct {
		name     string
		evicter  *fakeEvicter
		expected int
	}{
		{name: "reports evicted sessions", evicter: &fakeEvicter{evicted: 3}, expected: 3},
		{name: "nothing to evict", evicter: &fakeEvicter{}, expected: 0},
		{name: "errors are swallowed", evicter: &fakeEvicter{err: errors.New("store down")}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := New(tt.evicter, DefaultConfig())

			if got := j.SweepNow(context.Background()); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
			if tt.evicter.calls.Load() != 1 {
				t.Errorf("expected 1 call, got %d", tt.evicter.calls.Load())
			}
		})
	}
}

func TestJanitor_StartStopsOnCancel(t *testing.T) {
	evicter := &fakeEvicter{evicted: 1}
	j := New(evicter, Config{Interval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for evicter.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("janitor did not sweep in time")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestNew_DefaultsInterval(t *testing.T) {
	j := New(&fakeEvicter{}, Config{})
	if j.interval != time.Minute {
		t.Errorf("expected default interval, got %s", j.interval)
	}
}
