package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int64
	release := make(chan struct{})

	const callers = 8
	results := make([]any, callers)
	shared := make([]bool, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			value, err, wasShared := flight.Do("stats:team-1", func() (any, error) {
				executions.Add(1)
				<-release
				return "snapshot", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[idx] = value
			shared[idx] = wasShared
		}(i)
	}

	// Give the goroutines a chance to queue up behind the first call.
	for executions.Load() == 0 {
	}
	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("loader executed %d times, want 1", got)
	}
	sharedCount := 0
	for i := 0; i < callers; i++ {
		if results[i] != "snapshot" {
			t.Fatalf("caller %d got %v", i, results[i])
		}
		if shared[i] {
			sharedCount++
		}
	}
	if sharedCount != callers-1 {
		t.Fatalf("unexpected shared count: got=%d want=%d", sharedCount, callers-1)
	}
}

func TestSingleFlight_PropagatesErrors(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	wantErr := errors.New("load failed")

	_, err, _ := flight.Do("k", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("unexpected error: %v", err)
	}

	// A failed call must not stay pinned under the key.
	value, err, _ := flight.Do("k", func() (any, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 42 {
		t.Fatalf("unexpected value: %v", value)
	}
}
