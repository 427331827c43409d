package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var flight SingleFlight
	var executions atomic.Int32

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err, _ := flight.Do("catalog", func() (any, error) {
				executions.Add(1)
				<-release
				return "nba", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if value != "nba" {
				t.Errorf("unexpected value: %v", value)
			}
		}()
	}

	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected one execution, got %d", got)
	}
}

func TestSingleFlight_KeyReusableAfterCompletion(t *testing.T) {
	var flight SingleFlight
	var executions atomic.Int32

	for i := 0; i < 2; i++ {
		_, err, shared := flight.Do("teams", func() (any, error) {
			executions.Add(1)
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shared {
			t.Fatal("sequential calls must not be marked shared")
		}
	}

	if got := executions.Load(); got != 2 {
		t.Fatalf("expected two executions, got %d", got)
	}
}
