package testutil

import (
	"sync"
	"testing"
	"time"
)

func TestDeterministicClock_Advances(t *testing.T) {
	start := time.Unix(1000, 0)
	clock := NewDeterministicClock(start, time.Second)

	for i := 0; i < 3; i++ {
		got := clock.Now()
		want := start.Add(time.Duration(i) * time.Second)
		if !got.Equal(want) {
			t.Errorf("reading %d = %v, want %v", i, got, want)
		}
	}
}

func TestDeterministicClock_Reset(t *testing.T) {
	start := time.Unix(1000, 0)
	clock := NewDeterministicClock(start, time.Minute)

	clock.Now()
	clock.Now()
	clock.Reset(start)

	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("Now() after Reset = %v, want %v", got, start)
	}
}

func TestDeterministicClock_Concurrent(t *testing.T) {
	clock := NewDeterministicClock(time.Unix(0, 0), time.Second)

	const readers = 8
	const readings = 50

	var wg sync.WaitGroup
	seen := make(chan time.Time, readers*readings)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < readings; j++ {
				seen <- clock.Now()
			}
		}()
	}
	wg.Wait()
	close(seen)

	// Every reading is distinct: the clock never hands out the same
	// instant twice.
	unique := make(map[int64]struct{})
	for ts := range seen {
		if _, dup := unique[ts.Unix()]; dup {
			t.Fatalf("duplicate reading %v", ts)
		}
		unique[ts.Unix()] = struct{}{}
	}
	if len(unique) != readers*readings {
		t.Errorf("got %d unique readings, want %d", len(unique), readers*readings)
	}
}
