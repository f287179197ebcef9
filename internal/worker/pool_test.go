package worker

import (
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// echo returns each item's index without replaying anything.
func echo(item WorkItem) ProcessResult {
	return ProcessResult{Index: item.Index}
}

// counting returns a process func that counts the items it sees.
func counting(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Result: scenario.Result{Scenario: item.Scenario.Name}}
	}
}

// drain reads results until the pool closes the channel.
func drain(pool *Pool) []ProcessResult {
	var out []ProcessResult
	for res := range pool.Results() {
		out = append(out, res)
	}
	return out
}

func named(name string) *scenario.Scenario {
	return &scenario.Scenario{Name: name}
}

func TestPool_ProcessesEveryItem(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		items   int
	}{
		{"single worker", 1, 5, 5},
		{"several workers", 4, 10, 10},
		{"small buffer", 8, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var processed int32
			pool := NewPool(tt.workers, tt.buffer, counting(&processed))
			pool.Start()

			go func() {
				for i := 0; i < tt.items; i++ {
					pool.Submit(WorkItem{Scenario: named("s"), Index: i})
				}
				pool.Close()
			}()

			seen := make(map[int]bool)
			for _, res := range drain(pool) {
				seen[res.Index] = true
			}
			if len(seen) != tt.items {
				t.Errorf("distinct results = %d; want %d", len(seen), tt.items)
			}
			if got := atomic.LoadInt32(&processed); got != int32(tt.items) {
				t.Errorf("processed = %d; want %d", got, tt.items)
			}
		})
	}
}

func TestPool_Stop(t *testing.T) {
	pool := NewPool(2, 10, echo)
	pool.Start()

	if pool.IsStopped() {
		t.Error("new pool reports stopped")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool not stopped after Stop")
	}

	// Items queued after Stop are drained, not processed.
	for i := 0; i < 5; i++ {
		pool.Submit(WorkItem{Scenario: named("late"), Index: i})
	}
	go pool.Close()
	if got := len(drain(pool)); got != 0 {
		t.Errorf("results after Stop = %d; want 0", got)
	}
}

func TestPool_TrySubmit(t *testing.T) {
	release := make(chan struct{})
	blocked := func(item WorkItem) ProcessResult {
		<-release
		return echo(item)
	}

	pool := NewPool(1, 2, blocked)
	pool.Start()

	accepted := 0
	for i := 0; i < 5; i++ {
		if pool.TrySubmit(WorkItem{Scenario: named("s"), Index: i}) {
			accepted++
		}
	}
	// One item may be held by the worker, two sit in the buffer.
	if accepted < 2 || accepted > 3 {
		t.Errorf("accepted = %d; want 2 or 3", accepted)
	}

	pool.Stop()
	if pool.TrySubmit(WorkItem{Scenario: named("s"), Index: 9}) {
		t.Error("TrySubmit after Stop should return false")
	}

	close(release)
	go pool.Close()
	drain(pool)
}

func TestPool_RecoversPanics(t *testing.T) {
	boom := func(item WorkItem) ProcessResult {
		if item.Index == 1 {
			panic("board on fire")
		}
		return echo(item)
	}

	pool := NewPool(2, 4, boom)
	pool.Start()
	for i := 0; i < 3; i++ {
		pool.Submit(WorkItem{Scenario: &scenario.Scenario{Name: "n", File: "f.yaml"}, Index: i})
	}
	go pool.Close()

	results := drain(pool)
	if len(results) != 3 {
		t.Fatalf("results = %d; want 3", len(results))
	}
	for _, res := range results {
		if res.Index != 1 {
			continue
		}
		if !errors.Is(res.Result.Err, errors.ErrScenario) {
			t.Errorf("panic result error = %v; want ErrScenario", res.Result.Err)
		}
		if res.Result.File != "f.yaml" {
			t.Errorf("panic result file = %q", res.Result.File)
		}
	}
}

func TestPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid ignored", []PoolOption{WithWorkers(0), WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(echo, tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}

	if got := NewPool(-1, 0, echo).NumWorkers(); got != 1 {
		t.Errorf("NewPool(-1, 0).NumWorkers() = %d; want 1", got)
	}
}

func suite() []scenario.Scenario {
	return []scenario.Scenario{
		{
			Name:   "fool's mate",
			Moves:  []scenario.Step{{Move: "f3"}, {Move: "e5"}, {Move: "g4"}, {Move: "Qh4"}},
			Expect: scenario.Expect{Outcome: "checkmate", Winner: "black"},
		},
		{
			Name:   "wrong winner",
			Moves:  []scenario.Step{{Move: "e4"}},
			Expect: scenario.Expect{Winner: "white"},
		},
		{
			Name:   "stalemate",
			Start:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			Expect: scenario.Expect{Outcome: "stalemate"},
		},
		{
			Name:   "opening",
			Moves:  []scenario.Step{{Move: "e2e4"}, {Move: "c7c5"}, {Move: "Nf3"}},
			Expect: scenario.Expect{Outcome: "ongoing"},
		},
	}
}

func TestRunScenario(t *testing.T) {
	scenarios := suite()
	res := RunScenario(scenario.Options{})(WorkItem{Scenario: &scenarios[0], Index: 7})

	if res.Index != 7 {
		t.Errorf("Index = %d; want 7", res.Index)
	}
	if !res.Passed() {
		t.Errorf("fool's mate failed: %v", res.Result.Err)
	}
	if res.Result.Status != engine.Checkmate {
		t.Errorf("Status = %v; want checkmate", res.Result.Status)
	}
}

func TestRunAll(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		results := RunAll(suite(), workers, false, scenario.Options{})
		if len(results) != 4 {
			t.Fatalf("workers=%d: results = %d; want 4", workers, len(results))
		}

		want := []bool{true, false, true, true}
		for i, res := range results {
			if res.Index != i {
				t.Errorf("workers=%d: results[%d].Index = %d", workers, i, res.Index)
			}
			if res.Passed() != want[i] {
				t.Errorf("workers=%d: %s passed = %v; want %v", workers, res.Result.Scenario, res.Passed(), want[i])
			}
		}
	}
}

func TestRunAll_FailFast(t *testing.T) {
	results := RunAll(suite(), 1, true, scenario.Options{})

	if len(results) < 2 || len(results) > 4 {
		t.Fatalf("results = %d; want between 2 and 4", len(results))
	}
	if results[1].Passed() {
		t.Error("wrong winner should fail")
	}
}

func TestRunAll_Empty(t *testing.T) {
	if got := RunAll(nil, 4, true, scenario.Options{}); len(got) != 0 {
		t.Errorf("results = %d; want 0", len(got))
	}
}

func TestRunAll_MaxPlies(t *testing.T) {
	results := RunAll(suite(), 2, false, scenario.Options{MaxPlies: 2})
	for _, res := range results {
		long := len(suite()[res.Index].Moves) > 2
		if long && res.Passed() {
			t.Errorf("%s passed despite the ply limit", res.Result.Scenario)
		}
	}
}
