package worker

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/script"
)

// namedScripts returns n empty scripts named s0, s1, ...
func namedScripts(n int) []*script.Script {
	out := make([]*script.Script, n)
	for i := range out {
		out[i] = &script.Script{Name: fmt.Sprintf("s%d", i)}
	}
	return out
}

// echoProcessFunc reports the script name back.
func echoProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Report: &output.Report{Name: item.Script.Name}}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i, s := range namedScripts(numItems) {
		pool.Submit(WorkItem{Script: s, Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i, s := range namedScripts(numItems) {
		pool.Submit(WorkItem{Script: s, Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestNewPool tests the functional options.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestRun_Ordered verifies results come back in input order regardless of
// completion order.
func TestRun_Ordered(t *testing.T) {
	delayed := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return echoProcessFunc()(item)
	}

	scripts := namedScripts(20)
	results := Run(scripts, delayed, WithWorkers(4), WithBufferSize(3))

	if len(results) != len(scripts) {
		t.Fatalf("len(results) = %d; want %d", len(results), len(scripts))
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("results[%d].Index = %d", i, res.Index)
		}
		if res.Report.Name != scripts[i].Name {
			t.Errorf("results[%d].Report.Name = %q; want %q", i, res.Report.Name, scripts[i].Name)
		}
	}
}

func TestRun_Empty(t *testing.T) {
	if got := Run(nil, echoProcessFunc()); len(got) != 0 {
		t.Errorf("Run(nil) = %d results; want 0", len(got))
	}
}

// TestStream_StopsOnEmitError verifies a failing consumer halts the
// remaining work and gets its error back.
func TestStream_StopsOnEmitError(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Index: item.Index}
	}

	errFull := errors.New("disk full")
	var emitted []int
	const numItems = 100
	err := Stream(namedScripts(numItems), slow, func(res ProcessResult) error {
		emitted = append(emitted, res.Index)
		if res.Index == 2 {
			return errFull
		}
		return nil
	}, WithWorkers(1), WithBufferSize(4))

	if !errors.Is(err, errFull) {
		t.Fatalf("Stream error = %v; want %v", err, errFull)
	}
	if len(emitted) != 3 || emitted[0] != 0 || emitted[1] != 1 || emitted[2] != 2 {
		t.Errorf("emitted = %v; want [0 1 2]", emitted)
	}
	if got := atomic.LoadInt32(&processed); got >= numItems {
		t.Errorf("processed = %d; want fewer than %d after the error", got, numItems)
	}
}

func TestStream_Ordered(t *testing.T) {
	delayed := func(item WorkItem) ProcessResult {
		time.Sleep(time.Duration(5-item.Index%5) * time.Millisecond)
		return echoProcessFunc()(item)
	}

	next := 0
	err := Stream(namedScripts(15), delayed, func(res ProcessResult) error {
		if res.Index != next {
			t.Errorf("emitted index %d; want %d", res.Index, next)
		}
		next++
		return nil
	}, WithWorkers(3))

	if err != nil {
		t.Fatalf("Stream error = %v", err)
	}
	if next != 15 {
		t.Errorf("emitted %d results; want 15", next)
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	results := Run(namedScripts(100), countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))

	if len(results) != 100 {
		t.Errorf("results = %d; want 100", len(results))
	}
	if got := atomic.LoadInt32(&counter); got != 100 {
		t.Errorf("processed = %d; want 100", got)
	}
}
