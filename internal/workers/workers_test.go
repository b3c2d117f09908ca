// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called and blocks until ctx is done.
type mockWorker struct {
	runCount atomic.Int32
	stopped  atomic.Bool
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
	m.stopped.Store(true)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(w1, w2, w3)
	ws.Run(ctx)

	cancel()
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount.Load() != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount.Load())
		}
		if !w.stopped.Load() {
			t.Errorf("worker[%d]: expected to stop after cancel", i)
		}
	}
}

func TestWorkers_Run_DoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws := NewWorkers(&mockWorker{})

	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run blocked on a long-running worker")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Wait()
}
