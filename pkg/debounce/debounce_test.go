package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDoReplacesPending(t *testing.T) {
	d := New(30 * time.Millisecond)
	var fired atomic.Int32

	// Three rapid triggers: only the last survives the quiet interval.
	d.Do(func() { fired.Add(1) })
	d.Do(func() { fired.Add(1) })
	d.Do(func() { fired.Add(10) })

	time.Sleep(120 * time.Millisecond)
	if got := fired.Load(); got != 10 {
		t.Errorf("fired = %d, want 10 (last call only)", got)
	}
}

func TestStopCancels(t *testing.T) {
	d := New(20 * time.Millisecond)
	var fired atomic.Int32

	d.Do(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("stopped call still fired")
	}
}

func TestUsableAfterStop(t *testing.T) {
	d := New(10 * time.Millisecond)
	done := make(chan struct{})

	d.Do(func() {})
	d.Stop()
	d.Do(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("call scheduled after Stop never fired")
	}
}
