package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrigger_CoalescesBursts(t *testing.T) {
	d := New(50 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	// A burst of triggers inside one quiet period fires once, with the
	// most recent payload.
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(5), last.Load())

	// Still exactly one call after another quiet period passes.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTrigger_SeparateQuietPeriods(t *testing.T) {
	d := New(20 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestStop_CancelsPending(t *testing.T) {
	d := New(30 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
