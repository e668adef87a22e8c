package clock

import (
	"fmt"
	"sync/atomic"

	"github.com/nevisdale/m6502/internal/wire"
)

// Clock produces a square wave on its output wire. Step advances the phase
// counter; when the counter reaches the period the output toggles and the
// counter resets, so each full period produces one rising and one falling
// edge. The clock does not know real time: the harness decides how to pace
// Step calls, either free-running or gated by a Pacer.
type Clock struct {
	hz     atomic.Uint64
	nextHz atomic.Uint64
	period uint64
	phase  uint64
	ticks  uint64
	out    *wire.Bit
	src    *wire.Source[bool]
}

// New returns a clock with the given frequency and a period of one Step
// call per toggle. The output wire starts low.
func New(hz uint64) (*Clock, error) {
	return NewWithPeriod(hz, 1)
}

// NewWithPeriod returns a clock that toggles its output every period Step
// calls.
func NewWithPeriod(hz, period uint64) (*Clock, error) {
	if hz == 0 {
		return nil, fmt.Errorf("clock: frequency must be non-zero")
	}
	if period == 0 {
		return nil, fmt.Errorf("clock: period must be non-zero")
	}
	out := wire.NewBit()
	src, err := out.Source()
	if err != nil {
		return nil, fmt.Errorf("clock: claim output: %w", err)
	}
	c := &Clock{period: period, out: out, src: src}
	c.hz.Store(hz)
	c.nextHz.Store(hz)
	return c, nil
}

// Output returns the clock's output wire.
func (c *Clock) Output() *wire.Bit {
	return c.out
}

// Frequency returns the current frequency in Hz.
func (c *Clock) Frequency() uint64 {
	return c.hz.Load()
}

// SetFrequency changes the frequency. The change takes effect on the next
// Step. Safe to call from any goroutine.
func (c *Clock) SetFrequency(hz uint64) error {
	if hz == 0 {
		return fmt.Errorf("clock: frequency must be non-zero")
	}
	c.nextHz.Store(hz)
	return nil
}

// Ticks returns the number of Step calls so far.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Step advances the phase counter, toggling the output when the period is
// reached. Tick wraps it for the harness SyncComponent contract.
func (c *Clock) Step() {
	c.hz.Store(c.nextHz.Load())
	c.ticks++
	c.phase++
	if c.phase >= c.period {
		c.phase = 0
		c.src.Set(!c.out.Value())
	}
}

// Tick lets the clock be registered as a synchronous component.
func (c *Clock) Tick() error {
	c.Step()
	return nil
}
