package computer

import (
	"github.com/nevisdale/m6502/internal/wire"
)

// EdgeTicker ticks a component once for every rising edge seen on a bit
// wire since the previous harness tick. Register it after the clock so
// that an edge produced by the clock's Step is consumed on the same
// iteration.
type EdgeTicker struct {
	comp    SyncComponent
	prev    bool
	pending int
}

// OnRisingEdge subscribes comp to line and returns the ticker to register
// with Add.
func OnRisingEdge(line *wire.Bit, comp SyncComponent) *EdgeTicker {
	et := &EdgeTicker{comp: comp}
	et.prev = line.Value()
	line.Subscribe(func(level bool) {
		if level && !et.prev {
			et.pending++
		}
		et.prev = level
	})
	return et
}

func (et *EdgeTicker) Tick() error {
	for et.pending > 0 {
		et.pending--
		if err := et.comp.Tick(); err != nil {
			return err
		}
	}
	return nil
}
