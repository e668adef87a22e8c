package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nevisdale/m6502/internal/wire"
)

const (
	ledCount   = 8
	ledSize    = 40
	ledSpacing = 10

	screenWidth  = ledCount*(ledSize+ledSpacing) + ledSpacing
	screenHeight = ledSize + 2*ledSpacing + 20
)

var (
	ledOn  = color.RGBA{0xE6, 0x32, 0x2D, 0xFF}
	ledOff = color.RGBA{0x50, 0x50, 0x50, 0xFF}
)

// LEDPanel shows one LED per bit of a byte wire, most significant bit on
// the left. It observes the wire through a cross-thread port and never
// touches simulation state.
type LEDPanel struct {
	port  *wire.Port[uint8]
	value uint8
	stop  <-chan struct{}
}

func NewLEDPanel(line *wire.Byte) (*LEDPanel, error) {
	port, err := line.Port(64)
	if err != nil {
		return nil, fmt.Errorf("ui: attach led port: %w", err)
	}
	return &LEDPanel{port: port}, nil
}

// RunUI runs the window loop on the calling goroutine until stop closes or
// the window is closed. Implements the harness UIComponent contract.
func (p *LEDPanel) RunUI(stop <-chan struct{}) error {
	p.stop = stop
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("m6502")
	ebiten.SetTPS(60)
	err := ebiten.RunGame(p)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (p *LEDPanel) Update() error {
	select {
	case <-p.stop:
		return ebiten.Termination
	default:
	}
	if v, ok := p.port.Drain(); ok {
		p.value = v
	}
	return nil
}

func (p *LEDPanel) Draw(screen *ebiten.Image) {
	for i := 0; i < ledCount; i++ {
		c := ledOff
		if p.value&(0x80>>i) != 0 {
			c = ledOn
		}
		x := float32(ledSpacing + i*(ledSize+ledSpacing) + ledSize/2)
		y := float32(ledSpacing + ledSize/2)
		vector.DrawFilledCircle(screen, x, y, ledSize/2, c, true)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("$%02X", p.value), ledSpacing, ledSize+2*ledSpacing)
}

func (p *LEDPanel) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}
