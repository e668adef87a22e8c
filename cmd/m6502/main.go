package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pkg/profile"

	"github.com/nevisdale/m6502/internal/clock"
	"github.com/nevisdale/m6502/internal/computer"
	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/nevisdale/m6502/internal/memory"
	"github.com/nevisdale/m6502/internal/ui"
	"github.com/nevisdale/m6502/internal/wire"
)

const (
	ramLo = 0x0000
	ramHi = 0x7FFF

	ledLatchLo = 0xD000
	ledLatchHi = 0xD0FF

	romLo = 0xE000
	romHi = 0xFFFF
)

// demoProgram counts up on the accumulator and writes each value to the
// LED latch at $D000.
var demoProgram = []uint8{
	0xA9, 0x00, // LDA #$00
	0x8D, 0x00, 0xD0, // STA $D000
	0x18,       // CLC
	0x69, 0x01, // ADC #$01
	0x8D, 0x00, 0xD0, // STA $D000
	0x4C, 0x05, 0xE0, // JMP $E005
}

func main() {
	var (
		hz        = flag.Uint64("hz", 1_000_000, "clock frequency")
		turbo     = flag.Bool("turbo", false, "run at maximum speed instead of real time")
		headless  = flag.Bool("headless", false, "run without the LED window")
		romPath   = flag.String("rom", "", "raw ROM image to run instead of the demo program")
		profiling = flag.Bool("profile", false, "write a CPU profile")
	)
	flag.Parse()

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if err := run(*hz, *turbo, *headless, *romPath); err != nil {
		log.Fatalf("m6502: %s", err)
	}
}

func run(hz uint64, turbo, headless bool, romPath string) error {
	image := make([]uint8, romHi-romLo+1)
	copy(image, demoProgram)
	if romPath != "" {
		data, err := memory.ReadImageFile(romPath)
		if err != nil {
			return err
		}
		if len(data) > len(image) {
			return fmt.Errorf("rom image is %d bytes, bank holds %d", len(data), len(image))
		}
		copy(image, data)
	} else {
		// Reset, NMI and IRQ all land at the program start.
		for _, off := range []int{0x1FFA, 0x1FFC, 0x1FFE} {
			image[off] = uint8(romLo & 0xFF)
			image[off+1] = uint8(romLo >> 8)
		}
	}

	mem := memory.New()
	c := computer.New()

	ram, err := memory.NewRAM("ram", ramLo, ramHi)
	c.Wire(err)
	if err == nil {
		c.Wire(mem.InstallBank(ram))
	}
	rom, err := memory.NewROM("rom", romLo, romHi, image)
	c.Wire(err)
	if err == nil {
		c.Wire(mem.InstallBank(rom))
	}

	ledLine := wire.NewByte()
	ledSrc, err := ledLine.Source()
	c.Wire(err)
	latch, err := memory.NewHandler("led", ledLatchLo, ledLatchHi,
		func(uint16) (uint8, error) { return ledLine.Value(), nil },
		func(_ uint16, v uint8) error {
			ledSrc.Set(v)
			return nil
		})
	c.Wire(err)
	if err == nil {
		c.Wire(mem.InstallBank(latch))
	}

	proc := cpu.NewCPU(mem)
	proc.Reset()

	clk, err := clock.New(hz)
	c.Wire(err)
	if err != nil {
		return c.Run() // surfaces the wiring error
	}

	c.Add(clk)
	c.Add(computer.OnRisingEdge(clk.Output(), proc))
	c.Add(mem)

	if !turbo {
		pacer := clock.NewPacer(clk)
		c.Pace(pacer.C())
		c.AddAsync(pacer)
	}

	if !headless {
		panel, err := ui.NewLEDPanel(ledLine)
		c.Wire(err)
		if err == nil {
			c.AddUI(panel)
		}
	}

	return c.Run()
}
