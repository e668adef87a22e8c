package cpu

import (
	"fmt"
)

// ReadWriter is the bus the CPU performs its memory accesses on. Every
// access is a single byte: the 6502 never moves more than one byte per
// cycle.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

const (
	stackStartAddr = uint16(0x100)

	vectorNMI   = uint16(0xFFFA)
	vectorReset = uint16(0xFFFC)
	vectorIRQ   = uint16(0xFFFE)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused, reads as 1
	flagV                    // Overflow
	flagN                    // Negative
)

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeINDX                     // Indexed Indirect (X)
	addrModeINDY                     // Indirect Indexed (Y)
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

// opClass is how an instruction uses the bus once its operand address is
// resolved. The per-cycle sequencer keys off (mode, class); cycle counts
// fall out of the sequences.
type opClass uint8

const (
	classRead    opClass = iota + 1 // operand in, registers/flags out
	classWrite                      // register out to memory
	classRMW                        // read, modify, write back
	classImplied                    // no operand
	classAcc                        // modify the accumulator
	classBranch                     // relative branch
	classJump                       // JMP absolute
	classJumpInd                    // JMP (absolute)
	classJSR
	classRTS
	classRTI
	classBRK
	classPush
	classPull
)

type instr struct {
	name    string
	mode    addrMode
	class   opClass
	read    func(v uint8)       // classRead, classPull
	modify  func(v uint8) uint8 // classRMW, classAcc
	write   func() uint8        // classWrite, classPush
	exec    func()              // classImplied
	test    func() bool         // classBranch
	illegal bool
}

// activity is what the CPU is in the middle of: a normal instruction, the
// reset sequence, or a hardware interrupt sequence.
type activity uint8

const (
	actInstr activity = iota
	actReset
	actInterrupt
)

// CPU is a cycle-accurate MOS 6502. Tick performs one clock cycle of work;
// each tick issues zero or one bus accesses and may leave the CPU mid
// instruction, so state between ticks lives in the latches below.
type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	mem    ReadWriter
	instrs [0x100]instr

	// microexecution state
	opcode  uint8
	cycle   int // 0 = next tick is an instruction boundary
	act     activity
	addr    uint16 // effective address latch
	ptr     uint16 // pointer / base address latch
	value   uint8  // operand latch
	crossed bool   // page cross pending fixup
	intNMI  bool   // current interrupt sequence services NMI

	// interrupt inputs
	irqLine      bool
	nmiLine      bool
	nmiPending   bool
	resetPending bool

	strict      bool
	halted      bool
	totalCycles uint64
}

// Registers is an externally observable snapshot of the register file.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16
}

// InvalidOpcodeError is returned by Tick in strict mode when an
// undocumented opcode is fetched.
type InvalidOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode %02X at %04X", e.Opcode, e.PC)
}

// Option configures a CPU at construction.
type Option func(*CPU)

// WithStrictOpcodes makes the CPU halt with an InvalidOpcodeError on any
// undocumented opcode instead of treating it as a two-cycle NOP.
func WithStrictOpcodes() Option {
	return func(c *CPU) { c.strict = true }
}

func NewCPU(mem ReadWriter, opts ...Option) *CPU {
	c := &CPU{
		mem: mem,
		p:   flagU | flagI,
		sp:  0xFD,
	}
	c.initInstructions()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() uint8 {
	v := c.read8(c.pc)
	c.pc++
	return v
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&0x80 > 0)
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

// Registers returns a snapshot of the register file. Bit 5 of P always
// reads as 1.
func (c *CPU) Registers() Registers {
	return Registers{A: c.a, X: c.x, Y: c.y, SP: c.sp, P: c.p | flagU, PC: c.pc}
}

// Cycles returns the number of ticks executed.
func (c *CPU) Cycles() uint64 {
	return c.totalCycles
}

// Halted reports whether the CPU stopped on a strict-mode invalid opcode.
func (c *CPU) Halted() bool {
	return c.halted
}

// Reset queues the 7-cycle reset sequence. It preempts whatever the CPU is
// doing and recovers a halted CPU. After the sequence SP is 0xFD, I is
// set, D is cleared, and PC holds the vector at 0xFFFC/0xFFFD.
func (c *CPU) Reset() {
	c.resetPending = true
	c.halted = false
	c.cycle = 0
}

// SetIRQ drives the level-triggered IRQ line. The interrupt is taken at
// the next instruction boundary while the line is high and I is clear.
func (c *CPU) SetIRQ(level bool) {
	c.irqLine = level
}

// SetNMI drives the NMI line. A low-to-high transition latches a pending
// NMI, which is not gated by I and survives until serviced.
func (c *CPU) SetNMI(level bool) {
	if level && !c.nmiLine {
		c.nmiPending = true
	}
	c.nmiLine = level
}

// Tick performs one clock cycle: at an instruction boundary it starts the
// pending reset/interrupt sequence or fetches the next opcode; otherwise
// it executes the next micro-step of the current activity.
func (c *CPU) Tick() error {
	if c.halted {
		return nil
	}
	c.totalCycles++

	if c.cycle == 0 {
		switch {
		case c.resetPending:
			c.act = actReset
			c.read8(c.pc)
		case c.nmiPending:
			c.act = actInterrupt
			c.intNMI = true
			c.read8(c.pc)
		case c.irqLine && !c.getFlag(flagI):
			c.act = actInterrupt
			c.intNMI = false
			c.read8(c.pc)
		default:
			c.act = actInstr
			c.opcode = c.fetch()
			if c.strict && c.instrs[c.opcode].illegal {
				c.halted = true
				return &InvalidOpcodeError{Opcode: c.opcode, PC: c.pc - 1}
			}
		}
		c.cycle = 1
		return nil
	}

	switch c.act {
	case actReset:
		c.resetCycle()
	case actInterrupt:
		c.interruptCycle()
	default:
		c.instrCycle()
	}
	return nil
}

// resetCycle runs cycles 1-6 of the reset sequence. The stack pointer is
// walked down three times with reads instead of writes, which is what the
// hardware does.
func (c *CPU) resetCycle() {
	switch c.cycle {
	case 1:
		c.read8(c.pc)
		c.sp = 0x00
		c.cycle++
	case 2, 3, 4:
		c.read8(stackStartAddr | uint16(c.sp))
		c.sp--
		c.cycle++
	case 5:
		c.setFlag(flagI, true)
		c.setFlag(flagD, false)
		c.addr = uint16(c.read8(vectorReset))
		c.cycle++
	case 6:
		c.addr |= uint16(c.read8(vectorReset+1)) << 8
		c.pc = c.addr
		c.resetPending = false
		c.cycle = 0
	}
}

// interruptCycle runs cycles 1-6 of the IRQ/NMI sequence: push PCH, PCL,
// P with B clear, set I, load the vector. An NMI arriving before the
// vector read hijacks an in-flight IRQ sequence.
func (c *CPU) interruptCycle() {
	switch c.cycle {
	case 1:
		c.read8(c.pc)
		c.cycle++
	case 2:
		c.stackPush8(uint8(c.pc >> 8))
		c.cycle++
	case 3:
		c.stackPush8(uint8(c.pc))
		c.cycle++
	case 4:
		c.stackPush8((c.p | flagU) &^ flagB)
		c.setFlag(flagI, true)
		c.cycle++
	case 5:
		if c.nmiPending {
			c.intNMI = true
		}
		c.ptr = vectorIRQ
		if c.intNMI {
			c.ptr = vectorNMI
			c.nmiPending = false
		}
		c.addr = uint16(c.read8(c.ptr))
		c.cycle++
	case 6:
		c.pc = c.addr | uint16(c.read8(c.ptr+1))<<8
		c.cycle = 0
	}
}

func (c *CPU) instrCycle() {
	in := &c.instrs[c.opcode]
	switch in.class {
	case classImplied:
		c.read8(c.pc)
		in.exec()
		c.cycle = 0
	case classAcc:
		c.read8(c.pc)
		c.a = in.modify(c.a)
		c.cycle = 0
	case classBranch:
		c.branchCycle(in)
	case classJump:
		switch c.cycle {
		case 1:
			c.addr = uint16(c.fetch())
			c.cycle++
		case 2:
			c.addr |= uint16(c.fetch()) << 8
			c.pc = c.addr
			c.cycle = 0
		}
	case classJumpInd:
		c.jumpIndirectCycle()
	case classJSR:
		c.jsrCycle()
	case classRTS:
		c.rtsCycle()
	case classRTI:
		c.rtiCycle()
	case classBRK:
		c.brkCycle()
	case classPush:
		switch c.cycle {
		case 1:
			c.read8(c.pc)
			c.cycle++
		case 2:
			c.stackPush8(in.write())
			c.cycle = 0
		}
	case classPull:
		switch c.cycle {
		case 1:
			c.read8(c.pc)
			c.cycle++
		case 2:
			c.read8(stackStartAddr | uint16(c.sp))
			c.cycle++
		case 3:
			c.sp++
			in.read(c.read8(stackStartAddr | uint16(c.sp)))
			c.cycle = 0
		}
	default:
		c.memCycle(in)
	}
}

// memCycle resolves the operand address for read/write/rmw instructions,
// one cycle at a time, then hands off to operate.
func (c *CPU) memCycle(in *instr) {
	switch in.mode {
	case addrModeIMM:
		in.read(c.fetch())
		c.cycle = 0

	case addrModeZP:
		if c.cycle == 1 {
			c.addr = uint16(c.fetch())
			c.cycle++
			return
		}
		c.operate(in, 2)

	case addrModeZPX:
		c.zpIndexedCycle(in, c.x)
	case addrModeZPY:
		c.zpIndexedCycle(in, c.y)

	case addrModeABS:
		switch c.cycle {
		case 1:
			c.addr = uint16(c.fetch())
			c.cycle++
		case 2:
			c.addr |= uint16(c.fetch()) << 8
			c.cycle++
		default:
			c.operate(in, 3)
		}

	case addrModeABSX:
		c.absIndexedCycle(in, c.x)
	case addrModeABSY:
		c.absIndexedCycle(in, c.y)

	case addrModeINDX:
		switch c.cycle {
		case 1:
			c.ptr = uint16(c.fetch())
			c.cycle++
		case 2:
			c.read8(c.ptr)
			c.ptr = (c.ptr + uint16(c.x)) & 0xFF
			c.cycle++
		case 3:
			c.addr = uint16(c.read8(c.ptr))
			c.cycle++
		case 4:
			c.addr |= uint16(c.read8((c.ptr+1)&0xFF)) << 8
			c.cycle++
		default:
			c.operate(in, 5)
		}

	case addrModeINDY:
		switch c.cycle {
		case 1:
			c.ptr = uint16(c.fetch())
			c.cycle++
		case 2:
			c.addr = uint16(c.read8(c.ptr))
			c.cycle++
		case 3:
			base := c.addr | uint16(c.read8((c.ptr+1)&0xFF))<<8
			c.addr = base + uint16(c.y)
			c.ptr = base
			c.crossed = (c.addr^base)&0xFF00 != 0
			c.cycle++
		case 4:
			if in.class == classRead && !c.crossed {
				c.operate(in, 4)
				return
			}
			// Read from the address before the carry into the high byte
			// has been applied. Stores and read-modify-writes always pay
			// this cycle.
			c.read8(c.ptr&0xFF00 | c.addr&0x00FF)
			c.cycle++
		default:
			c.operate(in, 5)
		}
	}
}

func (c *CPU) zpIndexedCycle(in *instr, idx uint8) {
	switch c.cycle {
	case 1:
		c.addr = uint16(c.fetch())
		c.cycle++
	case 2:
		c.read8(c.addr)
		c.addr = (c.addr + uint16(idx)) & 0xFF
		c.cycle++
	default:
		c.operate(in, 3)
	}
}

func (c *CPU) absIndexedCycle(in *instr, idx uint8) {
	switch c.cycle {
	case 1:
		c.ptr = uint16(c.fetch())
		c.cycle++
	case 2:
		c.ptr |= uint16(c.fetch()) << 8
		c.addr = c.ptr + uint16(idx)
		c.crossed = (c.addr^c.ptr)&0xFF00 != 0
		c.cycle++
	case 3:
		if in.class == classRead && !c.crossed {
			c.operate(in, 3)
			return
		}
		c.read8(c.ptr&0xFF00 | c.addr&0x00FF)
		c.cycle++
	default:
		c.operate(in, 4)
	}
}

// operate performs the bus phase of a read/write/rmw instruction once the
// effective address is in c.addr. start is the cycle index the phase
// begins on.
func (c *CPU) operate(in *instr, start int) {
	switch c.cycle - start {
	case 0:
		switch in.class {
		case classRead:
			in.read(c.read8(c.addr))
			c.cycle = 0
		case classWrite:
			c.write8(c.addr, in.write())
			c.cycle = 0
		case classRMW:
			c.value = c.read8(c.addr)
			c.cycle++
		}
	case 1:
		// The hardware writes the unmodified value back while the ALU
		// works, then writes the result on the next cycle.
		c.write8(c.addr, c.value)
		c.value = in.modify(c.value)
		c.cycle++
	case 2:
		c.write8(c.addr, c.value)
		c.cycle = 0
	}
}

func (c *CPU) branchCycle(in *instr) {
	switch c.cycle {
	case 1:
		off := c.fetch()
		if !in.test() {
			c.cycle = 0
			return
		}
		c.addr = c.pc + uint16(int16(int8(off)))
		c.cycle++
	case 2:
		c.read8(c.pc)
		c.pc = c.pc&0xFF00 | c.addr&0x00FF
		if c.pc == c.addr {
			c.cycle = 0
			return
		}
		c.cycle++
	case 3:
		c.read8(c.pc)
		c.pc = c.addr
		c.cycle = 0
	}
}

func (c *CPU) jumpIndirectCycle() {
	switch c.cycle {
	case 1:
		c.ptr = uint16(c.fetch())
		c.cycle++
	case 2:
		c.ptr |= uint16(c.fetch()) << 8
		c.cycle++
	case 3:
		c.addr = uint16(c.read8(c.ptr))
		c.cycle++
	case 4:
		// The pointer high byte is fetched from the same page: a pointer
		// at $xxFF wraps to $xx00 instead of crossing into the next page.
		hi := c.ptr&0xFF00 | (c.ptr+1)&0x00FF
		c.pc = c.addr | uint16(c.read8(hi))<<8
		c.cycle = 0
	}
}

func (c *CPU) jsrCycle() {
	switch c.cycle {
	case 1:
		c.addr = uint16(c.fetch())
		c.cycle++
	case 2:
		c.read8(stackStartAddr | uint16(c.sp))
		c.cycle++
	case 3:
		c.stackPush8(uint8(c.pc >> 8))
		c.cycle++
	case 4:
		c.stackPush8(uint8(c.pc))
		c.cycle++
	case 5:
		c.addr |= uint16(c.read8(c.pc)) << 8
		c.pc = c.addr
		c.cycle = 0
	}
}

func (c *CPU) rtsCycle() {
	switch c.cycle {
	case 1:
		c.read8(c.pc)
		c.cycle++
	case 2:
		c.read8(stackStartAddr | uint16(c.sp))
		c.cycle++
	case 3:
		c.sp++
		c.pc = c.pc&0xFF00 | uint16(c.read8(stackStartAddr|uint16(c.sp)))
		c.cycle++
	case 4:
		c.sp++
		c.pc = c.pc&0x00FF | uint16(c.read8(stackStartAddr|uint16(c.sp)))<<8
		c.cycle++
	case 5:
		c.read8(c.pc)
		c.pc++
		c.cycle = 0
	}
}

func (c *CPU) rtiCycle() {
	switch c.cycle {
	case 1:
		c.read8(c.pc)
		c.cycle++
	case 2:
		c.read8(stackStartAddr | uint16(c.sp))
		c.cycle++
	case 3:
		c.sp++
		c.p = c.read8(stackStartAddr|uint16(c.sp))&^flagB | flagU
		c.cycle++
	case 4:
		c.sp++
		c.pc = c.pc&0xFF00 | uint16(c.read8(stackStartAddr|uint16(c.sp)))
		c.cycle++
	case 5:
		c.sp++
		c.pc = c.pc&0x00FF | uint16(c.read8(stackStartAddr|uint16(c.sp)))<<8
		c.cycle = 0
	}
}

func (c *CPU) brkCycle() {
	switch c.cycle {
	case 1:
		// BRK carries a padding byte: the pushed return address is PC+2.
		c.read8(c.pc)
		c.pc++
		c.cycle++
	case 2:
		c.stackPush8(uint8(c.pc >> 8))
		c.cycle++
	case 3:
		c.stackPush8(uint8(c.pc))
		c.cycle++
	case 4:
		c.stackPush8(c.p | flagB | flagU)
		c.setFlag(flagI, true)
		c.cycle++
	case 5:
		// An NMI arriving this late hijacks the BRK vector.
		c.ptr = vectorIRQ
		if c.nmiPending {
			c.ptr = vectorNMI
			c.nmiPending = false
		}
		c.addr = uint16(c.read8(c.ptr))
		c.cycle++
	case 6:
		c.pc = c.addr | uint16(c.read8(c.ptr+1))<<8
		c.cycle = 0
	}
}
