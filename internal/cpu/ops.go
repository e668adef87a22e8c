package cpu

// Add with Carry
// A = A + M + C
//
// Flags affected: C, Z, N, V
//
// In decimal mode the accumulator and carry are BCD-adjusted; N, Z and V
// still reflect the binary result, which is the NMOS behavior.
func (c *CPU) adc(v uint8) {
	carry := uint16(0)
	if c.getFlag(flagC) {
		carry = 1
	}
	sum := uint16(c.a) + uint16(v) + carry
	r := uint8(sum)
	c.setFlag(flagV, (c.a^r)&(v^r)&0x80 != 0)
	c.setFlagsZN(r)

	if c.getFlag(flagD) {
		lo := uint16(c.a&0x0F) + uint16(v&0x0F) + carry
		hi := uint16(c.a>>4) + uint16(v>>4)
		if lo > 9 {
			lo += 6
			hi++
		}
		if hi > 9 {
			hi += 6
		}
		c.a = uint8(lo&0x0F) | uint8(hi<<4)
		c.setFlag(flagC, hi > 0x0F)
		return
	}

	c.setFlag(flagC, sum > 0xFF)
	c.a = r
}

// Subtract with Carry
// A = A - M - (1 - C)
//
// Flags affected: C, Z, N, V
func (c *CPU) sbc(v uint8) {
	borrow := uint16(1)
	if c.getFlag(flagC) {
		borrow = 0
	}
	diff := uint16(c.a) - uint16(v) - borrow
	r := uint8(diff)
	c.setFlag(flagV, (c.a^v)&(c.a^r)&0x80 != 0)
	c.setFlagsZN(r)
	c.setFlag(flagC, diff < 0x100)

	if c.getFlag(flagD) {
		lo := int(c.a&0x0F) - int(v&0x0F) - int(borrow)
		hi := int(c.a>>4) - int(v>>4)
		if lo < 0 {
			lo -= 6
			hi--
		}
		if hi < 0 {
			hi -= 6
		}
		c.a = uint8(lo&0x0F) | uint8(hi&0x0F)<<4
		return
	}

	c.a = r
}

// Logical AND
// A = A & M
//
// Flags affected: Z, N
func (c *CPU) and(v uint8) {
	c.a &= v
	c.setFlagsZN(c.a)
}

// Logical Inclusive OR
// A = A | M
//
// Flags affected: Z, N
func (c *CPU) ora(v uint8) {
	c.a |= v
	c.setFlagsZN(c.a)
}

// Exclusive OR
// A = A ^ M
//
// Flags affected: Z, N
func (c *CPU) eor(v uint8) {
	c.a ^= v
	c.setFlagsZN(c.a)
}

// Bit Test
// Z from A & M, N from M7, V from M6
//
// Flags affected: Z, N, V
func (c *CPU) bit(v uint8) {
	c.setFlag(flagZ, c.a&v == 0)
	c.setFlag(flagN, v&0x80 > 0)
	c.setFlag(flagV, v&0x40 > 0)
}

// compare is the shared helper behind CMP, CPX and CPY. V is unaffected.
func (c *CPU) compare(reg, v uint8) {
	c.setFlag(flagC, reg >= v)
	c.setFlagsZN(reg - v)
}

// Compare Accumulator
//
// Flags affected: C, Z, N
func (c *CPU) cmp(v uint8) { c.compare(c.a, v) }

// Compare X Register
//
// Flags affected: C, Z, N
func (c *CPU) cpx(v uint8) { c.compare(c.x, v) }

// Compare Y Register
//
// Flags affected: C, Z, N
func (c *CPU) cpy(v uint8) { c.compare(c.y, v) }

// Load Accumulator
//
// Flags affected: Z, N
func (c *CPU) lda(v uint8) {
	c.a = v
	c.setFlagsZN(c.a)
}

// Load X Register
//
// Flags affected: Z, N
func (c *CPU) ldx(v uint8) {
	c.x = v
	c.setFlagsZN(c.x)
}

// Load Y Register
//
// Flags affected: Z, N
func (c *CPU) ldy(v uint8) {
	c.y = v
	c.setFlagsZN(c.y)
}

// Pull Accumulator
//
// Flags affected: Z, N
func (c *CPU) pla(v uint8) {
	c.a = v
	c.setFlagsZN(c.a)
}

// Pull Processor Status. The pushed B bit is ignored and bit 5 stays set.
func (c *CPU) plp(v uint8) {
	c.p = v&^flagB | flagU
}

// Arithmetic Shift Left
// C <- M7, M << 1
//
// Flags affected: C, Z, N
func (c *CPU) asl(v uint8) uint8 {
	r := v << 1
	c.setFlag(flagC, v&0x80 > 0)
	c.setFlagsZN(r)
	return r
}

// Logical Shift Right
// C <- M0, M >> 1
//
// Flags affected: C, Z, N
func (c *CPU) lsr(v uint8) uint8 {
	r := v >> 1
	c.setFlag(flagC, v&0x01 > 0)
	c.setFlagsZN(r)
	return r
}

// Rotate Left
// C <- M7, M << 1 | C
//
// Flags affected: C, Z, N
func (c *CPU) rol(v uint8) uint8 {
	r := v << 1
	if c.getFlag(flagC) {
		r |= 0x01
	}
	c.setFlag(flagC, v&0x80 > 0)
	c.setFlagsZN(r)
	return r
}

// Rotate Right
// C <- M0, M >> 1 | C << 7
//
// Flags affected: C, Z, N
func (c *CPU) ror(v uint8) uint8 {
	r := v >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, v&0x01 > 0)
	c.setFlagsZN(r)
	return r
}

// Increment Memory
//
// Flags affected: Z, N
func (c *CPU) inc(v uint8) uint8 {
	r := v + 1
	c.setFlagsZN(r)
	return r
}

// Decrement Memory
//
// Flags affected: Z, N
func (c *CPU) dec(v uint8) uint8 {
	r := v - 1
	c.setFlagsZN(r)
	return r
}

// Store Accumulator
func (c *CPU) sta() uint8 { return c.a }

// Store X Register
func (c *CPU) stx() uint8 { return c.x }

// Store Y Register
func (c *CPU) sty() uint8 { return c.y }

// Push Accumulator
func (c *CPU) pha() uint8 { return c.a }

// Push Processor Status. The pushed copy has B and bit 5 set.
func (c *CPU) php() uint8 { return c.p | flagB | flagU }

// Clear Carry Flag
func (c *CPU) clc() { c.setFlag(flagC, false) }

// Clear Decimal Mode
func (c *CPU) cld() { c.setFlag(flagD, false) }

// Clear Interrupt Disable
func (c *CPU) cli() { c.setFlag(flagI, false) }

// Clear Overflow Flag
func (c *CPU) clv() { c.setFlag(flagV, false) }

// Set Carry Flag
func (c *CPU) sec() { c.setFlag(flagC, true) }

// Set Decimal Flag
func (c *CPU) sed() { c.setFlag(flagD, true) }

// Set Interrupt Disable
func (c *CPU) sei() { c.setFlag(flagI, true) }

// Decrement X Register
//
// Flags affected: Z, N
func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

// Decrement Y Register
//
// Flags affected: Z, N
func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

// Increment X Register
//
// Flags affected: Z, N
func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

// Increment Y Register
//
// Flags affected: Z, N
func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

// Transfer Accumulator to X
//
// Flags affected: Z, N
func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

// Transfer Accumulator to Y
//
// Flags affected: Z, N
func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

// Transfer Stack Pointer to X
//
// Flags affected: Z, N
func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

// Transfer X to Accumulator
//
// Flags affected: Z, N
func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

// Transfer X to Stack Pointer
func (c *CPU) txs() {
	c.sp = c.x
}

// Transfer Y to Accumulator
//
// Flags affected: Z, N
func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

// No Operation
func (c *CPU) nop() {}

// Branch tests.
func (c *CPU) bcc() bool { return !c.getFlag(flagC) }
func (c *CPU) bcs() bool { return c.getFlag(flagC) }
func (c *CPU) bne() bool { return !c.getFlag(flagZ) }
func (c *CPU) beq() bool { return c.getFlag(flagZ) }
func (c *CPU) bpl() bool { return !c.getFlag(flagN) }
func (c *CPU) bmi() bool { return c.getFlag(flagN) }
func (c *CPU) bvc() bool { return !c.getFlag(flagV) }
func (c *CPU) bvs() bool { return c.getFlag(flagV) }
