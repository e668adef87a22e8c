package cpu

// initInstructions builds the 256-entry instruction table. The 151
// documented opcodes get their mode, operation class and operation; every
// other opcode is a two-cycle NOP flagged as illegal so strict mode can
// reject it.
func (c *CPU) initInstructions() {
	for i := range c.instrs {
		c.instrs[i] = instr{name: "NOP", mode: addrModeIMP, class: classImplied, exec: c.nop, illegal: true}
	}

	c.instrs[0x00] = instr{name: "BRK", mode: addrModeIMP, class: classBRK}
	c.instrs[0x01] = instr{name: "ORA", mode: addrModeINDX, class: classRead, read: c.ora}
	c.instrs[0x05] = instr{name: "ORA", mode: addrModeZP, class: classRead, read: c.ora}
	c.instrs[0x06] = instr{name: "ASL", mode: addrModeZP, class: classRMW, modify: c.asl}
	c.instrs[0x08] = instr{name: "PHP", mode: addrModeIMP, class: classPush, write: c.php}
	c.instrs[0x09] = instr{name: "ORA", mode: addrModeIMM, class: classRead, read: c.ora}
	c.instrs[0x0A] = instr{name: "ASL", mode: addrModeACC, class: classAcc, modify: c.asl}
	c.instrs[0x0D] = instr{name: "ORA", mode: addrModeABS, class: classRead, read: c.ora}
	c.instrs[0x0E] = instr{name: "ASL", mode: addrModeABS, class: classRMW, modify: c.asl}
	c.instrs[0x10] = instr{name: "BPL", mode: addrModeREL, class: classBranch, test: c.bpl}
	c.instrs[0x11] = instr{name: "ORA", mode: addrModeINDY, class: classRead, read: c.ora}
	c.instrs[0x15] = instr{name: "ORA", mode: addrModeZPX, class: classRead, read: c.ora}
	c.instrs[0x16] = instr{name: "ASL", mode: addrModeZPX, class: classRMW, modify: c.asl}
	c.instrs[0x18] = instr{name: "CLC", mode: addrModeIMP, class: classImplied, exec: c.clc}
	c.instrs[0x19] = instr{name: "ORA", mode: addrModeABSY, class: classRead, read: c.ora}
	c.instrs[0x1D] = instr{name: "ORA", mode: addrModeABSX, class: classRead, read: c.ora}
	c.instrs[0x1E] = instr{name: "ASL", mode: addrModeABSX, class: classRMW, modify: c.asl}
	c.instrs[0x20] = instr{name: "JSR", mode: addrModeABS, class: classJSR}
	c.instrs[0x21] = instr{name: "AND", mode: addrModeINDX, class: classRead, read: c.and}
	c.instrs[0x24] = instr{name: "BIT", mode: addrModeZP, class: classRead, read: c.bit}
	c.instrs[0x25] = instr{name: "AND", mode: addrModeZP, class: classRead, read: c.and}
	c.instrs[0x26] = instr{name: "ROL", mode: addrModeZP, class: classRMW, modify: c.rol}
	c.instrs[0x28] = instr{name: "PLP", mode: addrModeIMP, class: classPull, read: c.plp}
	c.instrs[0x29] = instr{name: "AND", mode: addrModeIMM, class: classRead, read: c.and}
	c.instrs[0x2A] = instr{name: "ROL", mode: addrModeACC, class: classAcc, modify: c.rol}
	c.instrs[0x2C] = instr{name: "BIT", mode: addrModeABS, class: classRead, read: c.bit}
	c.instrs[0x2D] = instr{name: "AND", mode: addrModeABS, class: classRead, read: c.and}
	c.instrs[0x2E] = instr{name: "ROL", mode: addrModeABS, class: classRMW, modify: c.rol}
	c.instrs[0x30] = instr{name: "BMI", mode: addrModeREL, class: classBranch, test: c.bmi}
	c.instrs[0x31] = instr{name: "AND", mode: addrModeINDY, class: classRead, read: c.and}
	c.instrs[0x35] = instr{name: "AND", mode: addrModeZPX, class: classRead, read: c.and}
	c.instrs[0x36] = instr{name: "ROL", mode: addrModeZPX, class: classRMW, modify: c.rol}
	c.instrs[0x38] = instr{name: "SEC", mode: addrModeIMP, class: classImplied, exec: c.sec}
	c.instrs[0x39] = instr{name: "AND", mode: addrModeABSY, class: classRead, read: c.and}
	c.instrs[0x3D] = instr{name: "AND", mode: addrModeABSX, class: classRead, read: c.and}
	c.instrs[0x3E] = instr{name: "ROL", mode: addrModeABSX, class: classRMW, modify: c.rol}
	c.instrs[0x40] = instr{name: "RTI", mode: addrModeIMP, class: classRTI}
	c.instrs[0x41] = instr{name: "EOR", mode: addrModeINDX, class: classRead, read: c.eor}
	c.instrs[0x45] = instr{name: "EOR", mode: addrModeZP, class: classRead, read: c.eor}
	c.instrs[0x46] = instr{name: "LSR", mode: addrModeZP, class: classRMW, modify: c.lsr}
	c.instrs[0x48] = instr{name: "PHA", mode: addrModeIMP, class: classPush, write: c.pha}
	c.instrs[0x49] = instr{name: "EOR", mode: addrModeIMM, class: classRead, read: c.eor}
	c.instrs[0x4A] = instr{name: "LSR", mode: addrModeACC, class: classAcc, modify: c.lsr}
	c.instrs[0x4C] = instr{name: "JMP", mode: addrModeABS, class: classJump}
	c.instrs[0x4D] = instr{name: "EOR", mode: addrModeABS, class: classRead, read: c.eor}
	c.instrs[0x4E] = instr{name: "LSR", mode: addrModeABS, class: classRMW, modify: c.lsr}
	c.instrs[0x50] = instr{name: "BVC", mode: addrModeREL, class: classBranch, test: c.bvc}
	c.instrs[0x51] = instr{name: "EOR", mode: addrModeINDY, class: classRead, read: c.eor}
	c.instrs[0x55] = instr{name: "EOR", mode: addrModeZPX, class: classRead, read: c.eor}
	c.instrs[0x56] = instr{name: "LSR", mode: addrModeZPX, class: classRMW, modify: c.lsr}
	c.instrs[0x58] = instr{name: "CLI", mode: addrModeIMP, class: classImplied, exec: c.cli}
	c.instrs[0x59] = instr{name: "EOR", mode: addrModeABSY, class: classRead, read: c.eor}
	c.instrs[0x5D] = instr{name: "EOR", mode: addrModeABSX, class: classRead, read: c.eor}
	c.instrs[0x5E] = instr{name: "LSR", mode: addrModeABSX, class: classRMW, modify: c.lsr}
	c.instrs[0x60] = instr{name: "RTS", mode: addrModeIMP, class: classRTS}
	c.instrs[0x61] = instr{name: "ADC", mode: addrModeINDX, class: classRead, read: c.adc}
	c.instrs[0x65] = instr{name: "ADC", mode: addrModeZP, class: classRead, read: c.adc}
	c.instrs[0x66] = instr{name: "ROR", mode: addrModeZP, class: classRMW, modify: c.ror}
	c.instrs[0x68] = instr{name: "PLA", mode: addrModeIMP, class: classPull, read: c.pla}
	c.instrs[0x69] = instr{name: "ADC", mode: addrModeIMM, class: classRead, read: c.adc}
	c.instrs[0x6A] = instr{name: "ROR", mode: addrModeACC, class: classAcc, modify: c.ror}
	c.instrs[0x6C] = instr{name: "JMP", mode: addrModeABS, class: classJumpInd}
	c.instrs[0x6D] = instr{name: "ADC", mode: addrModeABS, class: classRead, read: c.adc}
	c.instrs[0x6E] = instr{name: "ROR", mode: addrModeABS, class: classRMW, modify: c.ror}
	c.instrs[0x70] = instr{name: "BVS", mode: addrModeREL, class: classBranch, test: c.bvs}
	c.instrs[0x71] = instr{name: "ADC", mode: addrModeINDY, class: classRead, read: c.adc}
	c.instrs[0x75] = instr{name: "ADC", mode: addrModeZPX, class: classRead, read: c.adc}
	c.instrs[0x76] = instr{name: "ROR", mode: addrModeZPX, class: classRMW, modify: c.ror}
	c.instrs[0x78] = instr{name: "SEI", mode: addrModeIMP, class: classImplied, exec: c.sei}
	c.instrs[0x79] = instr{name: "ADC", mode: addrModeABSY, class: classRead, read: c.adc}
	c.instrs[0x7D] = instr{name: "ADC", mode: addrModeABSX, class: classRead, read: c.adc}
	c.instrs[0x7E] = instr{name: "ROR", mode: addrModeABSX, class: classRMW, modify: c.ror}
	c.instrs[0x81] = instr{name: "STA", mode: addrModeINDX, class: classWrite, write: c.sta}
	c.instrs[0x84] = instr{name: "STY", mode: addrModeZP, class: classWrite, write: c.sty}
	c.instrs[0x85] = instr{name: "STA", mode: addrModeZP, class: classWrite, write: c.sta}
	c.instrs[0x86] = instr{name: "STX", mode: addrModeZP, class: classWrite, write: c.stx}
	c.instrs[0x88] = instr{name: "DEY", mode: addrModeIMP, class: classImplied, exec: c.dey}
	c.instrs[0x8A] = instr{name: "TXA", mode: addrModeIMP, class: classImplied, exec: c.txa}
	c.instrs[0x8C] = instr{name: "STY", mode: addrModeABS, class: classWrite, write: c.sty}
	c.instrs[0x8D] = instr{name: "STA", mode: addrModeABS, class: classWrite, write: c.sta}
	c.instrs[0x8E] = instr{name: "STX", mode: addrModeABS, class: classWrite, write: c.stx}
	c.instrs[0x90] = instr{name: "BCC", mode: addrModeREL, class: classBranch, test: c.bcc}
	c.instrs[0x91] = instr{name: "STA", mode: addrModeINDY, class: classWrite, write: c.sta}
	c.instrs[0x94] = instr{name: "STY", mode: addrModeZPX, class: classWrite, write: c.sty}
	c.instrs[0x95] = instr{name: "STA", mode: addrModeZPX, class: classWrite, write: c.sta}
	c.instrs[0x96] = instr{name: "STX", mode: addrModeZPY, class: classWrite, write: c.stx}
	c.instrs[0x98] = instr{name: "TYA", mode: addrModeIMP, class: classImplied, exec: c.tya}
	c.instrs[0x99] = instr{name: "STA", mode: addrModeABSY, class: classWrite, write: c.sta}
	c.instrs[0x9A] = instr{name: "TXS", mode: addrModeIMP, class: classImplied, exec: c.txs}
	c.instrs[0x9D] = instr{name: "STA", mode: addrModeABSX, class: classWrite, write: c.sta}
	c.instrs[0xA0] = instr{name: "LDY", mode: addrModeIMM, class: classRead, read: c.ldy}
	c.instrs[0xA1] = instr{name: "LDA", mode: addrModeINDX, class: classRead, read: c.lda}
	c.instrs[0xA2] = instr{name: "LDX", mode: addrModeIMM, class: classRead, read: c.ldx}
	c.instrs[0xA4] = instr{name: "LDY", mode: addrModeZP, class: classRead, read: c.ldy}
	c.instrs[0xA5] = instr{name: "LDA", mode: addrModeZP, class: classRead, read: c.lda}
	c.instrs[0xA6] = instr{name: "LDX", mode: addrModeZP, class: classRead, read: c.ldx}
	c.instrs[0xA8] = instr{name: "TAY", mode: addrModeIMP, class: classImplied, exec: c.tay}
	c.instrs[0xA9] = instr{name: "LDA", mode: addrModeIMM, class: classRead, read: c.lda}
	c.instrs[0xAA] = instr{name: "TAX", mode: addrModeIMP, class: classImplied, exec: c.tax}
	c.instrs[0xAC] = instr{name: "LDY", mode: addrModeABS, class: classRead, read: c.ldy}
	c.instrs[0xAD] = instr{name: "LDA", mode: addrModeABS, class: classRead, read: c.lda}
	c.instrs[0xAE] = instr{name: "LDX", mode: addrModeABS, class: classRead, read: c.ldx}
	c.instrs[0xB0] = instr{name: "BCS", mode: addrModeREL, class: classBranch, test: c.bcs}
	c.instrs[0xB1] = instr{name: "LDA", mode: addrModeINDY, class: classRead, read: c.lda}
	c.instrs[0xB4] = instr{name: "LDY", mode: addrModeZPX, class: classRead, read: c.ldy}
	c.instrs[0xB5] = instr{name: "LDA", mode: addrModeZPX, class: classRead, read: c.lda}
	c.instrs[0xB6] = instr{name: "LDX", mode: addrModeZPY, class: classRead, read: c.ldx}
	c.instrs[0xB8] = instr{name: "CLV", mode: addrModeIMP, class: classImplied, exec: c.clv}
	c.instrs[0xB9] = instr{name: "LDA", mode: addrModeABSY, class: classRead, read: c.lda}
	c.instrs[0xBA] = instr{name: "TSX", mode: addrModeIMP, class: classImplied, exec: c.tsx}
	c.instrs[0xBC] = instr{name: "LDY", mode: addrModeABSX, class: classRead, read: c.ldy}
	c.instrs[0xBD] = instr{name: "LDA", mode: addrModeABSX, class: classRead, read: c.lda}
	c.instrs[0xBE] = instr{name: "LDX", mode: addrModeABSY, class: classRead, read: c.ldx}
	c.instrs[0xC0] = instr{name: "CPY", mode: addrModeIMM, class: classRead, read: c.cpy}
	c.instrs[0xC1] = instr{name: "CMP", mode: addrModeINDX, class: classRead, read: c.cmp}
	c.instrs[0xC4] = instr{name: "CPY", mode: addrModeZP, class: classRead, read: c.cpy}
	c.instrs[0xC5] = instr{name: "CMP", mode: addrModeZP, class: classRead, read: c.cmp}
	c.instrs[0xC6] = instr{name: "DEC", mode: addrModeZP, class: classRMW, modify: c.dec}
	c.instrs[0xC8] = instr{name: "INY", mode: addrModeIMP, class: classImplied, exec: c.iny}
	c.instrs[0xC9] = instr{name: "CMP", mode: addrModeIMM, class: classRead, read: c.cmp}
	c.instrs[0xCA] = instr{name: "DEX", mode: addrModeIMP, class: classImplied, exec: c.dex}
	c.instrs[0xCC] = instr{name: "CPY", mode: addrModeABS, class: classRead, read: c.cpy}
	c.instrs[0xCD] = instr{name: "CMP", mode: addrModeABS, class: classRead, read: c.cmp}
	c.instrs[0xCE] = instr{name: "DEC", mode: addrModeABS, class: classRMW, modify: c.dec}
	c.instrs[0xD0] = instr{name: "BNE", mode: addrModeREL, class: classBranch, test: c.bne}
	c.instrs[0xD1] = instr{name: "CMP", mode: addrModeINDY, class: classRead, read: c.cmp}
	c.instrs[0xD5] = instr{name: "CMP", mode: addrModeZPX, class: classRead, read: c.cmp}
	c.instrs[0xD6] = instr{name: "DEC", mode: addrModeZPX, class: classRMW, modify: c.dec}
	c.instrs[0xD8] = instr{name: "CLD", mode: addrModeIMP, class: classImplied, exec: c.cld}
	c.instrs[0xD9] = instr{name: "CMP", mode: addrModeABSY, class: classRead, read: c.cmp}
	c.instrs[0xDD] = instr{name: "CMP", mode: addrModeABSX, class: classRead, read: c.cmp}
	c.instrs[0xDE] = instr{name: "DEC", mode: addrModeABSX, class: classRMW, modify: c.dec}
	c.instrs[0xE0] = instr{name: "CPX", mode: addrModeIMM, class: classRead, read: c.cpx}
	c.instrs[0xE1] = instr{name: "SBC", mode: addrModeINDX, class: classRead, read: c.sbc}
	c.instrs[0xE4] = instr{name: "CPX", mode: addrModeZP, class: classRead, read: c.cpx}
	c.instrs[0xE5] = instr{name: "SBC", mode: addrModeZP, class: classRead, read: c.sbc}
	c.instrs[0xE6] = instr{name: "INC", mode: addrModeZP, class: classRMW, modify: c.inc}
	c.instrs[0xE8] = instr{name: "INX", mode: addrModeIMP, class: classImplied, exec: c.inx}
	c.instrs[0xE9] = instr{name: "SBC", mode: addrModeIMM, class: classRead, read: c.sbc}
	c.instrs[0xEA] = instr{name: "NOP", mode: addrModeIMP, class: classImplied, exec: c.nop}
	c.instrs[0xEC] = instr{name: "CPX", mode: addrModeABS, class: classRead, read: c.cpx}
	c.instrs[0xED] = instr{name: "SBC", mode: addrModeABS, class: classRead, read: c.sbc}
	c.instrs[0xEE] = instr{name: "INC", mode: addrModeABS, class: classRMW, modify: c.inc}
	c.instrs[0xF0] = instr{name: "BEQ", mode: addrModeREL, class: classBranch, test: c.beq}
	c.instrs[0xF1] = instr{name: "SBC", mode: addrModeINDY, class: classRead, read: c.sbc}
	c.instrs[0xF5] = instr{name: "SBC", mode: addrModeZPX, class: classRead, read: c.sbc}
	c.instrs[0xF6] = instr{name: "INC", mode: addrModeZPX, class: classRMW, modify: c.inc}
	c.instrs[0xF8] = instr{name: "SED", mode: addrModeIMP, class: classImplied, exec: c.sed}
	c.instrs[0xF9] = instr{name: "SBC", mode: addrModeABSY, class: classRead, read: c.sbc}
	c.instrs[0xFD] = instr{name: "SBC", mode: addrModeABSX, class: classRead, read: c.sbc}
	c.instrs[0xFE] = instr{name: "INC", mode: addrModeABSX, class: classRMW, modify: c.inc}
}
