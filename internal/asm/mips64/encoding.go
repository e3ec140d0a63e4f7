package mips64

import (
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
)

// Major opcodes shared by several instructions.
const (
	opSpecial  uint32 = 0x00
	opRegimm   uint32 = 0x01
	opCop1     uint32 = 0x11
	opSpecial2 uint32 = 0x1c
	opSpecial3 uint32 = 0x1f
)

// Floating point format fields.
const (
	fmtS uint32 = 0x10
	fmtD uint32 = 0x11
	fmtW uint32 = 0x14
	fmtL uint32 = 0x15
)

// encodeR encodes opcode|rs|rt|rd|shamt|funct.
func encodeR(opcode uint32, rs, rt, rd GpuRegister, shamt, funct uint32) uint32 {
	return opcode<<26 | uint32(rs)<<21 | uint32(rt)<<16 | uint32(rd)<<11 | shamt<<6 | funct
}

// encodeI encodes opcode|rs|rt|imm16.
func encodeI(opcode uint32, rs, rt GpuRegister, imm16 uint16) uint32 {
	return opcode<<26 | uint32(rs)<<21 | uint32(rt)<<16 | uint32(imm16)
}

// encodeI21 encodes opcode|rs|imm21.
func encodeI21(opcode uint32, rs GpuRegister, imm21 uint32) uint32 {
	return opcode<<26 | uint32(rs)<<21 | imm21
}

// encodeI26 encodes opcode|imm26, the layout of J, JAL, BC and BALC.
func encodeI26(opcode uint32, imm26 uint32) uint32 {
	return opcode<<26 | imm26
}

// encodeFR encodes opcode|fmt|ft|fs|fd|funct.
func encodeFR(opcode, format uint32, ft, fs, fd FpuRegister, funct uint32) uint32 {
	return opcode<<26 | format<<21 | uint32(ft)<<16 | uint32(fs)<<11 | uint32(fd)<<6 | funct
}

// encodeFI encodes opcode|fmt|ft|imm16.
func encodeFI(opcode, format uint32, ft FpuRegister, imm16 uint16) uint32 {
	return opcode<<26 | format<<21 | uint32(ft)<<16 | uint32(imm16)
}

func checkGpr(regs ...GpuRegister) {
	for _, r := range regs {
		if r >= NumberOfGpuRegisters {
			panic(fmt.Errorf("%w: general purpose register %d", asm.ErrOperandOutOfRange, byte(r)))
		}
	}
}

func checkFpr(regs ...FpuRegister) {
	for _, r := range regs {
		if r >= NumberOfFpuRegisters {
			panic(fmt.Errorf("%w: floating point register %d", asm.ErrOperandOutOfRange, byte(r)))
		}
	}
}

// checkUint panics unless v fits an unsigned field of the given width.
func checkUint(field string, v uint32, bits uint) {
	if v >= 1<<bits {
		panic(fmt.Errorf("%w: %s %#x does not fit in %d bits", asm.ErrOperandOutOfRange, field, v, bits))
	}
}

// checkInt panics unless v fits a two's complement field of the given width.
func checkInt(field string, v int64, bits uint) {
	if v < -(1<<(bits-1)) || v > 1<<(bits-1)-1 {
		panic(fmt.Errorf("%w: %s %d does not fit in %d signed bits", asm.ErrOperandOutOfRange, field, v, bits))
	}
}

func (a *Assembler) emitR(opcode uint32, rs, rt, rd GpuRegister, shamt, funct uint32) {
	checkGpr(rs, rt, rd)
	checkUint("shamt", shamt, 5)
	a.Emit(encodeR(opcode, rs, rt, rd, shamt, funct))
}

func (a *Assembler) emitRsd(opcode uint32, rs, rd GpuRegister, shamt, funct uint32) {
	a.emitR(opcode, rs, ZERO, rd, shamt, funct)
}

func (a *Assembler) emitRtd(opcode uint32, rt, rd GpuRegister, shamt, funct uint32) {
	a.emitR(opcode, ZERO, rt, rd, shamt, funct)
}

func (a *Assembler) emitI(opcode uint32, rs, rt GpuRegister, imm16 uint16) {
	checkGpr(rs, rt)
	a.Emit(encodeI(opcode, rs, rt, imm16))
}

func (a *Assembler) emitI21(opcode uint32, rs GpuRegister, imm21 uint32) {
	checkGpr(rs)
	checkUint("imm21", imm21, 21)
	a.Emit(encodeI21(opcode, rs, imm21))
}

func (a *Assembler) emitI26(opcode uint32, imm26 uint32) {
	checkUint("imm26", imm26, 26)
	a.Emit(encodeI26(opcode, imm26))
}

func (a *Assembler) emitFR(opcode, format uint32, ft, fs, fd FpuRegister, funct uint32) {
	checkFpr(ft, fs, fd)
	a.Emit(encodeFR(opcode, format, ft, fs, fd, funct))
}

func (a *Assembler) emitFI(opcode, format uint32, ft FpuRegister, imm16 uint16) {
	checkFpr(ft)
	a.Emit(encodeFI(opcode, format, ft, imm16))
}

// requireR6 panics if the configured revision lacks the named instruction.
func (a *Assembler) requireR6(name string) {
	if a.cfg.isa != ISARevision6 {
		panic(fmt.Errorf("%w: %s requires %s, configured for %s", asm.ErrUnsupportedInstruction, name, ISARevision6, a.cfg.isa))
	}
}
