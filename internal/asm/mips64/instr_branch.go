package mips64

import (
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
)

// Jumps and branches with raw offsets. PC relative immediates are in instruction
// words, relative to the address of the instruction after the branch.
// Delay slot forms never get their slot filled here.

// Jalr jumps to rs and stores the return address in rd. It has a delay slot.
func (a *Assembler) Jalr(rd, rs GpuRegister) {
	a.emitR(opSpecial, rs, ZERO, rd, 0, 0x09)
}

// Jr jumps to rs. It has a delay slot.
func (a *Assembler) Jr(rs GpuRegister) {
	a.Jalr(ZERO, rs)
}

// Auipc adds imm16<<16 to the address of this instruction and writes it to rs.
func (a *Assembler) Auipc(rs GpuRegister, imm16 uint16) {
	a.requireR6("auipc")
	a.emitI(0x3b, rs, GpuRegister(0x1e), imm16)
}

// Jic jumps to rt plus the sign extended imm16.
func (a *Assembler) Jic(rt GpuRegister, imm16 uint16) {
	a.requireR6("jic")
	a.emitI(0x36, ZERO, rt, imm16)
}

// Jialc is Jic which also links RA.
func (a *Assembler) Jialc(rt GpuRegister, imm16 uint16) {
	a.requireR6("jialc")
	a.emitI(0x3e, ZERO, rt, imm16)
}

func (a *Assembler) Beq(rs, rt GpuRegister, imm16 uint16) {
	a.emitI(0x4, rs, rt, imm16)
}

func (a *Assembler) Bne(rs, rt GpuRegister, imm16 uint16) {
	a.emitI(0x5, rs, rt, imm16)
}

func (a *Assembler) Bltz(rs GpuRegister, imm16 uint16) {
	a.emitI(opRegimm, rs, GpuRegister(0x0), imm16)
}

func (a *Assembler) Bgez(rs GpuRegister, imm16 uint16) {
	a.emitI(opRegimm, rs, GpuRegister(0x1), imm16)
}

func (a *Assembler) Blez(rs GpuRegister, imm16 uint16) {
	a.emitI(0x6, rs, ZERO, imm16)
}

func (a *Assembler) Bgtz(rs GpuRegister, imm16 uint16) {
	a.emitI(0x7, rs, ZERO, imm16)
}

// J jumps within the current 256MiB region. addr26 holds bits 27..2 of the target.
func (a *Assembler) J(addr26 uint32) {
	a.emitI26(0x2, addr26)
}

func (a *Assembler) Jal(addr26 uint32) {
	a.emitI26(0x3, addr26)
}

// R6 compact branches. They have no delay slot but a forbidden slot.

func (a *Assembler) Bc(imm26 uint32) {
	a.requireR6("bc")
	a.emitI26(0x32, imm26)
}

func (a *Assembler) Balc(imm26 uint32) {
	a.requireR6("balc")
	a.emitI26(0x3a, imm26)
}

func (a *Assembler) Bltc(rs, rt GpuRegister, imm16 uint16) {
	a.requireR6("bltc")
	checkCompactPair("bltc", rs, rt)
	a.emitI(0x17, rs, rt, imm16)
}

func (a *Assembler) Bltzc(rt GpuRegister, imm16 uint16) {
	a.requireR6("bltzc")
	checkCompactSingle("bltzc", rt)
	a.emitI(0x17, rt, rt, imm16)
}

func (a *Assembler) Bgtzc(rt GpuRegister, imm16 uint16) {
	a.requireR6("bgtzc")
	checkCompactSingle("bgtzc", rt)
	a.emitI(0x17, ZERO, rt, imm16)
}

func (a *Assembler) Bgec(rs, rt GpuRegister, imm16 uint16) {
	a.requireR6("bgec")
	checkCompactPair("bgec", rs, rt)
	a.emitI(0x16, rs, rt, imm16)
}

func (a *Assembler) Bgezc(rt GpuRegister, imm16 uint16) {
	a.requireR6("bgezc")
	checkCompactSingle("bgezc", rt)
	a.emitI(0x16, rt, rt, imm16)
}

func (a *Assembler) Blezc(rt GpuRegister, imm16 uint16) {
	a.requireR6("blezc")
	checkCompactSingle("blezc", rt)
	a.emitI(0x16, ZERO, rt, imm16)
}

func (a *Assembler) Bltuc(rs, rt GpuRegister, imm16 uint16) {
	a.requireR6("bltuc")
	checkCompactPair("bltuc", rs, rt)
	a.emitI(0x7, rs, rt, imm16)
}

func (a *Assembler) Bgeuc(rs, rt GpuRegister, imm16 uint16) {
	a.requireR6("bgeuc")
	checkCompactPair("bgeuc", rs, rt)
	a.emitI(0x6, rs, rt, imm16)
}

// Beqc is encoded with the lower register number first; the opposite order is BOVC.
func (a *Assembler) Beqc(rs, rt GpuRegister, imm16 uint16) {
	a.requireR6("beqc")
	checkCompactPair("beqc", rs, rt)
	lo, hi := orderedPair(rs, rt)
	a.emitI(0x8, lo, hi, imm16)
}

// Bnec is encoded with the lower register number first; the opposite order is BNVC.
func (a *Assembler) Bnec(rs, rt GpuRegister, imm16 uint16) {
	a.requireR6("bnec")
	checkCompactPair("bnec", rs, rt)
	lo, hi := orderedPair(rs, rt)
	a.emitI(0x18, lo, hi, imm16)
}

func (a *Assembler) Beqzc(rs GpuRegister, imm21 uint32) {
	a.requireR6("beqzc")
	checkCompactSingle("beqzc", rs)
	a.emitI21(0x36, rs, imm21)
}

func (a *Assembler) Bnezc(rs GpuRegister, imm21 uint32) {
	a.requireR6("bnezc")
	checkCompactSingle("bnezc", rs)
	a.emitI21(0x3e, rs, imm21)
}

// Bc1eqz branches if bit 0 of ft is clear.
func (a *Assembler) Bc1eqz(ft FpuRegister, imm16 uint16) {
	a.requireR6("bc1eqz")
	a.emitFI(opCop1, 0x9, ft, imm16)
}

// Bc1nez branches if bit 0 of ft is set.
func (a *Assembler) Bc1nez(ft FpuRegister, imm16 uint16) {
	a.requireR6("bc1nez")
	a.emitFI(opCop1, 0xd, ft, imm16)
}

// Register fields of compact branches select between different instructions
// sharing an opcode, so the zero register and identical registers are not encodable.

func checkCompactSingle(name string, r GpuRegister) {
	if r == ZERO {
		panic(fmt.Errorf("%w: %s cannot test the zero register", asm.ErrOperandOutOfRange, name))
	}
}

func checkCompactPair(name string, rs, rt GpuRegister) {
	if rs == ZERO || rt == ZERO || rs == rt {
		panic(fmt.Errorf("%w: %s %s, %s needs two distinct non-zero registers", asm.ErrOperandOutOfRange, name, rs, rt))
	}
}

func orderedPair(rs, rt GpuRegister) (GpuRegister, GpuRegister) {
	if rs < rt {
		return rs, rt
	}
	return rt, rs
}

// Branches to labels. Each emits the raw form with a zero displacement and then
// lets the label resolve it, now or at Bind.

// B branches unconditionally to l: BC on R6, BEQ zero, zero otherwise (whose delay
// slot the caller fills).
func (a *Assembler) B(l *asm.Label) {
	pos := a.CodeSize()
	if a.isR6() {
		a.Bc(0)
		a.reference(pos, l, fixupR6Branch26)
	} else {
		a.Beq(ZERO, ZERO, 0)
		a.reference(pos, l, fixupLegacyBranch16)
	}
}

// Jump is the same as B.
func (a *Assembler) Jump(l *asm.Label) {
	a.B(l)
}

// BalcLabel calls l.
func (a *Assembler) BalcLabel(l *asm.Label) {
	pos := a.CodeSize()
	a.Balc(0)
	a.reference(pos, l, fixupR6Branch26)
}

// JalrLabel calls l at any 32-bit distance using AUIPC and JIALC. indirectReg is clobbered.
func (a *Assembler) JalrLabel(l *asm.Label, indirectReg GpuRegister) {
	pos := a.CodeSize()
	a.Auipc(indirectReg, 0)
	a.Jialc(indirectReg, 0)
	a.reference(pos, l, fixupAuipcPair)
}

// JumpFar jumps to l at any 32-bit distance using AUIPC and JIC. indirectReg is clobbered.
func (a *Assembler) JumpFar(l *asm.Label, indirectReg GpuRegister) {
	pos := a.CodeSize()
	a.Auipc(indirectReg, 0)
	a.Jic(indirectReg, 0)
	a.reference(pos, l, fixupAuipcPair)
}

// JLabel emits an absolute J to l and records a Relocation for it.
func (a *Assembler) JLabel(l *asm.Label) {
	a.absoluteJump(l, a.J)
}

// JalLabel emits an absolute JAL to l and records a Relocation for it.
func (a *Assembler) JalLabel(l *asm.Label) {
	a.absoluteJump(l, a.Jal)
}

func (a *Assembler) absoluteJump(l *asm.Label, emit func(uint32)) {
	pos := a.CodeSize()
	emit(0)
	a.relocations = append(a.relocations, Relocation{Offset: pos})
	a.reference(pos, l, fixupJump26)
}

func (a *Assembler) BltcLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bltc(rs, rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BltzcLabel(rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bltzc(rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BgtzcLabel(rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bgtzc(rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BgecLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bgec(rs, rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BgezcLabel(rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bgezc(rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BlezcLabel(rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Blezc(rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BltucLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bltuc(rs, rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BgeucLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bgeuc(rs, rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BeqcLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Beqc(rs, rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BnecLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bnec(rs, rt, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BeqzcLabel(rs GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Beqzc(rs, 0)
	a.reference(pos, l, fixupR6Branch21)
}

func (a *Assembler) BnezcLabel(rs GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bnezc(rs, 0)
	a.reference(pos, l, fixupR6Branch21)
}

func (a *Assembler) Bc1eqzLabel(ft FpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bc1eqz(ft, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) Bc1nezLabel(ft FpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bc1nez(ft, 0)
	a.reference(pos, l, fixupR6Branch16)
}

func (a *Assembler) BeqLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Beq(rs, rt, 0)
	a.reference(pos, l, fixupLegacyBranch16)
}

func (a *Assembler) BneLabel(rs, rt GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bne(rs, rt, 0)
	a.reference(pos, l, fixupLegacyBranch16)
}

func (a *Assembler) BltzLabel(rs GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bltz(rs, 0)
	a.reference(pos, l, fixupLegacyBranch16)
}

func (a *Assembler) BgezLabel(rs GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bgez(rs, 0)
	a.reference(pos, l, fixupLegacyBranch16)
}

func (a *Assembler) BlezLabel(rs GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Blez(rs, 0)
	a.reference(pos, l, fixupLegacyBranch16)
}

func (a *Assembler) BgtzLabel(rs GpuRegister, l *asm.Label) {
	pos := a.CodeSize()
	a.Bgtz(rs, 0)
	a.reference(pos, l, fixupLegacyBranch16)
}
