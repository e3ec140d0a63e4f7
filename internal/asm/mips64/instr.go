package mips64

// Integer instructions. Operand order follows the assembly syntax: destination first.

func (a *Assembler) Addu(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x21)
}

func (a *Assembler) Addiu(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x9, rs, rt, imm16)
}

func (a *Assembler) Daddu(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x2d)
}

func (a *Assembler) Daddiu(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x19, rs, rt, imm16)
}

func (a *Assembler) Subu(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x23)
}

func (a *Assembler) Dsubu(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x2f)
}

// MulR6 is the R6 MUL: the low 32 bits of rs*rt, sign extended.
func (a *Assembler) MulR6(rd, rs, rt GpuRegister) {
	a.requireR6("mul")
	a.emitR(opSpecial, rs, rt, rd, 2, 0x18)
}

func (a *Assembler) MuhR6(rd, rs, rt GpuRegister) {
	a.requireR6("muh")
	a.emitR(opSpecial, rs, rt, rd, 3, 0x18)
}

func (a *Assembler) DivR6(rd, rs, rt GpuRegister) {
	a.requireR6("div")
	a.emitR(opSpecial, rs, rt, rd, 2, 0x1a)
}

func (a *Assembler) ModR6(rd, rs, rt GpuRegister) {
	a.requireR6("mod")
	a.emitR(opSpecial, rs, rt, rd, 3, 0x1a)
}

func (a *Assembler) DivuR6(rd, rs, rt GpuRegister) {
	a.requireR6("divu")
	a.emitR(opSpecial, rs, rt, rd, 2, 0x1b)
}

func (a *Assembler) ModuR6(rd, rs, rt GpuRegister) {
	a.requireR6("modu")
	a.emitR(opSpecial, rs, rt, rd, 3, 0x1b)
}

func (a *Assembler) Dmul(rd, rs, rt GpuRegister) {
	a.requireR6("dmul")
	a.emitR(opSpecial, rs, rt, rd, 2, 0x1c)
}

func (a *Assembler) Dmuh(rd, rs, rt GpuRegister) {
	a.requireR6("dmuh")
	a.emitR(opSpecial, rs, rt, rd, 3, 0x1c)
}

func (a *Assembler) Ddiv(rd, rs, rt GpuRegister) {
	a.requireR6("ddiv")
	a.emitR(opSpecial, rs, rt, rd, 2, 0x1e)
}

func (a *Assembler) Dmod(rd, rs, rt GpuRegister) {
	a.requireR6("dmod")
	a.emitR(opSpecial, rs, rt, rd, 3, 0x1e)
}

func (a *Assembler) Ddivu(rd, rs, rt GpuRegister) {
	a.requireR6("ddivu")
	a.emitR(opSpecial, rs, rt, rd, 2, 0x1f)
}

func (a *Assembler) Dmodu(rd, rs, rt GpuRegister) {
	a.requireR6("dmodu")
	a.emitR(opSpecial, rs, rt, rd, 3, 0x1f)
}

func (a *Assembler) And(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x24)
}

func (a *Assembler) Andi(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0xc, rs, rt, imm16)
}

func (a *Assembler) Or(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x25)
}

func (a *Assembler) Ori(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0xd, rs, rt, imm16)
}

func (a *Assembler) Xor(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x26)
}

func (a *Assembler) Xori(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0xe, rs, rt, imm16)
}

func (a *Assembler) Nor(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x27)
}

func (a *Assembler) Bitswap(rd, rt GpuRegister) {
	a.requireR6("bitswap")
	a.emitRtd(opSpecial3, rt, rd, 0x0, 0x20)
}

func (a *Assembler) Dbitswap(rd, rt GpuRegister) {
	a.requireR6("dbitswap")
	a.emitRtd(opSpecial3, rt, rd, 0x0, 0x24)
}

// Seb sign extends the low byte of rt.
func (a *Assembler) Seb(rd, rt GpuRegister) {
	a.emitR(opSpecial3, ZERO, rt, rd, 0x10, 0x20)
}

// Seh sign extends the low halfword of rt.
func (a *Assembler) Seh(rd, rt GpuRegister) {
	a.emitR(opSpecial3, ZERO, rt, rd, 0x18, 0x20)
}

func (a *Assembler) Dsbh(rd, rt GpuRegister) {
	a.emitRtd(opSpecial3, rt, rd, 0x2, 0x24)
}

func (a *Assembler) Dshd(rd, rt GpuRegister) {
	a.emitRtd(opSpecial3, rt, rd, 0x5, 0x24)
}

func (a *Assembler) Wsbh(rd, rt GpuRegister) {
	a.emitRtd(opSpecial3, rt, rd, 0x2, 0x20)
}

// Dext extracts size bits of rs starting at bit pos into the low bits of rt, zero extended.
func (a *Assembler) Dext(rt, rs GpuRegister, pos, size uint32) {
	checkUint("dext pos", pos, 5)
	// A zero size wraps around and is rejected as well.
	checkUint("dext size-1", size-1, 5)
	a.emitR(opSpecial3, rs, rt, GpuRegister(size-1), pos, 0x3)
}

// Sc, Scd, Ll and Lld take a signed offset, 9 bits wide on R6 and 16 bits wide before.

func (a *Assembler) Sc(rt, base GpuRegister, offset int16) {
	a.emitLinked(rt, base, offset, 0x26, 0x38)
}

func (a *Assembler) Scd(rt, base GpuRegister, offset int16) {
	a.emitLinked(rt, base, offset, 0x27, 0x3c)
}

func (a *Assembler) Ll(rt, base GpuRegister, offset int16) {
	a.emitLinked(rt, base, offset, 0x36, 0x30)
}

func (a *Assembler) Lld(rt, base GpuRegister, offset int16) {
	a.emitLinked(rt, base, offset, 0x37, 0x34)
}

func (a *Assembler) emitLinked(rt, base GpuRegister, offset int16, r6Funct, legacyOpcode uint32) {
	if a.isR6() {
		checkInt("imm9", int64(offset), 9)
		a.emitI(opSpecial3, base, rt, uint16((uint32(offset)&0x1ff)<<7|r6Funct))
	} else {
		a.emitI(legacyOpcode, base, rt, uint16(offset))
	}
}

func (a *Assembler) Sll(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x00)
}

func (a *Assembler) Srl(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x02)
}

func (a *Assembler) Rotr(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, GpuRegister(1), rt, rd, shamt, 0x02)
}

func (a *Assembler) Sra(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x03)
}

func (a *Assembler) Sllv(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x04)
}

func (a *Assembler) Rotrv(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 1, 0x06)
}

func (a *Assembler) Srlv(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x06)
}

func (a *Assembler) Srav(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x07)
}

func (a *Assembler) Dsll(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x38)
}

func (a *Assembler) Dsrl(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x3a)
}

func (a *Assembler) Drotr(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, GpuRegister(1), rt, rd, shamt, 0x3a)
}

func (a *Assembler) Dsra(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x3b)
}

// Dsll32 shifts left by shamt+32.
func (a *Assembler) Dsll32(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x3c)
}

func (a *Assembler) Dsrl32(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x3e)
}

func (a *Assembler) Drotr32(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, GpuRegister(1), rt, rd, shamt, 0x3e)
}

func (a *Assembler) Dsra32(rd, rt GpuRegister, shamt uint32) {
	a.emitR(opSpecial, ZERO, rt, rd, shamt, 0x3f)
}

func (a *Assembler) Dsllv(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x14)
}

func (a *Assembler) Dsrlv(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x16)
}

func (a *Assembler) Drotrv(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 1, 0x16)
}

func (a *Assembler) Dsrav(rd, rt, rs GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x17)
}

func (a *Assembler) Lb(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x20, rs, rt, imm16)
}

func (a *Assembler) Lh(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x21, rs, rt, imm16)
}

func (a *Assembler) Lw(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x23, rs, rt, imm16)
}

func (a *Assembler) Ld(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x37, rs, rt, imm16)
}

func (a *Assembler) Lbu(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x24, rs, rt, imm16)
}

func (a *Assembler) Lhu(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x25, rs, rt, imm16)
}

func (a *Assembler) Lwu(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x27, rs, rt, imm16)
}

func (a *Assembler) Lui(rt GpuRegister, imm16 uint16) {
	a.emitI(0xf, ZERO, rt, imm16)
}

// Dahi adds imm16<<32, sign extended, to rs.
func (a *Assembler) Dahi(rs GpuRegister, imm16 uint16) {
	a.requireR6("dahi")
	a.emitI(opRegimm, rs, GpuRegister(0x6), imm16)
}

// Dati adds imm16<<48 to rs.
func (a *Assembler) Dati(rs GpuRegister, imm16 uint16) {
	a.requireR6("dati")
	a.emitI(opRegimm, rs, GpuRegister(0x1e), imm16)
}

func (a *Assembler) Sync(stype uint32) {
	checkUint("stype", stype, 5)
	a.emitR(opSpecial, ZERO, ZERO, ZERO, stype, 0xf)
}

func (a *Assembler) Sb(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x28, rs, rt, imm16)
}

func (a *Assembler) Sh(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x29, rs, rt, imm16)
}

func (a *Assembler) Sw(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x2b, rs, rt, imm16)
}

func (a *Assembler) Sd(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0x3f, rs, rt, imm16)
}

func (a *Assembler) Slt(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x2a)
}

func (a *Assembler) Sltu(rd, rs, rt GpuRegister) {
	a.emitR(opSpecial, rs, rt, rd, 0, 0x2b)
}

func (a *Assembler) Slti(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0xa, rs, rt, imm16)
}

func (a *Assembler) Sltiu(rt, rs GpuRegister, imm16 uint16) {
	a.emitI(0xb, rs, rt, imm16)
}

// Seleqz sets rd to rs if rt is zero, and to zero otherwise.
func (a *Assembler) Seleqz(rd, rs, rt GpuRegister) {
	a.requireR6("seleqz")
	a.emitR(opSpecial, rs, rt, rd, 0, 0x35)
}

// Selnez sets rd to rs if rt is not zero, and to zero otherwise.
func (a *Assembler) Selnez(rd, rs, rt GpuRegister) {
	a.requireR6("selnez")
	a.emitR(opSpecial, rs, rt, rd, 0, 0x37)
}

func (a *Assembler) Clz(rd, rs GpuRegister) {
	a.emitCount(rd, rs, 0x10, 0x20)
}

func (a *Assembler) Clo(rd, rs GpuRegister) {
	a.emitCount(rd, rs, 0x11, 0x21)
}

func (a *Assembler) Dclz(rd, rs GpuRegister) {
	a.emitCount(rd, rs, 0x12, 0x24)
}

func (a *Assembler) Dclo(rd, rs GpuRegister) {
	a.emitCount(rd, rs, 0x13, 0x25)
}

// emitCount emits the leading zero/one counts, which moved from SPECIAL2 to SPECIAL in R6.
func (a *Assembler) emitCount(rd, rs GpuRegister, r6Funct, legacyFunct uint32) {
	if a.isR6() {
		a.emitRsd(opSpecial, rs, rd, 0x01, r6Funct)
	} else {
		a.emitR(opSpecial2, rs, rd, rd, 0, legacyFunct)
	}
}

func (a *Assembler) Break() {
	a.emitR(opSpecial, ZERO, ZERO, ZERO, 0, 0xd)
}

func (a *Assembler) Nop() {
	a.emitR(opSpecial, ZERO, ZERO, ZERO, 0, 0x0)
}

func (a *Assembler) Move(rd, rs GpuRegister) {
	a.Or(rd, rs, ZERO)
}

func (a *Assembler) Clear(rd GpuRegister) {
	a.Move(rd, ZERO)
}

func (a *Assembler) Not(rd, rs GpuRegister) {
	a.Nor(rd, rs, ZERO)
}
