package mips64

// Floating point instructions. The S and D variants differ only in the fmt field.

func (a *Assembler) AddS(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtS, ft, fs, fd, 0x0) }
func (a *Assembler) SubS(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtS, ft, fs, fd, 0x1) }
func (a *Assembler) MulS(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtS, ft, fs, fd, 0x2) }
func (a *Assembler) DivS(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtS, ft, fs, fd, 0x3) }
func (a *Assembler) AddD(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtD, ft, fs, fd, 0x0) }
func (a *Assembler) SubD(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtD, ft, fs, fd, 0x1) }
func (a *Assembler) MulD(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtD, ft, fs, fd, 0x2) }
func (a *Assembler) DivD(fd, fs, ft FpuRegister) { a.emitFR(opCop1, fmtD, ft, fs, fd, 0x3) }

func (a *Assembler) SqrtS(fd, fs FpuRegister) { a.emitFR(opCop1, fmtS, F0, fs, fd, 0x4) }
func (a *Assembler) SqrtD(fd, fs FpuRegister) { a.emitFR(opCop1, fmtD, F0, fs, fd, 0x4) }
func (a *Assembler) AbsS(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtS, F0, fs, fd, 0x5) }
func (a *Assembler) AbsD(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtD, F0, fs, fd, 0x5) }
func (a *Assembler) MovS(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtS, F0, fs, fd, 0x6) }
func (a *Assembler) MovD(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtD, F0, fs, fd, 0x6) }
func (a *Assembler) NegS(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtS, F0, fs, fd, 0x7) }
func (a *Assembler) NegD(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtD, F0, fs, fd, 0x7) }

// Rounding to 64-bit (L) and 32-bit (W) fixed point.

func (a *Assembler) RoundLS(fd, fs FpuRegister) { a.emitFR(opCop1, fmtS, F0, fs, fd, 0x8) }
func (a *Assembler) RoundLD(fd, fs FpuRegister) { a.emitFR(opCop1, fmtD, F0, fs, fd, 0x8) }
func (a *Assembler) RoundWS(fd, fs FpuRegister) { a.emitFR(opCop1, fmtS, F0, fs, fd, 0xc) }
func (a *Assembler) RoundWD(fd, fs FpuRegister) { a.emitFR(opCop1, fmtD, F0, fs, fd, 0xc) }
func (a *Assembler) CeilLS(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtS, F0, fs, fd, 0xa) }
func (a *Assembler) CeilLD(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtD, F0, fs, fd, 0xa) }
func (a *Assembler) CeilWS(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtS, F0, fs, fd, 0xe) }
func (a *Assembler) CeilWD(fd, fs FpuRegister)  { a.emitFR(opCop1, fmtD, F0, fs, fd, 0xe) }
func (a *Assembler) FloorLS(fd, fs FpuRegister) { a.emitFR(opCop1, fmtS, F0, fs, fd, 0xb) }
func (a *Assembler) FloorLD(fd, fs FpuRegister) { a.emitFR(opCop1, fmtD, F0, fs, fd, 0xb) }
func (a *Assembler) FloorWS(fd, fs FpuRegister) { a.emitFR(opCop1, fmtS, F0, fs, fd, 0xf) }
func (a *Assembler) FloorWD(fd, fs FpuRegister) { a.emitFR(opCop1, fmtD, F0, fs, fd, 0xf) }

// SelS selects fs if bit 0 of fd is clear, ft otherwise.
func (a *Assembler) SelS(fd, fs, ft FpuRegister) {
	a.requireR6("sel.s")
	a.emitFR(opCop1, fmtS, ft, fs, fd, 0x10)
}

func (a *Assembler) SelD(fd, fs, ft FpuRegister) {
	a.requireR6("sel.d")
	a.emitFR(opCop1, fmtD, ft, fs, fd, 0x10)
}

func (a *Assembler) RintS(fd, fs FpuRegister) {
	a.requireR6("rint.s")
	a.emitFR(opCop1, fmtS, F0, fs, fd, 0x1a)
}

func (a *Assembler) RintD(fd, fs FpuRegister) {
	a.requireR6("rint.d")
	a.emitFR(opCop1, fmtD, F0, fs, fd, 0x1a)
}

// ClassS writes the FPClassMask of fs into fd.
func (a *Assembler) ClassS(fd, fs FpuRegister) {
	a.requireR6("class.s")
	a.emitFR(opCop1, fmtS, F0, fs, fd, 0x1b)
}

func (a *Assembler) ClassD(fd, fs FpuRegister) {
	a.requireR6("class.d")
	a.emitFR(opCop1, fmtD, F0, fs, fd, 0x1b)
}

func (a *Assembler) MinS(fd, fs, ft FpuRegister) {
	a.requireR6("min.s")
	a.emitFR(opCop1, fmtS, ft, fs, fd, 0x1c)
}

func (a *Assembler) MinD(fd, fs, ft FpuRegister) {
	a.requireR6("min.d")
	a.emitFR(opCop1, fmtD, ft, fs, fd, 0x1c)
}

func (a *Assembler) MaxS(fd, fs, ft FpuRegister) {
	a.requireR6("max.s")
	a.emitFR(opCop1, fmtS, ft, fs, fd, 0x1e)
}

func (a *Assembler) MaxD(fd, fs, ft FpuRegister) {
	a.requireR6("max.d")
	a.emitFR(opCop1, fmtD, ft, fs, fd, 0x1e)
}

// Conversions. The name reads cvt.<to>.<from>.

func (a *Assembler) Cvtsw(fd, fs FpuRegister) { a.emitFR(opCop1, fmtW, F0, fs, fd, 0x20) }
func (a *Assembler) Cvtdw(fd, fs FpuRegister) { a.emitFR(opCop1, fmtW, F0, fs, fd, 0x21) }
func (a *Assembler) Cvtsd(fd, fs FpuRegister) { a.emitFR(opCop1, fmtD, F0, fs, fd, 0x20) }
func (a *Assembler) Cvtds(fd, fs FpuRegister) { a.emitFR(opCop1, fmtS, F0, fs, fd, 0x21) }
func (a *Assembler) Cvtsl(fd, fs FpuRegister) { a.emitFR(opCop1, fmtL, F0, fs, fd, 0x20) }
func (a *Assembler) Cvtdl(fd, fs FpuRegister) { a.emitFR(opCop1, fmtL, F0, fs, fd, 0x21) }

// Moves between the register files. The general purpose register goes in the ft field.

func (a *Assembler) Mfc1(rt GpuRegister, fs FpuRegister) {
	checkGpr(rt)
	a.emitFR(opCop1, 0x00, FpuRegister(rt), fs, F0, 0x0)
}

func (a *Assembler) Mtc1(rt GpuRegister, fs FpuRegister) {
	checkGpr(rt)
	a.emitFR(opCop1, 0x04, FpuRegister(rt), fs, F0, 0x0)
}

func (a *Assembler) Dmfc1(rt GpuRegister, fs FpuRegister) {
	checkGpr(rt)
	a.emitFR(opCop1, 0x01, FpuRegister(rt), fs, F0, 0x0)
}

func (a *Assembler) Dmtc1(rt GpuRegister, fs FpuRegister) {
	checkGpr(rt)
	a.emitFR(opCop1, 0x05, FpuRegister(rt), fs, F0, 0x0)
}

// Memory. The floating point register goes in the rt field.

func (a *Assembler) Lwc1(ft FpuRegister, rs GpuRegister, imm16 uint16) {
	checkFpr(ft)
	a.emitI(0x31, rs, GpuRegister(ft), imm16)
}

func (a *Assembler) Ldc1(ft FpuRegister, rs GpuRegister, imm16 uint16) {
	checkFpr(ft)
	a.emitI(0x35, rs, GpuRegister(ft), imm16)
}

func (a *Assembler) Swc1(ft FpuRegister, rs GpuRegister, imm16 uint16) {
	checkFpr(ft)
	a.emitI(0x39, rs, GpuRegister(ft), imm16)
}

func (a *Assembler) Sdc1(ft FpuRegister, rs GpuRegister, imm16 uint16) {
	checkFpr(ft)
	a.emitI(0x3d, rs, GpuRegister(ft), imm16)
}
