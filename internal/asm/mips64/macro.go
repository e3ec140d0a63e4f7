package mips64

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/jitkit/mips64/internal/asm"
)

func isInt16(v int64) bool  { return v >= math.MinInt16 && v <= math.MaxInt16 }
func isUint16(v int64) bool { return v >= 0 && v <= math.MaxUint16 }
func isInt32(v int64) bool  { return v >= math.MinInt32 && v <= math.MaxInt32 }

// LoadConst32 loads a sign extended 32-bit constant into rd with one or two instructions.
func (a *Assembler) LoadConst32(rd GpuRegister, value int32) {
	v := int64(value)
	switch {
	case isUint16(v):
		a.Ori(rd, ZERO, uint16(v))
	case isInt16(v):
		a.Addiu(rd, ZERO, uint16(v))
	default:
		a.Lui(rd, uint16(v>>16))
		if v&0xffff != 0 {
			a.Ori(rd, rd, uint16(v))
		}
	}
}

// LoadConst64 loads a 64-bit constant into rd. Only rd is written.
func (a *Assembler) LoadConst64(rd GpuRegister, value int64) {
	if a.isR6() {
		a.loadConst64R6(rd, value)
	} else {
		a.loadConst64Legacy(rd, value)
	}
}

// loadConst64R6 picks the shortest of the sequences built from ORI, DADDIU, LUI,
// DAHI, DATI and shifts. At most four instructions are emitted.
func (a *Assembler) loadConst64R6(rd GpuRegister, value int64) {
	// LUI sign extends bit 31 into the upper half, which DAHI/DATI then compensate for.
	var bit31 int64
	if value&0x80000000 != 0 {
		bit31 = 1
	}
	low16 := value & 0xffff

	switch {
	case isUint16(value):
		a.Ori(rd, ZERO, uint16(value))
	case isInt16(value):
		a.Daddiu(rd, ZERO, uint16(value))
	case low16 == 0 && isInt16(value>>16):
		a.Lui(rd, uint16(value>>16))
	case isInt32(value):
		a.Lui(rd, uint16(value>>16))
		a.Ori(rd, rd, uint16(value))
	case value&0xffff0000 == 0 && isInt16(value>>32):
		a.Ori(rd, ZERO, uint16(value))
		a.Dahi(rd, uint16(value>>32))
	case value&0xffffffff0000 == 0:
		a.Ori(rd, ZERO, uint16(value))
		a.Dati(rd, uint16(value>>48))
	case low16 == 0 && -32768-bit31 <= value>>32 && value>>32 <= 32767-bit31:
		a.Lui(rd, uint16(value>>16))
		a.Dahi(rd, uint16((value>>32)+bit31))
	case low16 == 0 && (value>>31)&0x1ffff == (0x20000-bit31)&0x1ffff:
		a.Lui(rd, uint16(value>>16))
		a.Dati(rd, uint16((value>>48)+bit31))
	case isPowerOfTwo(uint64(value) + 1):
		// A run of ones from bit 0.
		shift := uint32(64 - bits.TrailingZeros64(uint64(value)+1))
		a.Daddiu(rd, ZERO, 0xffff)
		a.dsrlAny(rd, shift)
	default:
		a.loadConst64R6Shifted(rd, value)
	}
}

func (a *Assembler) loadConst64R6Shifted(rd GpuRegister, value int64) {
	shift := uint32(bits.TrailingZeros64(uint64(value)))
	tmp := value >> shift
	switch {
	case isUint16(tmp):
		a.Ori(rd, ZERO, uint16(tmp))
		a.dsllAny(rd, shift)
		return
	case isInt16(tmp):
		a.Daddiu(rd, ZERO, uint16(tmp))
		a.dsllAny(rd, shift)
		return
	case isInt32(tmp):
		a.Lui(rd, uint16(tmp>>16))
		a.Ori(rd, rd, uint16(tmp))
		a.dsllAny(rd, shift)
		return
	}

	// Everything above the low halfword may still be a shifted 16-bit value.
	shift = 16 + uint32(bits.TrailingZeros64(uint64(value>>16)))
	tmp = value >> shift
	switch {
	case isUint16(tmp):
		a.Ori(rd, ZERO, uint16(tmp))
		a.dsllAny(rd, shift)
		a.Ori(rd, rd, uint16(value))
		return
	case isInt16(tmp):
		a.Daddiu(rd, ZERO, uint16(tmp))
		a.dsllAny(rd, shift)
		a.Ori(rd, rd, uint16(value))
		return
	}

	tmp2 := uint64(value)
	usedLui := false
	if (tmp2>>16)&0xffff != 0 || tmp2&0xffffffff == 0 {
		a.Lui(rd, uint16(tmp2>>16))
		usedLui = true
	}
	if tmp2&0xffff != 0 {
		if usedLui {
			a.Ori(rd, rd, uint16(tmp2))
		} else {
			a.Ori(rd, ZERO, uint16(tmp2))
		}
	}
	if tmp2&0x80000000 != 0 {
		tmp2 += 1 << 32
	}
	if (tmp2>>32)&0xffff != 0 {
		a.Dahi(rd, uint16(tmp2>>32))
	}
	if tmp2&0x800000000000 != 0 {
		tmp2 += 1 << 48
	}
	if tmp2>>48 != 0 {
		a.Dati(rd, uint16(tmp2>>48))
	}
}

// loadConst64Legacy builds the constant from its upper word, then shifts in the
// two lower halfwords. It uses pre-R6 instructions only.
func (a *Assembler) loadConst64Legacy(rd GpuRegister, value int64) {
	if isInt32(value) {
		a.LoadConst32(rd, int32(value))
		return
	}
	a.LoadConst32(rd, int32(value>>32))
	a.Dsll(rd, rd, 16)
	if mid := uint16(value >> 16); mid != 0 {
		a.Ori(rd, rd, mid)
	}
	a.Dsll(rd, rd, 16)
	if low := uint16(value); low != 0 {
		a.Ori(rd, rd, low)
	}
}

func (a *Assembler) dsllAny(rd GpuRegister, shift uint32) {
	if shift < 32 {
		a.Dsll(rd, rd, shift)
	} else {
		a.Dsll32(rd, rd, shift&31)
	}
}

func (a *Assembler) dsrlAny(rd GpuRegister, shift uint32) {
	if shift < 32 {
		a.Dsrl(rd, rd, shift)
	} else {
		a.Dsrl32(rd, rd, shift&31)
	}
}

func isPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// Addiu32 adds a 32-bit constant to rs. Constants outside the 16-bit range are first
// loaded into rtmp, so rt may alias rs but rtmp must not.
func (a *Assembler) Addiu32(rt, rs GpuRegister, value int32, rtmp GpuRegister) {
	if isInt16(int64(value)) {
		a.Addiu(rt, rs, uint16(value))
		return
	}
	checkTemporary(rtmp, rs)
	a.LoadConst32(rtmp, value)
	a.Addu(rt, rs, rtmp)
}

// Daddiu64 adds a 64-bit constant to rs. Constants outside the 16-bit range are first
// loaded into rtmp, so rt may alias rs but rtmp must not.
func (a *Assembler) Daddiu64(rt, rs GpuRegister, value int64, rtmp GpuRegister) {
	if isInt16(value) {
		a.Daddiu(rt, rs, uint16(value))
		return
	}
	checkTemporary(rtmp, rs)
	a.LoadConst64(rtmp, value)
	a.Daddu(rt, rs, rtmp)
}

func checkTemporary(rtmp, rs GpuRegister) {
	if rtmp == ZERO || rtmp == rs {
		panic(fmt.Errorf("%w: temporary %s cannot be zero or alias the source %s", asm.ErrOperandShape, rtmp, rs))
	}
}

// LoadFromOffset loads from base+offset. Offsets outside the 16-bit range are added
// to base in the scratch register first.
func (a *Assembler) LoadFromOffset(ty LoadOperandType, reg, base GpuRegister, offset int32) {
	base, imm := a.adjustBaseAndOffset(base, offset)
	switch ty {
	case LoadSignedByte:
		a.Lb(reg, base, imm)
	case LoadUnsignedByte:
		a.Lbu(reg, base, imm)
	case LoadSignedHalfword:
		a.Lh(reg, base, imm)
	case LoadUnsignedHalfword:
		a.Lhu(reg, base, imm)
	case LoadWord:
		a.Lw(reg, base, imm)
	case LoadUnsignedWord:
		a.Lwu(reg, base, imm)
	case LoadDoubleword:
		a.Ld(reg, base, imm)
	default:
		panic(fmt.Sprintf("BUG: invalid load operand type %d", ty))
	}
}

// LoadFpuFromOffset loads a single (LoadWord) or a double (LoadDoubleword) into reg.
func (a *Assembler) LoadFpuFromOffset(ty LoadOperandType, reg FpuRegister, base GpuRegister, offset int32) {
	base, imm := a.adjustBaseAndOffset(base, offset)
	switch ty {
	case LoadWord:
		a.Lwc1(reg, base, imm)
	case LoadDoubleword:
		a.Ldc1(reg, base, imm)
	default:
		panic(fmt.Sprintf("BUG: invalid fpu load operand type %d", ty))
	}
}

// StoreToOffset stores to base+offset. reg must not be the scratch register when the
// offset is outside the 16-bit range.
func (a *Assembler) StoreToOffset(ty StoreOperandType, reg, base GpuRegister, offset int32) {
	if !isInt16(int64(offset)) && reg == a.cfg.scratch {
		panic(fmt.Errorf("%w: stored register %s is the scratch register", asm.ErrOperandShape, reg))
	}
	base, imm := a.adjustBaseAndOffset(base, offset)
	switch ty {
	case StoreByte:
		a.Sb(reg, base, imm)
	case StoreHalfword:
		a.Sh(reg, base, imm)
	case StoreWord:
		a.Sw(reg, base, imm)
	case StoreDoubleword:
		a.Sd(reg, base, imm)
	default:
		panic(fmt.Sprintf("BUG: invalid store operand type %d", ty))
	}
}

// StoreFpuToOffset stores a single (StoreWord) or a double (StoreDoubleword) from reg.
func (a *Assembler) StoreFpuToOffset(ty StoreOperandType, reg FpuRegister, base GpuRegister, offset int32) {
	base, imm := a.adjustBaseAndOffset(base, offset)
	switch ty {
	case StoreWord:
		a.Swc1(reg, base, imm)
	case StoreDoubleword:
		a.Sdc1(reg, base, imm)
	default:
		panic(fmt.Sprintf("BUG: invalid fpu store operand type %d", ty))
	}
}

func (a *Assembler) adjustBaseAndOffset(base GpuRegister, offset int32) (GpuRegister, uint16) {
	if isInt16(int64(offset)) {
		return base, uint16(offset)
	}
	scratch := a.cfg.scratch
	if base == scratch {
		panic(fmt.Errorf("%w: base %s is the scratch register and offset %d needs it", asm.ErrOperandShape, base, offset))
	}
	a.LoadConst32(scratch, offset)
	a.Daddu(scratch, scratch, base)
	return scratch, 0
}
