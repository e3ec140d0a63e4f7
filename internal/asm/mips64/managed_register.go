package mips64

import (
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
)

// ManagedRegisterKind is the tag of a ManagedRegister.
type ManagedRegisterKind byte

const (
	ManagedRegisterKindNone ManagedRegisterKind = iota
	ManagedRegisterKindGpr
	ManagedRegisterKindFpr
	ManagedRegisterKindPair
)

// String implements fmt.Stringer.
func (k ManagedRegisterKind) String() string {
	switch k {
	case ManagedRegisterKindNone:
		return "none"
	case ManagedRegisterKindGpr:
		return "gpr"
	case ManagedRegisterKindFpr:
		return "fpr"
	case ManagedRegisterKindPair:
		return "pair"
	default:
		return fmt.Sprintf("ManagedRegisterKind(%d)", byte(k))
	}
}

// ManagedRegister is the runtime's view of a register operand: nothing, a general
// purpose register, a floating point register, or a pair of general purpose
// registers holding the low and high words of a value.
//
// The zero value is NoRegister().
type ManagedRegister struct {
	kind   ManagedRegisterKind
	lo, hi byte
}

// NoRegister returns the none ManagedRegister.
func NoRegister() ManagedRegister {
	return ManagedRegister{}
}

// GPR returns a ManagedRegister for a general purpose register.
func GPR(r GpuRegister) ManagedRegister {
	checkGpr(r)
	return ManagedRegister{kind: ManagedRegisterKindGpr, lo: byte(r)}
}

// FPR returns a ManagedRegister for a floating point register.
func FPR(r FpuRegister) ManagedRegister {
	checkFpr(r)
	return ManagedRegister{kind: ManagedRegisterKindFpr, lo: byte(r)}
}

// Pair returns a ManagedRegister for two distinct general purpose registers.
func Pair(lo, hi GpuRegister) ManagedRegister {
	checkGpr(lo, hi)
	if lo == hi {
		panic(fmt.Errorf("%w: register pair %s, %s must be distinct", asm.ErrOperandShape, lo, hi))
	}
	return ManagedRegister{kind: ManagedRegisterKindPair, lo: byte(lo), hi: byte(hi)}
}

// Kind returns the tag of m.
func (m ManagedRegister) Kind() ManagedRegisterKind {
	return m.kind
}

// IsNone returns true if m holds no register.
func (m ManagedRegister) IsNone() bool {
	return m.kind == ManagedRegisterKindNone
}

// AsGpr returns the general purpose register of m, which must be a gpr.
func (m ManagedRegister) AsGpr() GpuRegister {
	m.expect(ManagedRegisterKindGpr)
	return GpuRegister(m.lo)
}

// AsFpr returns the floating point register of m, which must be an fpr.
func (m ManagedRegister) AsFpr() FpuRegister {
	m.expect(ManagedRegisterKindFpr)
	return FpuRegister(m.lo)
}

// AsPair returns the low and high registers of m, which must be a pair.
func (m ManagedRegister) AsPair() (lo, hi GpuRegister) {
	m.expect(ManagedRegisterKindPair)
	return GpuRegister(m.lo), GpuRegister(m.hi)
}

// Overlaps returns true if m and other share a physical register.
func (m ManagedRegister) Overlaps(other ManagedRegister) bool {
	if m.kind == ManagedRegisterKindNone || other.kind == ManagedRegisterKindNone {
		return false
	}
	if (m.kind == ManagedRegisterKindFpr) != (other.kind == ManagedRegisterKindFpr) {
		return false
	}
	for _, x := range m.regs() {
		for _, y := range other.regs() {
			if x == y {
				return true
			}
		}
	}
	return false
}

func (m ManagedRegister) regs() []byte {
	if m.kind == ManagedRegisterKindPair {
		return []byte{m.lo, m.hi}
	}
	return []byte{m.lo}
}

func (m ManagedRegister) expect(kind ManagedRegisterKind) {
	if m.kind != kind {
		panic(fmt.Errorf("%w: expected %s register, got %s", asm.ErrOperandShape, kind, m))
	}
}

// String implements fmt.Stringer.
func (m ManagedRegister) String() string {
	switch m.kind {
	case ManagedRegisterKindNone:
		return "none"
	case ManagedRegisterKindGpr:
		return GpuRegister(m.lo).String()
	case ManagedRegisterKindFpr:
		return FpuRegister(m.lo).String()
	case ManagedRegisterKindPair:
		return fmt.Sprintf("(%s, %s)", GpuRegister(m.lo), GpuRegister(m.hi))
	default:
		return fmt.Sprintf("invalid(%d)", byte(m.kind))
	}
}
