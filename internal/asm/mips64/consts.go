package mips64

import "fmt"

// GpuRegister is one of the 32 general purpose registers, numbered as in the
// instruction encoding.
type GpuRegister byte

// MIPS64 general purpose registers with their n64 ABI names.
const (
	ZERO GpuRegister = iota
	AT               // assembler temporary
	V0
	V1
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	T0
	T1
	T2
	T3
	S0
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	T8
	T9
	K0
	K1
	GP
	SP
	S8
	RA

	NumberOfGpuRegisters = 32
)

// FpuRegister is one of the 32 floating point registers.
type FpuRegister byte

// MIPS64 floating point registers.
const (
	F0 FpuRegister = iota
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	F25
	F26
	F27
	F28
	F29
	F30
	F31

	NumberOfFpuRegisters = 32
)

var gpuRegisterNames = [NumberOfGpuRegisters]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"a4", "a5", "a6", "a7", "t0", "t1", "t2", "t3",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "s8", "ra",
}

// String implements fmt.Stringer.
func (r GpuRegister) String() string {
	if r < NumberOfGpuRegisters {
		return gpuRegisterNames[r]
	}
	return fmt.Sprintf("invalid-gpr(%d)", byte(r))
}

// String implements fmt.Stringer.
func (r FpuRegister) String() string {
	if r < NumberOfFpuRegisters {
		return fmt.Sprintf("f%d", byte(r))
	}
	return fmt.Sprintf("invalid-fpr(%d)", byte(r))
}

// ISARevision selects which encodings are available for instructions whose
// form differs between MIPS64 release 6 and earlier releases.
type ISARevision byte

const (
	// ISARevision6 enables compact branches, AUIPC based long jumps and the R6
	// encodings of LL/SC and CLZ. This is the default.
	ISARevision6 ISARevision = iota
	// ISARevision2 restricts the emitter to pre-R6 encodings. Branches then carry a
	// delay slot which callers must fill themselves.
	ISARevision2
)

// String implements fmt.Stringer.
func (r ISARevision) String() string {
	switch r {
	case ISARevision6:
		return "mips64r6"
	case ISARevision2:
		return "mips64r2"
	default:
		return fmt.Sprintf("ISARevision(%d)", byte(r))
	}
}

// LoadOperandType is the width and extension of a memory load.
type LoadOperandType byte

const (
	LoadSignedByte LoadOperandType = iota
	LoadUnsignedByte
	LoadSignedHalfword
	LoadUnsignedHalfword
	LoadWord
	LoadUnsignedWord
	LoadDoubleword
)

// StoreOperandType is the width of a memory store.
type StoreOperandType byte

const (
	StoreByte StoreOperandType = iota
	StoreHalfword
	StoreWord
	StoreDoubleword
)

// FPClassMask is a bit of the result of CLASS.S / CLASS.D.
type FPClassMask uint32

const (
	FPClassSignalingNaN      FPClassMask = 0x001
	FPClassQuietNaN          FPClassMask = 0x002
	FPClassNegativeInfinity  FPClassMask = 0x004
	FPClassNegativeNormal    FPClassMask = 0x008
	FPClassNegativeSubnormal FPClassMask = 0x010
	FPClassNegativeZero      FPClassMask = 0x020
	FPClassPositiveInfinity  FPClassMask = 0x040
	FPClassPositiveNormal    FPClassMask = 0x080
	FPClassPositiveSubnormal FPClassMask = 0x100
	FPClassPositiveZero      FPClassMask = 0x200
)

const (
	// FramePointerSize is the size of a stack slot holding a register.
	FramePointerSize = 8
	// StackAlignment is the required alignment of the stack pointer at frame boundaries.
	StackAlignment = 16
)
