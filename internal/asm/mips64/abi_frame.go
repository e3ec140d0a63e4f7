package mips64

import (
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
)

// FrameDescriptor describes the frame built by BuildFrame and torn down by RemoveFrame.
// Both must be given the same descriptor.
type FrameDescriptor struct {
	// Size is the frame size in bytes, a multiple of StackAlignment.
	Size uint32
	// MethodRegister holds the method pointer stored at 0(SP). It may be none.
	MethodRegister ManagedRegister
	// CalleeSaves are the registers preserved across the frame, saved below the return address.
	CalleeSaves []ManagedRegister
	// EntrySpills are the incoming argument registers written to the caller's argument area.
	EntrySpills []EntrySpill
}

// EntrySpill is an incoming argument to spill. A none register only reserves Size bytes.
type EntrySpill struct {
	Reg  ManagedRegister
	Size uint32
}

// BuildFrame emits the prologue described by fd.
//
//	          (high address)                     (high address)
//	        +-----------------+               +------------------+
//	        |  entry spill N  |               |  entry spill N   |
//	        |     .......     |               |     .......      |
//	        |  entry spill 0  |               |  entry spill 0   |
//	        |      xxxxx      |               |      xxxxx       |
//	SP----> +-----------------+     ====>     +------------------+ <- SP+Size
//	                                          |  return address  |
//	                                          | callee save N-1  |
//	                                          |     .......      |
//	                                          |  callee save 0   |
//	                                          |     .......      |
//	                                          |      method      |
//	                                          +------------------+ <- SP
//	           (low address)                     (low address)
func (a *Assembler) BuildFrame(fd *FrameDescriptor) {
	a.checkFrame(fd)
	size := int32(fd.Size)
	a.IncreaseFrameSize(fd.Size)

	offset := size - FramePointerSize
	a.StoreToOffset(StoreDoubleword, RA, SP, offset)
	for i := len(fd.CalleeSaves) - 1; i >= 0; i-- {
		offset -= FramePointerSize
		a.storeCalleeSave(fd.CalleeSaves[i], offset)
	}

	if !fd.MethodRegister.IsNone() {
		a.StoreToOffset(StoreDoubleword, fd.MethodRegister.AsGpr(), SP, 0)
	}

	offset = size + FramePointerSize
	for _, spill := range fd.EntrySpills {
		switch spill.Reg.Kind() {
		case ManagedRegisterKindNone:
		case ManagedRegisterKindGpr:
			a.StoreToOffset(storeTypeFor(spill.Size), spill.Reg.AsGpr(), SP, offset)
		case ManagedRegisterKindFpr:
			a.StoreFpuToOffset(storeTypeFor(spill.Size), spill.Reg.AsFpr(), SP, offset)
		default:
			panic(fmt.Errorf("%w: cannot spill %s", asm.ErrOperandShape, spill.Reg))
		}
		offset += int32(spill.Size)
	}
}

// RemoveFrame emits the epilogue for fd and returns to the caller. Registers are
// restored in the reverse order of BuildFrame, the return goes through a delay slot
// which is filled with a NOP.
func (a *Assembler) RemoveFrame(fd *FrameDescriptor) {
	a.checkFrame(fd)
	size := int32(fd.Size)

	offset := size - int32(len(fd.CalleeSaves))*FramePointerSize - FramePointerSize
	for _, r := range fd.CalleeSaves {
		a.loadCalleeSave(r, offset)
		offset += FramePointerSize
	}
	a.LoadFromOffset(LoadDoubleword, RA, SP, offset)

	a.DecreaseFrameSize(fd.Size)
	a.Jr(RA)
	a.Nop()
}

// IncreaseFrameSize moves SP down by adjust bytes.
func (a *Assembler) IncreaseFrameSize(adjust uint32) {
	checkFrameAdjust(adjust)
	a.Daddiu64(SP, SP, -int64(adjust), a.cfg.scratch)
}

// DecreaseFrameSize moves SP up by adjust bytes.
func (a *Assembler) DecreaseFrameSize(adjust uint32) {
	checkFrameAdjust(adjust)
	a.Daddiu64(SP, SP, int64(adjust), a.cfg.scratch)
}

func checkFrameAdjust(adjust uint32) {
	if adjust%FramePointerSize != 0 {
		panic(fmt.Errorf("%w: frame adjustment %d is not a multiple of %d", asm.ErrOperandShape, adjust, FramePointerSize))
	}
}

func (a *Assembler) checkFrame(fd *FrameDescriptor) {
	if fd.Size%StackAlignment != 0 {
		panic(fmt.Errorf("%w: frame size %d is not aligned to %d", asm.ErrOperandShape, fd.Size, StackAlignment))
	}
	need := uint64(len(fd.CalleeSaves)+1) * FramePointerSize
	if !fd.MethodRegister.IsNone() {
		need += FramePointerSize
	}
	if uint64(fd.Size) < need || fd.Size > 1<<31-1 {
		panic(fmt.Errorf("%w: frame size %d cannot hold %d callee saves", asm.ErrOperandShape, fd.Size, len(fd.CalleeSaves)))
	}
}

func (a *Assembler) storeCalleeSave(r ManagedRegister, offset int32) {
	switch r.Kind() {
	case ManagedRegisterKindGpr:
		a.StoreToOffset(StoreDoubleword, r.AsGpr(), SP, offset)
	case ManagedRegisterKindFpr:
		a.StoreFpuToOffset(StoreDoubleword, r.AsFpr(), SP, offset)
	default:
		panic(fmt.Errorf("%w: cannot save %s", asm.ErrOperandShape, r))
	}
}

func (a *Assembler) loadCalleeSave(r ManagedRegister, offset int32) {
	switch r.Kind() {
	case ManagedRegisterKindGpr:
		a.LoadFromOffset(LoadDoubleword, r.AsGpr(), SP, offset)
	case ManagedRegisterKindFpr:
		a.LoadFpuFromOffset(LoadDoubleword, r.AsFpr(), SP, offset)
	default:
		panic(fmt.Errorf("%w: cannot restore %s", asm.ErrOperandShape, r))
	}
}

func storeTypeFor(size uint32) StoreOperandType {
	switch size {
	case 4:
		return StoreWord
	case 8:
		return StoreDoubleword
	default:
		panic(fmt.Errorf("%w: spill size %d", asm.ErrOperandShape, size))
	}
}
