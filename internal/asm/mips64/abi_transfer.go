package mips64

import (
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
	"github.com/jitkit/mips64/internal/runtimeapi"
)

// Store writes size bytes of src to the frame slot at dest.
func (a *Assembler) Store(dest runtimeapi.FrameOffset, src ManagedRegister, size uint32) {
	a.storeManaged(src, SP, dest.I32(), size)
}

// StoreRef writes the 32-bit reference held in src to the frame slot at dest.
func (a *Assembler) StoreRef(dest runtimeapi.FrameOffset, src ManagedRegister) {
	a.StoreToOffset(StoreWord, src.AsGpr(), SP, dest.I32())
}

// StoreRawPtr writes the pointer held in src to the frame slot at dest.
func (a *Assembler) StoreRawPtr(dest runtimeapi.FrameOffset, src ManagedRegister) {
	a.StoreToOffset(StoreDoubleword, src.AsGpr(), SP, dest.I32())
}

// StoreImmediateToFrame writes imm as a word to the frame slot at dest.
func (a *Assembler) StoreImmediateToFrame(dest runtimeapi.FrameOffset, imm uint32, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadConst32(r, int32(imm))
	a.StoreToOffset(StoreWord, r, SP, dest.I32())
}

// StoreImmediateToThread writes imm, sign extended, to the thread slot at dest.
func (a *Assembler) StoreImmediateToThread(dest runtimeapi.ThreadOffset, imm uint32, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadConst32(r, int32(imm))
	a.StoreToOffset(StoreDoubleword, r, a.cfg.threadRegister, dest.I32())
}

// StoreStackOffsetToThread writes SP+frameOffset to the thread slot at threadOffset.
func (a *Assembler) StoreStackOffsetToThread(threadOffset runtimeapi.ThreadOffset, frameOffset runtimeapi.FrameOffset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.Daddiu64(r, SP, int64(frameOffset), a.cfg.scratch)
	a.StoreToOffset(StoreDoubleword, r, a.cfg.threadRegister, threadOffset.I32())
}

// StoreStackPointerToThread writes SP to the thread slot at offset.
func (a *Assembler) StoreStackPointerToThread(offset runtimeapi.ThreadOffset) {
	a.StoreToOffset(StoreDoubleword, SP, a.cfg.threadRegister, offset.I32())
}

// StoreSpanning writes src to dest and copies the doubleword at inOffset to dest+8.
func (a *Assembler) StoreSpanning(dest runtimeapi.FrameOffset, src ManagedRegister, inOffset runtimeapi.FrameOffset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.StoreToOffset(StoreDoubleword, src.AsGpr(), SP, dest.I32())
	a.LoadFromOffset(LoadDoubleword, r, SP, inOffset.I32())
	a.StoreToOffset(StoreDoubleword, r, SP, dest.I32()+8)
}

// Load reads size bytes from the frame slot at src into dest, sign extending narrow values.
func (a *Assembler) Load(dest ManagedRegister, src runtimeapi.FrameOffset, size uint32) {
	a.loadManaged(dest, SP, src.I32(), size)
}

// LoadFromThread reads size bytes from the thread slot at src into dest.
func (a *Assembler) LoadFromThread(dest ManagedRegister, src runtimeapi.ThreadOffset, size uint32) {
	a.loadManaged(dest, a.cfg.threadRegister, src.I32(), size)
}

// LoadRef reads the 32-bit reference in the frame slot at src, zero extended.
func (a *Assembler) LoadRef(dest ManagedRegister, src runtimeapi.FrameOffset) {
	a.LoadFromOffset(LoadUnsignedWord, dest.AsGpr(), SP, src.I32())
}

// LoadRefFromMember reads the reference field at base+offset. With unpoison set and
// heap reference poisoning configured, the loaded reference is negated back.
func (a *Assembler) LoadRefFromMember(dest, base ManagedRegister, offset runtimeapi.MemberOffset, unpoison bool) {
	d := dest.AsGpr()
	a.LoadFromOffset(LoadUnsignedWord, d, base.AsGpr(), offset.I32())
	if a.cfg.heapReferencePoisoning && unpoison {
		a.Subu(d, ZERO, d)
		a.Dext(d, d, 0, 32)
	}
}

// LoadRawPtr reads the pointer at base+offset.
func (a *Assembler) LoadRawPtr(dest, base ManagedRegister, offset runtimeapi.Offset) {
	a.LoadFromOffset(LoadDoubleword, dest.AsGpr(), base.AsGpr(), offset.I32())
}

// LoadRawPtrFromThread reads the pointer in the thread slot at offset.
func (a *Assembler) LoadRawPtrFromThread(dest ManagedRegister, offset runtimeapi.ThreadOffset) {
	a.LoadFromOffset(LoadDoubleword, dest.AsGpr(), a.cfg.threadRegister, offset.I32())
}

// MoveManaged copies size bytes between two managed registers. GPRs and FPRs move
// across files, pairs only to pairs. Nothing is emitted when dest and src are the same.
func (a *Assembler) MoveManaged(dest, src ManagedRegister, size uint32) {
	switch dest.Kind() {
	case ManagedRegisterKindGpr:
		d := dest.AsGpr()
		switch src.Kind() {
		case ManagedRegisterKindGpr:
			if s := src.AsGpr(); s != d {
				a.Move(d, s)
			}
		case ManagedRegisterKindFpr:
			if size == 4 {
				a.Mfc1(d, src.AsFpr())
			} else {
				checkSize(size, 8)
				a.Dmfc1(d, src.AsFpr())
			}
		default:
			panic(fmt.Errorf("%w: cannot move %s to %s", asm.ErrOperandShape, src, dest))
		}
	case ManagedRegisterKindFpr:
		d := dest.AsFpr()
		switch src.Kind() {
		case ManagedRegisterKindFpr:
			s := src.AsFpr()
			if s == d {
				return
			}
			if size == 4 {
				a.MovS(d, s)
			} else {
				checkSize(size, 8)
				a.MovD(d, s)
			}
		case ManagedRegisterKindGpr:
			if size == 4 {
				a.Mtc1(src.AsGpr(), d)
			} else {
				checkSize(size, 8)
				a.Dmtc1(src.AsGpr(), d)
			}
		default:
			panic(fmt.Errorf("%w: cannot move %s to %s", asm.ErrOperandShape, src, dest))
		}
	case ManagedRegisterKindPair:
		dlo, dhi := dest.AsPair()
		slo, shi := src.AsPair()
		a.movePair(dlo, dhi, slo, shi)
	case ManagedRegisterKindNone:
		if !src.IsNone() || size != 0 {
			panic(fmt.Errorf("%w: cannot move %s to %s", asm.ErrOperandShape, src, dest))
		}
	}
}

// movePair moves (slo, shi) to (dlo, dhi) without clobbering a source half before it is read.
func (a *Assembler) movePair(dlo, dhi, slo, shi GpuRegister) {
	switch {
	case dlo == shi && dhi == slo:
		// Swap in place.
		a.Xor(dlo, dlo, dhi)
		a.Xor(dhi, dlo, dhi)
		a.Xor(dlo, dlo, dhi)
	case dlo == shi:
		a.moveIfDifferent(dhi, shi)
		a.moveIfDifferent(dlo, slo)
	default:
		a.moveIfDifferent(dlo, slo)
		a.moveIfDifferent(dhi, shi)
	}
}

func (a *Assembler) moveIfDifferent(rd, rs GpuRegister) {
	if rd != rs {
		a.Move(rd, rs)
	}
}

// CopyRef copies the 32-bit reference in the frame slot at src to dest.
func (a *Assembler) CopyRef(dest, src runtimeapi.FrameOffset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadWord, r, SP, src.I32())
	a.StoreToOffset(StoreWord, r, SP, dest.I32())
}

// CopyRawPtrFromThread copies the thread slot at src to the frame slot at dest.
func (a *Assembler) CopyRawPtrFromThread(dest runtimeapi.FrameOffset, src runtimeapi.ThreadOffset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadDoubleword, r, a.cfg.threadRegister, src.I32())
	a.StoreToOffset(StoreDoubleword, r, SP, dest.I32())
}

// CopyRawPtrToThread copies the frame slot at src to the thread slot at dest.
func (a *Assembler) CopyRawPtrToThread(dest runtimeapi.ThreadOffset, src runtimeapi.FrameOffset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadDoubleword, r, SP, src.I32())
	a.StoreToOffset(StoreDoubleword, r, a.cfg.threadRegister, dest.I32())
}

// Copy copies a 4 or 8 byte frame slot.
func (a *Assembler) Copy(dest, src runtimeapi.FrameOffset, scratch ManagedRegister, size uint32) {
	a.copyVia(scratch, SP, src.I32(), SP, dest.I32(), size)
}

// CopyFromBase copies size bytes from srcBase+srcOffset to the frame slot at dest.
func (a *Assembler) CopyFromBase(dest runtimeapi.FrameOffset, srcBase ManagedRegister, srcOffset runtimeapi.Offset, scratch ManagedRegister, size uint32) {
	a.copyVia(scratch, srcBase.AsGpr(), srcOffset.I32(), SP, dest.I32(), size)
}

// CopyToBase copies size bytes from the frame slot at src to destBase+destOffset.
func (a *Assembler) CopyToBase(destBase ManagedRegister, destOffset runtimeapi.Offset, src runtimeapi.FrameOffset, scratch ManagedRegister, size uint32) {
	a.copyVia(scratch, SP, src.I32(), destBase.AsGpr(), destOffset.I32(), size)
}

// CopyBaseToBase copies size bytes from srcBase+srcOffset to destBase+destOffset.
func (a *Assembler) CopyBaseToBase(destBase ManagedRegister, destOffset runtimeapi.Offset, srcBase ManagedRegister, srcOffset runtimeapi.Offset, scratch ManagedRegister, size uint32) {
	a.copyVia(scratch, srcBase.AsGpr(), srcOffset.I32(), destBase.AsGpr(), destOffset.I32(), size)
}

// CopyFromFrameIndirect copies size bytes from *(SP+srcBase)+srcOffset to the frame slot at dest.
func (a *Assembler) CopyFromFrameIndirect(dest, srcBase runtimeapi.FrameOffset, srcOffset runtimeapi.Offset, scratch ManagedRegister, size uint32) {
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadDoubleword, r, SP, srcBase.I32())
	a.copyVia(scratch, r, srcOffset.I32(), SP, dest.I32(), size)
}

func (a *Assembler) copyVia(scratch ManagedRegister, srcBase GpuRegister, srcOffset int32, destBase GpuRegister, destOffset int32, size uint32) {
	r := scratch.AsGpr()
	switch size {
	case 4:
		a.LoadFromOffset(LoadWord, r, srcBase, srcOffset)
		a.StoreToOffset(StoreWord, r, destBase, destOffset)
	case 8:
		a.LoadFromOffset(LoadDoubleword, r, srcBase, srcOffset)
		a.StoreToOffset(StoreDoubleword, r, destBase, destOffset)
	default:
		panic(fmt.Errorf("%w: copy size %d", asm.ErrOperandShape, size))
	}
}

// SignExtend sign extends the low size bytes of r into the whole register.
func (a *Assembler) SignExtend(r ManagedRegister, size uint32) {
	g := r.AsGpr()
	switch size {
	case 1:
		a.Seb(g, g)
	case 2:
		a.Seh(g, g)
	case 4:
		a.Sll(g, g, 0)
	default:
		panic(fmt.Errorf("%w: sign extension from %d bytes", asm.ErrOperandShape, size))
	}
}

// ZeroExtend clears everything above the low size bytes of r.
func (a *Assembler) ZeroExtend(r ManagedRegister, size uint32) {
	g := r.AsGpr()
	switch size {
	case 1:
		a.Andi(g, g, 0xff)
	case 2:
		a.Andi(g, g, 0xffff)
	case 4:
		a.Dext(g, g, 0, 32)
	default:
		panic(fmt.Errorf("%w: zero extension from %d bytes", asm.ErrOperandShape, size))
	}
}

// GetCurrentThread copies the thread register into r.
func (a *Assembler) GetCurrentThread(r ManagedRegister) {
	a.moveIfDifferent(r.AsGpr(), a.cfg.threadRegister)
}

// GetCurrentThreadToFrame stores the thread register to the frame slot at offset.
func (a *Assembler) GetCurrentThreadToFrame(offset runtimeapi.FrameOffset, _ ManagedRegister) {
	a.StoreToOffset(StoreDoubleword, a.cfg.threadRegister, SP, offset.I32())
}

// MemoryBarrier emits a full barrier.
func (a *Assembler) MemoryBarrier(ManagedRegister) {
	a.Sync(0)
}

// VerifyObject is a no-op: there is no heap verification entrypoint.
func (a *Assembler) VerifyObject(ManagedRegister, bool) {}

// VerifyObjectInFrame is a no-op: there is no heap verification entrypoint.
func (a *Assembler) VerifyObjectInFrame(runtimeapi.FrameOffset, bool) {}

func (a *Assembler) storeManaged(src ManagedRegister, base GpuRegister, offset int32, size uint32) {
	switch src.Kind() {
	case ManagedRegisterKindNone:
		checkSize(size, 0)
	case ManagedRegisterKindGpr:
		var ty StoreOperandType
		switch size {
		case 1:
			ty = StoreByte
		case 2:
			ty = StoreHalfword
		case 4:
			ty = StoreWord
		case 8:
			ty = StoreDoubleword
		default:
			panic(fmt.Errorf("%w: store size %d", asm.ErrOperandShape, size))
		}
		a.StoreToOffset(ty, src.AsGpr(), base, offset)
	case ManagedRegisterKindFpr:
		a.StoreFpuToOffset(storeTypeFor(size), src.AsFpr(), base, offset)
	case ManagedRegisterKindPair:
		checkSize(size, 8)
		lo, hi := src.AsPair()
		a.StoreToOffset(StoreWord, lo, base, offset)
		a.StoreToOffset(StoreWord, hi, base, offset+4)
	}
}

func (a *Assembler) loadManaged(dest ManagedRegister, base GpuRegister, offset int32, size uint32) {
	switch dest.Kind() {
	case ManagedRegisterKindNone:
		checkSize(size, 0)
	case ManagedRegisterKindGpr:
		var ty LoadOperandType
		switch size {
		case 1:
			ty = LoadSignedByte
		case 2:
			ty = LoadSignedHalfword
		case 4:
			ty = LoadWord
		case 8:
			ty = LoadDoubleword
		default:
			panic(fmt.Errorf("%w: load size %d", asm.ErrOperandShape, size))
		}
		a.LoadFromOffset(ty, dest.AsGpr(), base, offset)
	case ManagedRegisterKindFpr:
		var ty LoadOperandType
		switch size {
		case 4:
			ty = LoadWord
		case 8:
			ty = LoadDoubleword
		default:
			panic(fmt.Errorf("%w: fpu load size %d", asm.ErrOperandShape, size))
		}
		a.LoadFpuFromOffset(ty, dest.AsFpr(), base, offset)
	case ManagedRegisterKindPair:
		checkSize(size, 8)
		lo, hi := dest.AsPair()
		if lo == base {
			// Load the half that overwrites the base last.
			a.LoadFromOffset(LoadWord, hi, base, offset+4)
			a.LoadFromOffset(LoadWord, lo, base, offset)
		} else {
			a.LoadFromOffset(LoadWord, lo, base, offset)
			a.LoadFromOffset(LoadWord, hi, base, offset+4)
		}
	}
}

func checkSize(size, want uint32) {
	if size != want {
		panic(fmt.Errorf("%w: size %d, want %d", asm.ErrOperandShape, size, want))
	}
}
