package mips64

import (
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
	"github.com/jitkit/mips64/internal/runtimeapi"
)

// A handle scope entry is a 32-bit reference slot in the frame. A handle to it is
// the slot address, or null when the slot holds null and nullAllowed is set.

// CreateHandleScopeEntry sets out to the handle of the slot at handleScopeOffset.
// in holds the reference stored in the slot, or is none to have it loaded from the slot.
func (a *Assembler) CreateHandleScopeEntry(out ManagedRegister, handleScopeOffset runtimeapi.FrameOffset, in ManagedRegister, nullAllowed bool) {
	if !in.IsNone() && in.Kind() != ManagedRegisterKindGpr {
		panic(fmt.Errorf("%w: handle scope input %s", asm.ErrOperandShape, in))
	}
	o := out.AsGpr()
	if !nullAllowed {
		a.Daddiu64(o, SP, int64(handleScopeOffset), a.cfg.scratch)
		return
	}

	// out = (ref == 0) ? 0 : SP+handleScopeOffset
	if in.IsNone() {
		a.LoadFromOffset(LoadUnsignedWord, o, SP, handleScopeOffset.I32())
		in = out
	}
	ref := in.AsGpr()
	if ref != o {
		a.LoadConst32(o, 0)
	}
	null := a.NewLabel()
	a.branchIfZero(ref, null)
	a.Daddiu64(o, SP, int64(handleScopeOffset), a.cfg.scratch)
	a.Bind(null)
}

// CreateHandleScopeEntryToFrame is CreateHandleScopeEntry writing the handle to the
// frame slot at out instead.
func (a *Assembler) CreateHandleScopeEntryToFrame(out, handleScopeOffset runtimeapi.FrameOffset, scratch ManagedRegister, nullAllowed bool) {
	r := scratch.AsGpr()
	if nullAllowed {
		a.LoadFromOffset(LoadUnsignedWord, r, SP, handleScopeOffset.I32())
		null := a.NewLabel()
		a.branchIfZero(r, null)
		a.Daddiu64(r, SP, int64(handleScopeOffset), a.cfg.scratch)
		a.Bind(null)
	} else {
		a.Daddiu64(r, SP, int64(handleScopeOffset), a.cfg.scratch)
	}
	a.StoreToOffset(StoreDoubleword, r, SP, out.I32())
}

// LoadReferenceFromHandleScope sets out to the reference behind the handle in, or null
// if the handle is null.
func (a *Assembler) LoadReferenceFromHandleScope(out, in ManagedRegister) {
	o, h := out.AsGpr(), in.AsGpr()
	if o != h {
		a.LoadConst32(o, 0)
	}
	null := a.NewLabel()
	a.branchIfZero(h, null)
	a.LoadFromOffset(LoadUnsignedWord, o, h, 0)
	a.Bind(null)
}

// branchIfZero branches to l if r is zero. The legacy form fills its delay slot with a NOP.
func (a *Assembler) branchIfZero(r GpuRegister, l *asm.Label) {
	if a.isR6() {
		a.BeqzcLabel(r, l)
	} else {
		a.BeqLabel(r, ZERO, l)
		a.Nop()
	}
}

// branchIfNonZero branches to l if r is not zero. The legacy form fills its delay slot with a NOP.
func (a *Assembler) branchIfNonZero(r GpuRegister, l *asm.Label) {
	if a.isR6() {
		a.BnezcLabel(r, l)
	} else {
		a.BneLabel(r, ZERO, l)
		a.Nop()
	}
}
