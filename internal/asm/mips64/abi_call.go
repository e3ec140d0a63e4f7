package mips64

import "github.com/jitkit/mips64/internal/runtimeapi"

// Call calls the code pointer stored at base+offset. scratch is clobbered.
func (a *Assembler) Call(base ManagedRegister, offset runtimeapi.Offset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadDoubleword, r, base.AsGpr(), offset.I32())
	a.callThrough(r)
}

// CallFromFrame calls *(*(SP+base)+offset). scratch is clobbered.
func (a *Assembler) CallFromFrame(base runtimeapi.FrameOffset, offset runtimeapi.Offset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadDoubleword, r, SP, base.I32())
	a.LoadFromOffset(LoadDoubleword, r, r, offset.I32())
	a.callThrough(r)
}

// CallFromThread calls the entrypoint stored in the thread slot at offset. scratch is clobbered.
func (a *Assembler) CallFromThread(offset runtimeapi.ThreadOffset, scratch ManagedRegister) {
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadDoubleword, r, a.cfg.threadRegister, offset.I32())
	a.callThrough(r)
}

func (a *Assembler) callThrough(r GpuRegister) {
	a.Jalr(RA, r)
	a.Nop()
}

// ExceptionPoll branches to a slow path delivering the thread's pending exception, if any.
// The slow path is emitted out of line by Assemble. stackAdjust is the number of bytes the
// caller has pushed since its frame was built, and is popped before delivery.
func (a *Assembler) ExceptionPoll(scratch ManagedRegister, stackAdjust uint32) {
	checkFrameAdjust(stackAdjust)
	r := scratch.AsGpr()
	a.LoadFromOffset(LoadDoubleword, r, a.cfg.threadRegister, a.cfg.threadOffsets.Exception.I32())
	sp := newExceptionSlowPath(r, stackAdjust, a.NewLabel())
	a.branchIfNonZero(r, sp.entry)
	a.slowPaths = append(a.slowPaths, sp)
}
