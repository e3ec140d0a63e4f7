package mips64

import (
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
)

// ExceptionSlowPath is the out of line code reached from an ExceptionPoll when an
// exception is pending. It hands the exception to the runtime and never returns.
type ExceptionSlowPath struct {
	// scratch holds the pending exception on entry.
	scratch     GpuRegister
	stackAdjust uint32
	entry       *asm.Label
	rendered    bool
}

func newExceptionSlowPath(scratch GpuRegister, stackAdjust uint32, entry *asm.Label) *ExceptionSlowPath {
	return &ExceptionSlowPath{scratch: scratch, stackAdjust: stackAdjust, entry: entry}
}

// Entry returns the label branched to by the poll.
func (s *ExceptionSlowPath) Entry() *asm.Label {
	return s.entry
}

// Emit renders the slow path into a at the current position:
//
//	entry:
//	  daddiu sp, sp, stackAdjust      ; only if stackAdjust != 0
//	  move   a0, scratch
//	  ld     t9, deliverException(tr)
//	  jr     t9
//	  nop
//	  break
func (s *ExceptionSlowPath) Emit(a *Assembler) {
	if s.rendered {
		panic(fmt.Errorf("%w: exception slow path at %s", asm.ErrSlowPathRendered, s.entry))
	}
	s.rendered = true

	a.Bind(s.entry)
	if s.stackAdjust != 0 {
		a.DecreaseFrameSize(s.stackAdjust)
	}
	// A0 need not be preserved as delivery does not return.
	a.moveIfDifferent(A0, s.scratch)
	call := a.cfg.callRegister
	a.LoadFromOffset(LoadDoubleword, call, a.cfg.threadRegister, a.cfg.threadOffsets.DeliverExceptionEntrypoint.I32())
	a.Jr(call)
	a.Nop()
	a.Break()
}
