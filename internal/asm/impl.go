package asm

import (
	"fmt"
)

// BaseAssemblerImpl includes code common to all architectures: the code buffer
// and the label allocation.
//
// Note: When possible, add code here instead of in architecture-specific files to reduce drift:
// As this is internal, exporting symbols only to reduce duplication is ok.
type BaseAssemblerImpl struct {
	Buf CodeBuffer

	labels LabelPool
}

// NewBaseAssemblerImpl returns a BaseAssemblerImpl writing words with the given buffer.
func NewBaseAssemblerImpl(buf CodeBuffer) BaseAssemblerImpl {
	return BaseAssemblerImpl{Buf: buf, labels: NewLabelPool()}
}

// NewLabel allocates a fresh unbound label owned by this assembler. It stays valid until ResetBase.
func (a *BaseAssemblerImpl) NewLabel() *Label {
	return a.labels.Allocate()
}

// CodeSize returns the current position of the code buffer.
func (a *BaseAssemblerImpl) CodeSize() int {
	return a.Buf.Size()
}

// CheckLabelsResolved returns ErrUnboundLabel if any label allocated by NewLabel
// still has pending references.
func (a *BaseAssemblerImpl) CheckLabelsResolved() error {
	var pending, refs int
	a.labels.Each(func(l *Label) {
		if l.IsLinked() {
			pending++
			refs += len(l.sites)
		}
	})
	if pending > 0 {
		return fmt.Errorf("%w: %d label(s) with %d pending reference(s)", ErrUnboundLabel, pending, refs)
	}
	return nil
}

// ResetBase empties the code buffer and releases every allocated label.
func (a *BaseAssemblerImpl) ResetBase() {
	a.Buf.Reset()
	a.labels.Reset()
}
