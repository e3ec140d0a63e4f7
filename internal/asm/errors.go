package asm

import "errors"

// Fatal emission errors. Assemblers panic with one of these wrapped via %w since
// every one of them is a bug in the caller. See mips64.Compile for the recovering entry point.
var (
	// ErrOperandOutOfRange is raised when a register number, immediate, shift amount or
	// offset does not fit the instruction field it is encoded into.
	ErrOperandOutOfRange = errors.New("operand out of range")
	// ErrFixupOverflow is raised when a resolved branch displacement does not fit its field.
	ErrFixupOverflow = errors.New("branch displacement overflow")
	// ErrLabelAlreadyBound is raised when a label is bound twice.
	ErrLabelAlreadyBound = errors.New("label already bound")
	// ErrSlowPathRendered is raised when a slow path is emitted more than once.
	ErrSlowPathRendered = errors.New("slow path already rendered")
	// ErrOperandShape is raised on a wrong managed register kind, an unsupported size,
	// aliasing of a scratch register, or a malformed frame.
	ErrOperandShape = errors.New("invalid operand shape")
	// ErrUnsupportedInstruction is raised when an instruction does not exist in the
	// configured ISA revision.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	// ErrUnboundLabel is returned (not raised) when labels still have pending references at assembly time.
	ErrUnboundLabel = errors.New("unbound label")
)

// IsFatal reports whether err wraps one of the fatal emission errors above.
func IsFatal(err error) bool {
	for _, e := range []error{
		ErrOperandOutOfRange, ErrFixupOverflow, ErrLabelAlreadyBound,
		ErrSlowPathRendered, ErrOperandShape, ErrUnsupportedInstruction,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
