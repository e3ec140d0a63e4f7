package runtimeapi

// DefaultThreadOffsets is the thread layout used when the assembler is not
// configured with another one. The runtime owns the thread structure and must
// keep this table in sync with it.
var DefaultThreadOffsets = ThreadOffsetData{
	Exception:                  8,
	DeliverExceptionEntrypoint: 512,
}

// ThreadOffsetData allows the emitter to get the offsets of the runtime's thread fields
// which are necessary for compiling exception polls and thread transfers.
type ThreadOffsetData struct {
	// Exception is an offset of the pending exception slot. Non-zero means an exception is pending.
	Exception ThreadOffset
	// DeliverExceptionEntrypoint is an offset of the entrypoint which delivers the pending exception
	// and never returns.
	DeliverExceptionEntrypoint ThreadOffset
}

// FrameOffset is a byte offset relative to the stack pointer of the current frame.
type FrameOffset int32

// I32 encodes a FrameOffset as int32 for convenience.
func (o FrameOffset) I32() int32 {
	return int32(o)
}

// ThreadOffset is a byte offset relative to the thread register.
type ThreadOffset int32

// I32 encodes a ThreadOffset as int32 for convenience.
func (o ThreadOffset) I32() int32 {
	return int32(o)
}

// MemberOffset is a byte offset of a field within a heap object.
type MemberOffset int32

// I32 encodes a MemberOffset as int32 for convenience.
func (o MemberOffset) I32() int32 {
	return int32(o)
}

// Offset is a plain byte offset from an arbitrary base register.
type Offset int32

// I32 encodes an Offset as int32 for convenience.
func (o Offset) I32() int32 {
	return int32(o)
}
