package asm

import (
	"encoding/binary"
	"fmt"
)

// CodeBuffer is a growable byte sequence holding 32-bit instruction words.
//
// Words are appended at the end with AppendUint32 and may be patched later
// in place with Store32, which is how branch fixups are resolved. Positions
// are byte offsets from the start of the buffer and are always multiples of 4.
//
// The zero value is a valid, empty little-endian buffer.
type CodeBuffer struct {
	code  []byte
	order binary.ByteOrder
}

// NewCodeBuffer returns an empty CodeBuffer writing words in the given byte order.
// A nil order means little-endian.
func NewCodeBuffer(order binary.ByteOrder) CodeBuffer {
	return CodeBuffer{order: order}
}

// ByteOrder returns the byte order words are serialized with.
func (b *CodeBuffer) ByteOrder() binary.ByteOrder {
	if b.order == nil {
		return binary.LittleEndian
	}
	return b.order
}

// Size returns the number of bytes written so far, which is also the
// position of the next appended word.
func (b *CodeBuffer) Size() int {
	return len(b.code)
}

// AppendUint32 appends one instruction word.
func (b *CodeBuffer) AppendUint32(w uint32) {
	n := len(b.code)
	if cap(b.code)-n < 4 {
		b.grow(4)
	}
	b.code = b.code[:n+4]
	b.ByteOrder().PutUint32(b.code[n:], w)
}

// Load32 reads back the word at the given position.
func (b *CodeBuffer) Load32(pos int) uint32 {
	b.checkPosition(pos)
	return b.ByteOrder().Uint32(b.code[pos : pos+4])
}

// Store32 overwrites the word at the given position.
func (b *CodeBuffer) Store32(pos int, w uint32) {
	b.checkPosition(pos)
	b.ByteOrder().PutUint32(b.code[pos:pos+4], w)
}

// Bytes returns the written bytes. The returned slice remains valid until
// more words are appended or Reset is called.
func (b *CodeBuffer) Bytes() []byte {
	return b.code
}

// Reset empties the buffer while keeping its capacity for reuse.
func (b *CodeBuffer) Reset() {
	b.code = b.code[:0]
}

func (b *CodeBuffer) checkPosition(pos int) {
	if pos < 0 || pos&3 != 0 || pos+4 > len(b.code) {
		panic(fmt.Errorf("%w: BUG: position %#x is not a word in a buffer of size %#x",
			ErrOperandOutOfRange, pos, len(b.code)))
	}
}

func (b *CodeBuffer) grow(n int) {
	size := cap(b.code)
	want := len(b.code) + n
	if size == 0 {
		size = 256
	}
	for size < want {
		size *= 2
	}
	code := make([]byte, len(b.code), size)
	copy(code, b.code)
	b.code = code
}
