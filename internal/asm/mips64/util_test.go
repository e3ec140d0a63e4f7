package mips64

import (
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestAssembler returns an assembler with the default configuration, or the
// legacy revision if legacy is set.
func newTestAssembler(legacy bool) *Assembler {
	cfg := NewConfig()
	if legacy {
		cfg = cfg.WithISARevision(ISARevision2)
	}
	return NewAssembler(cfg)
}

// words returns the code emitted so far as instruction words.
func words(a *Assembler) []uint32 {
	code := a.Buf.Bytes()
	order := a.Buf.ByteOrder()
	ret := make([]uint32, len(code)/4)
	for i := range ret {
		ret[i] = order.Uint32(code[4*i:])
	}
	return ret
}

// requireWords fails unless the assembler emitted exactly exp.
func requireWords(t *testing.T, a *Assembler, exp ...uint32) {
	t.Helper()
	require.Equal(t, hexWords(exp), hexWords(words(a)))
}

func hexWords(ws []uint32) string {
	var sb strings.Builder
	for i, w := range ws {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08x", w)
	}
	return sb.String()
}

// requireFatal fails unless fn panics with an error wrapping target.
func requireFatal(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// machine interprets the subset of instructions emitted by the constant and
// arithmetic pseudo instructions.
type machine struct {
	regs [NumberOfGpuRegisters]uint64
}

func sext32(v uint32) uint64 { return uint64(int64(int32(v))) }

func (m *machine) set(r uint32, v uint64) {
	if r != 0 {
		m.regs[r] = v
	}
}

func (m *machine) run(t *testing.T, code []uint32) {
	t.Helper()
	for _, w := range code {
		op, rs, rt, rd, sa := w>>26, w>>21&31, w>>16&31, w>>11&31, w>>6&31
		simm := uint64(int64(int16(w)))
		switch op {
		case 0x09: // addiu
			m.set(rt, sext32(uint32(m.regs[rs])+uint32(simm)))
		case 0x19: // daddiu
			m.set(rt, m.regs[rs]+simm)
		case 0x0d: // ori
			m.set(rt, m.regs[rs]|uint64(uint16(w)))
		case 0x0f: // lui
			m.set(rt, sext32(uint32(uint16(w))<<16))
		case opRegimm:
			switch rt {
			case 0x06: // dahi
				m.set(rs, m.regs[rs]+simm<<32)
			case 0x1e: // dati
				m.set(rs, m.regs[rs]+simm<<48)
			default:
				t.Fatalf("unexpected regimm %08x", w)
			}
		case opSpecial:
			switch w & 0x3f {
			case 0x21: // addu
				m.set(rd, sext32(uint32(m.regs[rs])+uint32(m.regs[rt])))
			case 0x2d: // daddu
				m.set(rd, m.regs[rs]+m.regs[rt])
			case 0x38: // dsll
				m.set(rd, m.regs[rt]<<sa)
			case 0x3c: // dsll32
				m.set(rd, m.regs[rt]<<(sa+32))
			case 0x3a: // dsrl
				m.set(rd, m.regs[rt]>>sa)
			case 0x3e: // dsrl32
				m.set(rd, m.regs[rt]>>(sa+32))
			default:
				t.Fatalf("unexpected special %08x", w)
			}
		default:
			t.Fatalf("unexpected opcode %08x", w)
		}
	}
}

func TestWords_byteOrder(t *testing.T) {
	a := NewAssembler(NewConfig().WithByteOrder(binary.BigEndian))
	a.Emit(0x03e00009)
	require.Equal(t, []byte{0x03, 0xe0, 0x00, 0x09}, a.Buf.Bytes())
	require.Equal(t, []uint32{0x03e00009}, words(a))
}
