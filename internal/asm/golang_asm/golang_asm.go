package golang_asm

import (
	"fmt"

	goasm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/mips"
)

// Mips64Builder assembles golang-asm programs for mips64le.
//
// The emitter does not use it to produce code: it serves as an independent
// reference encoder so that tests can compare our words against the Go
// toolchain's for the instruction forms both sides support.
// Only single-word instruction forms may be added.
type Mips64Builder struct {
	b     *goasm.Builder
	words int
}

// NewMips64Builder returns a builder with an empty text symbol.
func NewMips64Builder() (*Mips64Builder, error) {
	b, err := goasm.NewBuilder("mips64le", 64)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new assembly builder: %w", err)
	}
	// The first instruction is consumed as the function header by the mips backend.
	text := b.NewProg()
	text.As = obj.ATEXT
	text.To.Type = obj.TYPE_TEXTSIZE
	b.AddInstruction(text)
	return &Mips64Builder{b: b}, nil
}

// Add appends an instruction with the given operands. reg is the optional middle
// register operand (obj.REG_NONE when absent).
func (m *Mips64Builder) Add(as obj.As, from obj.Addr, reg int16, to obj.Addr) {
	p := m.b.NewProg()
	p.As = as
	p.From = from
	p.Reg = reg
	p.To = to
	m.b.AddInstruction(p)
	m.words++
}

// Assemble returns the machine code of the added instructions, without the
// trailing function alignment padding.
func (m *Mips64Builder) Assemble() ([]byte, error) {
	code := m.b.Assemble()
	if len(code) < 4*m.words {
		return nil, fmt.Errorf("golang-asm produced %d bytes for %d instructions", len(code), m.words)
	}
	return code[:4*m.words], nil
}

// GPR returns the golang-asm register for the general purpose register n.
func GPR(n byte) int16 {
	return mips.REG_R0 + int16(n)
}

// FPR returns the golang-asm register for the floating point register n.
func FPR(n byte) int16 {
	return mips.REG_F0 + int16(n)
}

// Reg returns a register operand.
func Reg(r int16) obj.Addr {
	return obj.Addr{Type: obj.TYPE_REG, Reg: r}
}

// Const returns an immediate operand.
func Const(v int64) obj.Addr {
	return obj.Addr{Type: obj.TYPE_CONST, Offset: v}
}

// Mem returns a base+offset memory operand.
func Mem(base int16, offset int64) obj.Addr {
	return obj.Addr{Type: obj.TYPE_MEM, Reg: base, Offset: offset}
}
