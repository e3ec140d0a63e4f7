package mips64

import (
	"fmt"
	"math"

	"github.com/jitkit/mips64/internal/asm"
	"github.com/jitkit/mips64/internal/runtimeapi"
)

const (
	// fixupR6Branch16 is a compact branch with a 16-bit word displacement from PC+4.
	fixupR6Branch16 asm.FixupKind = iota
	// fixupR6Branch21 is BEQZC/BNEZC with a 21-bit word displacement from PC+4.
	fixupR6Branch21
	// fixupR6Branch26 is BC/BALC with a 26-bit word displacement from PC+4.
	fixupR6Branch26
	// fixupLegacyBranch16 is a delay slot branch with a 16-bit word displacement from the delay slot.
	fixupLegacyBranch16
	// fixupAuipcPair is AUIPC followed by JIC or JIALC. The byte displacement from the
	// AUIPC is split into both immediates.
	fixupAuipcPair
	// fixupJump26 is J/JAL holding bits 27..2 of the target offset from the start of the code.
	fixupJump26
)

type fixupEncoding struct {
	name string
	// bits is the width of the displacement field.
	bits uint
	// base is the distance from the site to the address the displacement is relative to.
	base int
}

var fixupEncodings = [...]fixupEncoding{
	fixupR6Branch16:     {name: "r6-branch16", bits: 16, base: 4},
	fixupR6Branch21:     {name: "r6-branch21", bits: 21, base: 4},
	fixupR6Branch26:     {name: "r6-branch26", bits: 26, base: 4},
	fixupLegacyBranch16: {name: "legacy-branch16", bits: 16, base: 4},
	fixupAuipcPair:      {name: "auipc-pair", bits: 32, base: 0},
	fixupJump26:         {name: "jump26", bits: 26, base: 0},
}

// maxJumpTarget is the size of the 256MiB region a J/JAL can reach.
const maxJumpTarget = 1 << 28

// reference makes the instruction at pos refer to l: it is patched right away
// if l is bound, and recorded as a pending site otherwise.
func (a *Assembler) reference(pos int, l *asm.Label, kind asm.FixupKind) {
	if l.IsBound() {
		a.resolveFixup(asm.FixupSite{Position: pos, Kind: kind}, l.Position())
	} else {
		l.AddFixup(pos, kind)
	}
}

// resolveFixup patches the site so that it transfers control to target.
func (a *Assembler) resolveFixup(site asm.FixupSite, target int) {
	enc := fixupEncodings[site.Kind]
	pos := site.Position
	switch site.Kind {
	case fixupAuipcPair:
		off := int64(target - (pos + enc.base))
		// The high half is rounded so that the sign extended low half compensates.
		if off < math.MinInt32 || off+0x8000 > math.MaxInt32 {
			panic(fixupOverflow(enc, pos, target, off))
		}
		hi, lo := splitAuipcOffset(int32(off))
		a.patchField(pos, uint32(hi), 16)
		a.patchField(pos+4, uint32(lo), 16)
	case fixupJump26:
		if target < 0 || target >= maxJumpTarget {
			panic(fixupOverflow(enc, pos, target, int64(target)))
		}
		a.patchField(pos, uint32(target)>>2, enc.bits)
	default:
		diff := int64(target - (pos + enc.base))
		if diff&3 != 0 {
			panic(fmt.Sprintf("BUG: branch at %#x to unaligned target %#x", pos, target))
		}
		disp := diff >> 2
		if disp < -(1<<(enc.bits-1)) || disp > 1<<(enc.bits-1)-1 {
			panic(fixupOverflow(enc, pos, target, disp))
		}
		a.patchField(pos, uint32(disp), enc.bits)
	}
	if runtimeapi.PrintFixupResolution {
		fmt.Printf("fixup %s at %#x -> %#x: %08x\n", enc.name, pos, target, a.Buf.Load32(pos))
	}
}

// patchField overwrites the low bits of the word at pos with v.
func (a *Assembler) patchField(pos int, v uint32, bits uint) {
	mask := uint32(1)<<bits - 1
	w := a.Buf.Load32(pos)
	a.Buf.Store32(pos, w&^mask|v&mask)
}

// splitAuipcOffset splits a byte offset into the AUIPC and JIC/JIALC immediates.
// JIC sign extends its immediate, so the high half absorbs the borrow.
func splitAuipcOffset(off int32) (hi, lo uint16) {
	return uint16((int64(off) + 0x8000) >> 16), uint16(off)
}

func fixupOverflow(enc fixupEncoding, pos, target int, disp int64) error {
	return fmt.Errorf("%w: %s at %#x cannot reach %#x (displacement %d)", asm.ErrFixupOverflow, enc.name, pos, target, disp)
}
