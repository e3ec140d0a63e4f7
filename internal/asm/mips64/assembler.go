package mips64

import (
	"encoding/hex"
	"fmt"

	"github.com/jitkit/mips64/internal/asm"
	"github.com/jitkit/mips64/internal/runtimeapi"
)

// Assembler emits MIPS64 machine code for a single compilation unit.
//
// Every named instruction method appends exactly one word. Pseudo instructions
// (see macro.go) and the calling convention helpers (see abi_*.go) append sequences.
// Invalid operands are programmer errors and panic with an error wrapping one of the
// asm.Err* sentinels; Compile turns those into returned errors.
//
// An Assembler is not safe for concurrent use.
type Assembler struct {
	asm.BaseAssemblerImpl

	cfg Config

	// slowPaths holds the exception slow paths queued by ExceptionPoll and not yet rendered.
	slowPaths []*ExceptionSlowPath
	// relocations holds the absolute jump sites which the loader must patch.
	relocations []Relocation
}

// Relocation is an absolute J or JAL site. Its 26-bit field holds the target as an
// offset from the start of the code, so the loader must add the load address.
type Relocation struct {
	// Offset is the byte position of the jump in the code.
	Offset int
}

// NewAssembler returns an empty Assembler. A nil cfg means NewConfig().
func NewAssembler(cfg *Config) *Assembler {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Assembler{
		BaseAssemblerImpl: asm.NewBaseAssemblerImpl(asm.NewCodeBuffer(cfg.byteOrder)),
		cfg:               *cfg,
	}
}

// Emit appends one raw instruction word.
func (a *Assembler) Emit(w uint32) {
	a.Buf.AppendUint32(w)
}

// Bind binds l to the current position and patches every pending reference to it.
func (a *Assembler) Bind(l *asm.Label) {
	pos := a.CodeSize()
	for _, site := range l.Bind(pos) {
		a.resolveFixup(site, pos)
	}
}

// Relocations returns the absolute jump sites emitted so far.
func (a *Assembler) Relocations() []Relocation {
	return a.relocations
}

// Assemble renders the queued slow paths and returns the finished code.
//
// The returned slice aliases the assembler's buffer and is valid until the next
// emission or Reset.
func (a *Assembler) Assemble() ([]byte, error) {
	a.emitSlowPaths()
	if runtimeapi.UnboundLabelValidationEnabled {
		if err := a.CheckLabelsResolved(); err != nil {
			return nil, err
		}
	}
	code := a.Buf.Bytes()
	if runtimeapi.PrintFinalizedMachineCode {
		fmt.Printf("---- finalized %s code (%d bytes) ----\n%s\n", a.cfg.isa, len(code), hex.EncodeToString(code))
	}
	return code, nil
}

// Reset clears the assembler so that it can be reused for the next unit with the same configuration.
// Labels returned by NewLabel before Reset must not be used afterwards.
func (a *Assembler) Reset() {
	a.ResetBase()
	a.slowPaths = a.slowPaths[:0]
	a.relocations = a.relocations[:0]
}

func (a *Assembler) emitSlowPaths() {
	for _, sp := range a.slowPaths {
		sp.Emit(a)
	}
	a.slowPaths = a.slowPaths[:0]
}

func (a *Assembler) isR6() bool {
	return a.cfg.isa == ISARevision6
}
