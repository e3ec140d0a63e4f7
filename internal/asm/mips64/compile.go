package mips64

import (
	"errors"

	"github.com/jitkit/mips64/internal/asm"
)

// Compile runs fn against a fresh Assembler configured by cfg and returns the
// assembled code. Fatal emission errors raised by fn or by assembly are returned
// instead of panicking. Any other panic propagates.
func Compile(cfg *Config, fn func(a *Assembler)) (code []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !asm.IsFatal(e) {
				panic(r)
			}
			code, err = nil, e
		}
	}()

	a := NewAssembler(cfg)
	fn(a)
	code, err = a.Assemble()
	if err != nil {
		return nil, err
	}
	// Detach the result from the assembler's buffer.
	return append([]byte(nil), code...), nil
}

// IsUnboundLabel reports whether err was returned because a label was never bound.
func IsUnboundLabel(err error) bool {
	return errors.Is(err, asm.ErrUnboundLabel)
}
