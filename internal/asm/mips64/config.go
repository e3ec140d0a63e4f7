package mips64

import (
	"encoding/binary"

	"github.com/jitkit/mips64/internal/runtimeapi"
)

// Config controls emission, with the default implementation as NewConfig.
//
// Well-known registers and runtime offsets are resolved from here when an
// Assembler is constructed, so tests can substitute alternate layouts.
type Config struct {
	isa                    ISARevision
	byteOrder              binary.ByteOrder
	scratch                GpuRegister
	threadRegister         GpuRegister
	callRegister           GpuRegister
	threadOffsets          runtimeapi.ThreadOffsetData
	heapReferencePoisoning bool
}

// defaultConfig helps avoid copy/pasting the wrong defaults.
var defaultConfig = &Config{
	isa:            ISARevision6,
	byteOrder:      binary.LittleEndian,
	scratch:        AT,
	threadRegister: S1,
	callRegister:   T9,
	threadOffsets:  runtimeapi.DefaultThreadOffsets,
}

// clone ensures all fields are copied even if nil.
func (c *Config) clone() *Config {
	ret := *c
	return &ret
}

// NewConfig returns the default configuration: MIPS64 R6, little-endian (mips64el),
// AT as scratch, S1 as thread register and T9 as the indirect call register.
func NewConfig() *Config {
	return defaultConfig.clone()
}

// WithISARevision selects between the R6 and pre-R6 encodings. Defaults to ISARevision6.
func (c *Config) WithISARevision(isa ISARevision) *Config {
	ret := c.clone()
	ret.isa = isa
	return ret
}

// WithByteOrder sets the byte order of emitted words. Defaults to binary.LittleEndian if nil.
func (c *Config) WithByteOrder(order binary.ByteOrder) *Config {
	if order == nil {
		order = binary.LittleEndian
	}
	ret := c.clone()
	ret.byteOrder = order
	return ret
}

// WithScratchRegister sets the register clobbered by pseudo-instructions which need
// to materialize an out of range offset. Defaults to AT.
func (c *Config) WithScratchRegister(r GpuRegister) *Config {
	checkGpr(r)
	ret := c.clone()
	ret.scratch = r
	return ret
}

// WithThreadRegister sets the register holding the current thread pointer. Defaults to S1.
func (c *Config) WithThreadRegister(r GpuRegister) *Config {
	checkGpr(r)
	ret := c.clone()
	ret.threadRegister = r
	return ret
}

// WithCallRegister sets the register used to jump to runtime entrypoints. Defaults to T9,
// which the n64 ABI expects to hold the callee address for position independent code.
func (c *Config) WithCallRegister(r GpuRegister) *Config {
	checkGpr(r)
	ret := c.clone()
	ret.callRegister = r
	return ret
}

// WithThreadOffsets replaces the layout of the runtime's thread structure.
// Defaults to runtimeapi.DefaultThreadOffsets.
func (c *Config) WithThreadOffsets(offsets runtimeapi.ThreadOffsetData) *Config {
	ret := c.clone()
	ret.threadOffsets = offsets
	return ret
}

// WithHeapReferencePoisoning makes reference loads which request it unpoison the
// loaded value by negation. Defaults to false.
func (c *Config) WithHeapReferencePoisoning(enabled bool) *Config {
	ret := c.clone()
	ret.heapReferencePoisoning = enabled
	return ret
}

// ISARevision returns the configured ISA revision.
func (c *Config) ISARevision() ISARevision {
	return c.isa
}

// ByteOrder returns the configured byte order.
func (c *Config) ByteOrder() binary.ByteOrder {
	return c.byteOrder
}

// ScratchRegister returns the configured scratch register.
func (c *Config) ScratchRegister() GpuRegister {
	return c.scratch
}

// ThreadRegister returns the configured thread register.
func (c *Config) ThreadRegister() GpuRegister {
	return c.threadRegister
}
