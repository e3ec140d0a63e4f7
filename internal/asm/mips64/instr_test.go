package mips64

import (
	"math/bits"
	"testing"

	"github.com/jitkit/mips64/internal/asm"
	"github.com/stretchr/testify/require"
)

type encodingCase struct {
	name string
	emit func(a *Assembler)
	exp  uint32
}

func runEncodingCases(t *testing.T, legacy bool, cases []encodingCase) {
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAssembler(legacy)
			tc.emit(a)
			requireWords(t, a, tc.exp)
		})
	}
}

func TestAssembler_integer(t *testing.T) {
	runEncodingCases(t, false, []encodingCase{
		{name: "addu", emit: func(a *Assembler) { a.Addu(V0, A0, A1) }, exp: 0x00851021},
		{name: "daddu", emit: func(a *Assembler) { a.Daddu(V0, A0, A1) }, exp: 0x0085102d},
		{name: "subu", emit: func(a *Assembler) { a.Subu(V0, A0, A1) }, exp: 0x00851023},
		{name: "dsubu", emit: func(a *Assembler) { a.Dsubu(V0, A0, A1) }, exp: 0x0085102f},
		{name: "addiu", emit: func(a *Assembler) { a.Addiu(V0, A0, 0xffff) }, exp: 0x2482ffff},
		{name: "daddiu", emit: func(a *Assembler) { a.Daddiu(SP, SP, 0xfff0) }, exp: 0x67bdfff0},
		{name: "mul", emit: func(a *Assembler) { a.MulR6(V0, A0, A1) }, exp: 0x00851098},
		{name: "muh", emit: func(a *Assembler) { a.MuhR6(V0, A0, A1) }, exp: 0x008510d8},
		{name: "div", emit: func(a *Assembler) { a.DivR6(V0, A0, A1) }, exp: 0x0085109a},
		{name: "mod", emit: func(a *Assembler) { a.ModR6(V0, A0, A1) }, exp: 0x008510da},
		{name: "divu", emit: func(a *Assembler) { a.DivuR6(V0, A0, A1) }, exp: 0x0085109b},
		{name: "modu", emit: func(a *Assembler) { a.ModuR6(V0, A0, A1) }, exp: 0x008510db},
		{name: "dmul", emit: func(a *Assembler) { a.Dmul(V0, A0, A1) }, exp: 0x0085109c},
		{name: "dmuh", emit: func(a *Assembler) { a.Dmuh(V0, A0, A1) }, exp: 0x008510dc},
		{name: "ddiv", emit: func(a *Assembler) { a.Ddiv(V0, A0, A1) }, exp: 0x0085109e},
		{name: "dmod", emit: func(a *Assembler) { a.Dmod(V0, A0, A1) }, exp: 0x008510de},
		{name: "ddivu", emit: func(a *Assembler) { a.Ddivu(V0, A0, A1) }, exp: 0x0085109f},
		{name: "dmodu", emit: func(a *Assembler) { a.Dmodu(V0, A0, A1) }, exp: 0x008510df},
		{name: "and", emit: func(a *Assembler) { a.And(V0, A0, A1) }, exp: 0x00851024},
		{name: "andi", emit: func(a *Assembler) { a.Andi(V0, A0, 0xff) }, exp: 0x308200ff},
		{name: "or", emit: func(a *Assembler) { a.Or(V0, A0, A1) }, exp: 0x00851025},
		{name: "ori", emit: func(a *Assembler) { a.Ori(V0, A0, 0x1234) }, exp: 0x34821234},
		{name: "xor", emit: func(a *Assembler) { a.Xor(V0, A0, A1) }, exp: 0x00851026},
		{name: "xori", emit: func(a *Assembler) { a.Xori(V0, A0, 0xffff) }, exp: 0x3882ffff},
		{name: "nor", emit: func(a *Assembler) { a.Nor(V0, A0, A1) }, exp: 0x00851027},
		{name: "bitswap", emit: func(a *Assembler) { a.Bitswap(V0, A0) }, exp: 0x7c041020},
		{name: "dbitswap", emit: func(a *Assembler) { a.Dbitswap(V0, A0) }, exp: 0x7c041024},
		{name: "seb", emit: func(a *Assembler) { a.Seb(V0, A0) }, exp: 0x7c041420},
		{name: "seh", emit: func(a *Assembler) { a.Seh(V0, A0) }, exp: 0x7c041620},
		{name: "wsbh", emit: func(a *Assembler) { a.Wsbh(V0, A0) }, exp: 0x7c0410a0},
		{name: "dsbh", emit: func(a *Assembler) { a.Dsbh(V0, A0) }, exp: 0x7c0410a4},
		{name: "dshd", emit: func(a *Assembler) { a.Dshd(V0, A0) }, exp: 0x7c041164},
		{name: "dext 0,32", emit: func(a *Assembler) { a.Dext(V0, A0, 0, 32) }, exp: 0x7c82f803},
		{name: "dext 8,4", emit: func(a *Assembler) { a.Dext(V0, A0, 8, 4) }, exp: 0x7c821a03},
		{name: "sll", emit: func(a *Assembler) { a.Sll(V0, A0, 3) }, exp: 0x000410c0},
		{name: "srl", emit: func(a *Assembler) { a.Srl(V0, A0, 3) }, exp: 0x000410c2},
		{name: "rotr", emit: func(a *Assembler) { a.Rotr(V0, A0, 3) }, exp: 0x002410c2},
		{name: "sra", emit: func(a *Assembler) { a.Sra(V0, A0, 3) }, exp: 0x000410c3},
		{name: "sllv", emit: func(a *Assembler) { a.Sllv(V0, A0, A1) }, exp: 0x00a41004},
		{name: "srlv", emit: func(a *Assembler) { a.Srlv(V0, A0, A1) }, exp: 0x00a41006},
		{name: "rotrv", emit: func(a *Assembler) { a.Rotrv(V0, A0, A1) }, exp: 0x00a41046},
		{name: "srav", emit: func(a *Assembler) { a.Srav(V0, A0, A1) }, exp: 0x00a41007},
		{name: "dsll", emit: func(a *Assembler) { a.Dsll(V0, A0, 3) }, exp: 0x000410f8},
		{name: "dsrl", emit: func(a *Assembler) { a.Dsrl(V0, A0, 3) }, exp: 0x000410fa},
		{name: "drotr", emit: func(a *Assembler) { a.Drotr(V0, A0, 3) }, exp: 0x002410fa},
		{name: "dsra", emit: func(a *Assembler) { a.Dsra(V0, A0, 3) }, exp: 0x000410fb},
		{name: "dsll32", emit: func(a *Assembler) { a.Dsll32(V0, A0, 3) }, exp: 0x000410fc},
		{name: "dsrl32", emit: func(a *Assembler) { a.Dsrl32(V0, A0, 3) }, exp: 0x000410fe},
		{name: "drotr32", emit: func(a *Assembler) { a.Drotr32(V0, A0, 3) }, exp: 0x002410fe},
		{name: "dsra32", emit: func(a *Assembler) { a.Dsra32(V0, A0, 3) }, exp: 0x000410ff},
		{name: "dsllv", emit: func(a *Assembler) { a.Dsllv(V0, A0, A1) }, exp: 0x00a41014},
		{name: "dsrlv", emit: func(a *Assembler) { a.Dsrlv(V0, A0, A1) }, exp: 0x00a41016},
		{name: "drotrv", emit: func(a *Assembler) { a.Drotrv(V0, A0, A1) }, exp: 0x00a41056},
		{name: "dsrav", emit: func(a *Assembler) { a.Dsrav(V0, A0, A1) }, exp: 0x00a41017},
		{name: "lb", emit: func(a *Assembler) { a.Lb(V0, A0, 8) }, exp: 0x80820008},
		{name: "lh", emit: func(a *Assembler) { a.Lh(V0, A0, 8) }, exp: 0x84820008},
		{name: "lw", emit: func(a *Assembler) { a.Lw(V0, A0, 8) }, exp: 0x8c820008},
		{name: "ld", emit: func(a *Assembler) { a.Ld(V0, A0, 8) }, exp: 0xdc820008},
		{name: "lbu", emit: func(a *Assembler) { a.Lbu(V0, A0, 8) }, exp: 0x90820008},
		{name: "lhu", emit: func(a *Assembler) { a.Lhu(V0, A0, 8) }, exp: 0x94820008},
		{name: "lwu", emit: func(a *Assembler) { a.Lwu(V0, A0, 8) }, exp: 0x9c820008},
		{name: "lui", emit: func(a *Assembler) { a.Lui(V0, 0x1234) }, exp: 0x3c021234},
		{name: "dahi", emit: func(a *Assembler) { a.Dahi(V0, 1) }, exp: 0x04460001},
		{name: "dati", emit: func(a *Assembler) { a.Dati(V0, 1) }, exp: 0x045e0001},
		{name: "sync", emit: func(a *Assembler) { a.Sync(0) }, exp: 0x0000000f},
		{name: "sb", emit: func(a *Assembler) { a.Sb(V0, A0, 0xfff8) }, exp: 0xa082fff8},
		{name: "sh", emit: func(a *Assembler) { a.Sh(V0, A0, 0xfff8) }, exp: 0xa482fff8},
		{name: "sw", emit: func(a *Assembler) { a.Sw(V0, A0, 0xfff8) }, exp: 0xac82fff8},
		{name: "sd", emit: func(a *Assembler) { a.Sd(V0, A0, 0xfff8) }, exp: 0xfc82fff8},
		{name: "slt", emit: func(a *Assembler) { a.Slt(V0, A0, A1) }, exp: 0x0085102a},
		{name: "sltu", emit: func(a *Assembler) { a.Sltu(V0, A0, A1) }, exp: 0x0085102b},
		{name: "slti", emit: func(a *Assembler) { a.Slti(V0, A0, 7) }, exp: 0x28820007},
		{name: "sltiu", emit: func(a *Assembler) { a.Sltiu(V0, A0, 7) }, exp: 0x2c820007},
		{name: "seleqz", emit: func(a *Assembler) { a.Seleqz(V0, A0, A1) }, exp: 0x00851035},
		{name: "selnez", emit: func(a *Assembler) { a.Selnez(V0, A0, A1) }, exp: 0x00851037},
		{name: "clz", emit: func(a *Assembler) { a.Clz(V0, A0) }, exp: 0x00801050},
		{name: "clo", emit: func(a *Assembler) { a.Clo(V0, A0) }, exp: 0x00801051},
		{name: "dclz", emit: func(a *Assembler) { a.Dclz(V0, A0) }, exp: 0x00801052},
		{name: "dclo", emit: func(a *Assembler) { a.Dclo(V0, A0) }, exp: 0x00801053},
		{name: "ll", emit: func(a *Assembler) { a.Ll(V0, A0, -4) }, exp: 0x7c82fe36},
		{name: "sc", emit: func(a *Assembler) { a.Sc(V0, A0, -4) }, exp: 0x7c82fe26},
		{name: "lld", emit: func(a *Assembler) { a.Lld(V0, A0, -4) }, exp: 0x7c82fe37},
		{name: "scd", emit: func(a *Assembler) { a.Scd(V0, A0, -4) }, exp: 0x7c82fe27},
		{name: "break", emit: func(a *Assembler) { a.Break() }, exp: 0x0000000d},
		{name: "nop", emit: func(a *Assembler) { a.Nop() }, exp: 0x00000000},
		{name: "move", emit: func(a *Assembler) { a.Move(V0, A0) }, exp: 0x00801025},
		{name: "clear", emit: func(a *Assembler) { a.Clear(V0) }, exp: 0x00001025},
		{name: "not", emit: func(a *Assembler) { a.Not(V0, A0) }, exp: 0x00801027},
	})
}

func TestAssembler_integer_legacy(t *testing.T) {
	runEncodingCases(t, true, []encodingCase{
		{name: "clz", emit: func(a *Assembler) { a.Clz(V0, A0) }, exp: 0x70821020},
		{name: "dclo", emit: func(a *Assembler) { a.Dclo(V0, A0) }, exp: 0x70821025},
		{name: "ll", emit: func(a *Assembler) { a.Ll(V0, A0, -4) }, exp: 0xc082fffc},
		{name: "scd", emit: func(a *Assembler) { a.Scd(V0, A0, -4) }, exp: 0xf082fffc},
		{name: "ll wide offset", emit: func(a *Assembler) { a.Ll(V0, A0, 0x1000) }, exp: 0xc0821000},
		{name: "addu", emit: func(a *Assembler) { a.Addu(V0, A0, A1) }, exp: 0x00851021},
	})
}

func TestAssembler_fpu(t *testing.T) {
	runEncodingCases(t, false, []encodingCase{
		{name: "add.s", emit: func(a *Assembler) { a.AddS(F2, F4, F6) }, exp: 0x46062080},
		{name: "sub.d", emit: func(a *Assembler) { a.SubD(F2, F4, F6) }, exp: 0x46262081},
		{name: "mul.d", emit: func(a *Assembler) { a.MulD(F2, F4, F6) }, exp: 0x46262082},
		{name: "div.s", emit: func(a *Assembler) { a.DivS(F2, F4, F6) }, exp: 0x46062083},
		{name: "sqrt.d", emit: func(a *Assembler) { a.SqrtD(F2, F4) }, exp: 0x46202084},
		{name: "abs.s", emit: func(a *Assembler) { a.AbsS(F2, F4) }, exp: 0x46002085},
		{name: "mov.d", emit: func(a *Assembler) { a.MovD(F2, F4) }, exp: 0x46202086},
		{name: "neg.s", emit: func(a *Assembler) { a.NegS(F2, F4) }, exp: 0x46002087},
		{name: "round.l.d", emit: func(a *Assembler) { a.RoundLD(F2, F4) }, exp: 0x46202088},
		{name: "ceil.w.s", emit: func(a *Assembler) { a.CeilWS(F2, F4) }, exp: 0x4600208e},
		{name: "floor.l.d", emit: func(a *Assembler) { a.FloorLD(F2, F4) }, exp: 0x4620208b},
		{name: "sel.d", emit: func(a *Assembler) { a.SelD(F2, F4, F6) }, exp: 0x46262090},
		{name: "rint.s", emit: func(a *Assembler) { a.RintS(F2, F4) }, exp: 0x4600209a},
		{name: "class.d", emit: func(a *Assembler) { a.ClassD(F2, F4) }, exp: 0x4620209b},
		{name: "min.s", emit: func(a *Assembler) { a.MinS(F2, F4, F6) }, exp: 0x4606209c},
		{name: "max.d", emit: func(a *Assembler) { a.MaxD(F2, F4, F6) }, exp: 0x4626209e},
		{name: "cvt.s.w", emit: func(a *Assembler) { a.Cvtsw(F2, F4) }, exp: 0x468020a0},
		{name: "cvt.d.w", emit: func(a *Assembler) { a.Cvtdw(F2, F4) }, exp: 0x468020a1},
		{name: "cvt.s.d", emit: func(a *Assembler) { a.Cvtsd(F2, F4) }, exp: 0x462020a0},
		{name: "cvt.d.s", emit: func(a *Assembler) { a.Cvtds(F2, F4) }, exp: 0x460020a1},
		{name: "cvt.s.l", emit: func(a *Assembler) { a.Cvtsl(F2, F4) }, exp: 0x46a020a0},
		{name: "cvt.d.l", emit: func(a *Assembler) { a.Cvtdl(F2, F4) }, exp: 0x46a020a1},
		{name: "mfc1", emit: func(a *Assembler) { a.Mfc1(V0, F4) }, exp: 0x44022000},
		{name: "mtc1", emit: func(a *Assembler) { a.Mtc1(V0, F4) }, exp: 0x44822000},
		{name: "dmfc1", emit: func(a *Assembler) { a.Dmfc1(V0, F4) }, exp: 0x44222000},
		{name: "dmtc1", emit: func(a *Assembler) { a.Dmtc1(V0, F4) }, exp: 0x44a22000},
		{name: "lwc1", emit: func(a *Assembler) { a.Lwc1(F2, A0, 8) }, exp: 0xc4820008},
		{name: "ldc1", emit: func(a *Assembler) { a.Ldc1(F2, A0, 8) }, exp: 0xd4820008},
		{name: "swc1", emit: func(a *Assembler) { a.Swc1(F2, A0, 8) }, exp: 0xe4820008},
		{name: "sdc1", emit: func(a *Assembler) { a.Sdc1(F2, A0, 8) }, exp: 0xf4820008},
	})
}

func TestAssembler_branch(t *testing.T) {
	runEncodingCases(t, false, []encodingCase{
		{name: "jalr", emit: func(a *Assembler) { a.Jalr(RA, T9) }, exp: 0x0320f809},
		{name: "jr", emit: func(a *Assembler) { a.Jr(RA) }, exp: 0x03e00009},
		{name: "auipc", emit: func(a *Assembler) { a.Auipc(AT, 0x1234) }, exp: 0xec3e1234},
		{name: "jic", emit: func(a *Assembler) { a.Jic(AT, 0x10) }, exp: 0xd8010010},
		{name: "jialc", emit: func(a *Assembler) { a.Jialc(AT, 0x10) }, exp: 0xf8010010},
		{name: "beq", emit: func(a *Assembler) { a.Beq(A0, A1, 3) }, exp: 0x10850003},
		{name: "bne", emit: func(a *Assembler) { a.Bne(A0, A1, 3) }, exp: 0x14850003},
		{name: "bltz", emit: func(a *Assembler) { a.Bltz(A0, 3) }, exp: 0x04800003},
		{name: "bgez", emit: func(a *Assembler) { a.Bgez(A0, 3) }, exp: 0x04810003},
		{name: "blez", emit: func(a *Assembler) { a.Blez(A0, 3) }, exp: 0x18800003},
		{name: "bgtz", emit: func(a *Assembler) { a.Bgtz(A0, 3) }, exp: 0x1c800003},
		{name: "j", emit: func(a *Assembler) { a.J(0x100) }, exp: 0x08000100},
		{name: "jal", emit: func(a *Assembler) { a.Jal(0x100) }, exp: 0x0c000100},
		{name: "bc", emit: func(a *Assembler) { a.Bc(0x3ffffff) }, exp: 0xcbffffff},
		{name: "balc", emit: func(a *Assembler) { a.Balc(1) }, exp: 0xe8000001},
		{name: "bltc", emit: func(a *Assembler) { a.Bltc(A0, A1, 3) }, exp: 0x5c850003},
		{name: "bltzc", emit: func(a *Assembler) { a.Bltzc(A0, 3) }, exp: 0x5c840003},
		{name: "bgtzc", emit: func(a *Assembler) { a.Bgtzc(A0, 3) }, exp: 0x5c040003},
		{name: "bgec", emit: func(a *Assembler) { a.Bgec(A0, A1, 3) }, exp: 0x58850003},
		{name: "bgezc", emit: func(a *Assembler) { a.Bgezc(A0, 3) }, exp: 0x58840003},
		{name: "blezc", emit: func(a *Assembler) { a.Blezc(A0, 3) }, exp: 0x58040003},
		{name: "bltuc", emit: func(a *Assembler) { a.Bltuc(A0, A1, 3) }, exp: 0x1c850003},
		{name: "bgeuc", emit: func(a *Assembler) { a.Bgeuc(A0, A1, 3) }, exp: 0x18850003},
		{name: "beqc", emit: func(a *Assembler) { a.Beqc(A0, A1, 3) }, exp: 0x20850003},
		{name: "beqc swapped", emit: func(a *Assembler) { a.Beqc(A1, A0, 3) }, exp: 0x20850003},
		{name: "bnec swapped", emit: func(a *Assembler) { a.Bnec(A1, A0, 3) }, exp: 0x60850003},
		{name: "beqzc", emit: func(a *Assembler) { a.Beqzc(A0, 0x1fffff) }, exp: 0xd89fffff},
		{name: "bnezc", emit: func(a *Assembler) { a.Bnezc(A0, 1) }, exp: 0xf8800001},
		{name: "bc1eqz", emit: func(a *Assembler) { a.Bc1eqz(F4, 3) }, exp: 0x45240003},
		{name: "bc1nez", emit: func(a *Assembler) { a.Bc1nez(F4, 3) }, exp: 0x45a40003},
	})
}

func TestAssembler_invalidOperands(t *testing.T) {
	for _, tc := range []struct {
		name   string
		legacy bool
		emit   func(a *Assembler)
		exp    error
	}{
		{name: "gpr", emit: func(a *Assembler) { a.Addu(32, A0, A1) }, exp: asm.ErrOperandOutOfRange},
		{name: "fpr", emit: func(a *Assembler) { a.AddD(F2, 32, F6) }, exp: asm.ErrOperandOutOfRange},
		{name: "shamt", emit: func(a *Assembler) { a.Sll(V0, A0, 32) }, exp: asm.ErrOperandOutOfRange},
		{name: "dext pos", emit: func(a *Assembler) { a.Dext(V0, A0, 32, 1) }, exp: asm.ErrOperandOutOfRange},
		{name: "dext size 0", emit: func(a *Assembler) { a.Dext(V0, A0, 0, 0) }, exp: asm.ErrOperandOutOfRange},
		{name: "dext size 33", emit: func(a *Assembler) { a.Dext(V0, A0, 0, 33) }, exp: asm.ErrOperandOutOfRange},
		{name: "imm21", emit: func(a *Assembler) { a.Beqzc(A0, 1<<21) }, exp: asm.ErrOperandOutOfRange},
		{name: "imm26", emit: func(a *Assembler) { a.Bc(1 << 26) }, exp: asm.ErrOperandOutOfRange},
		{name: "sync stype", emit: func(a *Assembler) { a.Sync(0x20) }, exp: asm.ErrOperandOutOfRange},
		{name: "ll imm9", emit: func(a *Assembler) { a.Ll(V0, A0, 256) }, exp: asm.ErrOperandOutOfRange},
		{name: "beqzc zero", emit: func(a *Assembler) { a.Beqzc(ZERO, 1) }, exp: asm.ErrOperandOutOfRange},
		{name: "beqc same", emit: func(a *Assembler) { a.Beqc(A0, A0, 1) }, exp: asm.ErrOperandOutOfRange},
		{name: "bltc zero", emit: func(a *Assembler) { a.Bltc(ZERO, A0, 1) }, exp: asm.ErrOperandOutOfRange},
		{name: "legacy dmul", legacy: true, emit: func(a *Assembler) { a.Dmul(V0, A0, A1) }, exp: asm.ErrUnsupportedInstruction},
		{name: "legacy bc", legacy: true, emit: func(a *Assembler) { a.Bc(0) }, exp: asm.ErrUnsupportedInstruction},
		{name: "legacy auipc", legacy: true, emit: func(a *Assembler) { a.Auipc(AT, 0) }, exp: asm.ErrUnsupportedInstruction},
		{name: "legacy dahi", legacy: true, emit: func(a *Assembler) { a.Dahi(AT, 0) }, exp: asm.ErrUnsupportedInstruction},
		{name: "legacy sel.s", legacy: true, emit: func(a *Assembler) { a.SelS(F0, F1, F2) }, exp: asm.ErrUnsupportedInstruction},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAssembler(tc.legacy)
			requireFatal(t, tc.exp, func() { tc.emit(a) })
			require.Zero(t, a.CodeSize())
		})
	}
}

func TestFPClassMask(t *testing.T) {
	masks := []FPClassMask{
		FPClassSignalingNaN, FPClassQuietNaN,
		FPClassNegativeInfinity, FPClassNegativeNormal, FPClassNegativeSubnormal, FPClassNegativeZero,
		FPClassPositiveInfinity, FPClassPositiveNormal, FPClassPositiveSubnormal, FPClassPositiveZero,
	}
	var all FPClassMask
	for _, m := range masks {
		require.Equal(t, 1, bits.OnesCount32(uint32(m)), "%#x", m)
		require.Zero(t, all&m, "%#x", m)
		all |= m
	}
	// CLASS writes a 10-bit result.
	require.Equal(t, FPClassMask(0x3ff), all)

	// isNaN = class.d(f4) & (sNaN|qNaN)
	a := newTestAssembler(false)
	a.ClassD(F2, F4)
	a.Mfc1(V0, F2)
	a.Andi(V0, V0, uint16(FPClassSignalingNaN|FPClassQuietNaN))
	requireWords(t, a, 0x4620209b, 0x44021000, 0x30420003)
}
