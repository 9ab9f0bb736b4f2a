package pipeline

import "testing"

// Minimal instruction encoders, local to the test package: they exist
// only to build short programs for the scenarios below.

const (
	opRType = 0x00
	opADDI  = 0x08
	opLW    = 0x23
	opSW    = 0x2B
	opBEQ   = 0x04

	functAdd = 0x20
)

func rType(rs, rt, rd, funct uint8) uint32 {
	return uint32(opRType)<<26 | uint32(rs)<<21 | uint32(rt)<<16 | uint32(rd)<<11 | uint32(funct)
}

func iType(opcode, rs, rt uint8, imm int16) uint32 {
	return uint32(opcode)<<26 | uint32(rs)<<21 | uint32(rt)<<16 | uint32(uint16(imm))
}

func addi(rt, rs uint8, imm int16) uint32 { return iType(opADDI, rs, rt, imm) }
func add(rd, rs, rt uint8) uint32         { return rType(rs, rt, rd, functAdd) }
func lw(rt, rs uint8, imm int16) uint32   { return iType(opLW, rs, rt, imm) }
func sw(rt, rs uint8, imm int16) uint32   { return iType(opSW, rs, rt, imm) }
func beq(rs, rt uint8, imm int16) uint32  { return iType(opBEQ, rs, rt, imm) }

const (
	zero uint8 = 0
	t0   uint8 = 8
	t1   uint8 = 9
	t2   uint8 = 10
	t3   uint8 = 11
	t4   uint8 = 12
)

func newTestProcessor() *Processor {
	p := New(256, 256)
	p.SetLogger(nil)
	return p
}

func TestArithmeticProgram(t *testing.T) {
	p := newTestProcessor()
	program := []uint32{
		addi(t0, zero, 5),
		addi(t1, zero, 3),
		add(t2, t0, t1),
		0, 0, 0,
	}
	p.LoadProgram(program, 0)
	p.Run(20)

	regs := p.Registers()
	if regs[t0] != 5 || regs[t1] != 3 || regs[t2] != 8 {
		t.Errorf("registers got: t0=%d t1=%d t2=%d expected: t0=5 t1=3 t2=8", regs[t0], regs[t1], regs[t2])
	}
}

func TestLoadStoreProgramStalls(t *testing.T) {
	p := newTestProcessor()
	p.WriteData(0, 42)
	program := []uint32{
		lw(t0, zero, 0),
		addi(t1, t0, 10),
		sw(t1, zero, 8),
		0, 0, 0,
	}
	p.LoadProgram(program, 0)
	p.Run(20)

	regs := p.Registers()
	if regs[t0] != 42 {
		t.Errorf("t0 got: %d expected: 42", regs[t0])
	}
	if regs[t1] != 52 {
		t.Errorf("t1 got: %d expected: 52", regs[t1])
	}
	if got := p.ReadData(8); got != 52 {
		t.Errorf("data[8] got: %d expected: 52", got)
	}
	if p.Stats().Stalls < 1 {
		t.Errorf("stalls got: %d expected: >= 1", p.Stats().Stalls)
	}
}

func TestBranchTakenSkipsInstructions(t *testing.T) {
	p := newTestProcessor()
	program := []uint32{
		addi(t0, zero, 5),
		addi(t1, zero, 5),
		beq(t0, t1, 2),
		addi(t2, zero, 99),
		addi(t3, zero, 88),
		addi(t4, zero, 77),
		0, 0, 0,
	}
	p.LoadProgram(program, 0)
	p.Run(30)

	regs := p.Registers()
	if regs[t2] != 0 || regs[t3] != 0 {
		t.Errorf("registers got: t2=%d t3=%d expected: t2=0 t3=0", regs[t2], regs[t3])
	}
	if regs[t4] != 77 {
		t.Errorf("t4 got: %d expected: 77", regs[t4])
	}
}

func TestForwardingChainNoStalls(t *testing.T) {
	p := newTestProcessor()
	program := []uint32{
		addi(t0, zero, 10),
		addi(t1, t0, 5),
		add(t2, t0, t1),
		0, 0, 0,
	}
	p.LoadProgram(program, 0)
	p.Run(20)

	regs := p.Registers()
	if regs[t0] != 10 || regs[t1] != 15 || regs[t2] != 25 {
		t.Errorf("registers got: t0=%d t1=%d t2=%d expected: t0=10 t1=15 t2=25", regs[t0], regs[t1], regs[t2])
	}
	if p.Stats().Stalls != 0 {
		t.Errorf("stalls got: %d expected: 0", p.Stats().Stalls)
	}
}

func TestRegisterZeroNeverWritten(t *testing.T) {
	p := newTestProcessor()
	program := []uint32{
		addi(zero, zero, 99),
		0, 0, 0,
	}
	p.LoadProgram(program, 0)
	p.Run(20)

	if got := p.Registers()[zero]; got != 0 {
		t.Errorf("register zero got: %d expected: 0", got)
	}
}

func TestRunOnIdlePipelineIsNoOp(t *testing.T) {
	p := newTestProcessor()
	p.LoadProgram([]uint32{0, 0, 0}, 0)
	p.Run(10)
	before := p.Stats()

	p.Run(10)
	after := p.Stats()

	if before != after {
		t.Errorf("stats changed on idle pipeline: before=%+v after=%+v", before, after)
	}
}

func TestLoadUseStallAddsExactlyOneCycleAndStall(t *testing.T) {
	withNop := newTestProcessor()
	withNop.WriteData(0, 7)
	withNop.LoadProgram([]uint32{
		lw(t0, zero, 0),
		0,
		addi(t1, t0, 1),
		0, 0, 0,
	}, 0)
	withNop.Run(30)

	withoutNop := newTestProcessor()
	withoutNop.WriteData(0, 7)
	withoutNop.LoadProgram([]uint32{
		lw(t0, zero, 0),
		addi(t1, t0, 1),
		0, 0, 0,
	}, 0)
	withoutNop.Run(30)

	if withNop.Registers()[t1] != 8 || withoutNop.Registers()[t1] != 8 {
		t.Errorf("t1 got: with_nop=%d without_nop=%d expected: 8", withNop.Registers()[t1], withoutNop.Registers()[t1])
	}
	if withoutNop.Stats().Stalls != 1 {
		t.Errorf("stalls without explicit nop got: %d expected: 1", withoutNop.Stats().Stalls)
	}
	if withNop.Stats().Stalls != 0 {
		t.Errorf("stalls with explicit nop got: %d expected: 0", withNop.Stats().Stalls)
	}
	if withoutNop.Stats().Cycles != withNop.Stats().Cycles {
		t.Errorf("cycles got: with_nop=%d without_nop=%d expected: equal (the automatic stall bubble and the explicit nop cost the same cycle)", withNop.Stats().Cycles, withoutNop.Stats().Cycles)
	}
}

func TestResetRestoresStartupLatchesAndClearsStats(t *testing.T) {
	p := newTestProcessor()
	p.LoadProgram([]uint32{
		addi(t0, zero, 5),
		0, 0, 0,
	}, 0)
	p.Run(20)

	p.Reset()

	if stats := p.Stats(); stats != (Stats{}) {
		t.Errorf("stats after reset got: %+v expected: zero value", stats)
	}
	if p.Idle() {
		t.Errorf("Idle() got: true expected: false immediately after reset")
	}
	if got := p.Registers()[t0]; got != 0 {
		t.Errorf("t0 after reset got: %d expected: 0", got)
	}
}
