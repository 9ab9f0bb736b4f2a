/*
 * mips5 - Five-stage pipeline driver
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package pipeline drives the five pipeline stages against the current
// latch state, computing every stage's next-state candidate before
// committing any of them. Run and Tick are synchronous and single
// threaded: there is no concurrency inside the core.
package pipeline

import (
	"log/slog"

	"github.com/gopipeline/mips5/internal/alu"
	"github.com/gopipeline/mips5/internal/control"
	"github.com/gopipeline/mips5/internal/hazard"
	"github.com/gopipeline/mips5/internal/latch"
	"github.com/gopipeline/mips5/internal/memory"
	"github.com/gopipeline/mips5/internal/regfile"
)

// Stats is the processor's statistics view.
type Stats struct {
	Cycles       int
	Instructions int
	Stalls       int
}

// CPI returns cycles per retired instruction.
func (s Stats) CPI() float64 {
	instr := s.Instructions
	if instr < 1 {
		instr = 1
	}
	return float64(s.Cycles) / float64(instr)
}

// Processor is a complete five-stage pipelined processor instance: its
// own register file, instruction memory, data memory, and the four
// inter-stage latches.
type Processor struct {
	PC int32

	regs     regfile.File
	instrMem *memory.Store
	dataMem  *memory.Store

	ifID  latch.IFID
	idEx  latch.IDEX
	exMem latch.EXMEM
	memWB latch.MEMWB

	cycles       int
	instructions int
	stalls       int

	log *slog.Logger
}

// New constructs a processor with the given instruction/data memory
// sizes in words. A non-positive size uses memory.DefaultWords.
func New(instrWords, dataWords int) *Processor {
	p := &Processor{
		instrMem: memory.New(instrWords),
		dataMem:  memory.New(dataWords),
		log:      slog.Default(),
	}
	p.resetLatches()
	return p
}

// resetLatches puts ID/EX, EX/MEM and MEM/WB into their startup state:
// present but carrying all-zero control, the same way a freshly
// constructed processor's pipeline registers are populated rather than
// genuinely empty. They only become true bubbles once a stall, a NOP, or
// a branch squash clears them during a run; until then the pipeline is
// not considered idle even though nothing meaningful is in flight. IF/ID
// starts genuinely zeroed, since an all-zero instruction word already
// reads as a NOP.
func (p *Processor) resetLatches() {
	p.ifID = latch.IFID{}
	p.idEx = latch.IDEX{Valid: true}
	p.exMem = latch.EXMEM{Valid: true}
	p.memWB = latch.MEMWB{Valid: true}
}

// Reset restores the register file and all four latches to their
// startup state, without resizing or clearing instruction/data memory.
// Statistics counters are also cleared.
func (p *Processor) Reset() {
	p.regs.Reset()
	p.resetLatches()
	p.cycles, p.instructions, p.stalls = 0, 0, 0
}

// SetLogger overrides the logger used for per-stage trace events. A nil
// logger disables tracing.
func (p *Processor) SetLogger(l *slog.Logger) {
	p.log = l
}

func (p *Processor) trace(msg string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.Debug(msg, args...)
}

// LoadProgram places instructions into instruction memory starting at
// startAddr and sets the program counter to startAddr.
func (p *Processor) LoadProgram(instructions []uint32, startAddr int32) {
	p.instrMem.LoadWords(instructions, startAddr)
	p.PC = startAddr
}

// WriteData preloads data memory at byteAddr, for tests and example
// programs that need initial array contents.
func (p *Processor) WriteData(byteAddr int32, value int32) {
	p.dataMem.WriteWord(byteAddr, uint32(value))
}

// ReadData returns the signed word at byteAddr in data memory.
func (p *Processor) ReadData(byteAddr int32) int32 {
	return int32(p.dataMem.ReadWord(byteAddr))
}

// ReadInstruction returns the raw instruction word at byteAddr in
// instruction memory, for disassembly views.
func (p *Processor) ReadInstruction(byteAddr int32) uint32 {
	return p.instrMem.ReadWord(byteAddr)
}

// Registers returns a snapshot of the register file.
func (p *Processor) Registers() [regfile.Count]int32 {
	return p.regs.Snapshot()
}

// DataSnapshot returns a copy of data memory, as signed words.
func (p *Processor) DataSnapshot() []int32 {
	words := p.dataMem.Snapshot()
	out := make([]int32, len(words))
	for i, w := range words {
		out[i] = int32(w)
	}
	return out
}

// Stats returns the current statistics view.
func (p *Processor) Stats() Stats {
	return Stats{Cycles: p.cycles, Instructions: p.instructions, Stalls: p.stalls}
}

// Idle reports whether the pipeline has drained: IF/ID holds instruction
// 0 and the other three latches are empty. An intentionally-fetched NOP
// is indistinguishable from this drained state, by design: programs
// terminate with a trailing run of NOPs.
func (p *Processor) Idle() bool {
	return p.ifID.Instruction == 0 && !p.idEx.Valid && !p.exMem.Valid && !p.memWB.Valid
}

// Run ticks the pipeline until it drains or maxCycles ticks have run,
// whichever comes first. Running zero cycles on an already-idle pipeline
// is a no-op.
func (p *Processor) Run(maxCycles int) {
	for i := 0; i < maxCycles; i++ {
		if p.Idle() {
			return
		}
		p.Tick()
	}
}

// candidates holds the next-state value computed for each latch by this
// tick's stage bodies, before commit.
type candidates struct {
	ifID     latch.IFID
	ifIDSet  bool
	idEx     latch.IDEX
	exMem    latch.EXMEM
	mem      latch.MEMWB
	branch   bool
	branchPC int32
}

// Tick computes one clock cycle: all five stage bodies run against the
// current latch state, then their candidates are committed atomically.
func (p *Processor) Tick() {
	p.cycles++

	stall := hazard.ShouldStall(p.idEx, p.ifID)

	var c candidates
	p.writebackBody()
	c.mem, c.branch, c.branchPC = p.memoryBody()
	c.exMem = p.executeBody()
	c.idEx = p.decodeBody(stall)
	c.ifID, c.ifIDSet = p.fetchBody(stall)

	p.commit(c)
}

// writebackBody retires the instruction in MEM/WB, if any.
func (p *Processor) writebackBody() {
	if !p.memWB.Valid || p.memWB.Control.RegWrite == 0 {
		return
	}
	value := p.memWB.ALUResult
	if p.memWB.Control.MemToReg == 1 {
		value = p.memWB.MemData
	}
	p.regs.Write(p.memWB.WriteReg, value)
	p.instructions++
	p.trace("writeback", "reg", p.memWB.WriteReg, "value", value)
}

// memoryBody performs the optional data memory access for EX/MEM and
// evaluates whether its branch, if any, is taken.
func (p *Processor) memoryBody() (next latch.MEMWB, branchTaken bool, branchTarget int32) {
	if !p.exMem.Valid {
		return latch.MEMWB{}, false, 0
	}

	ctl := p.exMem.Control
	var memData int32
	if ctl.MemRead == 1 {
		memData = p.ReadData(p.exMem.ALUResult)
		p.trace("memory read", "addr", p.exMem.ALUResult, "data", memData)
	}
	if ctl.MemWrite == 1 {
		p.WriteData(p.exMem.ALUResult, p.exMem.WriteData)
		p.trace("memory write", "addr", p.exMem.ALUResult, "data", p.exMem.WriteData)
	}

	if ctl.Branch == 1 && p.exMem.ZeroFlag || ctl.Branch == 2 && !p.exMem.ZeroFlag {
		branchTaken = true
		branchTarget = p.exMem.PC + 4 + (p.exMem.BranchOffset << 2)
		p.trace("branch taken", "target", branchTarget)
	}

	return latch.MEMWB{
		Valid:     true,
		ALUResult: p.exMem.ALUResult,
		MemData:   memData,
		WriteReg:  p.exMem.WriteReg,
		Control:   ctl,
	}, branchTaken, branchTarget
}

// executeBody drives the ALU for ID/EX, with forwarding for both operand
// slots and for the store-data path.
func (p *Processor) executeBody() latch.EXMEM {
	if !p.idEx.Valid {
		return latch.EXMEM{}
	}

	ctl := p.idEx.Control

	aluA := p.idEx.ReadData1
	if src := hazard.Forward(p.idEx.Rs, p.exMem, p.memWB); src != hazard.None {
		aluA = hazard.Resolve(src, p.exMem, p.memWB)
	}

	forwardedB := p.idEx.ReadData2
	if src := hazard.Forward(p.idEx.Rt, p.exMem, p.memWB); src != hazard.None {
		forwardedB = hazard.Resolve(src, p.exMem, p.memWB)
	}

	aluB := forwardedB
	if ctl.ALUSrc == 1 {
		aluB = p.idEx.Immediate
	}

	aluOp := control.ALUControl(ctl.ALUOp, p.idEx.Funct)
	result, zero := alu.Execute(aluA, aluB, aluOp)

	writeReg := p.idEx.Rt
	if ctl.RegDst == 1 {
		writeReg = p.idEx.Rd
	}

	p.trace("execute", "a", aluA, "b", aluB, "result", result)

	return latch.EXMEM{
		Valid:        true,
		PC:           p.idEx.PC,
		ALUResult:    result,
		WriteData:    forwardedB,
		WriteReg:     writeReg,
		ZeroFlag:     zero,
		BranchOffset: p.idEx.Immediate,
		Control:      ctl,
	}
}

// decodeBody extracts fields from IF/ID, reads the register file, and
// decodes controls. When stalled it emits an empty ID/EX candidate
// instead, freezing the load-use hazard for one cycle.
func (p *Processor) decodeBody(stall bool) latch.IDEX {
	if stall {
		p.stalls++
		p.trace("decode stalled")
		return latch.IDEX{}
	}

	if p.ifID.Instruction == 0 {
		return latch.IDEX{}
	}

	fields := control.Decode(p.ifID.Instruction)
	ctl := control.Signals(fields.Opcode)

	p.trace("decode", "opcode", fields.Opcode, "rs", fields.Rs, "rt", fields.Rt)

	return latch.IDEX{
		Valid:     true,
		PC:        p.ifID.PC,
		ReadData1: p.regs.Read(fields.Rs),
		ReadData2: p.regs.Read(fields.Rt),
		Immediate: fields.Immediate,
		Rs:        fields.Rs,
		Rt:        fields.Rt,
		Rd:        fields.Rd,
		Funct:     fields.Funct,
		Control:   ctl,
	}
}

// fetchBody reads instruction memory at PC and advances PC, unless
// stalled, in which case it returns no candidate and the existing IF/ID
// contents and PC are held.
func (p *Processor) fetchBody(stall bool) (next latch.IFID, emit bool) {
	if stall {
		p.trace("fetch held")
		return latch.IFID{}, false
	}

	instruction := p.instrMem.ReadWord(p.PC)
	next = latch.IFID{Valid: true, PC: p.PC, Instruction: instruction}
	p.trace("fetch", "pc", p.PC, "instruction", instruction)
	p.PC += 4
	return next, true
}

// commit atomically applies this tick's candidates to the four latches
// and, on a taken branch, redirects PC and squashes the three
// speculatively fetched instructions still in flight.
func (p *Processor) commit(c candidates) {
	if c.branch {
		p.PC = c.branchPC
		p.ifID = latch.IFID{}
		p.idEx = latch.IDEX{}
		p.exMem = latch.EXMEM{}
	} else {
		if c.ifIDSet {
			p.ifID = c.ifID
		}
		p.idEx = c.idEx
		p.exMem = c.exMem
	}
	p.memWB = c.mem
}
