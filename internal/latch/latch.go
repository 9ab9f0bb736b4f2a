// Package latch defines the four pipeline registers (IF/ID, ID/EX,
// EX/MEM, MEM/WB) and the control bundle that flows through them. Each
// latch is a fixed record with a Valid tag rather than the open-shape
// dictionary the original used — every field access is total, and an
// "empty" (Valid == false) latch behaves as a NOP bubble.
package latch

// Control is the nine-field control bundle produced by the decoder and
// carried alongside an instruction from ID through WB.
type Control struct {
	RegDst    uint8 // 0 selects Rt as the write register, 1 selects Rd.
	ALUSrc    uint8 // 0 selects ReadData2 as ALU input B, 1 selects the immediate.
	MemToReg  uint8 // 0 writes the ALU result to the register file, 1 writes memory data.
	RegWrite  uint8 // 1 enables the register-file write at WB.
	MemRead   uint8 // 1 enables the data-memory read at MEM.
	MemWrite  uint8 // 1 enables the data-memory write at MEM.
	Branch    uint8 // 0 none, 1 branch-if-zero (BEQ), 2 branch-if-not-zero (BNE).
	ALUOp     uint8 // 0 add, 1 sub, 2 R-type (use funct), 3 and, 4 or, 5 slt.
	Jump      uint8 // 1 marks a jump (decoded, not executed).
}

// IFID is the fetch/decode latch.
type IFID struct {
	Valid       bool
	PC          int32
	Instruction uint32
}

// IDEX is the decode/execute latch.
type IDEX struct {
	Valid     bool
	PC        int32
	ReadData1 int32
	ReadData2 int32
	Immediate int32 // sign-extended 16-bit immediate
	Rs        uint8
	Rt        uint8
	Rd        uint8
	Funct     uint8
	Control   Control
}

// EXMEM is the execute/memory latch.
type EXMEM struct {
	Valid        bool
	PC           int32
	ALUResult    int32
	WriteData    int32 // forwarded value destined for a store
	WriteReg     uint8
	ZeroFlag     bool
	BranchOffset int32
	Control      Control
}

// MEMWB is the memory/writeback latch.
type MEMWB struct {
	Valid     bool
	ALUResult int32
	MemData   int32
	WriteReg  uint8
	Control   Control
}
