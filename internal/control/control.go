// Package control decodes an instruction word into the pipeline's
// control bundle and derives the ALU control code from (alu_op, funct).
package control

import (
	"github.com/gopipeline/mips5/internal/alu"
	"github.com/gopipeline/mips5/internal/latch"
)

// Opcodes recognized by the decoder.
const (
	OpRType uint8 = 0x00
	OpBEQ   uint8 = 0x04
	OpBNE   uint8 = 0x05
	OpADDI  uint8 = 0x08
	OpSLTI  uint8 = 0x0A
	OpANDI  uint8 = 0x0C
	OpORI   uint8 = 0x0D
	OpJ     uint8 = 0x02
	OpLW    uint8 = 0x23
	OpSW    uint8 = 0x2B
)

// Function codes recognized for R-type instructions.
const (
	FunctAdd uint8 = 0x20
	FunctSub uint8 = 0x22
	FunctAnd uint8 = 0x24
	FunctOr  uint8 = 0x25
	FunctSlt uint8 = 0x2A
	FunctNor uint8 = 0x27
)

// Fields holds the statically-positioned bit fields of an instruction
// word, decoded once in ID and reused by the later stages.
type Fields struct {
	Opcode    uint8
	Rs        uint8
	Rt        uint8
	Rd        uint8
	Shamt     uint8
	Funct     uint8
	Immediate int32 // sign-extended
}

// Decode extracts the R/I/J-type bit fields from instruction.
func Decode(instruction uint32) Fields {
	imm := int32(int16(instruction & 0xFFFF))
	return Fields{
		Opcode:    uint8(instruction>>26) & 0x3F,
		Rs:        uint8(instruction>>21) & 0x1F,
		Rt:        uint8(instruction>>16) & 0x1F,
		Rd:        uint8(instruction>>11) & 0x1F,
		Shamt:     uint8(instruction>>6) & 0x1F,
		Funct:     uint8(instruction) & 0x3F,
		Immediate: imm,
	}
}

// Signals maps an opcode to the nine-field control bundle. Any opcode
// not listed below decodes to the all-zero bundle (a NOP-like bubble).
func Signals(opcode uint8) latch.Control {
	switch opcode {
	case OpRType:
		return latch.Control{RegDst: 1, RegWrite: 1, ALUOp: 2}
	case OpLW:
		return latch.Control{ALUSrc: 1, MemToReg: 1, RegWrite: 1, MemRead: 1, ALUOp: 0}
	case OpSW:
		return latch.Control{ALUSrc: 1, MemWrite: 1, ALUOp: 0}
	case OpBEQ:
		return latch.Control{Branch: 1, ALUOp: 1}
	case OpBNE:
		return latch.Control{Branch: 2, ALUOp: 1}
	case OpADDI:
		return latch.Control{ALUSrc: 1, RegWrite: 1, ALUOp: 0}
	case OpANDI:
		return latch.Control{ALUSrc: 1, RegWrite: 1, ALUOp: 3}
	case OpORI:
		return latch.Control{ALUSrc: 1, RegWrite: 1, ALUOp: 4}
	case OpSLTI:
		return latch.Control{ALUSrc: 1, RegWrite: 1, ALUOp: 5}
	case OpJ:
		return latch.Control{Jump: 1}
	default:
		return latch.Control{}
	}
}

// ALUControl derives the ALU operation code from the control unit's
// alu_op field and, for R-type instructions, the instruction's funct
// field. Unrecognized combinations default to ADD.
func ALUControl(aluOp, funct uint8) uint8 {
	switch aluOp {
	case 0:
		return alu.ADD
	case 1:
		return alu.SUB
	case 2:
		switch funct {
		case FunctAdd:
			return alu.ADD
		case FunctSub:
			return alu.SUB
		case FunctAnd:
			return alu.AND
		case FunctOr:
			return alu.OR
		case FunctSlt:
			return alu.SLT
		case FunctNor:
			return alu.NOR
		default:
			return alu.ADD
		}
	case 3:
		return alu.AND
	case 4:
		return alu.OR
	case 5:
		return alu.SLT
	default:
		return alu.ADD
	}
}
