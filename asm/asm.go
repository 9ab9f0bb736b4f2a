/*
 * mips5 - Assembler helpers
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

// Package asm builds MIPS instruction words by hand, for tests and
// example programs that would otherwise need a full assembler.
package asm

import "github.com/gopipeline/mips5/internal/control"

// Registers maps the conventional MIPS register mnemonics to their
// indices, for callers that want names instead of bare numbers.
var Registers = map[string]uint8{
	"zero": 0, "at": 1,
	"v0": 2, "v1": 3,
	"a0": 4, "a1": 5, "a2": 6, "a3": 7,
	"t0": 8, "t1": 9, "t2": 10, "t3": 11, "t4": 12, "t5": 13, "t6": 14, "t7": 15,
	"s0": 16, "s1": 17, "s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23,
	"t8": 24, "t9": 25,
	"k0": 26, "k1": 27,
	"gp": 28, "sp": 29, "fp": 30, "ra": 31,
}

// RType packs an R-type instruction: opcode(6) rs(5) rt(5) rd(5) shamt(5) funct(6).
func RType(opcode, rs, rt, rd, shamt, funct uint8) uint32 {
	return uint32(opcode&0x3F)<<26 |
		uint32(rs&0x1F)<<21 |
		uint32(rt&0x1F)<<16 |
		uint32(rd&0x1F)<<11 |
		uint32(shamt&0x1F)<<6 |
		uint32(funct&0x3F)
}

// IType packs an I-type instruction: opcode(6) rs(5) rt(5) immediate(16).
func IType(opcode, rs, rt uint8, immediate int16) uint32 {
	return uint32(opcode&0x3F)<<26 |
		uint32(rs&0x1F)<<21 |
		uint32(rt&0x1F)<<16 |
		uint32(uint16(immediate))
}

// JType packs a J-type instruction: opcode(6) address(26).
func JType(opcode uint8, address uint32) uint32 {
	return uint32(opcode&0x3F)<<26 | (address & 0x3FFFFFF)
}

// R-type instructions.

func Add(rd, rs, rt uint8) uint32 { return RType(control.OpRType, rs, rt, rd, 0, control.FunctAdd) }
func Sub(rd, rs, rt uint8) uint32 { return RType(control.OpRType, rs, rt, rd, 0, control.FunctSub) }
func And(rd, rs, rt uint8) uint32 { return RType(control.OpRType, rs, rt, rd, 0, control.FunctAnd) }
func Or(rd, rs, rt uint8) uint32  { return RType(control.OpRType, rs, rt, rd, 0, control.FunctOr) }
func Slt(rd, rs, rt uint8) uint32 { return RType(control.OpRType, rs, rt, rd, 0, control.FunctSlt) }
func Nor(rd, rs, rt uint8) uint32 { return RType(control.OpRType, rs, rt, rd, 0, control.FunctNor) }

// I-type instructions.

func Addi(rt, rs uint8, immediate int16) uint32 { return IType(control.OpADDI, rs, rt, immediate) }
func Andi(rt, rs uint8, immediate int16) uint32 { return IType(control.OpANDI, rs, rt, immediate) }
func Ori(rt, rs uint8, immediate int16) uint32  { return IType(control.OpORI, rs, rt, immediate) }
func Slti(rt, rs uint8, immediate int16) uint32 { return IType(control.OpSLTI, rs, rt, immediate) }

// Lw: rt = Memory[rs + offset].
func Lw(rt, rs uint8, offset int16) uint32 { return IType(control.OpLW, rs, rt, offset) }

// Sw: Memory[rs + offset] = rt.
func Sw(rt, rs uint8, offset int16) uint32 { return IType(control.OpSW, rs, rt, offset) }

// Beq: if rs == rt, PC = PC + 4 + (offset << 2).
func Beq(rs, rt uint8, offset int16) uint32 { return IType(control.OpBEQ, rs, rt, offset) }

// Bne: if rs != rt, PC = PC + 4 + (offset << 2).
func Bne(rs, rt uint8, offset int16) uint32 { return IType(control.OpBNE, rs, rt, offset) }

// J-type instructions.

// J: PC = (PC & 0xF0000000) | (address << 2). Decoded by the pipeline but
// never executed: the jump path carries no PC-redirect wiring.
func J(address uint32) uint32 { return JType(control.OpJ, address) }

// Nop is the all-zero instruction word: a true bubble when fetched.
func Nop() uint32 { return 0 }
