/*
 * mips5 - Disassembler
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

// Package disasm renders instruction words back to MIPS assembly text,
// for the debugger's disassembly view.
package disasm

import (
	"fmt"

	"github.com/gopipeline/mips5/internal/control"
)

const (
	tyR = 1 + iota
	tyI
	tyIBranch
	tyIMem
	tyJ
)

type opcode struct {
	name string
	ty   int
}

var rTypeOps = map[uint8]opcode{
	control.FunctAdd: {"add", tyR},
	control.FunctSub: {"sub", tyR},
	control.FunctAnd: {"and", tyR},
	control.FunctOr:  {"or", tyR},
	control.FunctSlt: {"slt", tyR},
	control.FunctNor: {"nor", tyR},
}

var opMap = map[uint8]opcode{
	control.OpADDI: {"addi", tyI},
	control.OpANDI: {"andi", tyI},
	control.OpORI:  {"ori", tyI},
	control.OpSLTI: {"slti", tyI},
	control.OpLW:   {"lw", tyIMem},
	control.OpSW:   {"sw", tyIMem},
	control.OpBEQ:  {"beq", tyIBranch},
	control.OpBNE:  {"bne", tyIBranch},
	control.OpJ:    {"j", tyJ},
}

var regNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

func reg(index uint8) string {
	return "$" + regNames[index&0x1F]
}

// Instruction renders a single instruction word as MIPS assembly text.
func Instruction(word uint32) string {
	if word == 0 {
		return "nop"
	}

	fields := control.Decode(word)

	if fields.Opcode == control.OpRType {
		op, ok := rTypeOps[fields.Funct]
		if !ok {
			return fmt.Sprintf("unknown (funct %#x)", fields.Funct)
		}
		return fmt.Sprintf("%s %s, %s, %s", op.name, reg(fields.Rd), reg(fields.Rs), reg(fields.Rt))
	}

	op, ok := opMap[fields.Opcode]
	if !ok {
		return fmt.Sprintf("unknown (opcode %#x)", fields.Opcode)
	}

	switch op.ty {
	case tyI:
		return fmt.Sprintf("%s %s, %s, %d", op.name, reg(fields.Rt), reg(fields.Rs), fields.Immediate)
	case tyIMem:
		return fmt.Sprintf("%s %s, %d(%s)", op.name, reg(fields.Rt), fields.Immediate, reg(fields.Rs))
	case tyIBranch:
		return fmt.Sprintf("%s %s, %s, %d", op.name, reg(fields.Rs), reg(fields.Rt), fields.Immediate)
	case tyJ:
		return fmt.Sprintf("%s %#x", op.name, word&0x3FFFFFF)
	default:
		return fmt.Sprintf("unknown (opcode %#x)", fields.Opcode)
	}
}

// Program renders a sequence of instruction words, one per line, each
// prefixed with its word index.
func Program(words []uint32) []string {
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("%3d: %s", i, Instruction(w))
	}
	return lines
}
