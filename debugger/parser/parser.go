/*
 * mips5 - Debugger command parser
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

// Package parser implements the interactive debugger's command
// language: step, run, registers, memory, stats, reset and quit.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gopipeline/mips5/asm/disasm"
	"github.com/gopipeline/mips5/internal/hexfmt"
	"github.com/gopipeline/mips5/internal/pipeline"
)

type cmdLine struct {
	line string
	pos  int
}

type cmd struct {
	name    string
	min     int
	process func(*cmdLine, *pipeline.Processor) (bool, error)
}

var cmdList = []cmd{
	{name: "step", min: 1, process: step},
	{name: "run", min: 1, process: run},
	{name: "registers", min: 3, process: registers},
	{name: "memory", min: 3, process: memory},
	{name: "stats", min: 2, process: stats},
	{name: "disassemble", min: 2, process: disassemble},
	{name: "reset", min: 3, process: reset},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand parses and executes one command line against proc. The
// returned bool is true when the session should end.
func ProcessCommand(commandLine string, proc *pipeline.Processor) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return match[0].process(&line, proc)
}

// CompleteCmd returns every command name whose prefix matches line, for
// the line editor's tab completion.
func CompleteCmd(line string) []string {
	l := cmdLine{line: line}
	name := l.getWord()
	matches := matchList(name)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range name {
		if name[i] != m.name[i] {
			return false
		}
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var out []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			out = append(out, m)
		}
	}
	return out
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

func (l *cmdLine) getInt(def int) (int, error) {
	word := l.getWord()
	if word == "" {
		return def, nil
	}
	return strconv.Atoi(word)
}

func step(line *cmdLine, proc *pipeline.Processor) (bool, error) {
	n, err := line.getInt(1)
	if err != nil {
		return false, fmt.Errorf("step: %w", err)
	}
	for i := 0; i < n && !proc.Idle(); i++ {
		proc.Tick()
	}
	return false, nil
}

func run(line *cmdLine, proc *pipeline.Processor) (bool, error) {
	n, err := line.getInt(100000)
	if err != nil {
		return false, fmt.Errorf("run: %w", err)
	}
	proc.Run(n)
	return false, nil
}

func registers(_ *cmdLine, proc *pipeline.Processor) (bool, error) {
	regs := proc.Registers()
	var b strings.Builder
	for i, v := range regs {
		fmt.Fprintf(&b, "$%-2d=%s ", i, hexfmt.Word(v))
		if i%4 == 3 {
			b.WriteByte('\n')
		}
	}
	fmt.Println(b.String())
	return false, nil
}

func memory(line *cmdLine, proc *pipeline.Processor) (bool, error) {
	start, err := line.getInt(0)
	if err != nil {
		return false, fmt.Errorf("memory: %w", err)
	}
	count, err := line.getInt(16)
	if err != nil {
		return false, fmt.Errorf("memory: %w", err)
	}
	words := make([]int32, count)
	for i := range words {
		words[i] = proc.ReadData(int32(start + i*4))
	}
	fmt.Print(hexfmt.Dump(words))
	return false, nil
}

func stats(_ *cmdLine, proc *pipeline.Processor) (bool, error) {
	s := proc.Stats()
	fmt.Printf("cycles=%d instructions=%d stalls=%d cpi=%.2f\n", s.Cycles, s.Instructions, s.Stalls, s.CPI())
	return false, nil
}

func disassemble(line *cmdLine, proc *pipeline.Processor) (bool, error) {
	start, err := line.getInt(0)
	if err != nil {
		return false, fmt.Errorf("disassemble: %w", err)
	}
	count, err := line.getInt(10)
	if err != nil {
		return false, fmt.Errorf("disassemble: %w", err)
	}
	words := make([]uint32, count)
	for i := range words {
		words[i] = proc.ReadInstruction(int32(start + i*4))
	}
	for _, s := range disasm.Program(words) {
		fmt.Println(s)
	}
	return false, nil
}

func reset(_ *cmdLine, proc *pipeline.Processor) (bool, error) {
	proc.Reset()
	return false, nil
}

func quit(_ *cmdLine, _ *pipeline.Processor) (bool, error) {
	return true, nil
}
