/*
 * mips5 - Simulator configuration file parser
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

// Package simconfig loads the simulator's configuration file: memory
// sizes, starting address, cycle budget and logging options.
//
// File format:
//
//	'#' starts a comment, rest of line ignored.
//	<line> := <key> <whitespace> <value>
//	<key>  := 'instr_words' | 'data_words' | 'start_addr' |
//	          'max_cycles' | 'log' | 'logfile' | 'program'
package simconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Config holds every value the configuration file can set, along with
// the defaults used for anything the file omits.
type Config struct {
	InstrWords int    // Instruction memory size, in words.
	DataWords  int    // Data memory size, in words.
	StartAddr  int32  // Initial program counter, in bytes.
	MaxCycles  int    // Cycle budget passed to Processor.Run.
	LogLevel   string // One of debug, info, warn, error.
	LogFile    string // Path to the log file, empty disables file logging.
	Program    string // Built-in example name (array_sum, fibonacci); empty selects array_sum. Program image files are not loaded.
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{
		InstrWords: 1024,
		DataWords:  1024,
		StartAddr:  0,
		MaxCycles:  100000,
		LogLevel:   "info",
	}
}

type line struct {
	text string
	pos  int
	num  int
}

// Load reads a configuration file, starting from Default and overriding
// whatever keys the file sets.
func Load(name string) (Config, error) {
	cfg := Default()

	file, err := os.Open(name)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	num := 0
	for {
		text, readErr := reader.ReadString('\n')
		num++
		if len(text) == 0 && readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return cfg, readErr
		}

		l := line{text: text, num: num}
		if err := l.apply(&cfg); err != nil {
			return cfg, err
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return cfg, readErr
		}
	}
	return cfg, nil
}

func (l *line) skipSpace() {
	for l.pos < len(l.text) && (l.text[l.pos] == ' ' || l.text[l.pos] == '\t') {
		l.pos++
	}
}

func (l *line) isEOL() bool {
	return l.pos >= len(l.text) || l.text[l.pos] == '#' || l.text[l.pos] == '\n' || l.text[l.pos] == '\r'
}

func (l *line) word() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && l.text[l.pos] != ' ' && l.text[l.pos] != '\t' {
		l.pos++
	}
	return l.text[start:l.pos]
}

// apply parses one line and, if it sets a key, updates cfg.
func (l *line) apply(cfg *Config) error {
	key := strings.ToLower(l.word())
	if key == "" {
		return nil
	}
	value := l.word()
	if value == "" {
		return fmt.Errorf("simconfig: line %d: %s requires a value", l.num, key)
	}

	switch key {
	case "instr_words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("simconfig: line %d: invalid instr_words: %w", l.num, err)
		}
		cfg.InstrWords = n
	case "data_words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("simconfig: line %d: invalid data_words: %w", l.num, err)
		}
		cfg.DataWords = n
	case "start_addr":
		n, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return fmt.Errorf("simconfig: line %d: invalid start_addr: %w", l.num, err)
		}
		cfg.StartAddr = int32(n)
	case "max_cycles":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("simconfig: line %d: invalid max_cycles: %w", l.num, err)
		}
		cfg.MaxCycles = n
	case "log":
		cfg.LogLevel = strings.ToLower(value)
	case "logfile":
		cfg.LogFile = value
	case "program":
		cfg.Program = value
	default:
		return fmt.Errorf("simconfig: line %d: unknown key: %s", l.num, key)
	}
	return nil
}
