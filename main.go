/*
 * mips5 - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/gopipeline/mips5/config/simconfig"
	"github.com/gopipeline/mips5/debugger/reader"
	"github.com/gopipeline/mips5/examples"
	"github.com/gopipeline/mips5/internal/pipeline"
	"github.com/gopipeline/mips5/internal/simlog"
	"github.com/gopipeline/mips5/report"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optExample := getopt.StringLong("example", 'e', "", "Run a built-in example program: array_sum, fibonacci")
	optDebug := getopt.BoolLong("debug", 'd', "Drop into the interactive debugger instead of running to completion")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	cfg := simconfig.Default()
	if *optConfig != "" {
		loaded, err := simconfig.Load(*optConfig)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			os.Exit(1)
		}
		cfg = loaded
	}
	if *optLogFile != "" {
		cfg.LogFile = *optLogFile
	}
	if *optExample != "" {
		cfg.Program = *optExample
	}

	var file *os.File
	if cfg.LogFile != "" {
		var err error
		file, err = os.Create(cfg.LogFile)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			os.Exit(1)
		}
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(levelFromName(cfg.LogLevel))
	Logger = slog.New(simlog.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(Logger)

	Logger.Info("mips5 started")

	proc := pipeline.New(cfg.InstrWords, cfg.DataWords)
	proc.SetLogger(Logger)

	if err := loadProgram(proc, cfg); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	if *optDebug {
		reader.ConsoleReader(proc)
		return
	}

	proc.Run(cfg.MaxCycles)
	fmt.Print(report.Format(proc.Stats()))
}

func loadProgram(proc *pipeline.Processor, cfg simconfig.Config) error {
	switch cfg.Program {
	case "", "array_sum":
		load(proc, examples.ArraySum(), cfg.StartAddr)
	case "fibonacci":
		load(proc, examples.Fibonacci(10), cfg.StartAddr)
	default:
		return fmt.Errorf("unknown example program: %s", cfg.Program)
	}
	return nil
}

func load(proc *pipeline.Processor, prog examples.Program, startAddr int32) {
	proc.LoadProgram(prog.Instructions, startAddr)
	for i, word := range prog.PreloadData {
		proc.WriteData(prog.PreloadAddr+int32(i*4), word)
	}
}

func levelFromName(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
