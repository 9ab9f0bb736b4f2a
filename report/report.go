/*
 * mips5 - Statistics report formatting
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

// Package report formats a run's final statistics for the command-line
// front end.
package report

import (
	"fmt"
	"strings"

	"github.com/gopipeline/mips5/internal/pipeline"
)

// Format renders a terse one-paragraph summary of a finished run.
func Format(s pipeline.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "cycles:       %d\n", s.Cycles)
	fmt.Fprintf(&b, "instructions: %d\n", s.Instructions)
	fmt.Fprintf(&b, "stalls:       %d\n", s.Stalls)
	fmt.Fprintf(&b, "cpi:          %.2f\n", s.CPI())
	return b.String()
}
