/*
 * mips5 - Convert words to hex strings.
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

// Package hexfmt renders words and bytes as terse hex text for the
// register and memory dumps the debugger prints.
package hexfmt

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatWord appends each word in words as 8 hex digits, space separated.
func FormatWord(str *strings.Builder, words []int32) {
	for _, full := range words {
		shift := 28
		for range 8 {
			str.WriteByte(hexMap[(uint32(full)>>shift)&0xf])
			shift -= 4
		}
		str.WriteByte(' ')
	}
}

// FormatByte appends a single byte as two hex digits.
func FormatByte(str *strings.Builder, by byte) {
	str.WriteByte(hexMap[(by>>4)&0xf])
	str.WriteByte(hexMap[by&0xf])
}

// Word renders a single 32-bit value as an 8-digit hex string, such as
// "0000002A".
func Word(value int32) string {
	var b strings.Builder
	shift := 28
	for range 8 {
		b.WriteByte(hexMap[(uint32(value)>>shift)&0xf])
		shift -= 4
	}
	return b.String()
}

// Dump renders a slice of words as a multi-line hex dump, four words per
// line, each line prefixed with its starting word index in hex.
func Dump(words []int32) string {
	var b strings.Builder
	for i := 0; i < len(words); i += 4 {
		b.WriteByte(hexMap[(i>>12)&0xf])
		b.WriteByte(hexMap[(i>>8)&0xf])
		b.WriteByte(hexMap[(i>>4)&0xf])
		b.WriteByte(hexMap[i&0xf])
		b.WriteString(": ")
		end := i + 4
		if end > len(words) {
			end = len(words)
		}
		FormatWord(&b, words[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}
