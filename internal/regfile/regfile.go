// Package regfile implements the pipeline's 32-word general purpose
// register file. Register 0 is hardwired to zero.
package regfile

// Count is the number of general purpose registers.
const Count = 32

// File is a 32-word signed register file. The zero value is ready to use.
type File struct {
	regs [Count]int32
}

// Read returns the value stored at index. Index 0 always reads as zero;
// an out-of-range index returns zero.
func (f *File) Read(index uint8) int32 {
	if int(index) >= Count {
		return 0
	}
	return f.regs[index]
}

// Write stores value at index, normalized to signed 32-bit. Index 0 is
// ignored, as is any out-of-range index.
func (f *File) Write(index uint8, value int32) {
	if index == 0 || int(index) >= Count {
		return
	}
	f.regs[index] = value
}

// Snapshot returns a copy of all 32 registers for inspection.
func (f *File) Snapshot() [Count]int32 {
	return f.regs
}

// Reset restores every register to zero.
func (f *File) Reset() {
	f.regs = [Count]int32{}
}
