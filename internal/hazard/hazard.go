// Package hazard implements the load-use hazard detection unit and the
// forwarding unit that together resolve the pipeline's data hazards.
package hazard

import "github.com/gopipeline/mips5/internal/latch"

// Source identifies where a forwarded ALU operand comes from.
type Source uint8

const (
	// None means no forwarding: use the value already latched into ID/EX.
	None Source = iota
	// FromEXMEM forwards the not-yet-retired EX/MEM producer's ALU result.
	FromEXMEM
	// FromMEMWB forwards the MEM/WB producer's committed value.
	FromMEMWB
)

// ShouldStall reports a load-use hazard: the instruction currently in
// ID/EX is a load whose destination register matches either source
// register of the instruction currently in IF/ID. Register 0 never
// triggers a hazard.
func ShouldStall(idEx latch.IDEX, ifID latch.IFID) bool {
	if idEx.Control.MemRead == 0 {
		return false
	}
	if idEx.Rt == 0 {
		return false
	}
	rs := uint8(ifID.Instruction>>21) & 0x1F
	rt := uint8(ifID.Instruction>>16) & 0x1F
	return idEx.Rt == rs || idEx.Rt == rt
}

// Forward picks the forwarding source for one ALU operand slot, given the
// consumer's source register index and the two producer latches. The
// EX-hazard source wins over the MEM-hazard source, since it is the more
// recent producer.
func Forward(consumerReg uint8, exMem latch.EXMEM, memWB latch.MEMWB) Source {
	if exMem.Control.RegWrite == 1 && exMem.WriteReg != 0 && exMem.WriteReg == consumerReg {
		return FromEXMEM
	}
	if memWB.Control.RegWrite == 1 && memWB.WriteReg != 0 && memWB.WriteReg == consumerReg {
		return FromMEMWB
	}
	return None
}

// Resolve returns the forwarded value for a Source given the two producer
// latches. Callers must not invoke Resolve with None; there is nothing to
// forward in that case and the caller should use the ID/EX latched value
// instead.
func Resolve(src Source, exMem latch.EXMEM, memWB latch.MEMWB) int32 {
	switch src {
	case FromEXMEM:
		return exMem.ALUResult
	case FromMEMWB:
		if memWB.Control.MemToReg == 1 {
			return memWB.MemData
		}
		return memWB.ALUResult
	default:
		return 0
	}
}
