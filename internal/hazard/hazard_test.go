package hazard

import (
	"testing"

	"github.com/gopipeline/mips5/internal/latch"
)

func encodeRsRt(rs, rt uint8) uint32 {
	return uint32(rs)<<21 | uint32(rt)<<16
}

func TestShouldStallLoadUse(t *testing.T) {
	idEx := latch.IDEX{Rt: 8, Control: latch.Control{MemRead: 1}}
	ifID := latch.IFID{Instruction: encodeRsRt(8, 9)} // rs matches load dest

	if !ShouldStall(idEx, ifID) {
		t.Errorf("ShouldStall got: false expected: true")
	}
}

func TestShouldStallNoHazardWithoutLoad(t *testing.T) {
	idEx := latch.IDEX{Rt: 8, Control: latch.Control{MemRead: 0}}
	ifID := latch.IFID{Instruction: encodeRsRt(8, 9)}

	if ShouldStall(idEx, ifID) {
		t.Errorf("ShouldStall got: true expected: false")
	}
}

func TestShouldStallRegisterZeroNeverHazards(t *testing.T) {
	idEx := latch.IDEX{Rt: 0, Control: latch.Control{MemRead: 1}}
	ifID := latch.IFID{Instruction: encodeRsRt(0, 0)}

	if ShouldStall(idEx, ifID) {
		t.Errorf("ShouldStall got: true expected: false")
	}
}

func TestForwardPrefersEXMEMOverMEMWB(t *testing.T) {
	exMem := latch.EXMEM{WriteReg: 5, Control: latch.Control{RegWrite: 1}}
	memWB := latch.MEMWB{WriteReg: 5, Control: latch.Control{RegWrite: 1}}

	if got := Forward(5, exMem, memWB); got != FromEXMEM {
		t.Errorf("Forward got: %v expected: %v", got, FromEXMEM)
	}
}

func TestForwardFallsBackToMEMWB(t *testing.T) {
	exMem := latch.EXMEM{WriteReg: 4, Control: latch.Control{RegWrite: 1}}
	memWB := latch.MEMWB{WriteReg: 5, Control: latch.Control{RegWrite: 1}}

	if got := Forward(5, exMem, memWB); got != FromMEMWB {
		t.Errorf("Forward got: %v expected: %v", got, FromMEMWB)
	}
}

func TestForwardNoneWhenNoProducerWrites(t *testing.T) {
	exMem := latch.EXMEM{WriteReg: 5}
	memWB := latch.MEMWB{WriteReg: 5}

	if got := Forward(5, exMem, memWB); got != None {
		t.Errorf("Forward got: %v expected: %v", got, None)
	}
}

func TestForwardIgnoresRegisterZeroWriteback(t *testing.T) {
	exMem := latch.EXMEM{WriteReg: 0, Control: latch.Control{RegWrite: 1}}
	memWB := latch.MEMWB{WriteReg: 0, Control: latch.Control{RegWrite: 1}}

	if got := Forward(0, exMem, memWB); got != None {
		t.Errorf("Forward got: %v expected: %v", got, None)
	}
}

func TestResolveMEMWBPrefersMemDataWhenMemToReg(t *testing.T) {
	memWB := latch.MEMWB{MemData: 42, ALUResult: 99, Control: latch.Control{MemToReg: 1}}

	if got := Resolve(FromMEMWB, latch.EXMEM{}, memWB); got != 42 {
		t.Errorf("Resolve got: %d expected: %d", got, 42)
	}
}

func TestResolveMEMWBUsesALUResultOtherwise(t *testing.T) {
	memWB := latch.MEMWB{MemData: 42, ALUResult: 99}

	if got := Resolve(FromMEMWB, latch.EXMEM{}, memWB); got != 99 {
		t.Errorf("Resolve got: %d expected: %d", got, 99)
	}
}

func TestResolveEXMEM(t *testing.T) {
	exMem := latch.EXMEM{ALUResult: 7}

	if got := Resolve(FromEXMEM, exMem, latch.MEMWB{}); got != 7 {
		t.Errorf("Resolve got: %d expected: %d", got, 7)
	}
}
