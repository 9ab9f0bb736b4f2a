package regfile

import "testing"

func TestReadWrite(t *testing.T) {
	var f File

	f.Write(5, 42)
	if got := f.Read(5); got != 42 {
		t.Errorf("Read(5) got: %d expected: %d", got, 42)
	}
}

// Register 0 reads as 0 at every cycle, no matter what writes target it.
func TestRegisterZeroIgnoresWrites(t *testing.T) {
	var f File

	f.Write(0, 1234)
	if got := f.Read(0); got != 0 {
		t.Errorf("Read(0) got: %d expected: %d", got, 0)
	}
}

func TestOutOfRange(t *testing.T) {
	var f File

	f.Write(32, 99)
	if got := f.Read(32); got != 0 {
		t.Errorf("Read(32) got: %d expected: %d", got, 0)
	}
	if got := f.Read(200); got != 0 {
		t.Errorf("Read(200) got: %d expected: %d", got, 0)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	var f File
	f.Write(1, 7)

	snap := f.Snapshot()
	f.Write(1, 8)

	if snap[1] != 7 {
		t.Errorf("Snapshot()[1] got: %d expected: %d", snap[1], 7)
	}
	if got := f.Read(1); got != 8 {
		t.Errorf("Read(1) got: %d expected: %d", got, 8)
	}
}

func TestReset(t *testing.T) {
	var f File
	f.Write(3, 55)
	f.Reset()

	if got := f.Read(3); got != 0 {
		t.Errorf("Read(3) after Reset got: %d expected: %d", got, 0)
	}
}
