package simconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.cfg")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.InstrWords != 1024 || cfg.DataWords != 1024 || cfg.MaxCycles != 100000 {
		t.Errorf("Default() got: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "# comment line\ninstr_words 64\ndata_words 128\nstart_addr 0x10\nmax_cycles 500\nlog debug\nlogfile trace.log\nprogram array_sum.bin\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InstrWords != 64 || cfg.DataWords != 128 {
		t.Errorf("memory sizes got: instr=%d data=%d expected: 64 128", cfg.InstrWords, cfg.DataWords)
	}
	if cfg.StartAddr != 16 {
		t.Errorf("StartAddr got: %d expected: 16", cfg.StartAddr)
	}
	if cfg.MaxCycles != 500 {
		t.Errorf("MaxCycles got: %d expected: 500", cfg.MaxCycles)
	}
	if cfg.LogLevel != "debug" || cfg.LogFile != "trace.log" || cfg.Program != "array_sum.bin" {
		t.Errorf("logging/program got: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeTempConfig(t, "bogus_key 1\n")

	if _, err := Load(path); err == nil {
		t.Errorf("Load got: nil error expected: error for unknown key")
	}
}

func TestLoadIgnoresBlankAndCommentLines(t *testing.T) {
	path := writeTempConfig(t, "\n   \n# just a comment\ninstr_words 32\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InstrWords != 32 {
		t.Errorf("InstrWords got: %d expected: 32", cfg.InstrWords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.cfg")); err == nil {
		t.Errorf("Load got: nil error expected: file-not-found error")
	}
}
