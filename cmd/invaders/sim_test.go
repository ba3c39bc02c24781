package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/spacey-invader/internal/config"
)

func TestProfileMode(t *testing.T) {
	for _, name := range []string{"cpu", "mem", "trace"} {
		if _, err := profileMode(name); err != nil {
			t.Errorf("profileMode(%q) = %v", name, err)
		}
	}
	if _, err := profileMode("block"); err == nil {
		t.Error("unknown profile should be rejected")
	}
}

func TestConfigDefaultsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--defaults"})
	defer func() {
		rootCmd.SetArgs(nil)
		flagDefaults = false
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config --defaults: %v", err)
	}
	if out.String() != string(config.DefaultYAML()) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSimCommandRuns(t *testing.T) {
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"sim", "--ticks", "600", "--seed", "5", "--log-level", "error"})
	defer func() {
		rootCmd.SetArgs(nil)
		flagTicks, flagSeed, flagLogLevel = 3600, 0, ""
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("sim: %v", err)
	}
}

func TestSimRejectsBadTicks(t *testing.T) {
	rootCmd.SetArgs([]string{"sim", "--ticks", "0"})
	defer func() {
		rootCmd.SetArgs(nil)
		flagTicks = 3600
	}()

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "--ticks") {
		t.Errorf("expected a --ticks error, got %v", err)
	}
}
