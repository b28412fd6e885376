package cmd

import "testing"

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		if _, err := newLogger(level); err != nil {
			t.Errorf("newLogger(%q): %v", level, err)
		}
	}
	if _, err := newLogger("verbose"); err == nil {
		t.Error("newLogger accepted an invalid level")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"detect":   false,
		"classify": false,
		"strategy": false,
		"params":   false,
		"extract":  false,
		"tabs":     false,
		"serve":    false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}
