package main

import (
	"bytes"
	"testing"
)

func TestUIModeFlagValue(t *testing.T) {
	var m uiMode
	for in, want := range map[string]uiMode{"": uiModeAuto, " ON ": uiModeOn, "off": uiModeOff, "auto": uiModeAuto} {
		if err := m.Set(in); err != nil || m != want {
			t.Fatalf("Set(%q) = %q, %v", in, m, err)
		}
	}
	if err := m.Set("maybe"); err == nil {
		t.Fatal("expected error for unknown mode")
	}

	var buf bytes.Buffer
	if uiModeAuto.useTUI(&buf) || uiModeOff.useTUI(&buf) || !uiModeOn.useTUI(&buf) {
		t.Fatal("auto must stay off for a non-terminal writer, on/off are forced")
	}
}
