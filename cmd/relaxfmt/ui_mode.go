package main

import (
	"fmt"
	"io"
	"strings"
)

// uiMode is the --ui flag value; it satisfies pflag.Value so cobra rejects
// bad values while parsing.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func (m *uiMode) String() string { return string(*m) }

func (m *uiMode) Type() string { return "auto|on|off" }

func (m *uiMode) Set(value string) error {
	switch v := uiMode(strings.TrimSpace(strings.ToLower(value))); v {
	case "":
		*m = uiModeAuto
	case uiModeAuto, uiModeOn, uiModeOff:
		*m = v
	default:
		return fmt.Errorf("expected auto|on|off, got %q", value)
	}
	return nil
}

// useTUI decides whether a fmt run gets the progress view. Auto needs a
// terminal on out; piped runs keep plain line output.
func (m uiMode) useTUI(out io.Writer) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return isTerminal(out)
}
