package tui

import "testing"

func TestTickCmdFloorsRate(t *testing.T) {
	// A zero or negative rate must not divide by zero
	if tickCmd(0) == nil {
		t.Error("tickCmd(0) returned nil")
	}
	if tickCmd(-5) == nil {
		t.Error("tickCmd(-5) returned nil")
	}
	if tickCmd(60) == nil {
		t.Error("tickCmd(60) returned nil")
	}
}
