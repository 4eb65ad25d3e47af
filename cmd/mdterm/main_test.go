package main

import "testing"

func TestResolveOSC8(t *testing.T) {
	cases := map[string]bool{
		"on": true, "ON": true, "yes": true, "1": true,
		"off": false, "false": false, "0": false, "no": false,
	}
	for mode, want := range cases {
		got, err := resolveOSC8(mode)
		if err != nil {
			t.Fatalf("%q: %v", mode, err)
		}
		if got != want {
			t.Fatalf("%q: got %v, want %v", mode, got, want)
		}
	}
	if _, err := resolveOSC8("sometimes"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestResolveWidthHonorsFlag(t *testing.T) {
	if got := resolveWidth(120); got != 120 {
		t.Fatalf("got %d, want 120", got)
	}
}

func TestTerminalWidthUsesColumnsEnv(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	if got := terminalWidth(80); got != 132 {
		t.Fatalf("got %d, want 132", got)
	}
	t.Setenv("COLUMNS", "not-a-number")
	if got := terminalWidth(80); got != 80 {
		t.Fatalf("got %d, want fallback 80", got)
	}
}

func TestStrconvAtoi(t *testing.T) {
	if n, err := strconvAtoi("405"); err != nil || n != 405 {
		t.Fatalf("got %d, %v", n, err)
	}
	if _, err := strconvAtoi("4x5"); err == nil {
		t.Fatalf("expected error for non-digit input")
	}
}
